package security

import (
	"errors"
	"time"

	"game_catalog/internal/common"
	"game_catalog/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

const resetPurpose = "password_reset"

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken issues a signed access token bound to a user. Tokens are
// stateless; expiry and signature are the only things checked on use.
func GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(config.AppConfig.JWTExp).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ValidateToken checks signature then expiry and returns the embedded user ID.
// A tampered token fails with common.ErrInvalidToken, a stale one with
// common.ErrExpiredToken.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", common.ErrExpiredToken
		}
		return "", common.ErrInvalidToken
	}

	id, ok := token.Get("user_id")
	if !ok {
		return "", common.ErrInvalidToken
	}
	userID, ok := id.(string)
	if !ok || userID == "" {
		return "", common.ErrInvalidToken
	}
	return userID, nil
}

// GeneratePasswordResetToken issues a short-lived token scoped to the reset
// flow. The purpose claim keeps access tokens unusable as reset tokens.
func GeneratePasswordResetToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": resetPurpose,
		"exp":     now.Add(config.AppConfig.ResetTokenExp).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ValidatePasswordResetToken returns the email a valid reset token was issued for.
func ValidatePasswordResetToken(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", common.ErrExpiredToken
		}
		return "", common.ErrInvalidToken
	}

	purpose, ok := token.Get("purpose")
	if !ok || purpose != resetPurpose {
		return "", common.ErrInvalidToken
	}
	email := token.Subject()
	if email == "" {
		return "", common.ErrInvalidToken
	}
	return email, nil
}

// GetUserIDFromClaims extracts the user ID from middleware-decoded claims.
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}
