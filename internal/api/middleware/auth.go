package middleware

import (
	"context"
	"errors"
	"net/http"

	"game_catalog/internal/common"
	"game_catalog/internal/common/security"
	"game_catalog/internal/domain/model"
	"game_catalog/internal/domain/repository"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UserIDCtxKey contextKey = "userID"
	UserCtxKey   contextKey = "user"
)

// Authenticator guards protected routes. It reads the bearer token decoded by
// jwtauth.Verifier, resolves the user from the credential store and attaches
// both to the request context. A token whose user no longer exists (or is
// deactivated) is treated as invalid.
func Authenticator(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "token required")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}
			if token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := security.GetUserIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || !user.IsActive {
				common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			ctx = context.WithValue(ctx, UserCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get the resolved user from context
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*model.User)
	return user, ok
}
