package service

import (
	"context"
	"errors"
	"fmt"

	"game_catalog/internal/common"
	"game_catalog/internal/common/security"
	"game_catalog/internal/domain/model"
	"game_catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *logrus.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, log: log}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	LoginField string `json:"login_field"` // Can be username or email
	Password   string `json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", common.ErrBadRequest)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on duplicate username/email
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithField("username", user.Username).Info("user registered")
	return user.PublicProfile(), nil
}

// Login verifies credentials against the stored bcrypt hash and issues an
// access token. Unknown identifier and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.LoginField == "" || req.Password == "" {
		return nil, common.ErrInvalidCredentials
	}

	// Try finding by email first, then by username
	user, err := s.userRepo.FindByEmail(ctx, req.LoginField)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			user, err = s.userRepo.FindByUsername(ctx, req.LoginField)
		}
	}

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive || !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.WithField("username", user.Username).Info("user logged in")
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.PublicProfile(),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicProfile(), nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListActive(ctx)
}

// RequestPasswordReset responds identically whether or not the email is
// registered. The reset token is only logged; mail delivery is out of scope.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	token, err := security.GeneratePasswordResetToken(user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	s.log.WithField("email", user.Email).Infof("password reset token issued: %s", token)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", common.ErrBadRequest)
	}

	email, err := security.ValidatePasswordResetToken(token)
	if err != nil {
		return fmt.Errorf("reset token rejected: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashedPassword, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.log.WithField("email", user.Email).Info("password reset completed")
	return nil
}
