package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

// TokenClaims are the JWT claims carried by an admin access token
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Admin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// AuthConfig holds token issuance settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// authService implements AuthService
type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	config    AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, config AuthConfig) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: v,
		config:    config,
	}
}

// Login authenticates an admin by email and password and issues a signed
// access token. Non-admin accounts are rejected even with valid credentials.
func (s *authService) Login(ctx context.Context, req *validator.LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password so login failures do not
			// reveal which emails exist.
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up user during login", "error", err)
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Admin {
		s.logger.Warn("Non-admin login attempt", "user_id", user.ID)
		return nil, ErrForbidden
	}

	expiresAt := time.Now().Add(s.config.TokenTTL)
	claims := &TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Admin:  user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Regno,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("Admin logged in", "user_id", user.ID)

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User: AdminInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Regno:    user.Regno,
		},
	}, nil
}

// ParseToken validates a signed token and returns its claims
func (s *authService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, err.Error())
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrUnauthorized
	}

	return claims, nil
}

// HashPassword produces a bcrypt hash suitable for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
