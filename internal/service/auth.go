package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/charterpoint/transport-leads-api/internal/auth"
	"github.com/charterpoint/transport-leads-api/internal/metrics"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// ErrInvalidCredentials is returned for unknown emails, wrong passwords
// and deactivated accounts alike, to avoid confirming which it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	users repository.AdminUsersRepository
	jwt   *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.AdminUsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			metrics.RecordAuthAttempt("failure")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.Active {
		metrics.RecordAuthAttempt("failure")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthAttempt("failure")
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, user.DisplayName, user.Role)
	if err != nil {
		return "", err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		// best effort; a stale last-login timestamp is not worth a 500
		log.Printf("touch last login failed: %v", err)
	}

	metrics.RecordAuthAttempt("success")
	return token, nil
}
