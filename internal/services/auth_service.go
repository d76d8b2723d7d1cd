package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
	"github.com/AlvaroDC2000/dealership-api/internal/repositories"
	"github.com/AlvaroDC2000/dealership-api/internal/security"
)

// AuthService validates user credentials and builds the session information
// returned to the UI after login. It issues no tokens and keeps no state.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *security.PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, hasher *security.PasswordHasher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Login checks the submitted credentials against the stored user data.
//
// A missing username or password is reported as a ValidationError. Every
// other failure mode (unknown username, inactive account, wrong password)
// collapses into models.ErrInvalidCredentials so the response never reveals
// which factor failed.
func (s *AuthService) Login(username, password string) (*models.SessionInfo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, models.NewValidationError("Password is required")
	}

	user, err := s.userRepo.FindLoginByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	// The password is compared as submitted, without trimming.
	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	return &models.SessionInfo{
		UserID:       user.ID,
		DealershipID: user.DealershipID,
		Role:         user.RoleName,
		Username:     user.Username,
		FullName:     user.FullName,
	}, nil
}
