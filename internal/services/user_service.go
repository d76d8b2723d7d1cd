package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
	"github.com/AlvaroDC2000/dealership-api/internal/repositories"
	"github.com/AlvaroDC2000/dealership-api/internal/security"
	"github.com/AlvaroDC2000/dealership-api/pkg/rabbitmq"
)

// UserService handles owner-level account management: creating employee
// accounts, listing them with filters, and serving the reference data used
// by the management forms.
type UserService struct {
	userRepo repositories.UserRepository
	refRepo  repositories.ReferenceRepository
	hasher   *security.PasswordHasher
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. mqClient may be nil; account
// events are then skipped.
func NewUserService(
	userRepo repositories.UserRepository,
	refRepo repositories.ReferenceRepository,
	hasher *security.PasswordHasher,
	mqClient *rabbitmq.Client,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		refRepo:  refRepo,
		hasher:   hasher,
		mqClient: mqClient,
	}
}

// CreateUser validates the request, enforces username uniqueness, hashes the
// password, and persists the new account. It returns the generated
// identifier.
//
// Validation is first-failure-wins, in a fixed order, and each failure is a
// distinguishable ValidationError. A taken username is reported separately
// as models.ErrUsernameTaken so callers can tell bad input apart from a
// conflict. The plaintext password never reaches storage or logs.
func (s *UserService) CreateUser(req *models.CreateUserRequest) (int, error) {
	if req.DealershipID <= 0 {
		return 0, models.NewValidationError("Dealership is required")
	}
	if req.RoleID <= 0 {
		return 0, models.NewValidationError("Role is required")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return 0, models.NewValidationError("Username is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return 0, models.NewValidationError("Password is required")
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return 0, models.NewValidationError("Full name is required")
	}

	// Default to active when the client did not send the flag explicitly.
	// This keeps the create form simple.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	exists, err := s.userRepo.ExistsUsername(username)
	if err != nil {
		return 0, fmt.Errorf("username check failed: %w", err)
	}
	if exists {
		return 0, models.ErrUsernameTaken
	}

	// The password is hashed as submitted, without trimming.
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		DealershipID: req.DealershipID,
		RoleID:       req.RoleID,
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		IsActive:     active,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent requests can both pass the existence check; the
		// unique index catches the loser and we report the same conflict.
		if errors.Is(err, models.ErrUsernameTaken) {
			return 0, models.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	s.publishUserCreated(user)

	return user.ID, nil
}

// ListUsers returns the users matching the optional filters.
func (s *UserService) ListUsers(filter repositories.UserFilter) ([]models.UserRow, error) {
	return s.userRepo.List(filter)
}

// Roles returns the role reference data.
func (s *UserService) Roles() ([]models.IdNameRow, error) {
	return s.refRepo.Roles()
}

// Dealerships returns the dealership reference data.
func (s *UserService) Dealerships() ([]models.IdNameRow, error) {
	return s.refRepo.Dealerships()
}

// publishUserCreated emits a best-effort user.created event. Publishing
// failures are logged and never fail the request; the account is already
// persisted at this point.
func (s *UserService) publishUserCreated(user *models.User) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"eventId":      uuid.New().String(),
		"type":         "user.created",
		"userId":       user.ID,
		"username":     user.Username,
		"dealershipId": user.DealershipID,
		"roleId":       user.RoleID,
		"occurredAt":   time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal user created event: %v", err)
		return
	}
	if err := s.mqClient.PublishUserEvent(body); err != nil {
		log.Printf("Warning: Failed to publish user created event for user %d: %v", user.ID, err)
	}
}
