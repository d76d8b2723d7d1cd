package repositories

import "github.com/AlvaroDC2000/dealership-api/internal/models"

// UserFilter holds the optional criteria for listing users. A nil field
// means the filter is not applied.
type UserFilter struct {
	DealershipID *int
	RoleID       *int
	Active       *bool
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts a new user and fills in the generated identifier.
	// A username collision is reported as models.ErrUsernameTaken.
	Create(user *models.User) error
	// GetByID retrieves a user by identifier.
	GetByID(id int) (*models.User, error)
	// FindLoginByUsername loads the login projection for an active user.
	// Missing and inactive usernames both yield models.ErrUserNotFound.
	FindLoginByUsername(username string) (*models.LoginUser, error)
	// ExistsUsername reports whether a username is already in use.
	ExistsUsername(username string) (bool, error)
	// List returns users matching the filter, with dealership and role
	// names resolved, ordered by identifier.
	List(filter UserFilter) ([]models.UserRow, error)
}
