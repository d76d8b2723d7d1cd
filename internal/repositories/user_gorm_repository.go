package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user row. The database generates the identifier and
// GORM writes it back into user.ID. The unique index on username turns a
// concurrent duplicate insert into models.ErrUsernameTaken, which closes the
// gap left by the check-then-insert sequence in the service layer.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// FindLoginByUsername loads the minimal projection needed to validate a
// login: identity fields, the role name, and the stored password hash.
// Only active users are considered, so an inactive account is
// indistinguishable from a missing one.
func (r *GORMUserRepository) FindLoginByUsername(username string) (*models.LoginUser, error) {
	var row models.LoginUser
	res := r.db.Table("users").
		Select("users.id, users.dealership_id, roles.name AS role_name, users.username, users.full_name, users.password_hash").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("users.username = ? AND users.is_active = ?", username, true).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to load login data for %s: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrUserNotFound
	}
	return &row, nil
}

// ExistsUsername checks whether a username is already present.
func (r *GORMUserRepository) ExistsUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return count > 0, nil
}

// List returns the user rows matching the filter. Each optional criterion is
// appended as its own parameterized predicate; values never end up inside
// the SQL string itself.
func (r *GORMUserRepository) List(filter UserFilter) ([]models.UserRow, error) {
	q := r.db.Table("users u").
		Select("u.id, u.dealership_id, d.name AS dealership_name, u.role_id, r.name AS role_name, u.username, u.full_name, u.is_active AS active").
		Joins("JOIN dealerships d ON d.id = u.dealership_id").
		Joins("JOIN roles r ON r.id = u.role_id")

	if filter.DealershipID != nil {
		q = q.Where("u.dealership_id = ?", *filter.DealershipID)
	}
	if filter.RoleID != nil {
		q = q.Where("u.role_id = ?", *filter.RoleID)
	}
	if filter.Active != nil {
		q = q.Where("u.is_active = ?", *filter.Active)
	}

	rows := make([]models.UserRow, 0)
	if err := q.Order("u.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return rows, nil
}
