package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/AlvaroDC2000/dealership-api/internal/models"
)

// GORMReferenceRepository is a GORM implementation of ReferenceRepository.
type GORMReferenceRepository struct {
	db *gorm.DB
}

// NewGORMReferenceRepository creates a new instance of GORMReferenceRepository.
func NewGORMReferenceRepository(db *gorm.DB) *GORMReferenceRepository {
	return &GORMReferenceRepository{
		db: db,
	}
}

// Roles retrieves all roles ordered by identifier.
func (r *GORMReferenceRepository) Roles() ([]models.IdNameRow, error) {
	rows := make([]models.IdNameRow, 0)
	if err := r.db.Model(&models.Role{}).Select("id, name").Order("id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return rows, nil
}

// Dealerships retrieves all dealerships ordered by identifier.
func (r *GORMReferenceRepository) Dealerships() ([]models.IdNameRow, error) {
	rows := make([]models.IdNameRow, 0)
	if err := r.db.Model(&models.Dealership{}).Select("id, name").Order("id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list dealerships: %w", err)
	}
	return rows, nil
}
