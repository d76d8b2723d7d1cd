package repositories

import "github.com/AlvaroDC2000/dealership-api/internal/models"

// ReferenceRepository provides read-only access to the role and dealership
// lookup tables.
type ReferenceRepository interface {
	Roles() ([]models.IdNameRow, error)
	Dealerships() ([]models.IdNameRow, error)
}
