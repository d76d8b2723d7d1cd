package models

// Role is read-only reference data.
type Role struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(50);not null"`
}

// Dealership is read-only reference data.
type Dealership struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

// IdNameRow is the lightweight id/name pair returned for reference data
// such as roles and dealerships.
type IdNameRow struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
