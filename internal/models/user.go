package models

// User represents an employee account of a dealership.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	DealershipID int    `json:"dealershipId" gorm:"not null"`
	RoleID       int    `json:"roleId" gorm:"not null"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=1,max=100"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"` // Never serialized
	FullName     string `json:"fullName" gorm:"not null"`
	IsActive     bool   `json:"active" gorm:"column:is_active"`
}

// LoginUser is the minimal projection loaded during authentication.
// It carries the password hash and is never sent over the wire.
type LoginUser struct {
	ID           int
	DealershipID int
	RoleName     string
	Username     string
	FullName     string
	PasswordHash string
}

// SessionInfo is the ephemeral view of a user returned after a successful
// login. It deliberately excludes the password hash.
type SessionInfo struct {
	UserID       int    `json:"userId"`
	DealershipID int    `json:"dealershipId"`
	Role         string `json:"role"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
}

// CreateUserRequest is the payload for creating a new employee account.
// Active is a pointer so that an omitted flag can default to true.
type CreateUserRequest struct {
	DealershipID int    `json:"dealershipId" validate:"required,gt=0"`
	RoleID       int    `json:"roleId" validate:"required,gt=0"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Active       *bool  `json:"active"`
}

// UserRow is a user as exposed by the owner management listing, with the
// dealership and role names resolved. The hash is never part of it.
type UserRow struct {
	ID             int    `json:"id"`
	DealershipID   int    `json:"dealershipId"`
	DealershipName string `json:"dealershipName"`
	RoleID         int    `json:"roleId"`
	RoleName       string `json:"roleName"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Active         bool   `json:"active"`
}
