package models

import "gorm.io/gorm"

// Roles assignable to a user account.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the primary user model.
type User struct {
	gorm.Model
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string    `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Role     string    `gorm:"size:50;default:USER" json:"role"`
	Products []Product `gorm:"foreignKey:UserID" json:"products,omitempty"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
