// GORM models + simple DTOs used in handlers.

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the privilege level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// user represents a user record in the database
// Gorm tags configure primary key , sizes and constrains
// json tags control how fields serialized in api respone
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      *string   `gorm:"size:120" json:"name"` // nullable, shown as "No Name" in the admin table
	Email     string    `gorm:"size:180;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // hashed
	Role      Role      `gorm:"size:16;not null;default:USER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Projects  []Project `gorm:"constraint:OnDelete:CASCADE" json:"projects,omitempty"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// DisplayName returns the name or "No Name" when unset.
func (u User) DisplayName() string {
	if u.Name == nil || *u.Name == "" {
		return "No Name"
	}
	return *u.Name
}

// Session is the authenticated caller, built from the bearer token by the auth middleware
// and passed explicitly to every service call that needs it.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the caller holds the administrative role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// DTOs (request/response)

// RegisterRequest is the expected payload for the register endpoint.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// expectedd payload for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse holds the signed token and the public user fields.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest allows partial updates by making fields pointers (nil means "no change").
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
