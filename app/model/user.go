package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleCurator Role = "curator"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleCurator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UUID         string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Firstname    string    `gorm:"size:255;not null" json:"firstname"`
	Lastname     string    `gorm:"size:255;not null" json:"lastname"`
	Surname      string    `gorm:"size:255;not null" json:"surname"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;default:'student'" json:"role"`
	College      string    `gorm:"size:255" json:"college,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Actor is the authenticated identity performing an operation. It is
// built from JWT claims by the auth middleware and never persisted.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a Actor) IsCurator() bool { return a.Role == RoleCurator }

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Firstname string `json:"firstname" validate:"required,min=2"`
	Lastname  string `json:"lastname" validate:"required,min=2"`
	Surname   string `json:"surname" validate:"required,min=2"`
	College   string `json:"college" validate:"required,min=2"`
	Role      Role   `json:"role" validate:"omitempty,oneof=student curator admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Firstname string `json:"firstname" validate:"required,min=2"`
	Lastname  string `json:"lastname" validate:"required,min=2"`
	Surname   string `json:"surname" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	College   string `json:"college" validate:"required,min=2"`
	Role      Role   `json:"role" validate:"omitempty,oneof=student curator admin"`
}

// UpdateUserRequest uses pointer fields so only the supplied fields are
// written. Role changes go through here deliberately not at all: role
// is assigned at creation and by admins via CreateUserRequest.
type UpdateUserRequest struct {
	Firstname *string `json:"firstname,omitempty" validate:"omitempty,min=2"`
	Lastname  *string `json:"lastname,omitempty" validate:"omitempty,min=2"`
	Surname   *string `json:"surname,omitempty" validate:"omitempty,min=2"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
	College   *string `json:"college,omitempty" validate:"omitempty,min=2"`
}

type JWTClaims struct {
	UserID int64  `json:"user_id"`
	UUID   string `json:"uuid"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type UserStats struct {
	TotalUsers int64 `json:"totalUsers"`
	Students   int64 `json:"students"`
	Curators   int64 `json:"curators"`
	Admins     int64 `json:"admins"`
}
