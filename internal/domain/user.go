package domain

import "time"

type UserRole string

const (
	RoleTraveler UserRole = "traveler"
	RoleHost     UserRole = "host"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email" validate:"required,email"`
	Name       string    `json:"name"`
	Role       UserRole  `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsVerified bool      `json:"is_verified"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
