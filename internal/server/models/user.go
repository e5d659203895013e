// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a login account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the public part of an account, keyed by the user's id.
type Profile struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name"`
	Email     *string   `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithRole joins a profile with the role resolved from user_roles.
type UserWithRole struct {
	Profile
	Role string `json:"role"`
}
