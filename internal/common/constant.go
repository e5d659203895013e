// Package common contains shared constants and sentinel errors used across
// the admin panel components.
package common

// AuthorizationHeaderName carries the bearer access token on API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// Role names stored in user_roles. A user without any role row is a RoleUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AvatarsBucket is the object-storage bucket holding profile pictures.
const AvatarsBucket = "avatars"
