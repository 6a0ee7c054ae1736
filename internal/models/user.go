// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role is the closed set of user roles. Authorization decisions compare against
// these constants, never against ad-hoc strings.
type Role string

const (
	// RoleMember is the default role for registered users.
	RoleMember Role = "member"
	// RoleAdmin grants space/channel management rights.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// User represents a registered member of the platform.
// Users are created at registration and never deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName  string    `gorm:"not null" json:"display_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:member" json:"role,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// AuthorColumns is the set of user columns inlined as the author of a thread,
// reply, or message. Credentials and contact details are never part of it.
var AuthorColumns = []string{"id", "username", "display_name", "avatar_url"}
