// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleStudent marks a user that browses and applies to jobs
	RoleStudent = "Student"
	// RoleEmployer marks a user that posts jobs and manages applicants
	RoleEmployer = "Employer"
)

// User is the account record. Each user owns exactly one role-specific
// profile (StudentProfile or EmployerProfile).
type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email             string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password          string    `gorm:"type:text" json:"-"`
	Role              string    `gorm:"type:text;not null" json:"role"`
	IsProfileComplete bool      `gorm:"default:false" json:"isProfileComplete"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"-"`
}

// Profile is the role-specific extension record attached 1:1 to a User.
// It is resolved once at request-authentication time and carried through
// the gin context, so handlers never re-branch on the role string.
type Profile interface {
	// ProfileID is the id ownership checks compare against.
	ProfileID() uuid.UUID
	// OwnerID is the id of the owning user.
	OwnerID() uuid.UUID
	// DisplayName is the denormalized name returned by the auth endpoints.
	DisplayName() string
}
