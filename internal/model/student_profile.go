package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile holds the student side of a user account
type StudentProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	FirstName   string    `gorm:"type:text;not null" json:"first_name"`
	LastName    string    `gorm:"type:text;not null" json:"last_name"`
	University  string    `gorm:"type:text" json:"university"`
	Major       string    `gorm:"type:text" json:"major"`
	YearOfStudy int       `gorm:"check:year_of_study BETWEEN 1 AND 5" json:"year_of_study"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// ProfileID implements Profile
func (s *StudentProfile) ProfileID() uuid.UUID { return s.ID }

// OwnerID implements Profile
func (s *StudentProfile) OwnerID() uuid.UUID { return s.UserID }

// DisplayName implements Profile. The last name is only shown when it
// carries information the first name doesn't (registration duplicates the
// first name into last_name when no last name was given).
func (s *StudentProfile) DisplayName() string {
	if s.LastName != "" && s.LastName != s.FirstName {
		return s.FirstName + " " + s.LastName
	}
	return s.FirstName
}
