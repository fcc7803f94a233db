package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployerProfile holds the employer side of a user account
type EmployerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CompanyName string    `gorm:"type:text;not null" json:"company_name"`
	ContactName string    `gorm:"type:text;not null" json:"contact_name"`
	Phone       string    `gorm:"type:text" json:"phone"`
	City        string    `gorm:"type:text" json:"city"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// ProfileID implements Profile
func (e *EmployerProfile) ProfileID() uuid.UUID { return e.ID }

// OwnerID implements Profile
func (e *EmployerProfile) OwnerID() uuid.UUID { return e.UserID }

// DisplayName implements Profile
func (e *EmployerProfile) DisplayName() string {
	if e.ContactName != "" {
		return e.ContactName
	}
	return e.CompanyName
}
