package model

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is gorm model for store job posting data in DB.
// CompanyName is denormalized from the owning EmployerProfile at creation
// time so public listings don't need a join.
type JobPosting struct {
	ID                uint            `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EmployerProfileID uuid.UUID       `gorm:"type:uuid;not null;index;<-:create" json:"employer_profile_id"`
	EmployerProfile   EmployerProfile `gorm:"foreignKey:EmployerProfileID;references:ID" json:"-"`

	CompanyName     string    `gorm:"type:text;not null" json:"company_name"`
	CategoryID      int       `gorm:"not null" json:"category_id"`
	Title           string    `gorm:"type:text;not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	HourlyRate      float64   `gorm:"not null" json:"hourly_rate"`
	EstimatedHours  int       `json:"estimated_hours"`
	LocationDetails string    `gorm:"type:text;not null" json:"location_details"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"-"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

// EditableJobPostingInfo is the subset of JobPosting fields a client may set
// when creating a posting. Ownership and denormalized fields are filled in
// by the handler.
type EditableJobPostingInfo struct {
	CategoryID      int     `json:"category_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	HourlyRate      float64 `json:"hourly_rate" binding:"required,gt=0"`
	EstimatedHours  int     `json:"estimated_hours"`
	LocationDetails string  `json:"location_details" binding:"required"`
}
