package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// StatusPending is the initial state of every application
	StatusPending = "Pending"
	// StatusReviewed indicates the employer has looked at the application
	StatusReviewed = "Reviewed"
	// StatusInterview indicates the applicant has been invited to interview
	StatusInterview = "Interview"
	// StatusHired is terminal
	StatusHired = "Hired"
	// StatusRejected is terminal and reachable from any non-terminal state
	StatusRejected = "Rejected"
)

// statusRank orders the forward progression Pending -> Reviewed ->
// Interview -> Hired. Rejected sits outside the progression.
var statusRank = map[string]int{
	StatusPending:   0,
	StatusReviewed:  1,
	StatusInterview: 2,
	StatusHired:     3,
}

// ValidStatus reports whether s is one of the five application statuses.
func ValidStatus(s string) bool {
	if s == StatusRejected {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an application may move from one status to
// another. Moves must be strictly forward (skipping stages is allowed, so
// hiring straight from Pending works), Rejected is reachable from any
// non-terminal state, and Hired/Rejected are terminal.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == StatusHired || from == StatusRejected {
		return false
	}
	if to == StatusRejected {
		return true
	}
	return statusRank[to] > statusRank[from]
}

// Application links a JobPosting to a StudentProfile. The composite unique
// index is what settles two concurrent submissions for the same pair: the
// second writer gets a 23505 from Postgres.
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	JobID uint       `gorm:"not null;index;uniqueIndex:idx_applications_job_student" json:"job_id"`
	Job   JobPosting `gorm:"foreignKey:JobID;references:ID" json:"-"`

	StudentProfileID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_student" json:"student_profile_id"`
	StudentProfile   StudentProfile `gorm:"foreignKey:StudentProfileID;references:ID" json:"-"`

	Status      string    `gorm:"type:text;not null" json:"status"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`
	CreatedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"-"`
}
