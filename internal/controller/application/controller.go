// Package application provides HTTP handlers for the job application
// lifecycle: submit, list, and status progression.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.Service
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.Service) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

type applyInfo struct {
	JobID       uint   `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type statusInfo struct {
	Status string `json:"status" binding:"required"`
}

// jobSummary is the slice of a job posting a student sees next to their application
type jobSummary struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	LocationDetails string `json:"location_details"`
}

type studentApplicationView struct {
	ID          uint       `json:"id"`
	JobID       uint       `json:"job_id"`
	Status      string     `json:"status"`
	CoverLetter string     `json:"cover_letter"`
	AppliedAt   time.Time  `json:"applied_at"`
	Job         jobSummary `json:"job"`
}

// applicantSummary is the slice of a student profile an employer sees next
// to an application for their job
type applicantSummary struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	University  string `json:"university"`
	Major       string `json:"major"`
	YearOfStudy int    `json:"year_of_study"`
}

type employerApplicationView struct {
	ID          uint             `json:"id"`
	JobID       uint             `json:"job_id"`
	Status      string           `json:"status"`
	CoverLetter string           `json:"cover_letter"`
	AppliedAt   time.Time        `json:"applied_at"`
	Applicant   applicantSummary `json:"applicant"`
}

// ApplyHandler handles the submission of a new job application by a student.
// A student may apply to a job at most once; the pre-check catches repeats
// on the common path and the composite unique index settles a concurrent
// race, both surfacing the same "already applied" error.
// @Summary Submit job application
// @Description Only students can access this endpoint
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body applyInfo true "Application information"
// @Success 201 {object} model.Application "Successfully applied to job posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or already applied"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/apply [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	student, err := utilities.ExtractStudent(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var job model.JobPosting
	if err := ac.DB.Where("id = ?", info.JobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	existing := model.Application{}
	if err := ac.DB.
		Where("student_profile_id = ? AND job_id = ?", student.ID, job.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "You have already applied to this job.",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing application",
		})
		return
	}

	application := model.Application{
		JobID:            job.ID,
		StudentProfileID: student.ID,
		Status:           model.StatusPending,
		CoverLetter:      info.CoverLetter,
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the race against a concurrent identical submission.
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "You have already applied to this job.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// MyApplications lists the caller's applications joined with a job summary.
// The company name is re-derived from the owning employer profile at read
// time so a renamed company shows up-to-date here.
// @Summary List the caller's applications
// @Description Only students can access this endpoint
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} studentApplicationView
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/applications/me [get]
func (ac *ApplicationController) MyApplications(c *gin.Context) {
	student, err := utilities.ExtractStudent(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("Job").
		Preload("Job.EmployerProfile").
		Where("student_profile_id = ?", student.ID).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	views := make([]studentApplicationView, 0, len(applications))
	for _, a := range applications {
		companyName := a.Job.CompanyName
		if a.Job.EmployerProfile.CompanyName != "" {
			companyName = a.Job.EmployerProfile.CompanyName
		}
		views = append(views, studentApplicationView{
			ID:          a.ID,
			JobID:       a.JobID,
			Status:      a.Status,
			CoverLetter: a.CoverLetter,
			AppliedAt:   a.CreatedAt,
			Job: jobSummary{
				ID:              a.Job.ID,
				Title:           a.Job.Title,
				CompanyName:     companyName,
				LocationDetails: a.Job.LocationDetails,
			},
		})
	}

	c.JSON(http.StatusOK, views)
}

// JobApplications lists the applications for one of the caller's job
// postings, joined with an applicant summary.
// @Summary List applications for a job posting
// @Description Only the employer owning the job posting has access
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job posting"
// @Success 200 {array} employerApplicationView
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own this job posting"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/applications/{id} [get]
func (ac *ApplicationController) JobApplications(c *gin.Context) {
	employer, err := utilities.ExtractEmployer(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID := c.Param("id")

	var job model.JobPosting
	if err := ac.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	if job.EmployerProfileID != employer.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Forbidden: You do not own this job posting.",
		})
		return
	}

	applications := []model.Application{}
	if err := ac.DB.
		Preload("StudentProfile").
		Where("job_id = ?", job.ID).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	views := make([]employerApplicationView, 0, len(applications))
	for _, a := range applications {
		views = append(views, employerApplicationView{
			ID:          a.ID,
			JobID:       a.JobID,
			Status:      a.Status,
			CoverLetter: a.CoverLetter,
			AppliedAt:   a.CreatedAt,
			Applicant: applicantSummary{
				FirstName:   a.StudentProfile.FirstName,
				LastName:    a.StudentProfile.LastName,
				University:  a.StudentProfile.University,
				Major:       a.StudentProfile.Major,
				YearOfStudy: a.StudentProfile.YearOfStudy,
			},
		})
	}

	c.JSON(http.StatusOK, views)
}

// UpdateStatus moves an application through its lifecycle. The transition
// table in model guards the progression; the old accept-anything behavior
// was a bug.
// @Summary Update application status
// @Description Only the employer owning the job posting has access
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the application"
// @Param status body statusInfo true "One of Pending, Reviewed, Interview, Hired, Rejected"
// @Success 200 {object} model.Application "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Unknown status or forbidden transition"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own the job posting"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/applications/{id}/status [put]
func (ac *ApplicationController) UpdateStatus(c *gin.Context) {
	employer, err := utilities.ExtractEmployer(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info statusInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Status must be provided",
		})
		return
	}

	id := c.Param("id")

	var application model.Application
	if err := ac.DB.Preload("Job").Where("id = ?", id).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	if application.Job.EmployerProfileID != employer.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Forbidden: You do not have permission to update this application.",
		})
		return
	}

	if !model.ValidStatus(info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown status '%s'", info.Status),
		})
		return
	}

	if !model.CanTransition(application.Status, info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Cannot change status from '%s' to '%s'", application.Status, info.Status),
		})
		return
	}

	application.Status = info.Status
	if err := ac.DB.Model(&application).Update("status", info.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}
