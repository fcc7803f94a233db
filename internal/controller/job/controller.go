// Package job provides HTTP handlers for job posting operations.
package job

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// JobController handles job posting related endpoints
type JobController struct {
	DB *database.Service
}

// NewJobController creates a new instance of JobController
func NewJobController(db *database.Service) *JobController {
	return &JobController{
		DB: db,
	}
}

// employerJobView is a job posting annotated with its live application count
type employerJobView struct {
	model.JobPosting
	ApplicationCount int64 `json:"applicationCount"`
}

// CreateJobHandler handles the creation of a new job posting by an employer.
// The company name is denormalized from the caller's profile at creation
// time and not re-synced on later profile edits.
// @Summary Create job posting
// @Description Only employers have access to this endpoint
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobPostingInfo true "Input job posting information"
// @Success 201 {object} model.JobPosting "Successfully create job posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job posting struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {

	employer, err := utilities.ExtractEmployer(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info model.EditableJobPostingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	jobPost := model.JobPosting{
		EmployerProfileID: employer.ID,
		CompanyName:       employer.CompanyName,
		CategoryID:        info.CategoryID,
		Title:             info.Title,
		Description:       info.Description,
		HourlyRate:        info.HourlyRate,
		EstimatedHours:    info.EstimatedHours,
		LocationDetails:   info.LocationDetails,
	}

	if err := jc.DB.Create(&jobPost).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job posting: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, jobPost)
}

// ListActiveJobs fetches all active job postings, newest first.
// @Summary List active job postings
// @Description Public endpoint, no authentication required
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.JobPosting
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) ListActiveJobs(c *gin.Context) {

	jobs := []model.JobPosting{}
	if err := jc.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch job postings: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ListEmployerJobs fetches the caller's job postings, newest first, each
// annotated with its application count.
// @Summary List the caller's job postings with application counts
// @Description Only employers have access to this endpoint
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} employerJobView
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/employer [get]
func (jc *JobController) ListEmployerJobs(c *gin.Context) {

	employer, err := utilities.ExtractEmployer(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobs := []model.JobPosting{}
	if err := jc.DB.
		Where("employer_profile_id = ?", employer.ID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch job postings: ", err.Error()),
		})
		return
	}

	views := make([]employerJobView, 0, len(jobs))
	for _, j := range jobs {
		var count int64
		if err := jc.DB.Model(&model.Application{}).
			Where("job_id = ?", j.ID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprint("Failed to count applications: ", err.Error()),
			})
			return
		}
		views = append(views, employerJobView{JobPosting: j, ApplicationCount: count})
	}

	c.JSON(http.StatusOK, views)
}
