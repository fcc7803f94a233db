// Package profile provides HTTP handlers for completing and reading the
// caller's role-specific profile.
package profile

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// ProfileController handles profile completion related endpoints
type ProfileController struct {
	DB *database.Service
}

// NewProfileController creates a new instance of ProfileController with the provided database connection.
func NewProfileController(db *database.Service) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

type studentProfileInfo struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	University  string `json:"university" binding:"required"`
	Major       string `json:"major" binding:"required"`
	YearOfStudy int    `json:"year_of_study" binding:"required,gte=1,lte=5"`
}

type employerProfileInfo struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name" binding:"required"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
}

type completionResponse struct {
	Profile           interface{} `json:"profile"`
	IsProfileComplete bool        `json:"isProfileComplete"`
	Message           string      `json:"message"`
}

// UpdateStudentProfile fills in the caller's student profile with real data.
// Registration only stores a name and placeholders; completing the profile
// here is what flips isProfileComplete on the account.
// @Summary Complete student profile
// @Description Only students can access this endpoint
// @Tags Profiles
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param profile body studentProfileInfo true "Student profile information"
// @Success 200 {object} completionResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid profile fields"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as student"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/student [post]
func (pc *ProfileController) UpdateStudentProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := utilities.ExtractStudent(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info studentProfileInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	student.FirstName = info.FirstName
	student.LastName = info.LastName
	student.University = info.University
	student.Major = info.Major
	student.YearOfStudy = info.YearOfStudy

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(student).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("is_profile_complete", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update student profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, completionResponse{
		Profile:           student,
		IsProfileComplete: true,
		Message:           "Student profile completed.",
	})
}

// UpdateEmployerProfile fills in the caller's employer profile with real data
// and marks the account complete.
// @Summary Complete employer profile
// @Description Only employers can access this endpoint
// @Tags Profiles
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param profile body employerProfileInfo true "Employer profile information"
// @Success 200 {object} completionResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid profile fields"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profiles/employer [post]
func (pc *ProfileController) UpdateEmployerProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	employer, err := utilities.ExtractEmployer(c)
	if err != nil {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info employerProfileInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	employer.CompanyName = info.CompanyName
	employer.ContactName = info.ContactName
	employer.Phone = info.Phone
	employer.City = info.City

	// Already-posted jobs keep the company name they were created with;
	// student-facing application listings re-derive it from this profile.
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(employer).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("is_profile_complete", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update employer profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, completionResponse{
		Profile:           employer,
		IsProfileComplete: true,
		Message:           "Employer profile completed.",
	})
}

// MyProfile returns the caller's role-specific profile.
// @Summary Get the caller's profile
// @Tags Profiles
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.StudentProfile "Student or employer profile depending on the caller's role"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /profiles/me [get]
func (pc *ProfileController) MyProfile(c *gin.Context) {
	profile, err := utilities.ExtractProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
