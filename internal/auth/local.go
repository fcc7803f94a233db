package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// AuthController holds DB reference for the account handlers.
type AuthController struct {
	DB *database.Service
}

// NewAuthController creates a new instance of AuthController with the provided database connection.
func NewAuthController(db *database.Service) *AuthController {
	return &AuthController{
		DB: db,
	}
}

type registerInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required,oneof=student employer"`
	Name     string `json:"name" binding:"required"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the account summary returned by register and login.
type AuthResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	IsProfileComplete bool      `json:"isProfileComplete"`
	Name              string    `json:"name"`
	ProfileID         uuid.UUID `json:"profile_id"`
	Token             string    `json:"token"`
}

// RegisterHandler creates a User together with its role-specific profile and
// returns a fresh access token.
// @Summary Register a new account
// @Description Creates the user and its student or employer profile in one transaction
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "userType can be only 'student' or 'employer'"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Duplicate email or invalid fields"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email, password, name, and userType (only 'student' or 'employer') must be provided",
		})
		return
	}

	// binding:"required" passes a whitespace-only name through.
	if strings.TrimSpace(info.Name) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Name must not be blank",
		})
		return
	}

	var existing model.User
	err := ac.DB.Where("email = ?", info.Email).First(&existing).Error

	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "User with this email already exists",
		})
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	role := model.RoleStudent
	if info.UserType == "employer" {
		role = model.RoleEmployer
	}

	user := model.User{
		Email:    info.Email,
		Password: hashedPassword,
		Role:     role,
	}

	var profile model.Profile

	// The profile is created in the same transaction as the user, so an
	// authenticated user without a profile can never exist.
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		created, err := createProfile(tx, user, info.Name)
		if err != nil {
			return err
		}
		profile = created
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost a race with a concurrent register for the same email.
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "User with this email already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	accessToken, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		ID:                user.ID,
		Email:             user.Email,
		Role:              user.Role,
		IsProfileComplete: user.IsProfileComplete,
		Name:              profile.DisplayName(),
		ProfileID:         profile.ProfileID(),
		Token:             accessToken,
	})
}

// createProfile builds the role-specific profile from the registration name.
func createProfile(tx *gorm.DB, user model.User, name string) (model.Profile, error) {
	switch user.Role {
	case model.RoleStudent:
		parts := strings.Fields(name)
		firstName := parts[0]
		lastName := strings.Join(parts[1:], " ")
		if lastName == "" {
			// last_name is required, reuse the first name
			lastName = firstName
		}
		profile := model.StudentProfile{
			UserID:      user.ID,
			FirstName:   firstName,
			LastName:    lastName,
			YearOfStudy: 1,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	case model.RoleEmployer:
		profile := model.EmployerProfile{
			UserID:      user.ID,
			CompanyName: name,
			ContactName: name,
			City:        "Not specified",
		}
		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	default:
		return nil, fmt.Errorf("role '%s' not allowed", user.Role)
	}
}

// LoginHandler authenticates by email and password.
// @Summary Log in with email and password
// @Description Email must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Missing fields"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email or password is not provided",
		})
		return
	}

	var user model.User
	err := ac.DB.Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Invalid credentials",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Invalid credentials",
		})
		return
	}

	profile, err := database.ProfileFor(ac.DB.DB, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve user profile: %s", err.Error()),
		})
		return
	}

	accessToken, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:                user.ID,
		Email:             user.Email,
		Role:              user.Role,
		IsProfileComplete: user.IsProfileComplete,
		Name:              profile.DisplayName(),
		ProfileID:         profile.ProfileID(),
		Token:             accessToken,
	})
}
