// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jobconnect-backend/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the authenticated user from Gin context.
// It does not abort the request; it returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("user information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("failed to assert user type")
	}
	return user, nil
}

// ExtractProfile extracts the role-specific profile that RequireAuth
// resolved for the authenticated user.
func ExtractProfile(c *gin.Context) (model.Profile, error) {
	p, _ := c.Get("profile")
	if p == nil {
		return nil, errors.New("profile information not provided")
	}

	profile, ok := p.(model.Profile)
	if !ok {
		return nil, errors.New("failed to assert profile type")
	}
	return profile, nil
}

// ExtractStudent extracts the profile as a StudentProfile.
func ExtractStudent(c *gin.Context) (*model.StudentProfile, error) {
	profile, err := ExtractProfile(c)
	if err != nil {
		return nil, err
	}
	student, ok := profile.(*model.StudentProfile)
	if !ok {
		return nil, errors.New("caller is not a student")
	}
	return student, nil
}

// ExtractEmployer extracts the profile as an EmployerProfile.
func ExtractEmployer(c *gin.Context) (*model.EmployerProfile, error) {
	profile, err := ExtractProfile(c)
	if err != nil {
		return nil, err
	}
	employer, ok := profile.(*model.EmployerProfile)
	if !ok {
		return nil, errors.New("caller is not an employer")
	}
	return employer, nil
}
