package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobconnect-backend/internal/utilities"
)

type meResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	IsProfileComplete bool      `json:"isProfileComplete"`
	Name              string    `json:"name"`
	ProfileID         uuid.UUID `json:"profile_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// MeHandler returns the current user summary resolved from the bearer token.
// @Summary Get current user
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} meResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Router /auth/me [get]
func (ac *AuthController) MeHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := utilities.ExtractProfile(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, meResponse{
		ID:                user.ID,
		Email:             user.Email,
		Role:              user.Role,
		IsProfileComplete: user.IsProfileComplete,
		Name:              profile.DisplayName(),
		ProfileID:         profile.ProfileID(),
		CreatedAt:         user.CreatedAt,
	})
}
