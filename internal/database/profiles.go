package database

import (
	"fmt"

	"gorm.io/gorm"

	"jobconnect-backend/internal/model"
)

// ProfileFor resolves the role-specific profile owned by user. Registration
// creates the profile in the same transaction as the user, so
// gorm.ErrRecordNotFound here means the data is corrupted, not that the
// caller should create one on the fly.
func ProfileFor(db *gorm.DB, user model.User) (model.Profile, error) {
	switch user.Role {
	case model.RoleStudent:
		var profile model.StudentProfile
		if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	case model.RoleEmployer:
		var profile model.EmployerProfile
		if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	default:
		return nil, fmt.Errorf("unknown role %q for user %s", user.Role, user.ID)
	}
}
