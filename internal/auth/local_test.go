package auth

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

var testDB *database.Service

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestRegister_student(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "alice@x.com",
		"password": "pw123456",
		"userType": "student",
		"name":     "Alice Anderson",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Student", resp["role"])
	assert.Equal(t, "Alice Anderson", resp["name"])
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, false, resp["isProfileComplete"])

	// The student profile must exist in the same moment the register
	// response is produced.
	var user model.User
	assert.NoError(t, testDB.Where("email = ?", "alice@x.com").First(&user).Error)
	var profile model.StudentProfile
	assert.NoError(t, testDB.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "Anderson", profile.LastName)
}

func TestRegister_employer(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "acme@x.com",
		"password": "pw123456",
		"userType": "employer",
		"name":     "Acme",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Employer", resp["role"])
	assert.Equal(t, "Acme", resp["name"])

	var user model.User
	assert.NoError(t, testDB.Where("email = ?", "acme@x.com").First(&user).Error)
	var profile model.EmployerProfile
	assert.NoError(t, testDB.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Acme", profile.CompanyName)
}

func TestRegister_duplicateEmail(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    database.TestUserStudent1.Email,
		"password": "pw123456",
		"userType": "student",
		"name":     "Copy Cat",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "already exists")
}

func TestRegister_shortPassword(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "shorty@x.com",
		"password": "pw1",
		"userType": "student",
		"name":     "Shorty",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_blankName(t *testing.T) {
	handler := NewAuthController(testDB)

	// A whitespace-only name survives the required binding but carries no
	// usable name parts; it must be a validation error, not a crash.
	rec, resp, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "blank@x.com",
		"password": "pw123456",
		"userType": "student",
		"name":     "   ",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "Name")

	var count int64
	assert.NoError(t, testDB.Model(&model.User{}).Where("email = ?", "blank@x.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogin_success(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    database.TestUserStudent1.Email,
		"password": database.TestSeedPassword,
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Student", resp["role"])
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, database.TestStudent1.ID.String(), resp["profile_id"])
}

func TestLogin_wrongPassword(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    database.TestUserStudent1.Email,
		"password": "not-the-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLogin_unknownEmail(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    "nobody@x.com",
		"password": "irrelevant1",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Unknown email and wrong password are indistinguishable.
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestRegisterThenLogin_roundTrip(t *testing.T) {
	handler := NewAuthController(testDB)

	rec, _, err := utilities.SimulateAPICall(handler.RegisterHandler, "/register", http.MethodPost, map[string]string{
		"email":    "roundtrip@x.com",
		"password": "pw123456",
		"userType": "employer",
		"name":     "Round Trip Ltd",
	})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	token, err := GetAccessToken(t, testDB, "roundtrip@x.com", "pw123456")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
