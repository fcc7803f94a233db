package profile

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/middleware"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/testutil"
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

func newRouter() *gin.Engine {
	pc := NewProfileController(testDB)
	r := gin.Default()
	r.Use(middleware.RequireAuth(testDB))
	r.GET("/profiles/me", pc.MyProfile)
	r.POST("/profiles/student", middleware.CheckRole(model.RoleStudent), pc.UpdateStudentProfile)
	r.POST("/profiles/employer", middleware.CheckRole(model.RoleEmployer), pc.UpdateEmployerProfile)
	return r
}

func TestCompleteStudentProfile(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserStudent2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"first_name":    "Somsri",
		"last_name":     "Jaidee",
		"university":    "Kasetsart University",
		"major":         "Software Engineering",
		"year_of_study": 4,
	}, token, newRouter(), "/profiles/student", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["isProfileComplete"])

	profileView, ok := resp["profile"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Somsri", profileView["first_name"])
	assert.Equal(t, float64(4), profileView["year_of_study"])

	var user model.User
	assert.NoError(t, testDB.Where("id = ?", database.TestUserStudent2.ID).First(&user).Error)
	assert.True(t, user.IsProfileComplete)

	var stored model.StudentProfile
	assert.NoError(t, testDB.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, "Kasetsart University", stored.University)
}

func TestCompleteStudentProfile_invalidYear(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"first_name":    "Somsri",
		"last_name":     "Jaidee",
		"university":    "Kasetsart University",
		"major":         "Software Engineering",
		"year_of_study": 7,
	}, token, newRouter(), "/profiles/student", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompleteStudentProfile_employerForbidden(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"first_name":    "Not",
		"last_name":     "AStudent",
		"university":    "Nowhere",
		"major":         "Nothing",
		"year_of_study": 1,
	}, token, newRouter(), "/profiles/student", http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCompleteEmployerProfile(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"company_name": "Fresh Logistics Co",
		"contact_name": "Somchai",
		"phone":        "0812345678",
		"city":         "Khon Kaen",
	}, token, newRouter(), "/profiles/employer", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["isProfileComplete"])

	var user model.User
	assert.NoError(t, testDB.Where("id = ?", database.TestUserEmployer2.ID).First(&user).Error)
	assert.True(t, user.IsProfileComplete)

	var stored model.EmployerProfile
	assert.NoError(t, testDB.Where("user_id = ?", user.ID).First(&stored).Error)
	assert.Equal(t, "Fresh Logistics Co", stored.CompanyName)
	assert.Equal(t, "Khon Kaen", stored.City)
}

func TestCompleteEmployerProfile_missingCompanyName(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"contact_name": "Nameless",
	}, token, newRouter(), "/profiles/employer", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMyProfile(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, newRouter(), "/profiles/me", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestStudent1.FirstName, resp["first_name"])
	assert.Equal(t, database.TestStudent1.ID.String(), resp["id"])
}
