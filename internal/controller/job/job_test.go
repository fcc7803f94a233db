package job

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
	jc := NewJobController(testDB)
	r := gin.Default()
	r.GET("/jobs", jc.ListActiveJobs)
	r.POST("/jobs", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), jc.CreateJobHandler)
	r.GET("/profiles/employer", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), jc.ListEmployerJobs)
	return r
}

func TestCreateJob_denormalizesCompanyName(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"category_id":      1,
		"title":            "Dishwasher",
		"description":      "Evening shifts",
		"hourly_rate":      13.5,
		"estimated_hours":  10,
		"location_details": "Back of house",
	}, token, newRouter(), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Dishwasher", resp["title"])
	assert.Equal(t, database.TestEmployer1.CompanyName, resp["company_name"])
	assert.Equal(t, database.TestEmployer1.ID.String(), resp["employer_profile_id"])
	assert.Equal(t, true, resp["is_active"])
}

func TestCreateJob_missingFields(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"title": "No description",
	}, token, newRouter(), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateJob_studentForbidden(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUserStudent1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"category_id":      1,
		"title":            "Sneaky",
		"description":      "Students cannot post jobs",
		"hourly_rate":      99,
		"location_details": "Nowhere",
	}, token, newRouter(), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListActiveJobs_excludesInactive(t *testing.T) {
	rec, resp := testutil.MakeJSONListRequest(nil, "", newRouter(), "/jobs", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp)
	for _, j := range resp {
		assert.Equal(t, true, j["is_active"])
		assert.NotEqual(t, float64(database.TestJob3.ID), j["id"])
	}
}

func TestListEmployerJobs_onlyOwnJobsWithCounts(t *testing.T) {
	// Give TestJob2 a known application so its count is non-zero.
	app := model.Application{
		JobID:            database.TestJob2.ID,
		StudentProfileID: database.TestStudent2.ID,
		Status:           model.StatusPending,
		CoverLetter:      "Counting test",
	}
	assert.NoError(t, testDB.Create(&app).Error)

	token, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, resp := testutil.MakeJSONListRequest(nil, token, newRouter(), "/profiles/employer", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp)

	foundJob2 := false
	for _, j := range resp {
		assert.Equal(t, database.TestEmployer1.ID.String(), j["employer_profile_id"])
		if j["id"] == float64(database.TestJob2.ID) {
			foundJob2 = true
			assert.GreaterOrEqual(t, j["applicationCount"], float64(1))
		}
	}
	assert.True(t, foundJob2)
}
