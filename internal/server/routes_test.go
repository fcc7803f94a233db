package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/testutil"
)

var testDB *database.Service
var router *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// The scenario below fires many requests in quick succession.
	os.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "1000")
	// cors.New rejects the empty origin an unset ALLOW_ORIGIN would yield.
	os.Setenv("ALLOW_ORIGIN", "http://localhost:3000")

	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}

	s := &Server{port: 8080, DB: testDB}
	router = s.RegisterRoutes().(*gin.Engine)

	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestRootAndHealth(t *testing.T) {
	rec, resp := testutil.MakeJSONRequest(nil, "", router, "/", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "JobConnect API is running", resp["message"])

	rec, resp = testutil.MakeJSONRequest(nil, "", router, "/api/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
}

func TestUnknownEndpoint(t *testing.T) {
	rec, resp := testutil.MakeJSONRequest(nil, "", router, "/api/nope", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Endpoint not found.", resp["error"])
}

// TestHiringScenario walks the whole marketplace flow end to end: an
// employer and a student register, the employer posts a job, the student
// finds and applies to it, and the employer hires the student.
func TestHiringScenario(t *testing.T) {
	// Register the employer.
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    "acme-e2e@example.com",
		"password": "pw123456",
		"userType": "employer",
		"name":     "Acme",
	}, "", router, "/api/auth/register", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	employerToken, _ := resp["token"].(string)
	assert.NotEmpty(t, employerToken)

	// Register the student.
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"email":    "alice-e2e@example.com",
		"password": "pw123456",
		"userType": "student",
		"name":     "Alice Anderson",
	}, "", router, "/api/auth/register", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	studentToken, _ := resp["token"].(string)
	assert.NotEmpty(t, studentToken)
	assert.Equal(t, false, resp["isProfileComplete"])

	// The student fills in their profile, completing the account.
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"first_name":    "Alice",
		"last_name":     "Anderson",
		"university":    "Kasetsart University",
		"major":         "Computer Engineering",
		"year_of_study": 3,
	}, studentToken, router, "/api/profiles/student", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["isProfileComplete"])

	// The employer posts a job.
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"category_id":      1,
		"title":            "Barista E2E",
		"description":      "Make coffee",
		"hourly_rate":      15,
		"location_details": "Main St",
	}, employerToken, router, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Acme", resp["company_name"])
	jobID := resp["id"].(float64)

	// The job shows up in the public listing.
	rec, jobs := testutil.MakeJSONListRequest(nil, "", router, "/api/jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	found := false
	for _, j := range jobs {
		if j["id"] == jobID {
			found = true
			assert.Equal(t, "Barista E2E", j["title"])
		}
	}
	assert.True(t, found)

	// The student applies.
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"job_id":       uint(jobID),
		"cover_letter": "I love coffee",
	}, studentToken, router, "/api/profiles/apply", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	appID := resp["id"].(float64)

	// The student sees the application as Pending.
	rec, apps := testutil.MakeJSONListRequest(nil, studentToken, router, "/api/profiles/applications/me", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, apps, 1)
	assert.Equal(t, "Pending", apps[0]["status"])

	// The employer sees the applicant.
	rec, apps = testutil.MakeJSONListRequest(nil, employerToken, router,
		fmt.Sprintf("/api/profiles/applications/%.0f", jobID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, apps, 1)
	applicant := apps[0]["applicant"].(map[string]interface{})
	assert.Equal(t, "Alice", applicant["first_name"])
	assert.Equal(t, "Kasetsart University", applicant["university"])

	// The employer hires.
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "Hired"}, employerToken, router,
		fmt.Sprintf("/api/profiles/applications/%.0f/status", appID), http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hired", resp["status"])

	// The student sees the outcome.
	rec, apps = testutil.MakeJSONListRequest(nil, studentToken, router, "/api/profiles/applications/me", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hired", apps[0]["status"])
}
