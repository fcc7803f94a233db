package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

var testDBInstance *Service
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users, profiles and job postings
var (
	TestUserStudent1  m.User
	TestUserStudent2  m.User
	TestUserEmployer1 m.User
	TestUserEmployer2 m.User

	TestStudent1  m.StudentProfile
	TestStudent2  m.StudentProfile
	TestEmployer1 m.EmployerProfile
	TestEmployer2 m.EmployerProfile

	// TestSeedPassword is the plain password shared by all seeded users
	TestSeedPassword = "SeedPass123!"

	// TestJob1 and TestJob2 belong to TestEmployer1, TestJob3 to
	// TestEmployer2. TestJob3 is inactive.
	TestJob1 m.JobPosting
	TestJob2 m.JobPosting
	TestJob3 m.JobPosting
)

// GetTestDB starts a PostgreSQL test container, migrates the schema and
// seeds sample data. It returns a teardown function, the DB service and any
// error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *Service, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewService(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two students, two employers and three job postings.
func seedTestData(db *Service) error {
	hashedPwd, err := utilities.HashPassword(TestSeedPassword)
	if err != nil {
		return err
	}

	users := []m.User{
		{Email: "student1@example.com", Password: hashedPwd, Role: m.RoleStudent},
		{Email: "student2@example.com", Password: hashedPwd, Role: m.RoleStudent},
		{Email: "employer1@example.com", Password: hashedPwd, Role: m.RoleEmployer},
		{Email: "employer2@example.com", Password: hashedPwd, Role: m.RoleEmployer},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	TestUserStudent1 = users[0]
	TestUserStudent2 = users[1]
	TestUserEmployer1 = users[2]
	TestUserEmployer2 = users[3]

	TestStudent1 = m.StudentProfile{
		UserID:      TestUserStudent1.ID,
		FirstName:   "Seed",
		LastName:    "StudentOne",
		University:  "Test University",
		Major:       "Computer Engineering",
		YearOfStudy: 3,
	}
	TestStudent2 = m.StudentProfile{
		UserID:      TestUserStudent2.ID,
		FirstName:   "Seed",
		LastName:    "StudentTwo",
		University:  "Test University",
		Major:       "Business",
		YearOfStudy: 2,
	}
	if err := db.Create(&TestStudent1).Error; err != nil {
		return err
	}
	if err := db.Create(&TestStudent2).Error; err != nil {
		return err
	}

	TestEmployer1 = m.EmployerProfile{
		UserID:      TestUserEmployer1.ID,
		CompanyName: "Seed Coffee Co",
		ContactName: "Employer One",
		Phone:       "0100000001",
		City:        "Bangkok",
	}
	TestEmployer2 = m.EmployerProfile{
		UserID:      TestUserEmployer2.ID,
		CompanyName: "Seed Logistics",
		ContactName: "Employer Two",
		Phone:       "0100000002",
		City:        "Chiang Mai",
	}
	if err := db.Create(&TestEmployer1).Error; err != nil {
		return err
	}
	if err := db.Create(&TestEmployer2).Error; err != nil {
		return err
	}

	TestJob1 = m.JobPosting{
		EmployerProfileID: TestEmployer1.ID,
		CompanyName:       TestEmployer1.CompanyName,
		CategoryID:        1,
		Title:             "Barista",
		Description:       "Make coffee on weekday mornings",
		HourlyRate:        15,
		EstimatedHours:    20,
		LocationDetails:   "Main St",
	}
	TestJob2 = m.JobPosting{
		EmployerProfileID: TestEmployer1.ID,
		CompanyName:       TestEmployer1.CompanyName,
		CategoryID:        2,
		Title:             "Cashier",
		Description:       "Weekend shifts at the counter",
		HourlyRate:        12,
		EstimatedHours:    16,
		LocationDetails:   "Main St",
	}
	if err := db.Create(&TestJob1).Error; err != nil {
		return err
	}
	if err := db.Create(&TestJob2).Error; err != nil {
		return err
	}

	TestJob3 = m.JobPosting{
		EmployerProfileID: TestEmployer2.ID,
		CompanyName:       TestEmployer2.CompanyName,
		CategoryID:        3,
		Title:             "Warehouse Helper",
		Description:       "Inventory counting, closed position",
		HourlyRate:        14,
		EstimatedHours:    30,
		LocationDetails:   "Depot Rd",
	}
	if err := db.Create(&TestJob3).Error; err != nil {
		return err
	}
	// gorm skips zero-valued fields on insert, so flip the default off
	// with an explicit update.
	if err := db.Model(&TestJob3).Update("is_active", false).Error; err != nil {
		return err
	}
	TestJob3.IsActive = false

	return nil
}
