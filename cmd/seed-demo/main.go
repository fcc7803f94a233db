// Command seed-demo fills the configured database with a demo employer, a
// demo student and a couple of job postings, printing the generated
// credentials. Meant for local development against an empty database.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"gorm.io/gorm"

	"jobconnect-backend/internal/database"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

func createUserWithProfile(db *gorm.DB, email, password, role string, build func(tx *gorm.DB, user model.User) error) model.User {
	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	user := model.User{
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return build(tx, user)
	})
	if err != nil {
		log.Fatalf("failed to create %s: %s", email, err)
	}
	return user
}

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		log.Fatal("failed to inspect database: ", err)
	}
	if count > 0 {
		log.Fatal("database is not empty, refusing to seed demo data")
	}

	password := generateRandomString(8)

	var employerProfile model.EmployerProfile
	createUserWithProfile(db.DB, "demo-employer@example.com", password, model.RoleEmployer,
		func(tx *gorm.DB, user model.User) error {
			employerProfile = model.EmployerProfile{
				UserID:      user.ID,
				CompanyName: "Demo Coffee Co",
				ContactName: "Demo Employer",
				Phone:       "0100000000",
				City:        "Bangkok",
			}
			return tx.Create(&employerProfile).Error
		})

	createUserWithProfile(db.DB, "demo-student@example.com", password, model.RoleStudent,
		func(tx *gorm.DB, user model.User) error {
			profile := model.StudentProfile{
				UserID:      user.ID,
				FirstName:   "Demo",
				LastName:    "Student",
				University:  "Demo University",
				Major:       "Computer Engineering",
				YearOfStudy: 2,
			}
			return tx.Create(&profile).Error
		})

	jobs := []model.JobPosting{
		{
			EmployerProfileID: employerProfile.ID,
			CompanyName:       employerProfile.CompanyName,
			CategoryID:        1,
			Title:             "Barista",
			Description:       "Weekday morning shifts behind the espresso machine",
			HourlyRate:        15,
			EstimatedHours:    20,
			LocationDetails:   "Main St",
		},
		{
			EmployerProfileID: employerProfile.ID,
			CompanyName:       employerProfile.CompanyName,
			CategoryID:        2,
			Title:             "Delivery Rider",
			Description:       "Lunchtime deliveries around the campus area",
			HourlyRate:        18,
			EstimatedHours:    12,
			LocationDetails:   "Campus area",
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		log.Fatal("failed to create demo job postings: ", err)
	}

	fmt.Println("Demo data seeded successfully!")
	fmt.Println("======================================")
	fmt.Println("Employer: demo-employer@example.com")
	fmt.Println("Student:  demo-student@example.com")
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}
