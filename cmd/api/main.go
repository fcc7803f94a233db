package main

import (
	"log"

	"jobconnect-backend/internal/server"
)

// @title JobConnect API
// @version 1.0
// @description Two-sided job marketplace: students browse and apply to jobs, employers post jobs and manage applicants.

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %s", err)
	}

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Cannot start server: %s", err)
	}
}
