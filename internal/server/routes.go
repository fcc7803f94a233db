package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "jobconnect-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/controller/application"
	"jobconnect-backend/internal/controller/job"
	"jobconnect-backend/internal/controller/profile"
	"jobconnect-backend/internal/middleware"
	"jobconnect-backend/internal/model"
	"jobconnect-backend/internal/utilities"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	authController := auth.NewAuthController(s.DB)
	jobController := job.NewJobController(s.DB)
	applicationController := application.NewApplicationController(s.DB)
	profileController := profile.NewProfileController(s.DB)

	r.Use(middleware.SafeHeader())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.RootHandler)

	api := r.Group("/api")
	{
		api.GET("/health", s.healthHandler)

		authRoute := api.Group("/auth")
		{
			authRoute.Use(middleware.EnvRateLimitMiddleware())
			authRoute.POST("register", middleware.SizeLimit(64<<10), authController.RegisterHandler)
			authRoute.POST("login", middleware.SizeLimit(64<<10), authController.LoginHandler)
			authRoute.GET("me", middleware.RequireAuth(s.DB), authController.MeHandler)
		}

		jobsRoute := api.Group("/jobs")
		{
			jobsRoute.GET("", jobController.ListActiveJobs)
			jobsRoute.POST("",
				middleware.RequireAuth(s.DB),
				middleware.CheckRole(model.RoleEmployer),
				middleware.SizeLimit(256<<10),
				jobController.CreateJobHandler)
		}

		profilesRoute := api.Group("/profiles")
		{
			profilesRoute.Use(middleware.RequireAuth(s.DB))

			profilesRoute.GET("me", profileController.MyProfile)

			profilesRoute.POST("student",
				middleware.CheckRole(model.RoleStudent),
				middleware.SizeLimit(64<<10),
				profileController.UpdateStudentProfile)

			profilesRoute.POST("employer",
				middleware.CheckRole(model.RoleEmployer),
				middleware.SizeLimit(64<<10),
				profileController.UpdateEmployerProfile)

			profilesRoute.GET("employer",
				middleware.CheckRole(model.RoleEmployer),
				jobController.ListEmployerJobs)

			profilesRoute.POST("apply",
				middleware.CheckRole(model.RoleStudent),
				middleware.SizeLimit(256<<10),
				applicationController.ApplyHandler)

			profilesRoute.GET("applications/me",
				middleware.CheckRole(model.RoleStudent),
				applicationController.MyApplications)

			// Gin requires a single wildcard name per position, so the
			// job id segment is also called :id here.
			profilesRoute.GET("applications/:id",
				middleware.CheckRole(model.RoleEmployer),
				applicationController.JobApplications)

			profilesRoute.PUT("applications/:id/status",
				middleware.CheckRole(model.RoleEmployer),
				applicationController.UpdateStatus)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Endpoint not found."})
	})

	return r
}

// RootHandler handle request by returning a liveness message
func (s *Server) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "JobConnect API is running"})
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
