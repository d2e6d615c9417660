package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wayfarer/internal/database"
	"wayfarer/internal/middleware"
	"wayfarer/internal/modules/booking"
	"wayfarer/internal/modules/dashboard"
	"wayfarer/internal/modules/experience"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/modules/review"
	"wayfarer/internal/modules/story"
	"wayfarer/internal/notification"
	jwtsvc "wayfarer/internal/pkg/jwt"
	"wayfarer/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewStoryCommentRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	gate := ownership.NewService(ownershipRepo, userRepo)

	bookingService := booking.NewService(bookingRepo, gate, notification.NewEmailSender())
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, gate)
	reviewHandler := review.NewHandler(reviewService)

	experienceService := experience.NewService(experienceRepo, gate)
	experienceHandler := experience.NewHandler(experienceService)

	dashboardService := dashboard.NewService(bookingRepo, experienceRepo, reviewRepo, gate)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	storyService := story.NewService(commentRepo, gate)
	storyHandler := story.NewHandler(storyService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		protected.Use(middleware.RequireRole("host"))
		{
			dashboardHandler.RegisterRoutes(protected)
			experienceHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			storyHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
