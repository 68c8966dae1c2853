package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aleppo-guide/api-go/controllers"
	"github.com/aleppo-guide/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	placeController := controllers.NewPlaceController(db)
	eventController := controllers.NewEventController(db)
	reviewController := controllers.NewReviewController(db)
	uploadController := controllers.NewUploadController(db)

	// Public routes: browsing needs no login
	public := r.Group("/")
	{
		public.POST("/users/register", authController.Register)
		public.POST("/users/login", authController.Login)
		public.POST("/users/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/users/logout", authController.Logout)
		protected.GET("/users/profile", authController.GetProfile)
	}

	// Admin routes: place and event management
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())

	SetupPlaceRoutes(public, admin, placeController)
	SetupEventRoutes(public, admin, eventController)
	SetupReviewRoutes(public, protected, reviewController)
	SetupUploadRoutes(admin, uploadController)
}
