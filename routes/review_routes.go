package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aleppo-guide/api-go/controllers"
)

func SetupReviewRoutes(public, protected *gin.RouterGroup, reviewController *controllers.ReviewController) {
	public.GET("/reviews/place/:placeId", reviewController.GetPlaceReviews)

	reviews := protected.Group("/reviews")
	{
		reviews.POST("", reviewController.CreateReview)
		reviews.GET("/user/:userId", reviewController.GetUserReviews)
		reviews.GET("/:id", reviewController.GetReview)
		reviews.PATCH("/:id", reviewController.UpdateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
	}
}
