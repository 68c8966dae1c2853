package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aleppo-guide/api-go/controllers"
)

func SetupPlaceRoutes(public, admin *gin.RouterGroup, placeController *controllers.PlaceController) {
	places := public.Group("/tourism-places")
	{
		places.GET("", placeController.GetPlaces)
		places.GET("/discover", placeController.DiscoverPlaces)
		places.GET("/markers", placeController.GetMarkers)
		places.GET("/:id", placeController.GetPlace)
	}

	managed := admin.Group("/tourism-places")
	{
		managed.POST("/create", placeController.CreatePlace)
		managed.PATCH("/update/:id", placeController.UpdatePlace)
		managed.DELETE("/delete/:id", placeController.DeletePlace)
		managed.POST("/:id/photos", placeController.AddPhotos)
	}
}
