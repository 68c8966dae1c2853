package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aleppo-guide/api-go/controllers"
)

func SetupEventRoutes(public, admin *gin.RouterGroup, eventController *controllers.EventController) {
	events := public.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/upcoming", eventController.GetUpcomingEvents)
		events.GET("/place/:placeId", eventController.GetEventsByPlace)
		events.GET("/:id", eventController.GetEvent)
	}

	managed := admin.Group("/events")
	{
		managed.POST("", eventController.CreateEvent)
		managed.PATCH("/:id", eventController.UpdateEvent)
		managed.DELETE("/:id", eventController.DeleteEvent)
	}
}
