package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aleppo-guide/api-go/discovery"
	"github.com/aleppo-guide/api-go/models"
	"github.com/aleppo-guide/api-go/types"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

type CreateEventCommand struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Image       *string   `json:"image"`
	PlaceID     uint      `json:"tourismPlaceId" binding:"required"`
}

type UpdateEventCommand struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Image       *string    `json:"image"`
}

// placeEvents loads the place list with events attached and flattens it
// for the discovery event helpers.
func (ec *EventController) placeEvents() ([]discovery.PlaceEvent, error) {
	var places []models.Place
	if err := ec.DB.Model(&models.Place{}).Preload("Events").Order("id").Find(&places).Error; err != nil {
		return nil, err
	}
	return discovery.FlattenEvents(places), nil
}

// GetEvents godoc
// @Summary List events across all places with filtering and sorting
// @Tags events
// @Produce json
// @Param search query string false "Substring matched against event name, description and place name"
// @Param category query string false "Owning place category or all"
// @Param dateRange query string false "all, upcoming, thisWeek, thisMonth"
// @Param sortBy query string false "date_asc or date_desc"
// @Success 200 {array} discovery.PlaceEvent
// @Router /events [get]
func (ec *EventController) GetEvents(c *gin.Context) {
	var query types.EventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := ec.placeEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, discovery.FilterEvents(events, query.Filters(), time.Now()))
}

func (ec *EventController) GetUpcomingEvents(c *gin.Context) {
	events, err := ec.placeEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	filters := discovery.EventFilters{Category: "all", DateRange: "upcoming", SortBy: "date_asc"}
	c.JSON(http.StatusOK, discovery.FilterEvents(events, filters, time.Now()))
}

func (ec *EventController) GetEventsByPlace(c *gin.Context) {
	placeID := c.Param("placeId")

	var place models.Place
	if err := ec.DB.First(&place, placeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	var events []models.Event
	if err := ec.DB.Where("place_id = ?", place.ID).Order("start_date").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := ec.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	var cmd CreateEventCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cmd.EndDate.Before(cmd.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	var place models.Place
	if err := ec.DB.First(&place, cmd.PlaceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	event := models.Event{
		Name:        cmd.Name,
		Description: cmd.Description,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Image:       cmd.Image,
		PlaceID:     place.ID,
	}

	if err := ec.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := ec.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var cmd UpdateEventCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := event.StartDate
	end := event.EndDate
	if cmd.StartDate != nil {
		start = *cmd.StartDate
	}
	if cmd.EndDate != nil {
		end = *cmd.EndDate
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not be before start date"})
		return
	}

	if cmd.Name != nil {
		event.Name = *cmd.Name
	}
	if cmd.Description != nil {
		event.Description = *cmd.Description
	}
	if cmd.Image != nil {
		event.Image = cmd.Image
	}
	event.StartDate = start
	event.EndDate = end

	if err := ec.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := ec.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := ec.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}
