package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/aleppo-guide/api-go/discovery"
	"github.com/aleppo-guide/api-go/models"
	"github.com/aleppo-guide/api-go/types"
	"github.com/aleppo-guide/api-go/utils"
)

type PlaceController struct {
	DB *gorm.DB
}

func NewPlaceController(db *gorm.DB) *PlaceController {
	return &PlaceController{DB: db}
}

type CreatePlaceCommand struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	ExpectedPeakTime string   `json:"expectedPeakTime"`
	VisitTimeRange   *string  `json:"visitTimeRange"`
	Latitude         float64  `json:"latitude" binding:"required"`
	Longitude        float64  `json:"longitude" binding:"required"`
	CoverImage       string   `json:"coverImage"`
	Tags             []string `json:"tags"`
}

// UpdatePlaceCommand carries only the fields the admin actually changed;
// nil means "leave as is".
type UpdatePlaceCommand struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	Category         *string   `json:"category"`
	ExpectedPeakTime *string   `json:"expectedPeakTime"`
	VisitTimeRange   *string   `json:"visitTimeRange"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	CoverImage       *string   `json:"coverImage"`
	Tags             *[]string `json:"tags"`
}

// preloaded returns the place query with every association the listing
// renders. The client consumes the complete materialized list; filtering
// happens in the discovery engine, never in SQL.
func (pc *PlaceController) preloaded() *gorm.DB {
	return pc.DB.Model(&models.Place{}).
		Preload("Photos").
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("Events")
}

// GetPlaces godoc
// @Summary Get the full tourism place list with photos, reviews and events
// @Tags places
// @Produce json
// @Success 200 {array} models.Place
// @Router /tourism-places [get]
func (pc *PlaceController) GetPlaces(c *gin.Context) {
	var places []models.Place
	if err := pc.preloaded().Order("id").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching places"})
		return
	}

	c.JSON(http.StatusOK, places)
}

// DiscoverPlaces godoc
// @Summary Search, filter, sort and paginate the place list
// @Tags places
// @Produce json
// @Param search query string false "Substring matched against name and description"
// @Param sortBy query string false "distance_asc, distance_desc, rating_asc, rating_desc, age_asc, age_desc"
// @Param category query string false "Place category or all"
// @Param minRating query number false "Minimum average review rating"
// @Param lat query number false "Caller latitude for distance sorting"
// @Param lng query number false "Caller longitude for distance sorting"
// @Param page query integer false "1-based page index"
// @Success 200 {object} map[string]interface{}
// @Router /tourism-places/discover [get]
func (pc *PlaceController) DiscoverPlaces(c *gin.Context) {
	var query types.DiscoverQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var places []models.Place
	if err := pc.preloaded().Order("id").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching places"})
		return
	}

	page := discovery.Discover(places, query.Filters(), query.Location(), query.Page, query.PerPage, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"places":     page.Places,
		"pagination": paginationMeta(page),
	})
}

// GetMarkers godoc
// @Summary Get the minimal place shapes the map view renders
// @Tags places
// @Produce json
// @Success 200 {array} types.Marker
// @Router /tourism-places/markers [get]
func (pc *PlaceController) GetMarkers(c *gin.Context) {
	var markers []types.Marker
	if err := pc.DB.Model(&models.Place{}).
		Select("id, name, category, latitude, longitude, cover_image").
		Order("id").
		Find(&markers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching places"})
		return
	}

	c.JSON(http.StatusOK, markers)
}

func (pc *PlaceController) GetPlace(c *gin.Context) {
	id := c.Param("id")

	var place models.Place
	if err := pc.preloaded().Where("id = ?", id).First(&place).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) CreatePlace(c *gin.Context) {
	admin := utils.GetUser(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var cmd CreatePlaceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(models.PlaceCategory(cmd.Category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid place category"})
		return
	}

	if err := utils.ValidateCoordinates(cmd.Latitude, cmd.Longitude); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place := models.Place{
		Name:             cmd.Name,
		Description:      cmd.Description,
		Category:         models.PlaceCategory(cmd.Category),
		ExpectedPeakTime: cmd.ExpectedPeakTime,
		VisitTimeRange:   cmd.VisitTimeRange,
		Latitude:         cmd.Latitude,
		Longitude:        cmd.Longitude,
		CoverImage:       cmd.CoverImage,
		Tags:             pq.StringArray(cmd.Tags),
		AdminID:          admin.UserID,
	}

	if err := pc.DB.Create(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}

	c.JSON(http.StatusCreated, place)
}

func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	id := c.Param("id")

	var place models.Place
	if err := pc.DB.First(&place, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	var cmd UpdatePlaceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cmd.Category != nil && !models.ValidCategory(models.PlaceCategory(*cmd.Category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid place category"})
		return
	}

	lat := place.Latitude
	lng := place.Longitude
	if cmd.Latitude != nil {
		lat = *cmd.Latitude
	}
	if cmd.Longitude != nil {
		lng = *cmd.Longitude
	}
	if err := utils.ValidateCoordinates(lat, lng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cmd.Name != nil {
		place.Name = *cmd.Name
	}
	if cmd.Description != nil {
		place.Description = *cmd.Description
	}
	if cmd.Category != nil {
		place.Category = models.PlaceCategory(*cmd.Category)
	}
	if cmd.ExpectedPeakTime != nil {
		place.ExpectedPeakTime = *cmd.ExpectedPeakTime
	}
	if cmd.VisitTimeRange != nil {
		place.VisitTimeRange = cmd.VisitTimeRange
	}
	if cmd.CoverImage != nil {
		place.CoverImage = *cmd.CoverImage
	}
	if cmd.Tags != nil {
		place.Tags = pq.StringArray(*cmd.Tags)
	}
	place.Latitude = lat
	place.Longitude = lng

	if err := pc.DB.Save(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place"})
		return
	}

	c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) DeletePlace(c *gin.Context) {
	id := c.Param("id")

	var place models.Place
	if err := pc.DB.First(&place, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	tx := pc.DB.Begin()

	// Remove dependents first so no orphaned rows survive the place
	if err := tx.Where("place_id = ?", place.ID).Delete(&models.Photo{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	if err := tx.Where("place_id = ?", place.ID).Delete(&models.Review{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	if err := tx.Where("place_id = ?", place.ID).Delete(&models.Event{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	if err := tx.Delete(&place).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Place deleted successfully"})
}

type AddPhotosCommand struct {
	URLs []string `json:"urls" binding:"required,min=1,dive,url"`
}

// AddPhotos attaches uploaded gallery images to a place. The client uploads
// to object storage first (see UploadController) and posts the public URLs.
func (pc *PlaceController) AddPhotos(c *gin.Context) {
	id := c.Param("id")

	var place models.Place
	if err := pc.DB.First(&place, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}

	var cmd AddPhotosCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photos := make([]models.Photo, len(cmd.URLs))
	for i, url := range cmd.URLs {
		photos[i] = models.Photo{URL: url, PlaceID: place.ID}
	}

	if err := pc.DB.Create(&photos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add photos"})
		return
	}

	c.JSON(http.StatusCreated, photos)
}
