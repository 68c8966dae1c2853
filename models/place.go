package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlaceCategory string

const (
	CategoryArchaeological PlaceCategory = "ARCHAEOLOGICAL"
	CategoryRestaurant     PlaceCategory = "RESTAURANT"
	CategoryEntertainment  PlaceCategory = "ENTERTAINMENT"
	CategoryReligious      PlaceCategory = "RELIGIOUS"
	CategoryEducational    PlaceCategory = "EDUCATIONAL"
)

// ValidCategory reports whether the given value is one of the fixed place categories.
func ValidCategory(c PlaceCategory) bool {
	switch c {
	case CategoryArchaeological, CategoryRestaurant, CategoryEntertainment,
		CategoryReligious, CategoryEducational:
		return true
	}
	return false
}

type Place struct {
	ID               uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string         `json:"name" gorm:"not null"`
	Description      string         `json:"description" gorm:"type:text"`
	Category         PlaceCategory  `json:"category" gorm:"type:varchar(32);not null"`
	ExpectedPeakTime string         `json:"expectedPeakTime"`
	VisitTimeRange   *string        `json:"visitTimeRange" gorm:"type:varchar(255);null"` // "9:00 AM - 5:00 PM"
	Latitude         float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude        float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	CoverImage       string         `json:"coverImage"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
	AdminID          uint           `json:"adminId" gorm:"not null"`
	Photos           []Photo        `json:"photos" gorm:"foreignKey:PlaceID"`
	Reviews          []Review       `json:"reviews" gorm:"foreignKey:PlaceID"`
	Events           []Event        `json:"events" gorm:"foreignKey:PlaceID"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
