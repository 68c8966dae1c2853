package models

import "time"

// Event belongs to a place. EndDate is never before StartDate; the
// controllers validate this on create and update.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	StartDate   time.Time `json:"startDate" gorm:"not null"`
	EndDate     time.Time `json:"endDate" gorm:"not null"`
	Image       *string   `json:"image" gorm:"null"`
	PlaceID     uint      `json:"tourismPlaceId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
