package models

import "time"

// Photo is a single gallery image attached to a place. Ordering follows
// insertion order (auto-increment id).
type Photo struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `json:"url" gorm:"not null"`
	PlaceID   uint      `json:"tourismPlaceId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}
