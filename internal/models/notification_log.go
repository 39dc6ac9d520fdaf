package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecord представляет запись журнала об отправленном запросе
// на замер шума в заведении
type NotificationRecord struct {
	ID        uuid.UUID `json:"id"`
	VenueID   string    `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SentAt    time.Time `json:"sent_at"`
}
