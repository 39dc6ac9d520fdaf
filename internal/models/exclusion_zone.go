package models

import (
	"time"

	"github.com/google/uuid"
)

// ExclusionZone - зона, в которой пользователь запретил отправку уведомлений
type ExclusionZone struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Center    Coordinate `json:"center"`
	CreatedAt time.Time  `json:"created_at"`
}
