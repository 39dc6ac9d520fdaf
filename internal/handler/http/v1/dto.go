package v1

import (
	"time"

	"github.com/google/uuid"
)

// PositionSampleRequest DTO для приема координатной выборки
// @Description DTO для приема координатной выборки
type PositionSampleRequest struct {
	Timestamp      time.Time `json:"timestamp" validate:"required"`
	Latitude       float64   `json:"latitude" validate:"required,latitude"`
	Longitude      float64   `json:"longitude" validate:"required,longitude"`
	AccuracyMeters float64   `json:"accuracy_meters" validate:"gte=0"`
	SpeedMps       float64   `json:"speed_mps"`
}

// EvaluateRequest DTO для принудительной оценки координаты
// @Description DTO для принудительной оценки координаты
type EvaluateRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// EvaluateResponse DTO с результатом оценки
// @Description DTO с результатом оценки
type EvaluateResponse struct {
	Outcome string `json:"outcome"`
}

// MonitoringStatusResponse DTO со статусом мониторинга
// @Description DTO со статусом мониторинга
type MonitoringStatusResponse struct {
	Monitoring bool       `json:"monitoring"`
	Dwelling   bool       `json:"dwelling"`
	DwellStart *time.Time `json:"dwell_start,omitempty"`
}

// CreateExclusionRequest DTO для создания зоны исключения
// @Description DTO для создания зоны исключения
type CreateExclusionRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=255"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ExclusionZoneResponse DTO для ответа с информацией о зоне исключения
// @Description DTO для ответа с информацией о зоне исключения
type ExclusionZoneResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// PromptResponse DTO для записи журнала уведомлений
// @Description DTO для записи журнала уведомлений
type PromptResponse struct {
	ID        uuid.UUID `json:"id"`
	VenueID   string    `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SentAt    time.Time `json:"sent_at"`
}
