package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/venue_prompt_system/internal/models"
)

// VenueEngine описывает операции движка, доступные HTTP-слою
type VenueEngine interface {
	Ingest(sample models.PositionSample) error
	EvaluateNow(ctx context.Context, coord models.Coordinate) models.Outcome
	SetMonitoring(enabled bool)
	Monitoring() bool
	Dwelling() (bool, time.Time)
}

// ExclusionManager управляет зонами исключения
type ExclusionManager interface {
	Add(ctx context.Context, name string, center models.Coordinate) (*models.ExclusionZone, error)
	Remove(ctx context.Context, id uuid.UUID) error
	List() []models.ExclusionZone
}

// PromptHistory предоставляет доступ к журналу отправленных уведомлений
type PromptHistory interface {
	List(ctx context.Context, page, pageSize int) ([]*models.NotificationRecord, error)
}
