package models

import (
	"time"
)

// VenueCandidate - заведение, вернувшееся из сервиса поиска мест.
// Никогда не персистится целиком, в леджере хранится только идентификатор.
type VenueCandidate struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Likelihood float64    `json:"likelihood"`
	Coordinate Coordinate `json:"coordinate"`
}

// VisitRecord - счетчик посещений и отметка последнего уведомления по заведению
type VisitRecord struct {
	VisitCount   int        `json:"visit_count"`
	LastNotified *time.Time `json:"last_notified,omitempty"`
}

// GlobalState - глобальное состояние уведомлений: отметка последнего уведомления
// по всем заведениям, счетчик за текущий календарный день и дата последнего сброса.
type GlobalState struct {
	LastNotified *time.Time `json:"last_notified,omitempty"`
	SentToday    int        `json:"sent_today"`
	LastResetDay string     `json:"last_reset_day"` // локальная дата в формате 2006-01-02
}
