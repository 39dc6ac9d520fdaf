package models

import (
	"time"
)

// Coordinate - географическая точка
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PositionSample представляет сырое измерение позиции от провайдера геолокации.
// Не персистится, живет только в потоке обработки.
type PositionSample struct {
	Timestamp      time.Time  `json:"timestamp"`
	Coordinate     Coordinate `json:"coordinate"`
	AccuracyMeters float64    `json:"accuracy_meters"`
	SpeedMps       float64    `json:"speed_mps"`
}

// DwellEvent - событие "пользователь остановился и пробыл на месте достаточно долго".
// Координата - базовая точка остановки, а не последний сэмпл.
type DwellEvent struct {
	Coordinate Coordinate `json:"coordinate"`
	DwellStart time.Time  `json:"dwell_start"`
	EmittedAt  time.Time  `json:"emitted_at"`
}
