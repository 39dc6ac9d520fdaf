package dwell

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/geo"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Filter отслеживает состояние "остановки" по потоку сырых позиций.
// Обрабатывает сэмплы строго по одному, владеет DwellState единолично.
type Filter struct {
	cfg    *config.Config
	logger *logrus.Logger

	mu              sync.Mutex
	baseline        *models.Coordinate
	dwellStart      *time.Time
	lastProcessedAt time.Time

	// generation увеличивается при каждом сбросе базовой точки из-за движения.
	// Движок сравнивает его до и после асинхронного поиска мест, чтобы
	// отбросить результат, пришедший уже после ухода пользователя.
	generation atomic.Uint64
}

func NewFilter(cfg *config.Config, logger *logrus.Logger) *Filter {
	return &Filter{
		cfg:    cfg,
		logger: logger,
	}
}

// Observe обрабатывает один сэмпл позиции и возвращает DwellEvent,
// если пользователь пробыл на месте дольше минимальной длительности.
// Инварианты: событие на одну остановку выдается не более одного раза,
// после выдачи состояние сбрасывается и цикл остановки начинается заново.
func (f *Filter) Observe(sample models.PositionSample) *models.DwellEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	log := f.logger.WithFields(logrus.Fields{
		"component": "dwell_filter",
		"lat":       sample.Coordinate.Latitude,
		"lon":       sample.Coordinate.Longitude,
	})

	// Ограничение частоты: сэмплы, приходящие чаще минимального интервала,
	// игнорируются целиком, чтобы ограничить частоту поисковых запросов
	if !f.lastProcessedAt.IsZero() && sample.Timestamp.Sub(f.lastProcessedAt) < f.cfg.MinSampleInterval {
		return nil
	}

	// Сэмплы с плохой точностью отбрасываются без изменения состояния
	if sample.AccuracyMeters > f.cfg.AccuracyCeilingMeters {
		log.WithField("accuracy", sample.AccuracyMeters).Debug("Sample rejected: accuracy above ceiling")
		return nil
	}

	f.lastProcessedAt = sample.Timestamp

	// Пользователь в движении: остановка сбрасывается целиком
	if sample.SpeedMps > f.cfg.SpeedThresholdMps {
		log.WithField("speed", sample.SpeedMps).Debug("Sample above speed threshold, resetting dwell state")
		f.resetLocked(true)
		return nil
	}

	// Первый сэмпл после сброса: фиксируем базовую точку
	if f.baseline == nil {
		coord := sample.Coordinate
		start := sample.Timestamp
		f.baseline = &coord
		f.dwellStart = &start
		log.Debug("Dwell baseline recorded")
		return nil
	}

	// Значимое перемещение: остановка начинается заново с новой базовой точкой
	if geo.DistanceMeters(*f.baseline, sample.Coordinate) > f.cfg.SignificantMoveMeters {
		coord := sample.Coordinate
		start := sample.Timestamp
		f.generation.Add(1)
		f.baseline = &coord
		f.dwellStart = &start
		log.Debug("Significant move detected, dwell restarted")
		return nil
	}

	// Сэмпл подтверждает продолжение остановки у базовой точки
	if sample.Timestamp.Sub(*f.dwellStart) >= f.cfg.MinStayDuration {
		event := &models.DwellEvent{
			Coordinate: *f.baseline,
			DwellStart: *f.dwellStart,
			EmittedAt:  sample.Timestamp,
		}
		// Сброс без инкремента generation: поиск по этой остановке еще актуален
		f.resetLocked(false)
		log.WithField("dwell_start", event.DwellStart).Info("Dwell event emitted")
		return event
	}

	return nil
}

// Reset полностью очищает состояние остановки (например, при остановке мониторинга)
func (f *Filter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked(true)
}

func (f *Filter) resetLocked(moved bool) {
	// Поколение сдвигается при любом сбросе из-за движения, даже если базовая
	// точка уже очищена выдачей события: пользователь мог уехать, пока поиск
	// по только что выданной остановке еще в полете
	if moved {
		f.generation.Add(1)
	}
	f.baseline = nil
	f.dwellStart = nil
}

// Generation возвращает текущее поколение базовой точки. Безопасно для
// конкурентного чтения из горутины поиска мест.
func (f *Filter) Generation() uint64 {
	return f.generation.Load()
}

// Dwelling сообщает, зафиксирована ли сейчас остановка и с какого момента
func (f *Filter) Dwelling() (bool, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dwellStart == nil {
		return false, time.Time{}
	}
	return true, *f.dwellStart
}
