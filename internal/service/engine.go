package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/dwell"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/shenikar/venue_prompt_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// PlaceMatcher определяет контракт адаптера к сервису поиска заведений
type PlaceMatcher interface {
	Lookup(ctx context.Context, coord models.Coordinate) ([]models.VenueCandidate, error)
	Select(candidates []models.VenueCandidate) *models.VenueCandidate
}

// Ledger определяет контракт леджера посещений и глобального состояния уведомлений
type Ledger interface {
	RecordVisit(ctx context.Context, venueID string) int
	GetRecord(venueID string) *models.VisitRecord
	MarkNotified(ctx context.Context, venueID string, ts time.Time)
	GlobalState() models.GlobalState
	MarkGlobalNotified(ctx context.Context, ts time.Time)
	ResetDailyCounter(ctx context.Context, day string)
}

// Exclusions определяет контракт проверки зон исключения
type Exclusions interface {
	IsExcluded(coord models.Coordinate) bool
}

// NotificationLog определяет контракт журнала отправленных уведомлений
type NotificationLog interface {
	Save(ctx context.Context, rec *models.NotificationRecord) error
}

// Engine - движок политики уведомлений. Владеет фильтром остановок и
// последовательно прогоняет каждое событие остановки через цепочку проверок.
// Создается один раз при старте приложения и передается по ссылке,
// никакого глобального изменяемого состояния.
type Engine struct {
	cfg        *config.Config
	logger     *logrus.Logger
	filter     *dwell.Filter
	matcher    PlaceMatcher
	ledger     Ledger
	exclusions Exclusions
	dispatcher notify.Dispatcher
	nlog       NotificationLog
	loc        *time.Location
	now        func() time.Time

	samples    chan models.PositionSample
	monitoring atomic.Bool
	// lookupInFlight не дает запустить второй поиск, пока не завершился
	// предыдущий: повторное событие остановки по той же стоянке не должно
	// привести к дублирующему уведомлению
	lookupInFlight atomic.Bool
}

func NewEngine(
	cfg *config.Config,
	logger *logrus.Logger,
	filter *dwell.Filter,
	matcher PlaceMatcher,
	ledger Ledger,
	exclusions Exclusions,
	dispatcher notify.Dispatcher,
	nlog NotificationLog,
	loc *time.Location,
) *Engine {
	e := &Engine{
		cfg:        cfg,
		logger:     logger,
		filter:     filter,
		matcher:    matcher,
		ledger:     ledger,
		exclusions: exclusions,
		dispatcher: dispatcher,
		nlog:       nlog,
		loc:        loc,
		now:        time.Now,
		samples:    make(chan models.PositionSample, 64),
	}
	e.monitoring.Store(true)
	return e
}

// Start запускает горутину, последовательно обрабатывающую поток позиций.
// Фильтр не блокируется на время асинхронного поиска мест.
func (e *Engine) Start(ctx context.Context) {
	e.logger.Info("Starting notification policy engine...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				e.logger.Info("Stopping notification policy engine.")
				return
			case sample := <-e.samples:
				if !e.monitoring.Load() {
					continue
				}
				if event := e.filter.Observe(sample); event != nil {
					go e.handleDwell(ctx, event)
				}
			}
		}
	}()
}

// Ingest принимает сэмпл позиции из внешнего потока. Не блокирует вызывающего:
// при переполненном буфере сэмпл отбрасывается (следующий фикc его заменит).
func (e *Engine) Ingest(sample models.PositionSample) error {
	if !e.monitoring.Load() {
		return fmt.Errorf("monitoring is stopped")
	}
	select {
	case e.samples <- sample:
	default:
		e.logger.Warn("Position sample buffer full, dropping sample")
	}
	return nil
}

// SetMonitoring включает или выключает потребление позиций (авторизация
// геолокации отозвана/выдана). Выключение сбрасывает состояние остановки.
func (e *Engine) SetMonitoring(enabled bool) {
	was := e.monitoring.Swap(enabled)
	if was && !enabled {
		e.filter.Reset()
		e.logger.Info("Monitoring stopped, dwell state cleared")
	}
	if !was && enabled {
		e.logger.Info("Monitoring resumed")
	}
}

// Monitoring сообщает, потребляется ли сейчас поток позиций
func (e *Engine) Monitoring() bool {
	return e.monitoring.Load()
}

// Dwelling проксирует состояние остановки фильтра для статусного API
func (e *Engine) Dwelling() (bool, time.Time) {
	return e.filter.Dwelling()
}

// EvaluateNow выполняет оценку координаты вне потокового пути (фоновое
// обновление или запрос по требованию)
func (e *Engine) EvaluateNow(ctx context.Context, coord models.Coordinate) models.Outcome {
	if !e.lookupInFlight.CompareAndSwap(false, true) {
		return models.OutcomeInFlight
	}
	defer e.lookupInFlight.Store(false)

	return e.evaluate(ctx, coord, nil)
}

// handleDwell обрабатывает событие остановки из потокового пути
func (e *Engine) handleDwell(ctx context.Context, event *models.DwellEvent) {
	log := e.logger.WithFields(logrus.Fields{
		"service": "engine",
		"lat":     event.Coordinate.Latitude,
		"lon":     event.Coordinate.Longitude,
	})

	if !e.lookupInFlight.CompareAndSwap(false, true) {
		log.Debug("Lookup already in flight, skipping duplicate dwell event")
		return
	}
	defer e.lookupInFlight.Store(false)

	// Запоминаем поколение базовой точки: если за время поиска пользователь
	// значимо переместился, результат поиска больше не описывает эту стоянку
	gen := e.filter.Generation()
	outcome := e.evaluate(ctx, event.Coordinate, &gen)
	log.WithField("outcome", outcome).Info("Dwell event evaluated")
}

// evaluate прогоняет координату через цепочку проверок в строгом порядке.
// Каждая непройденная проверка - тихий no-op, а не ошибка. Инкремент счетчика
// посещений происходит до проверок кулдаунов, чтобы частые посещения
// фиксировались и внутри окна кулдауна.
func (e *Engine) evaluate(ctx context.Context, coord models.Coordinate, gen *uint64) models.Outcome {
	log := e.logger.WithFields(logrus.Fields{
		"service": "engine",
		"method":  "evaluate",
	})

	// Сброс дневного счетчика по сохраненной дате, а не по живому таймеру:
	// переживает рестарты и идемпотентен при пропущенной полуночи
	today := e.now().In(e.loc).Format("2006-01-02")
	e.ledger.ResetDailyCounter(ctx, today)

	// 1. Зоны исключения проверяются до похода в сервис мест, чтобы не тратить квоту
	if e.exclusions.IsExcluded(coord) {
		return models.OutcomeExcluded
	}

	// 2. Поиск заведения. Сбой сервиса - штатный исход, повтора внутри этой
	// стоянки нет: следующее событие остановки повторит поиск естественным образом
	candidates, err := e.matcher.Lookup(ctx, coord)
	if err != nil {
		log.WithError(err).Warn("Place lookup failed, treating as no candidate")
		return models.OutcomeLookupFailed
	}

	// Поздний результат: пользователь уже ушел с места, результат отбрасывается
	if gen != nil && e.filter.Generation() != *gen {
		log.Info("Lookup result arrived after a significant move, discarding")
		return models.OutcomeStale
	}

	candidate := e.matcher.Select(candidates)
	if candidate == nil {
		return models.OutcomeNoCandidate
	}

	clog := log.WithField("venue_id", candidate.ID)

	// 3. Счетчик посещений растет безусловно после успешного матча,
	// независимо от того, будет ли отправлено уведомление
	count := e.ledger.RecordVisit(ctx, candidate.ID)
	if count >= e.cfg.FrequentVisitThreshold {
		clog.WithField("visit_count", count).Debug("Venue is frequently visited, suppressing notification")
		return models.OutcomeFrequentVenue
	}

	now := e.now()

	// 4. Кулдаун по заведению
	if rec := e.ledger.GetRecord(candidate.ID); rec != nil && rec.LastNotified != nil {
		if now.Sub(*rec.LastNotified) < e.cfg.VenueCooldown {
			return models.OutcomeVenueCooldown
		}
	}

	global := e.ledger.GlobalState()

	// 5. Дневная квота
	if global.SentToday >= e.cfg.MaxDailyNotifications {
		return models.OutcomeDailyQuota
	}

	// 6. Глобальный кулдаун между любыми уведомлениями
	if global.LastNotified != nil && now.Sub(*global.LastNotified) < e.cfg.GlobalCooldown {
		return models.OutcomeGlobalCooldown
	}

	// 7. Все проверки пройдены - отправляем уведомление
	notification := notify.Notification{
		Title:     "New Venue Detected",
		Body:      fmt.Sprintf("Are you at %s? Would you like to record the noise level?", candidate.Name),
		Payload:   map[string]string{"venueId": candidate.ID},
		Timestamp: now,
	}
	if err := e.dispatcher.Submit(ctx, notification); err != nil {
		// Отметки в леджере не трогаем: возможность уведомить не потеряна,
		// заведение останется кандидатом на следующей подходящей стоянке
		clog.WithError(err).Error("Failed to dispatch notification, ledger timestamps left intact")
		return models.OutcomeDispatchFailed
	}

	sentAt := e.now()
	e.ledger.MarkNotified(ctx, candidate.ID, sentAt)
	e.ledger.MarkGlobalNotified(ctx, sentAt)

	record := &models.NotificationRecord{
		VenueID:   candidate.ID,
		VenueName: candidate.Name,
		Category:  candidate.Category,
		Latitude:  candidate.Coordinate.Latitude,
		Longitude: candidate.Coordinate.Longitude,
	}
	if err := e.nlog.Save(ctx, record); err != nil {
		// Журнал вторичен: его сбой не отменяет уже отправленное уведомление
		clog.WithError(err).Error("Failed to save notification record")
	}

	clog.Info("Notification dispatched")
	return models.OutcomeNotified
}
