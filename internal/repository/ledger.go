package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	visitLedgerKey = "visit_ledger"
	globalStateKey = "global_notification_state"
)

// VisitLedger хранит счетчики посещений и отметки уведомлений по заведениям,
// плюс глобальное состояние уведомлений. Каждая мутация синхронно персистится
// в KV-хранилище; после сбоя записи состояние в памяти остается рабочим,
// а запись повторяется при следующей мутации.
type VisitLedger struct {
	kv     KVStore
	logger *logrus.Logger

	mu      sync.Mutex
	records map[string]*models.VisitRecord
	global  models.GlobalState
}

func NewVisitLedger(kv KVStore, logger *logrus.Logger) *VisitLedger {
	return &VisitLedger{
		kv:      kv,
		logger:  logger,
		records: make(map[string]*models.VisitRecord),
	}
}

// Load восстанавливает состояние леджера из KV-хранилища при старте
func (l *VisitLedger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := l.kv.Get(ctx, visitLedgerKey)
	if err != nil {
		return fmt.Errorf("failed to load visit ledger: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &l.records); err != nil {
			return fmt.Errorf("failed to unmarshal visit ledger: %w", err)
		}
	}

	raw, err = l.kv.Get(ctx, globalStateKey)
	if err != nil {
		return fmt.Errorf("failed to load global notification state: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &l.global); err != nil {
			return fmt.Errorf("failed to unmarshal global notification state: %w", err)
		}
	}

	l.logger.WithFields(logrus.Fields{
		"component": "visit_ledger",
		"venues":    len(l.records),
	}).Info("Visit ledger loaded")
	return nil
}

// RecordVisit увеличивает счетчик посещений заведения ровно на 1 и возвращает новое значение.
// Счетчик монотонно неубывающий и не зависит от того, будет ли отправлено уведомление.
func (l *VisitLedger) RecordVisit(ctx context.Context, venueID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[venueID]
	if !ok {
		rec = &models.VisitRecord{}
		l.records[venueID] = rec
	}
	rec.VisitCount++
	l.persistLocked(ctx)
	return rec.VisitCount
}

// GetRecord возвращает копию записи по заведению или nil, если посещений не было
func (l *VisitLedger) GetRecord(venueID string) *models.VisitRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[venueID]
	if !ok {
		return nil
	}
	copied := *rec
	return &copied
}

// MarkNotified устанавливает отметку последнего уведомления по заведению
func (l *VisitLedger) MarkNotified(ctx context.Context, venueID string, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[venueID]
	if !ok {
		rec = &models.VisitRecord{}
		l.records[venueID] = rec
	}
	rec.LastNotified = &ts
	l.persistLocked(ctx)
}

// GlobalState возвращает копию глобального состояния уведомлений
func (l *VisitLedger) GlobalState() models.GlobalState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.global
}

// MarkGlobalNotified фиксирует отправку уведомления: обновляет глобальную отметку
// и увеличивает дневной счетчик
func (l *VisitLedger) MarkGlobalNotified(ctx context.Context, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.global.LastNotified = &ts
	l.global.SentToday++
	l.persistLocked(ctx)
}

// ResetDailyCounter сбрасывает дневной счетчик, если сохраненная дата сброса не совпадает
// с текущим днем. Идемпотентен: повторный вызов в тот же день ничего не меняет.
func (l *VisitLedger) ResetDailyCounter(ctx context.Context, day string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.global.LastResetDay == day {
		return
	}
	l.global.LastResetDay = day
	l.global.SentToday = 0
	l.logger.WithFields(logrus.Fields{
		"component": "visit_ledger",
		"day":       day,
	}).Info("Daily notification counter reset")
	l.persistLocked(ctx)
}

// persistLocked синхронно записывает оба блоба в KV-хранилище.
// Сбой записи не фатален: состояние в памяти остается источником правды
// до следующей мутации, которая повторит запись целиком.
func (l *VisitLedger) persistLocked(ctx context.Context) {
	rawRecords, err := json.Marshal(l.records)
	if err != nil {
		l.logger.WithError(err).Error("Failed to marshal visit ledger")
		return
	}
	rawGlobal, err := json.Marshal(l.global)
	if err != nil {
		l.logger.WithError(err).Error("Failed to marshal global notification state")
		return
	}

	if err := l.kv.Set(ctx, visitLedgerKey, rawRecords); err != nil {
		l.logger.WithError(err).Error("Failed to persist visit ledger, keeping in-memory state")
		return
	}
	if err := l.kv.Set(ctx, globalStateKey, rawGlobal); err != nil {
		l.logger.WithError(err).Error("Failed to persist global notification state, keeping in-memory state")
	}
}
