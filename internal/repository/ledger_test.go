package repository

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV - KVStore в памяти для тестов, с возможностью имитировать сбой записи
type fakeKV struct {
	data   map[string][]byte
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return val, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestVisitLedger_RecordVisitIncrementsByOne(t *testing.T) {
	kv := newFakeKV()
	ledger := NewVisitLedger(kv, newTestLogger())
	ctx := context.Background()

	assert.Equal(t, 1, ledger.RecordVisit(ctx, "venue-x"))
	assert.Equal(t, 2, ledger.RecordVisit(ctx, "venue-x"))
	assert.Equal(t, 1, ledger.RecordVisit(ctx, "venue-y"))

	rec := ledger.GetRecord("venue-x")
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.VisitCount)
	assert.Nil(t, rec.LastNotified)
}

func TestVisitLedger_GetRecordUnknownVenue(t *testing.T) {
	ledger := NewVisitLedger(newFakeKV(), newTestLogger())
	assert.Nil(t, ledger.GetRecord("unknown"))
}

func TestVisitLedger_StateSurvivesReload(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ledger := NewVisitLedger(kv, newTestLogger())
	ledger.RecordVisit(ctx, "venue-x")
	ledger.MarkNotified(ctx, "venue-x", ts)
	ledger.MarkGlobalNotified(ctx, ts)
	ledger.ResetDailyCounter(ctx, "2025-06-01")

	// Имитация рестарта процесса: новый леджер поверх того же хранилища
	reloaded := NewVisitLedger(kv, newTestLogger())
	require.NoError(t, reloaded.Load(ctx))

	rec := reloaded.GetRecord("venue-x")
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.VisitCount)
	require.NotNil(t, rec.LastNotified)
	assert.True(t, ts.Equal(*rec.LastNotified))

	global := reloaded.GlobalState()
	assert.Equal(t, "2025-06-01", global.LastResetDay)
	require.NotNil(t, global.LastNotified)
}

func TestVisitLedger_ResetDailyCounterIdempotent(t *testing.T) {
	ledger := NewVisitLedger(newFakeKV(), newTestLogger())
	ctx := context.Background()
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ledger.ResetDailyCounter(ctx, "2025-06-01")
	ledger.MarkGlobalNotified(ctx, ts)
	ledger.MarkGlobalNotified(ctx, ts.Add(time.Hour))
	assert.Equal(t, 2, ledger.GlobalState().SentToday)

	// Повторный сброс в тот же день не трогает счетчик
	ledger.ResetDailyCounter(ctx, "2025-06-01")
	assert.Equal(t, 2, ledger.GlobalState().SentToday)

	// Наступление нового дня обнуляет счетчик ровно один раз
	ledger.ResetDailyCounter(ctx, "2025-06-02")
	assert.Equal(t, 0, ledger.GlobalState().SentToday)
	assert.Equal(t, "2025-06-02", ledger.GlobalState().LastResetDay)
}

func TestVisitLedger_PersistenceFailureKeepsInMemoryState(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = fmt.Errorf("redis down")
	ledger := NewVisitLedger(kv, newTestLogger())
	ctx := context.Background()

	// Сбой записи не роняет процесс и не теряет мутацию в памяти
	assert.Equal(t, 1, ledger.RecordVisit(ctx, "venue-x"))
	rec := ledger.GetRecord("venue-x")
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.VisitCount)

	// Следующая мутация записывает оба блоба целиком и восстанавливает KV
	kv.setErr = nil
	ledger.RecordVisit(ctx, "venue-x")

	reloaded := NewVisitLedger(kv, newTestLogger())
	require.NoError(t, reloaded.Load(ctx))
	restored := reloaded.GetRecord("venue-x")
	require.NotNil(t, restored)
	assert.Equal(t, 2, restored.VisitCount)
}

func TestExclusionStore_AddListRemove(t *testing.T) {
	kv := newFakeKV()
	store := NewExclusionStore(kv, 50, newTestLogger())
	ctx := context.Background()

	zone, err := store.Add(ctx, "Дом", models.Coordinate{Latitude: 55.751244, Longitude: 37.618423})
	require.NoError(t, err)
	require.Len(t, store.List(), 1)

	// Набор переживает перезагрузку
	reloaded := NewExclusionStore(kv, 50, newTestLogger())
	require.NoError(t, reloaded.Load(ctx))
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, "Дом", reloaded.List()[0].Name)

	require.NoError(t, store.Remove(ctx, zone.ID))
	assert.Empty(t, store.List())
}

func TestExclusionStore_RemoveUnknownID(t *testing.T) {
	store := NewExclusionStore(newFakeKV(), 50, newTestLogger())
	err := store.Remove(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
}

func TestExclusionStore_IsExcluded(t *testing.T) {
	store := NewExclusionStore(newFakeKV(), 50, newTestLogger())
	ctx := context.Background()

	center := models.Coordinate{Latitude: 55.751244, Longitude: 37.618423}
	_, err := store.Add(ctx, "Дом", center)
	require.NoError(t, err)

	// ~10 метров от центра - внутри зоны
	assert.True(t, store.IsExcluded(models.Coordinate{Latitude: 55.751334, Longitude: 37.618423}))
	// ~111 метров от центра - снаружи
	assert.False(t, store.IsExcluded(models.Coordinate{Latitude: 55.752244, Longitude: 37.618423}))
}

func TestExclusionStore_AddRollsBackOnPersistenceFailure(t *testing.T) {
	kv := newFakeKV()
	store := NewExclusionStore(kv, 50, newTestLogger())
	ctx := context.Background()

	kv.setErr = fmt.Errorf("redis down")
	_, err := store.Add(ctx, "Дом", models.Coordinate{})
	require.Error(t, err)

	// Список в памяти не должен разойтись с хранилищем
	assert.Empty(t, store.List())
}
