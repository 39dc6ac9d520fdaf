package dwell

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseCoord = models.Coordinate{Latitude: 55.751244, Longitude: 37.618423}
	// ~100 метров севернее базовой точки
	farCoord = models.Coordinate{Latitude: 55.752144, Longitude: 37.618423}
)

// newTestFilter создает фильтр с предсказуемыми порогами для тестов
func newTestFilter(t *testing.T) *Filter {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AccuracyCeilingMeters: 50,
		SpeedThresholdMps:     2,
		SignificantMoveMeters: 50,
		MinStayDuration:       5 * time.Minute,
		MinSampleInterval:     30 * time.Second,
	}
	return NewFilter(cfg, logger)
}

func sampleAt(coord models.Coordinate, ts time.Time) models.PositionSample {
	return models.PositionSample{
		Timestamp:      ts,
		Coordinate:     coord,
		AccuracyMeters: 10,
		SpeedMps:       0.5,
	}
}

func TestObserve_EmitsAfterMinimumStay(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Первый сэмпл фиксирует базовую точку, события нет
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))

	// Подтверждающие сэмплы до порога минимальной длительности - события нет
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(1*time.Minute))))
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(3*time.Minute))))

	// Спустя 6 минут остановка подтверждена - ровно одно событие
	event := f.Observe(sampleAt(baseCoord, start.Add(6*time.Minute)))
	require.NotNil(t, event)
	assert.Equal(t, baseCoord, event.Coordinate)
	assert.Equal(t, start, event.DwellStart)
}

func TestObserve_ExactlyOncePerStay(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	require.NotNil(t, f.Observe(sampleAt(baseCoord, start.Add(6*time.Minute))))

	// После события состояние сброшено: следующий сэмпл начинает новый цикл
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(7*time.Minute))))
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(8*time.Minute))))

	// Новый цикл должен снова набрать минимальную длительность
	event := f.Observe(sampleAt(baseCoord, start.Add(12*time.Minute)))
	require.NotNil(t, event)
	assert.Equal(t, start.Add(7*time.Minute), event.DwellStart)
}

func TestObserve_HighSpeedResetsDwell(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(4*time.Minute))))

	// Сэмпл с высокой скоростью: пользователь в пути, остановка сброшена
	transit := sampleAt(baseCoord, start.Add(5*time.Minute))
	transit.SpeedMps = 10
	assert.Nil(t, f.Observe(transit))

	dwelling, _ := f.Dwelling()
	assert.False(t, dwelling)

	// Даже спустя 6 минут с исходного начала события не будет
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(6*time.Minute))))
}

func TestObserve_SignificantMoveRestartsDwell(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	genBefore := f.Generation()

	// Перемещение дальше порога: базовая точка и отсчет начинаются заново
	assert.Nil(t, f.Observe(sampleAt(farCoord, start.Add(4*time.Minute))))
	assert.Greater(t, f.Generation(), genBefore)

	// Минимальная длительность отсчитывается от момента перемещения
	assert.Nil(t, f.Observe(sampleAt(farCoord, start.Add(6*time.Minute))))
	event := f.Observe(sampleAt(farCoord, start.Add(10*time.Minute)))
	require.NotNil(t, event)
	assert.Equal(t, farCoord, event.Coordinate)
	assert.Equal(t, start.Add(4*time.Minute), event.DwellStart)
}

func TestObserve_LowAccuracyRejectedWithoutStateChange(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Неточный сэмпл не должен зафиксировать базовую точку
	bad := sampleAt(baseCoord, start)
	bad.AccuracyMeters = 120
	assert.Nil(t, f.Observe(bad))

	dwelling, _ := f.Dwelling()
	assert.False(t, dwelling)

	// Базовую точку фиксирует первый точный сэмпл
	assert.Nil(t, f.Observe(sampleAt(baseCoord, start.Add(1*time.Minute))))
	dwelling, since := f.Dwelling()
	assert.True(t, dwelling)
	assert.Equal(t, start.Add(1*time.Minute), since)
}

func TestObserve_SamplesBelowIntervalIgnored(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))

	// Сэмпл через 10 секунд игнорируется, даже если он с высокой скоростью
	fast := sampleAt(baseCoord, start.Add(10*time.Second))
	fast.SpeedMps = 15
	assert.Nil(t, f.Observe(fast))

	// Состояние остановки не тронуто
	dwelling, since := f.Dwelling()
	assert.True(t, dwelling)
	assert.Equal(t, start, since)
}

func TestObserve_EmissionDoesNotBumpGeneration(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	genBefore := f.Generation()

	require.NotNil(t, f.Observe(sampleAt(baseCoord, start.Add(6*time.Minute))))

	// Сброс после выдачи события не считается перемещением:
	// асинхронный поиск по этой остановке еще должен быть принят
	assert.Equal(t, genBefore, f.Generation())
}

func TestObserve_TransitAfterEmissionBumpsGeneration(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	require.NotNil(t, f.Observe(sampleAt(baseCoord, start.Add(6*time.Minute))))
	genAfterEmit := f.Generation()

	// Пользователь уехал сразу после выдачи события: скоростной сэмпл должен
	// сдвинуть поколение, чтобы еще летящий поиск по этой остановке был отброшен
	moving := sampleAt(farCoord, start.Add(7*time.Minute))
	moving.SpeedMps = 3
	assert.Nil(t, f.Observe(moving))

	assert.Greater(t, f.Generation(), genAfterEmit)
}

func TestReset_ClearsStateAndBumpsGeneration(t *testing.T) {
	f := newTestFilter(t)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, f.Observe(sampleAt(baseCoord, start)))
	genBefore := f.Generation()

	f.Reset()

	dwelling, _ := f.Dwelling()
	assert.False(t, dwelling)
	assert.Greater(t, f.Generation(), genBefore)
}
