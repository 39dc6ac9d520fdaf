package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/venue_prompt_system/internal/geo"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
)

const exclusionZonesKey = "exclusion_zones"

// ExclusionStore хранит зоны, в которых пользователь запретил уведомления.
// Набор зон целиком персистится в KV-хранилище при каждом изменении.
type ExclusionStore struct {
	kv           KVStore
	logger       *logrus.Logger
	radiusMeters float64

	mu    sync.Mutex
	zones []models.ExclusionZone
}

func NewExclusionStore(kv KVStore, radiusMeters float64, logger *logrus.Logger) *ExclusionStore {
	return &ExclusionStore{
		kv:           kv,
		logger:       logger,
		radiusMeters: radiusMeters,
	}
}

// Load восстанавливает набор зон из KV-хранилища при старте
func (s *ExclusionStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, exclusionZonesKey)
	if err != nil {
		return fmt.Errorf("failed to load exclusion zones: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &s.zones); err != nil {
			return fmt.Errorf("failed to unmarshal exclusion zones: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"component": "exclusion_store",
		"zones":     len(s.zones),
	}).Info("Exclusion zones loaded")
	return nil
}

// Add создает новую зону исключения и синхронно персистит набор
func (s *ExclusionStore) Add(ctx context.Context, name string, center models.Coordinate) (*models.ExclusionZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone := models.ExclusionZone{
		ID:        uuid.New(),
		Name:      name,
		Center:    center,
		CreatedAt: time.Now(),
	}
	s.zones = append(s.zones, zone)

	if err := s.persistLocked(ctx); err != nil {
		// Откатываем добавление, чтобы список в памяти не расходился с хранилищем
		s.zones = s.zones[:len(s.zones)-1]
		return nil, err
	}
	return &zone, nil
}

// Remove удаляет зону по идентификатору
func (s *ExclusionStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.zones {
		if s.zones[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("exclusion zone with id %s not found", id)
	}

	removed := s.zones[idx]
	s.zones = append(s.zones[:idx], s.zones[idx+1:]...)

	if err := s.persistLocked(ctx); err != nil {
		s.zones = append(s.zones, removed)
		return err
	}
	return nil
}

// List возвращает копию списка зон
func (s *ExclusionStore) List() []models.ExclusionZone {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ExclusionZone, len(s.zones))
	copy(out, s.zones)
	return out
}

// IsExcluded проверяет, попадает ли координата в радиус какой-либо зоны.
// Проверка выполняется до запроса к сервису мест, чтобы не тратить квоту.
func (s *ExclusionStore) IsExcluded(coord models.Coordinate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.zones {
		if geo.WithinRadius(s.zones[i].Center, coord, s.radiusMeters) {
			return true
		}
	}
	return false
}

func (s *ExclusionStore) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.zones)
	if err != nil {
		return fmt.Errorf("failed to marshal exclusion zones: %w", err)
	}
	if err := s.kv.Set(ctx, exclusionZonesKey, raw); err != nil {
		return fmt.Errorf("failed to persist exclusion zones: %w", err)
	}
	return nil
}
