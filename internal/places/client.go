package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/shenikar/venue_prompt_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// SelectionPolicy определяет, какой из кандидатов подходящей категории выбирается
const (
	SelectionFirst      = "first"      // первый в порядке, возвращенном сервисом
	SelectionLikelihood = "likelihood" // с наибольшей оценкой правдоподобия
)

// Client - адаптер к внешнему сервису поиска заведений рядом с координатой.
// Сервис ненадежен и квотируется: ошибки сети и недоступность - штатный исход,
// клиент дополнительно ограничивает частоту запросов на своей стороне.
type Client struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	accepted   map[string]struct{}
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	accepted := make(map[string]struct{}, len(cfg.AcceptedCategories))
	for _, c := range cfg.AcceptedCategories {
		accepted[c] = struct{}{}
	}

	return &Client{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.PlacesTimeout,
		},
		limiter:  rate.NewLimiter(rate.Limit(cfg.PlacesRateLimitPerSec), 1),
		accepted: accepted,
	}
}

// apiPlace - запись ответа сервиса поиска мест
type apiPlace struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Likelihood float64 `json:"likelihood"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type lookupResponse struct {
	Places []apiPlace `json:"places"`
}

// Lookup возвращает кандидатов-заведений рядом с координатой, отсортированных сервисом
func (c *Client) Lookup(ctx context.Context, coord models.Coordinate) ([]models.VenueCandidate, error) {
	if c.cfg.PlacesURL == "" {
		return nil, fmt.Errorf("places API URL is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("places rate limiter: %w", err)
	}

	reqURL, err := url.Parse(c.cfg.PlacesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse places API URL: %w", err)
	}
	q := reqURL.Query()
	q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create places request: %w", err)
	}
	if c.cfg.PlacesAPIKey != "" {
		req.Header.Set("X-API-Key", c.cfg.PlacesAPIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places service returned status %d", resp.StatusCode)
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	candidates := make([]models.VenueCandidate, 0, len(parsed.Places))
	for _, p := range parsed.Places {
		candidates = append(candidates, models.VenueCandidate{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Likelihood: p.Likelihood,
			Coordinate: models.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
		})
	}

	c.logger.WithFields(logrus.Fields{
		"component": "places_client",
		"count":     len(candidates),
	}).Debug("Places lookup completed")

	return candidates, nil
}

// Select выбирает кандидата подходящей категории согласно настроенной политике.
// Отсутствие подходящего кандидата - это "нет кандидата", а не ошибка.
func (c *Client) Select(candidates []models.VenueCandidate) *models.VenueCandidate {
	var best *models.VenueCandidate
	for i := range candidates {
		if _, ok := c.accepted[candidates[i].Category]; !ok {
			continue
		}
		switch c.cfg.PlacesSelectionPolicy {
		case SelectionLikelihood:
			if best == nil || candidates[i].Likelihood > best.Likelihood {
				best = &candidates[i]
			}
		default:
			// Политика "first" сохраняет порядок сервиса
			return &candidates[i]
		}
	}
	return best
}
