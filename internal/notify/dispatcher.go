package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Notification - локальное уведомление для пользователя. Payload несет
// идентификатор заведения, который UI вернет при взаимодействии с уведомлением.
type Notification struct {
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Payload   map[string]string `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
}

// Dispatcher - интерфейс доставки уведомлений. Возврат без ошибки означает
// подтвержденную доставку; только после этого движок обновляет леджер.
type Dispatcher interface {
	Submit(ctx context.Context, n Notification) error
}

// WebhookDispatcher доставляет уведомления push-шлюзу через подписанный вебхук
type WebhookDispatcher struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewWebhookDispatcher(cfg *config.Config, logger *logrus.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Submit отправляет уведомление с повторами и экспоненциальной задержкой.
// Успех - любой 2xx ответ шлюза; иначе возвращается ошибка, и вызывающая
// сторона не должна считать уведомление отправленным.
func (d *WebhookDispatcher) Submit(ctx context.Context, n Notification) error {
	log := d.logger.WithFields(logrus.Fields{
		"component": "webhook_dispatcher",
		"venue_id":  n.Payload["venueId"],
	})

	if d.cfg.WebhookURL == "" {
		return fmt.Errorf("webhook URL is not configured")
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	maxRetries := d.cfg.WebhookMaxRetries
	baseDelay := d.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.WebhookURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create webhook request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
		if d.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(payload, d.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := d.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("Failed to send notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Notification delivered successfully")
			return nil
		}

		lastErr = fmt.Errorf("gateway returned status %d", resp.StatusCode)
		log.Warnf("Notification delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	return fmt.Errorf("failed to deliver notification after %d retries: %w", maxRetries, lastErr)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
