package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/venue_prompt_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, url string) *WebhookDispatcher {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookDispatcher(cfg, logger)
}

func testNotification() Notification {
	return Notification{
		Title:     "New Venue Detected",
		Body:      "Are you at Кофейня у моста? Would you like to record the noise level?",
		Payload:   map[string]string{"venueId": "venue-x"},
		Timestamp: time.Now(),
	}
}

func TestSubmit_SuccessWithSignature(t *testing.T) {
	var received []byte
	var signature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		signature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := newTestDispatcher(t, server.URL)
	err := d.Submit(context.Background(), testNotification())
	require.NoError(t, err)

	// Подпись должна соответствовать телу запроса
	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write(received)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
	assert.Contains(t, string(received), "venue-x")
}

func TestSubmit_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := newTestDispatcher(t, server.URL)
	err := d.Submit(context.Background(), testNotification())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubmit_FailsAfterAllRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := newTestDispatcher(t, server.URL)
	err := d.Submit(context.Background(), testNotification())
	require.Error(t, err)
	assert.ErrorContains(t, err, "after 3 retries")
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubmit_NoURLConfigured(t *testing.T) {
	d := newTestDispatcher(t, "")
	err := d.Submit(context.Background(), testNotification())
	require.Error(t, err)
	assert.ErrorContains(t, err, "not configured")
}
