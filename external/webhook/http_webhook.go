package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foxseedlab/syncbot/internal/webhook"
)

const httpTimeout = 10 * time.Second

type HTTPSender struct {
	webhookURL string
	userAgent  string
	client     *http.Client
}

func NewHTTPSender(webhookURL, userAgent string) *HTTPSender {
	return &HTTPSender{
		webhookURL: webhookURL,
		userAgent:  userAgent,
		client:     &http.Client{Timeout: httpTimeout},
	}
}

func (s *HTTPSender) SendDispatch(ctx context.Context, payload webhook.DispatchPayload) error {
	if s.webhookURL == "" {
		return nil
	}
	if payload.Event == "" {
		payload.Event = webhook.EventSyncDispatched
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
