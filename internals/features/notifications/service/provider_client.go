// file: internals/features/notifications/service/provider_client.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured means the provider URL is absent from the environment.
var ErrNotConfigured = errors.New("provider not configured")

// ProviderClient posts one JSON payload to an outbound notification provider.
// Exactly one attempt per call; delivery retries are the provider's problem.
type ProviderClient struct {
	URL    string
	Client *http.Client
}

func NewProviderClient(url string) *ProviderClient {
	return &ProviderClient{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *ProviderClient) Send(ctx context.Context, payload any) error {
	if p.URL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}
