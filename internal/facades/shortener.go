package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
)

// ShortenerFacade rewrites long presigned links into short ones through a
// spoo.me-style shortening API.
type ShortenerFacade struct {
	endpoint string
	client   *http.Client
}

// NewShortenerFacade creates a facade posting to the given endpoint.
func NewShortenerFacade(endpoint string) *ShortenerFacade {
	return &ShortenerFacade{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Shorten submits a long URL and returns the short one. Repeated calls may
// return different short codes for the same input.
func (f *ShortenerFacade) Shorten(ctx context.Context, longURL string) (string, error) {
	form := url.Values{"url": {longURL}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("shortener request failed", "endpoint", f.endpoint, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Log.Errorw("shortener rejected url", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("shortener returned status %d", resp.StatusCode)
	}

	var out struct {
		ShortURL string `json:"short_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode shortener response: %w", err)
	}
	if out.ShortURL == "" {
		return "", fmt.Errorf("shortener returned empty short_url")
	}

	return out.ShortURL, nil
}
