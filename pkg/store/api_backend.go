package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	ConfigShowPath    = "/api/v0/config/show"
	ConfigReplacePath = "/api/v0/config/replace"

	DefaultPollInterval = 5 * time.Second
)

// APIBackend talks to a node's HTTP config API.
type APIBackend struct {
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewAPIBackend creates a backend for the node API at baseURL. A zero poll
// interval falls back to DefaultPollInterval.
func NewAPIBackend(baseURL string, pollInterval time.Duration, logger *slog.Logger) *APIBackend {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &APIBackend{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: 30 * time.Second},
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (b *APIBackend) Name() string {
	return "api:" + b.baseURL
}

func (b *APIBackend) Read(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+ConfigShowPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build config show request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config show: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read config show response: %w", err)
	}
	if err := statusError(resp.StatusCode, body); err != nil {
		return nil, fmt.Errorf("config show: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return nil, fmt.Errorf("config show returned invalid JSON: %w", err)
	}
	return pretty.Bytes(), nil
}

func (b *APIBackend) Write(ctx context.Context, data []byte) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "config.json")
	if err != nil {
		return fmt.Errorf("build config replace form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("build config replace form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("build config replace form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+ConfigReplacePath, &body)
	if err != nil {
		return fmt.Errorf("build config replace request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("config replace: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if err := statusError(resp.StatusCode, respBody); err != nil {
		return fmt.Errorf("config replace: %w", err)
	}
	return nil
}

// Watch polls the API; the store drops reloads whose text did not change.
func (b *APIBackend) Watch(ctx context.Context) (<-chan struct{}, error) {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(b.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}

func statusError(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusForbidden || code == http.StatusMethodNotAllowed:
		return ErrBlocked
	case code == http.StatusNotFound:
		return ErrNotFound
	}

	msg := strings.TrimSpace(string(body))
	var apiErr struct {
		Message string `json:"Message"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("status %d: %s", code, msg)
}
