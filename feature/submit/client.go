package submit

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Payload is one report request body.
type Payload struct {
	Bureau     string           `json:"bureau"`
	Type       string           `json:"type"`
	Settings   Settings         `json:"settings"`
	Applicants []map[string]any `json:"applicants"`
}

// NewPayload builds the request body for a single applicant. Report type is
// always SOFT: submissions are comparison traffic, never real pulls.
func NewPayload(applicant map[string]any, bureau string, settings Settings) Payload {
	return Payload{
		Bureau:     bureau,
		Type:       "SOFT",
		Settings:   settings,
		Applicants: []map[string]any{applicant},
	}
}

// Response is the parsed service response recorded in the capture document.
type Response struct {
	StatusCode int               `json:"status_code"`
	Reason     string            `json:"reason"`
	Headers    map[string]string `json:"headers"`
	Body       any               `json:"body"`
}

// Client posts report requests to one environment target.
type Client struct {
	http    *http.Client
	url     string
	host    string
	token   string
	runID   string
	retries int
	backoff time.Duration
	log     *zap.Logger
}

// NewClient builds a client for the given target. Every request of the run
// carries the same generated correlation id so server-side logs can be tied
// back to one capture.
func NewClient(cfg *Config, target Target, log *zap.Logger) *Client {
	transport := http.DefaultTransport
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		http: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: transport,
		},
		url:     target.URL,
		host:    target.Host,
		token:   cfg.Token,
		runID:   uuid.NewString(),
		retries: cfg.Retries,
		backoff: time.Duration(cfg.BackoffSeconds * float64(time.Second)),
		log:     log,
	}
}

// RunID returns the correlation id attached to every request of this run.
func (c *Client) RunID() string { return c.runID }

// Submit posts one payload, retrying transport failures with exponential
// backoff. A non-2xx status is a response, not a failure; it is parsed and
// returned like any other so the capture records what the service said.
func (c *Client) Submit(ctx context.Context, payload Payload) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			sleep := c.backoff * time.Duration(1<<(attempt-1))
			c.log.Warn("retrying request",
				zap.Int("attempt", attempt),
				zap.Duration("sleep", sleep),
				zap.Error(lastErr),
			)
			select {
			case <-time.After(sleep):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.post(ctx, payload)
		if err != nil {
			lastErr = err
			continue
		}
		return parseResponse(resp)
	}
	return nil, fmt.Errorf("request failed after %d retries: %w", c.retries, lastErr)
}

func (c *Client) post(ctx context.Context, payload Payload) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Run-Id", c.runID)
	req.Host = c.host

	return c.http.Do(req)
}

// parseResponse reads the response into the capture shape. Non-JSON bodies
// are kept as raw text rather than discarded.
func parseResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		body = string(data)
	}

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
		Headers:    headers,
		Body:       body,
	}, nil
}
