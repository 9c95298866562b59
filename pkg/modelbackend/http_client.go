package modelbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

var _ ModelBackend = &HTTPClient{}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) Complete(ctx context.Context, payload Request) (*Response, error) {
	if c.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var out Response
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return &out, nil
}
