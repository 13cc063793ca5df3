// SPDX-License-Identifier: EPL-2.0

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a call when Config leaves Timeout unset.
const DefaultTimeout = 30 * time.Second

// Config configures a Client.
type Config struct {
	// BaseURL is the service root, e.g. "https://voice.example.com".
	// Trailing slashes are trimmed.
	BaseURL string
	// APIKey, when set, is sent as the X-API-Key header on every
	// call.
	APIKey string
	// Timeout bounds each call end to end. Defaults to
	// DefaultTimeout.
	Timeout time.Duration
}

// Client calls the remote voice service, one typed method per
// operation. Every failure surfaces as an *OperationError.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// envelope is the verdict header every response carries alongside its
// operation-specific fields.
type envelope struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// post runs one JSON operation: encode in, POST to path, check the
// envelope, decode the body into out. Transport, status, envelope and
// decode failures all come back as *OperationError.
func (c *Client) post(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &OperationError{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &OperationError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &OperationError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &OperationError{
			Op:  op,
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &OperationError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &OperationError{Op: op, Err: fmt.Errorf("decoding envelope: %w", err)}
	}
	if !env.Success {
		return &OperationError{Op: op, Message: env.ErrorMessage}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &OperationError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}

	logrus.WithFields(logrus.Fields{
		"op":   op,
		"path": path,
	}).Debug("remote operation completed")

	return nil
}
