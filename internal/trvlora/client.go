// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package trvlora provides the HTTP client for the trvlora chat API.
package trvlora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the trvlora client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling. The user sees a single
// generic message either way; the distinction exists for logs and telemetry.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeNetwork covers transport failures, timeouts, and non-2xx
	// statuses: the request never produced a usable payload.
	ErrTypeNetwork
	// ErrTypeMalformed covers payloads that arrived but could not be
	// decoded or normalized (bad JSON, unparseable price).
	ErrTypeMalformed
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeNetwork, Message: "request timed out"}
	ErrUnreachable = &ClientError{Type: ErrTypeNetwork, Message: "trvlora API is unreachable"}
)

// IsNetworkFailure reports whether err is a transport-level failure.
func IsNetworkFailure(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNetwork
}

// IsMalformedResponse reports whether err is a payload decoding failure.
func IsMalformedResponse(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeMalformed
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the trvlora client.
type ClientConfig struct {
	// BaseURL is the chat API base URL (default: https://local.trvlora.com)
	BaseURL string

	// Timeout for chat requests (default: 30s)
	Timeout time.Duration

	// RequestsPerMinute caps outbound chat requests (default: 20).
	// Zero disables the limiter.
	RequestsPerMinute int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://local.trvlora.com",
		Timeout:           30 * time.Second,
		RequestsPerMinute: 20,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the trvlora chat API.
//
// The Client is safe for concurrent use, although the dispatcher issues at
// most one request per dispatch.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "https://local.trvlora.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if config.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), config.RequestsPerMinute)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: limiter,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends one user message and returns the decoded response.
//
// Transport failures, timeouts, and non-2xx statuses surface as
// ErrTypeNetwork; an undecodable payload surfaces as ErrTypeMalformed.
// Missing optional fields (prompts, cards) are not errors.
func (c *Client) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &ClientError{Type: ErrTypeNetwork, Message: "rate limit wait aborted", Cause: err}
		}
	}

	body, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &ClientError{
			Type:    ErrTypeNetwork,
			Message: "unexpected status from trvlora: " + resp.Status,
		}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "failed to decode response", Cause: err}
	}

	return &result, nil
}
