// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/drschille/MessageSearchBE/core"
)

// batchPath is the service endpoint that accepts document batches.
const batchPath = "/v1/documents:batch"

// requestTimeout bounds every individual send attempt.
const requestTimeout = 30 * time.Second

// retryableStatuses are the HTTP statuses worth retrying. Anything else
// outside the 2xx range fails the batch immediately.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// batchRequest is the wire payload of one batch call.
type batchRequest struct {
	Documents []core.ImportDocument `json:"documents"`
}

// Client sends document batches to the MessageSearch batch endpoint.
type Client struct {
	httpc      *http.Client
	url        string
	token      string
	retries    int
	retryDelay time.Duration
}

// NewClient creates a transport client for the given service base URL.
// retries is the number of additional attempts after the first one;
// retryDelay is the base backoff delay and doubles before each retry.
func NewClient(baseURL, token string, retries int, retryDelay time.Duration) *Client {
	if retries < 0 {
		retries = 0
	}
	return &Client{
		httpc:      &http.Client{Timeout: requestTimeout},
		url:        strings.TrimRight(baseURL, "/") + batchPath,
		token:      token,
		retries:    retries,
		retryDelay: retryDelay,
	}
}

// Send transmits one batch and returns the service's result verbatim.
// Retryable failures (429/5xx gateway statuses, network errors) are
// retried up to the configured budget with exponential backoff; any
// other non-2xx status fails immediately. The backoff wait is aborted
// if ctx is canceled.
func (c *Client) Send(ctx context.Context, docs []core.ImportDocument) (*core.BatchResult, error) {
	payload, err := json.Marshal(batchRequest{Documents: docs})
	if err != nil {
		return nil, fmt.Errorf("cannot encode batch: %w", err)
	}

	var lastErr *TransportError
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx, backoffDelay(attempt, c.retryDelay)); err != nil {
				return nil, err
			}
			slog.Debug("retrying batch", "attempt", attempt+1, "maxAttempts", c.retries+1)
		}

		result, terr := c.attempt(ctx, payload)
		if terr == nil {
			return result, nil
		}
		lastErr = terr
		if !terr.retryable {
			return nil, terr
		}
		slog.Debug("batch attempt failed", "attempt", attempt+1, "status", terr.Status, "error", terr.Err)
	}
	return nil, lastErr
}

// attempt performs a single POST of the payload.
func (c *Client) attempt(ctx context.Context, payload []byte) (*core.BatchResult, *TransportError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		// No response received; always worth retrying.
		return nil, &TransportError{Err: err, retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &TransportError{
			Status:    resp.StatusCode,
			Body:      strings.TrimSpace(string(body)),
			retryable: retryableStatuses[resp.StatusCode],
		}
	}

	var result core.BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("cannot decode response: %w", err)}
	}
	return &result, nil
}

// wait sleeps for the backoff delay, returning early if ctx is done.
func (c *Client) wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoffDelay computes the wait before retry attempt k (1-indexed):
// base, 2*base, 4*base, ...
func backoffDelay(k int, base time.Duration) time.Duration {
	return base << (k - 1)
}
