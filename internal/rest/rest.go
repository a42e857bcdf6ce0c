// Package rest issues the SDK's authenticated JSON calls against the
// gateway and maps HTTP-layer failures onto domain.TransportError.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rileydigitalservices/payhere-go/config"
	"github.com/rileydigitalservices/payhere-go/domain"
)

// DefaultTimeout is applied to the HTTP client the SDK builds when the
// caller does not inject one.
const DefaultTimeout = 30 * time.Second

// Client is the shared caller behind both resource clients. It keeps no
// per-call state; the underlying http.Client is the only shared resource
// and is assumed safe for concurrent reuse.
type Client struct {
	cfg        config.Resolved
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg config.Resolved, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// Response carries a raw gateway reply for calls whose body the SDK does
// not interpret.
type Response struct {
	StatusCode int
	Body       []byte
}

// PostJSON marshals payload to path. Non-2xx statuses and network faults
// come back as *domain.TransportError; the response body is never
// interpreted here.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	op := "POST " + path

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	return c.do(req, op)
}

// GetJSON issues a GET and decodes the 2xx response body into out. A body
// that fails to decode is a transport failure, not a domain outcome.
func (c *Client) GetJSON(ctx context.Context, path string, out any) (*Response, error) {
	op := "GET " + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	resp, err := c.do(req, op)
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return nil, &domain.TransportError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Body:       resp.Body,
				Err:        fmt.Errorf("decode response: %w", err),
			}
		}
	}
	return resp, nil
}

func (c *Client) do(req *http.Request, op string) (*Response, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-App-ID", c.cfg.AppID)
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	c.logger.Debug("issuing gateway request",
		zap.String("op", op),
		zap.String("environment", string(c.cfg.Environment)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway request failed",
			zap.String("op", op),
			zap.Error(err))
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("gateway returned non-success status",
			zap.String("op", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return nil, &domain.TransportError{Op: op, StatusCode: resp.StatusCode, Body: respBody}
	}

	c.logger.Debug("gateway request completed",
		zap.String("op", op),
		zap.Int("status_code", resp.StatusCode))

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
