// Package client is a typed HTTP client for the go-foxstarter API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-while/go-foxstarter/internal/models"
)

// Diagnostic endpoint names accepted by Message
const (
	EndpointHello    = "hello"
	EndpointTest     = "test"
	EndpointRegional = "hau"
)

// Client talks to one server. It never retries and sets no timeouts of its
// own; cancel ctx to give up on a request.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient selects
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the server URL the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Counter asks the server to apply action to current
func (c *Client) Counter(ctx context.Context, action string, current int64) (models.CounterResponse, error) {
	var resp models.CounterResponse
	err := c.post(ctx, "/counter", models.CounterRequest{Action: action, CurrentCount: &current}, &resp)
	return resp, err
}

// Theme submits the selected theme and returns the server's confirmation
func (c *Client) Theme(ctx context.Context, theme string) (models.ThemeResponse, error) {
	var resp models.ThemeResponse
	err := c.post(ctx, "/theme", models.ThemeRequest{Theme: theme}, &resp)
	return resp, err
}

// Message calls one of the diagnostic endpoints
func (c *Client) Message(ctx context.Context, endpoint string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.post(ctx, "/"+strings.TrimPrefix(endpoint, "/"), struct{}{}, &resp)
	return resp, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encoding request failed")
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "building request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		return &UnreachableError{URL: url, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &UnreachableError{URL: url, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return newStatusError(res.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(ErrBadResponse, "decoding %s reply: %v", path, err)
	}
	return nil
}
