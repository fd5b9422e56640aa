package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const probePath = "connection_test"

// client implements the Client interface over the Firebase REST dialect:
// every path maps to <base>/<path>.json?auth=<secret>.
type client struct {
	baseURL    string
	secret     string
	timeout    time.Duration
	httpClient *http.Client
}

// New creates a new record store client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secret:     cfg.Secret,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

func (c *client) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	if c.secret != "" {
		params.Set("auth", c.secret)
	}

	u := fmt.Sprintf("%s/%s.json", c.baseURL, strings.Trim(path, "/"))
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// do sends the request and returns the raw body of a 2xx response
func (c *client) do(ctx context.Context, method, path string, params url.Values, body interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	return data, nil
}

func decode(data []byte, out interface{}) (bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return true, nil
}

// Get decodes the value at path. Missing values report false without error.
func (c *client) Get(ctx context.Context, path string, out interface{}) (bool, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return false, err
	}
	return decode(data, out)
}

// Set overwrites the value at path
func (c *client) Set(ctx context.Context, path string, value interface{}) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, value)
	return err
}

// Update merges fields into the value at path
func (c *client) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, fields)
	return err
}

// Delete removes the value at path
func (c *client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// Push appends value under path and returns the generated child key
func (c *client) Push(ctx context.Context, path string, value interface{}) (string, error) {
	data, err := c.do(ctx, http.MethodPost, path, nil, value)
	if err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to decode push response: %w", err)
	}
	return result.Name, nil
}

// Query fetches the children of path matching the filters
func (c *client) Query(ctx context.Context, path string, query *Query, out interface{}) (bool, error) {
	params := url.Values{}
	orderBy := "$key"
	if query != nil && query.OrderBy != "" {
		orderBy = query.OrderBy
	}
	params.Set("orderBy", strconv.Quote(orderBy))

	if query != nil {
		if query.LimitToFirst > 0 {
			params.Set("limitToFirst", strconv.Itoa(query.LimitToFirst))
		}
		if query.LimitToLast > 0 {
			params.Set("limitToLast", strconv.Itoa(query.LimitToLast))
		}
		if query.StartAt != nil {
			params.Set("startAt", strconv.Quote(*query.StartAt))
		}
		if query.EndAt != nil {
			params.Set("endAt", strconv.Quote(*query.EndAt))
		}
		if query.EqualTo != nil {
			params.Set("equalTo", strconv.Quote(*query.EqualTo))
		}
	}

	data, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return false, err
	}
	return decode(data, out)
}

// Exists reports whether a value is stored at path
func (c *client) Exists(ctx context.Context, path string) (bool, error) {
	return c.Get(ctx, path, nil)
}

// Increment reads the number at path, adds amount and writes it back.
// A missing value counts as zero. The read and write are not atomic.
func (c *client) Increment(ctx context.Context, path string, amount float64) (float64, error) {
	var current interface{}
	found, err := c.Get(ctx, path, &current)
	if err != nil {
		return 0, err
	}

	var value float64
	if found {
		number, ok := current.(float64)
		if !ok {
			return 0, ErrNotNumeric
		}
		value = number
	}

	value += amount
	if err := c.Set(ctx, path, value); err != nil {
		return 0, err
	}
	return value, nil
}

// TestConnection round-trips a probe document
func (c *client) TestConnection(ctx context.Context) error {
	probe := map[string]string{
		"test":      "connection",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if err := c.Set(ctx, probePath, probe); err != nil {
		return err
	}

	var result map[string]string
	found, err := c.Get(ctx, probePath, &result)
	if err != nil {
		return err
	}

	if err := c.Delete(ctx, probePath); err != nil {
		return err
	}

	if !found || result["test"] != "connection" {
		return ErrProbeMismatch
	}
	return nil
}
