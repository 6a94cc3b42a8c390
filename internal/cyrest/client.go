// Package cyrest provides an HTTP client for the CyREST API of a running
// Cytoscape Desktop instance. It is a thin translation layer: requests carry
// only the fields the caller populated, responses are extracted tolerantly,
// and no state is cached between calls.
package cyrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is where Cytoscape Desktop serves CyREST by default.
const DefaultBaseURL = "http://localhost:1234"

// Client is an HTTP client for CyREST.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a new client. If httpClient is nil a plain http.Client is used;
// requests then block for as long as Cytoscape takes to answer.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// APIError is a non-2xx answer from CyREST.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cyrest: status %d", e.StatusCode)
	}
	return fmt.Sprintf("cyrest: status %d: %s", e.StatusCode, e.Message)
}

// Version returns the CyREST root resource (API and Cytoscape versions).
// It doubles as the connectivity check.
func (c *Client) Version(ctx context.Context) (json.RawMessage, error) {
	res, err := c.do(ctx, http.MethodGet, "/v1", nil, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(res.Raw), nil
}

// do performs one request against CyREST. body is marshaled as JSON when
// non-nil. The parsed response body is returned; callers pick fields out of it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (gjson.Result, error) {
	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return gjson.Result{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(data)}
	}
	return gjson.ParseBytes(data), nil
}

// apiMessage pulls a human-readable message out of a CyREST error body.
func apiMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "errors.0.message"); msg.Exists() {
		return msg.String()
	}
	return strings.TrimSpace(string(body))
}
