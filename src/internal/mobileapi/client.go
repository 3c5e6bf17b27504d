package mobileapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/mobile-manager/src/internal/errors"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// PathPrefix is appended to the configured base URL.
const PathPrefix = "/api/mobiles"

const (
	endpointAll    = "/all"
	endpointGet    = "/get/{{id}}"
	endpointAdd    = "/add"
	endpointUpdate = "/update"
	endpointDelete = "/delete/{{id}}"
)

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one mobiles API instance. It is safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

// NewClient creates a client for the API at baseURL (scheme://host[:port]).
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/") + PathPrefix,
	}
}

// BaseURL returns the full endpoint prefix, including PathPrefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListAll returns every record known to the service.
func (c *Client) ListAll(ctx context.Context) ([]models.Mobile, error) {
	body, err := c.do(ctx, http.MethodGet, endpointAll, nil)
	if err != nil {
		return nil, err
	}

	var mobiles []models.Mobile
	if err := json.Unmarshal(body, &mobiles); err != nil {
		return nil, errors.NewTransportError("failed to decode mobiles list", err)
	}
	return mobiles, nil
}

// GetByID returns a single record. A missing record surfaces as a transport
// error carrying the 4xx status.
func (c *Client) GetByID(ctx context.Context, id string) (*models.Mobile, error) {
	body, err := c.do(ctx, http.MethodGet, withID(endpointGet, id), nil)
	if err != nil {
		return nil, err
	}

	var mobile models.Mobile
	if err := json.Unmarshal(body, &mobile); err != nil {
		return nil, errors.NewTransportError("failed to decode mobile", err)
	}
	return &mobile, nil
}

// Add creates a record. The echoed record is nil when the service answers
// with something other than a record.
func (c *Client) Add(ctx context.Context, mobile models.Mobile) (*models.Mobile, error) {
	return c.send(ctx, http.MethodPost, endpointAdd, mobile)
}

// Update replaces the record with mobile.ID.
func (c *Client) Update(ctx context.Context, mobile models.Mobile) (*models.Mobile, error) {
	return c.send(ctx, http.MethodPut, endpointUpdate, mobile)
}

// DeleteByID removes a record and returns the service's confirmation text.
// A JSON string body is unwrapped; any other body is returned as-is.
func (c *Client) DeleteByID(ctx context.Context, id string) (string, error) {
	body, err := c.do(ctx, http.MethodDelete, withID(endpointDelete, id), nil)
	if err != nil {
		return "", err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var message string
		if err := json.Unmarshal(trimmed, &message); err == nil {
			return message, nil
		}
	}
	return string(trimmed), nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, mobile models.Mobile) (*models.Mobile, error) {
	payload, err := json.Marshal(mobile)
	if err != nil {
		return nil, errors.NewInternalError("failed to encode mobile", err)
	}

	body, err := c.do(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var echoed models.Mobile
	if err := json.Unmarshal(body, &echoed); err != nil {
		log.Debugf("%s %s returned a non-record body: %v", method, endpoint, err)
		return nil, nil
	}
	return &echoed, nil
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to create %s %s request", method, endpoint), err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("%s %s failed", method, endpoint), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError("failed to read response body", err)
	}

	log.Debugf("%s %s -> %d", method, req.URL.String(), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewTransportError(
			fmt.Sprintf("unexpected status code %d for %s %s", resp.StatusCode, method, endpoint), nil)
	}

	return body, nil
}

// withID renders an endpoint template with a path-escaped id.
func withID(endpoint, id string) string {
	return fasttemplate.ExecuteString(endpoint, "{{", "}}", map[string]interface{}{
		"id": url.PathEscape(id),
	})
}
