package datadog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 15 * time.Second

// APIError is returned for any 4xx/5xx response from Datadog. The message is
// assembled from the `errors` list in the response body when one is present,
// and the raw body is kept for the caller to surface verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status=%d)", e.Message, e.StatusCode)
}

const genericAPIError = "Datadog API error"

// NormalizeSite reduces a site argument to the bare regional domain,
// e.g. "https://api.us3.datadoghq.com" -> "us3.datadoghq.com". It is
// idempotent, so already-normalized sites pass through unchanged.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		if u, err := url.Parse(site); err == nil {
			site = u.Host
		}
	}
	// Handle users passing "api.us3.datadoghq.com"
	return strings.TrimPrefix(site, "api.")
}

func apiHost(site string) string {
	return "https://api." + NormalizeSite(site)
}

// Client is a thin wrapper around the Datadog v1/v2 HTTP APIs. Callers are
// expected to Close() the client when finished with it.
type Client struct {
	resty *resty.Client
}

func New(site, apiKey, appKey string) *Client {
	return NewWithTimeout(site, apiKey, appKey, DefaultTimeout)
}

func NewWithTimeout(site, apiKey, appKey string, timeout time.Duration) *Client {
	return newClient(apiHost(site), apiKey, appKey, timeout)
}

func newClient(host, apiKey, appKey string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(host).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":             "application/json",
			"Content-Type":       "application/json",
			"DD-API-KEY":         apiKey,
			"DD-APPLICATION-KEY": appKey,
		})

	return &Client{resty: r}
}

// Close releases the client's idle connections.
func (c *Client) Close() {
	c.resty.GetClient().CloseIdleConnections()
}

// do issues a request and decodes the JSON response. Non-2xx responses come
// back as *APIError; transport failures and undecodable success bodies come
// back as plain errors.
func (c *Client) do(method, path string, params map[string]string, body any) (map[string]any, error) {
	req := c.resty.R()
	if params != nil {
		req.SetQueryParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}

	log.Debug("datadog API response", "method", method, "path", path, "status", resp.StatusCode())

	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %v", err)
	}

	return out, nil
}

// newAPIError extracts the error message from a Datadog error response,
// falling back to a generic message when the body has no usable `errors` list.
func newAPIError(status int, body []byte) *APIError {
	msg := genericAPIError

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		if errs, ok := payload["errors"].([]any); ok && len(errs) > 0 {
			parts := make([]string, 0, len(errs))
			for _, e := range errs {
				parts = append(parts, fmt.Sprintf("%v", e))
			}
			msg = strings.Join(parts, "; ")
		}
	}

	return &APIError{StatusCode: status, Message: msg, Body: string(body)}
}

// GetIncident fetches an incident by ID. The optional include parameter is a
// comma-separated list of related objects to include in the response.
func (c *Client) GetIncident(id string, include string) (map[string]any, error) {
	var params map[string]string
	if include != "" {
		params = map[string]string{"include": include}
	}
	return c.do("GET", "/api/v2/incidents/"+id, params, nil)
}

// GetIncidentType fetches an incident type configuration by UUID.
func (c *Client) GetIncidentType(uuid string) (map[string]any, error) {
	return c.do("GET", "/api/v2/incidents/config/types/"+uuid, nil, nil)
}

// GetIncidentIntegrations fetches the incident's integration metadata
// (Slack, Jira, etc.).
func (c *Client) GetIncidentIntegrations(id string) (map[string]any, error) {
	return c.do("GET", "/api/v2/incidents/"+id+"/relationships/integrations", nil, nil)
}

// UpdateIncident patches the incident with the given attributes, wrapped in
// the JSON:API resource object shape the v2 API expects.
func (c *Client) UpdateIncident(id string, attributes map[string]any) (map[string]any, error) {
	payload := map[string]any{
		"data": map[string]any{
			"type":       "incidents",
			"id":         id,
			"attributes": attributes,
		},
	}
	return c.do("PATCH", "/api/v2/incidents/"+id, nil, payload)
}

// SearchLogsOptions holds the parameters for a log search. Zero-valued
// optional fields (Cursor, Indexes, StorageTier) are omitted from the request
// body entirely.
type SearchLogsOptions struct {
	Query       string
	From        string
	To          string
	Limit       int
	Cursor      string
	Indexes     []string
	StorageTier string
}

// SearchLogs runs one page of a log search with Datadog query syntax.
func (c *Client) SearchLogs(opts SearchLogsOptions) (map[string]any, error) {
	filter := map[string]any{
		"query": opts.Query,
		"from":  opts.From,
		"to":    opts.To,
	}
	if len(opts.Indexes) > 0 {
		filter["indexes"] = opts.Indexes
	}
	if opts.StorageTier != "" {
		filter["storage_tier"] = opts.StorageTier
	}

	page := map[string]any{"limit": opts.Limit}
	if opts.Cursor != "" {
		page["cursor"] = opts.Cursor
	}

	body := map[string]any{
		"filter": filter,
		"sort":   "-timestamp",
		"page":   page,
	}

	return c.do("POST", "/api/v2/logs/events/search", nil, body)
}

// Validate checks the API key against /api/v1/validate. The endpoint only
// inspects DD-API-KEY; the application key header is sent but ignored.
func (c *Client) Validate() (map[string]any, error) {
	return c.do("GET", "/api/v1/validate", nil, nil)
}
