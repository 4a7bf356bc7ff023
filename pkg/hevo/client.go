package hevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/httpclient"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/ratelimit"
)

var regionBaseURLs = map[string]string{
	"us":   "https://us.hevodata.com/api/public/v2.0",
	"us2":  "https://us2.hevodata.com/api/public/v2.0",
	"eu":   "https://eu.hevodata.com/api/public/v2.0",
	"in":   "https://in.hevodata.com/api/public/v2.0",
	"asia": "https://asia.hevodata.com/api/public/v2.0",
	"au":   "https://au.hevodata.com/api/public/v2.0",
	// Deprecated alias.
	"apac": "https://asia.hevodata.com/api/public/v2.0",
}

// BaseURLForRegion returns the API base URL for a Hevo region,
// defaulting to the US region for unrecognized values.
func BaseURLForRegion(region string) string {
	if u, ok := regionBaseURLs[region]; ok {
		return u
	}
	return regionBaseURLs["us"]
}

// Client talks to the Hevo Data public API. Requests are authenticated
// with basic auth and throttled through a shared rate limiter.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	http      *httpclient.Client
	limiter   *ratelimit.Limiter
	log       *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the region-derived base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *httpclient.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLimiter swaps the rate limiter.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient builds a Client from the Hevo section of the config.
func NewClient(cfg config.HevoConfig, opts ...Option) *Client {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = ratelimit.DefaultRequestsPerMinute
	}

	c := &Client{
		baseURL:   BaseURLForRegion(cfg.Region),
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		http:      httpclient.New(httpclient.WithRetryStrategy(httpclient.NoRetry)),
		limiter:   ratelimit.New(rpm),
		log:       logger.WithComponent("hevo"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body any) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hevoctl/1.0")

	c.log.Debug("api request", "method", method, "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &APIError{Message: "Authentication failed. Check your API key and secret.", StatusCode: 401}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &APIError{Message: "Permission denied. Check your API permissions.", StatusCode: 403}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &APIError{Message: "Resource not found.", StatusCode: 404}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &APIError{Message: "Rate limit exceeded. Please wait and try again.", StatusCode: 429}
	case resp.StatusCode >= 500:
		return nil, &APIError{Message: fmt.Sprintf("Hevo server error: %d", resp.StatusCode), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return map[string]any{"success": true}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Message:    fmt.Sprintf("Request failed: unexpected status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("Request failed: %v", err)}
	}
	if len(raw) == 0 {
		return map[string]any{"success": true}, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("Request failed: invalid JSON response: %v", err)}
	}
	return decoded, nil
}

// Get issues a GET request against the API.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, endpoint, query, nil)
}

// Post issues a POST request against the API.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, endpoint, nil, body)
}

// Put issues a PUT request against the API.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (map[string]any, error) {
	return c.request(ctx, http.MethodPut, endpoint, nil, body)
}

// Delete issues a DELETE request against the API.
func (c *Client) Delete(ctx context.Context, endpoint string) (map[string]any, error) {
	return c.request(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) getList(ctx context.Context, endpoint string, query url.Values) ([]map[string]any, error) {
	resp, err := c.Get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	return dataItems(resp), nil
}

// dataItems extracts the "data" array from a list response envelope.
func dataItems(resp map[string]any) []map[string]any {
	raw, ok := resp["data"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// IsConnected reports whether the API is reachable with the configured
// credentials.
func (c *Client) IsConnected(ctx context.Context) bool {
	q := url.Values{"limit": {"1"}}
	_, err := c.Get(ctx, "/pipelines", q)
	return err == nil
}

// ListPipelines returns up to limit pipelines.
func (c *Client) ListPipelines(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 100
	}
	return c.getList(ctx, "/pipelines", url.Values{"limit": {strconv.Itoa(limit)}})
}

// GetPipeline fetches a pipeline by ID.
func (c *Client) GetPipeline(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Get(ctx, "/pipelines/"+pipelineID, nil)
}

// GetPipelineByName scans all pipelines for a case-insensitive name
// match and returns the full pipeline record, or nil if absent.
func (c *Client) GetPipelineByName(ctx context.Context, name string) (map[string]any, error) {
	pipelines, err := c.ListPipelines(ctx, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range pipelines {
		if equalFold(mapStr(p, "name"), name) {
			return c.GetPipeline(ctx, mapID(p))
		}
		if src, ok := p["source"].(map[string]any); ok && equalFold(mapStr(src, "name"), name) {
			return c.GetPipeline(ctx, mapID(p))
		}
	}
	return nil, nil
}

// PausePipeline pauses a pipeline.
func (c *Client) PausePipeline(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/status", map[string]any{"status": "PAUSED"})
}

// ResumePipeline resumes a paused pipeline.
func (c *Client) ResumePipeline(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/status", map[string]any{"status": "ACTIVE"})
}

// RunPipeline triggers an immediate run.
func (c *Client) RunPipeline(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/run-now", nil)
}

// CreatePipeline creates a pipeline from the given request body.
func (c *Client) CreatePipeline(ctx context.Context, body map[string]any) (map[string]any, error) {
	return c.Post(ctx, "/pipelines", body)
}

// DeletePipeline removes a pipeline permanently.
func (c *Client) DeletePipeline(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Delete(ctx, "/pipelines/"+pipelineID)
}

// UpdatePipelinePriority sets pipeline ingestion priority.
func (c *Client) UpdatePipelinePriority(ctx context.Context, pipelineID, priority string) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/priority", map[string]any{"priority": priority})
}

// GetPipelineSchedule fetches the ingestion schedule.
func (c *Client) GetPipelineSchedule(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Get(ctx, "/pipelines/"+pipelineID+"/schedule", nil)
}

// UpdatePipelineSchedule sets the ingestion frequency in minutes.
func (c *Client) UpdatePipelineSchedule(ctx context.Context, pipelineID string, frequencyMinutes int) (map[string]any, error) {
	body := map[string]any{"type": "FREQUENCY", "frequency": frequencyMinutes}
	return c.Put(ctx, "/pipelines/"+pipelineID+"/schedule", body)
}

// GetPipelineObjects lists objects in a pipeline, optionally filtered
// by status.
func (c *Client) GetPipelineObjects(ctx context.Context, pipelineID, status string) ([]map[string]any, error) {
	q := url.Values{"limit": {"100"}}
	if status != "" {
		q.Set("statuses", status)
	}
	return c.getList(ctx, "/pipelines/"+pipelineID+"/objects", q)
}

// GetObject fetches a single pipeline object.
func (c *Client) GetObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Get(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName), nil)
}

// PauseObject pauses ingestion for one object.
func (c *Client) PauseObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName)+"/pause", nil)
}

// ResumeObject resumes ingestion for one object.
func (c *Client) ResumeObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName)+"/resume", nil)
}

// SkipObject excludes an object from the pipeline.
func (c *Client) SkipObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName)+"/skip", nil)
}

// IncludeObject re-includes a previously skipped object.
func (c *Client) IncludeObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName)+"/include", nil)
}

// RestartObject restarts ingestion for an object from scratch.
func (c *Client) RestartObject(ctx context.Context, pipelineID, objectName string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/objects/"+url.PathEscape(objectName)+"/restart", nil)
}

// GetTransformation fetches the transformation script for a pipeline.
func (c *Client) GetTransformation(ctx context.Context, pipelineID string) (map[string]any, error) {
	return c.Get(ctx, "/pipelines/"+pipelineID+"/transformations", nil)
}

// UpdateTransformation replaces the transformation script.
func (c *Client) UpdateTransformation(ctx context.Context, pipelineID, code string) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/transformations", map[string]any{"code": code})
}

// TestTransformation runs the transformation against sample events.
func (c *Client) TestTransformation(ctx context.Context, pipelineID string, sampleData any) (map[string]any, error) {
	body := map[string]any{}
	if sampleData != nil {
		body["sample_data"] = sampleData
	}
	return c.Post(ctx, "/pipelines/"+pipelineID+"/transformations/test", body)
}

// GetSchemaMapping fetches the field mapping for an event type.
func (c *Client) GetSchemaMapping(ctx context.Context, pipelineID, eventType string) (map[string]any, error) {
	return c.Get(ctx, "/pipelines/"+pipelineID+"/mappings/"+url.PathEscape(eventType), nil)
}

// UpdateSchemaMapping replaces the field mapping for an event type.
func (c *Client) UpdateSchemaMapping(ctx context.Context, pipelineID, eventType string, mapping any) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/mappings/"+url.PathEscape(eventType), map[string]any{"mapping": mapping})
}

// UpdateAutoMapping toggles auto-mapping for a pipeline.
func (c *Client) UpdateAutoMapping(ctx context.Context, pipelineID string, enabled bool) (map[string]any, error) {
	return c.Put(ctx, "/pipelines/"+pipelineID+"/auto-mapping", map[string]any{"enabled": enabled})
}

// ListEventTypes lists event types flowing through a pipeline.
func (c *Client) ListEventTypes(ctx context.Context, pipelineID string) ([]map[string]any, error) {
	return c.getList(ctx, "/pipelines/"+pipelineID+"/event-types", nil)
}

// SkipEventType excludes an event type from the pipeline.
func (c *Client) SkipEventType(ctx context.Context, pipelineID, eventType string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/event-types/"+url.PathEscape(eventType)+"/skip", nil)
}

// IncludeEventType re-includes a previously skipped event type.
func (c *Client) IncludeEventType(ctx context.Context, pipelineID, eventType string) (map[string]any, error) {
	return c.Post(ctx, "/pipelines/"+pipelineID+"/event-types/"+url.PathEscape(eventType)+"/include", nil)
}

// ListDestinations returns up to limit destinations.
func (c *Client) ListDestinations(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 50
	}
	return c.getList(ctx, "/destinations", url.Values{"limit": {strconv.Itoa(limit)}})
}

// GetDestination fetches a destination by ID.
func (c *Client) GetDestination(ctx context.Context, destinationID string) (map[string]any, error) {
	return c.Get(ctx, "/destinations/"+destinationID, nil)
}

// CreateDestination creates a destination.
func (c *Client) CreateDestination(ctx context.Context, destType, name string, cfg any) (map[string]any, error) {
	body := map[string]any{"type": destType, "name": name, "config": cfg}
	return c.Post(ctx, "/destinations", body)
}

// GetDestinationTableStats fetches row and size stats for a table.
func (c *Client) GetDestinationTableStats(ctx context.Context, destinationID, tableName string) (map[string]any, error) {
	return c.Get(ctx, "/destinations/"+destinationID+"/tables/"+url.PathEscape(tableName)+"/stats", nil)
}

// LoadDestination triggers an immediate load of pending events.
func (c *Client) LoadDestination(ctx context.Context, destinationID string) (map[string]any, error) {
	return c.Post(ctx, "/destinations/"+destinationID+"/load-now", nil)
}

// ListModels returns up to limit models.
func (c *Client) ListModels(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 50
	}
	return c.getList(ctx, "/models", url.Values{"limit": {strconv.Itoa(limit)}})
}

// GetModel fetches a model by ID.
func (c *Client) GetModel(ctx context.Context, modelID string) (map[string]any, error) {
	return c.Get(ctx, "/models/"+modelID, nil)
}

// CreateModel creates a SQL model from the given request body.
func (c *Client) CreateModel(ctx context.Context, body map[string]any) (map[string]any, error) {
	return c.Post(ctx, "/models", body)
}

// UpdateModel updates model fields in the given request body.
func (c *Client) UpdateModel(ctx context.Context, modelID string, body map[string]any) (map[string]any, error) {
	return c.Put(ctx, "/models/"+modelID, body)
}

// DeleteModel removes a model permanently.
func (c *Client) DeleteModel(ctx context.Context, modelID string) (map[string]any, error) {
	return c.Delete(ctx, "/models/"+modelID)
}

// UpdateModelStatus pauses or resumes a model.
func (c *Client) UpdateModelStatus(ctx context.Context, modelID, status string) (map[string]any, error) {
	return c.Put(ctx, "/models/"+modelID+"/activity-status", map[string]any{"status": status})
}

// RunModel triggers an immediate model run.
func (c *Client) RunModel(ctx context.Context, modelID string) (map[string]any, error) {
	return c.Post(ctx, "/models/"+modelID+"/run-now", nil)
}

// ResetModel clears a model's processed state so the next run starts
// from scratch.
func (c *Client) ResetModel(ctx context.Context, modelID string) (map[string]any, error) {
	return c.Delete(ctx, "/models/"+modelID+"/reset")
}

// ListWorkflows returns up to limit workflows.
func (c *Client) ListWorkflows(ctx context.Context, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 50
	}
	return c.getList(ctx, "/workflows", url.Values{"limit": {strconv.Itoa(limit)}})
}

// GetWorkflow fetches a workflow by ID.
func (c *Client) GetWorkflow(ctx context.Context, workflowID string) (map[string]any, error) {
	return c.Get(ctx, "/workflows/"+workflowID, nil)
}

// RunWorkflow triggers an immediate workflow run.
func (c *Client) RunWorkflow(ctx context.Context, workflowID string) (map[string]any, error) {
	return c.Post(ctx, "/workflows/"+workflowID+"/run-now", nil)
}

// ListUsers lists team members.
func (c *Client) ListUsers(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/accounts/users", nil)
}

// InviteUser invites a user to the team with the given role.
func (c *Client) InviteUser(ctx context.Context, email, role string) (map[string]any, error) {
	return c.Post(ctx, "/accounts/users", map[string]any{"email": email, "role": role})
}

// UpdateUserRole changes a team member's role.
func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) (map[string]any, error) {
	return c.Put(ctx, "/accounts/users/"+userID, map[string]any{"role": role})
}

// DeleteUser removes a team member.
func (c *Client) DeleteUser(ctx context.Context, userID string) (map[string]any, error) {
	return c.Delete(ctx, "/accounts/users/"+userID)
}

// ListOAuthAccounts lists connected OAuth accounts.
func (c *Client) ListOAuthAccounts(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/oauth-accounts", nil)
}

// GetOAuthAccount fetches an OAuth account by ID.
func (c *Client) GetOAuthAccount(ctx context.Context, accountID string) (map[string]any, error) {
	return c.Get(ctx, "/oauth-accounts/"+accountID, nil)
}

// DeleteOAuthAccount removes an OAuth account.
func (c *Client) DeleteOAuthAccount(ctx context.Context, accountID string) (map[string]any, error) {
	return c.Delete(ctx, "/oauth-accounts/"+accountID)
}
