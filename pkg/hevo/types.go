package hevo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// PipelineStatus summarizes a pipeline and its object health.
type PipelineStatus struct {
	ID            string
	Name          string
	Status        string
	SourceType    string
	DestinationID string
	ObjectsCount  int
	ActiveObjects int
	FailedObjects int
}

// PipelineStatusFromAPI builds a PipelineStatus from the raw pipeline
// record and its object list.
func PipelineStatusFromAPI(data map[string]any, objects []map[string]any) PipelineStatus {
	active, failed := 0, 0
	for _, o := range objects {
		switch mapStr(o, "status") {
		case "ACTIVE":
			active++
		case "FAILED", "PERMISSION_DENIED":
			failed++
		}
	}

	sourceType := "Unknown"
	if src, ok := data["source"].(map[string]any); ok {
		switch t := src["type"].(type) {
		case string:
			sourceType = t
		case map[string]any:
			if dn := mapStr(t, "display_name"); dn != "" {
				sourceType = dn
			} else if n := mapStr(t, "name"); n != "" {
				sourceType = n
			}
		}
	}

	return PipelineStatus{
		ID:            mapID(data),
		Name:          mapStrDefault(data, "name", "Unknown"),
		Status:        mapStrDefault(data, "status", "UNKNOWN"),
		SourceType:    sourceType,
		DestinationID: mapID(map[string]any{"id": data["destination_id"]}),
		ObjectsCount:  len(objects),
		ActiveObjects: active,
		FailedObjects: failed,
	}
}

// DestinationInfo is the flattened view of a destination record.
type DestinationInfo struct {
	ID     string
	Name   string
	Type   string
	Status string
}

// DestinationFromAPI builds a DestinationInfo from a raw record.
func DestinationFromAPI(data map[string]any) DestinationInfo {
	return DestinationInfo{
		ID:     mapID(data),
		Name:   mapStrDefault(data, "name", "Unknown"),
		Type:   mapStrDefault(data, "type", "Unknown"),
		Status: mapStrDefault(data, "status", "UNKNOWN"),
	}
}

// ModelInfo is the flattened view of a SQL model record.
type ModelInfo struct {
	ID            string
	Name          string
	Status        string
	DestinationID string
	Schedule      string
}

// ModelFromAPI builds a ModelInfo from a raw record.
func ModelFromAPI(data map[string]any) ModelInfo {
	schedule := "Unknown"
	if s, ok := data["schedule"].(map[string]any); ok {
		if t := mapStr(s, "type"); t != "" {
			schedule = t
		}
	}
	return ModelInfo{
		ID:            mapID(data),
		Name:          mapStrDefault(data, "name", "Unknown"),
		Status:        mapStrDefault(data, "status", "UNKNOWN"),
		DestinationID: mapID(map[string]any{"id": data["destination_id"]}),
		Schedule:      schedule,
	}
}

// WorkflowInfo is the flattened view of a workflow record.
type WorkflowInfo struct {
	ID            string
	Name          string
	Status        string
	LastRunStatus string
}

// WorkflowFromAPI builds a WorkflowInfo from a raw record.
func WorkflowFromAPI(data map[string]any) WorkflowInfo {
	return WorkflowInfo{
		ID:            mapID(data),
		Name:          mapStrDefault(data, "name", "Unknown"),
		Status:        mapStrDefault(data, "status", "UNKNOWN"),
		LastRunStatus: mapStrDefault(data, "last_run_status", "Unknown"),
	}
}

// GetPipelineStatus resolves a pipeline by ID or name and returns its
// status summary, or nil if the pipeline does not exist.
func (c *Client) GetPipelineStatus(ctx context.Context, pipelineID, name string) (*PipelineStatus, error) {
	if pipelineID == "" && name != "" {
		pipeline, err := c.GetPipelineByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if pipeline == nil {
			return nil, nil
		}
		pipelineID = mapID(pipeline)
	}
	if pipelineID == "" {
		return nil, nil
	}

	pipeline, err := c.GetPipeline(ctx, pipelineID)
	if err != nil {
		return nil, err
	}
	objects, err := c.GetPipelineObjects(ctx, pipelineID, "")
	if err != nil {
		return nil, err
	}
	status := PipelineStatusFromAPI(pipeline, objects)
	return &status, nil
}

// ResolvePipelineID maps a name to a pipeline ID when no ID is given.
func (c *Client) ResolvePipelineID(ctx context.Context, pipelineID, name string) (string, error) {
	if pipelineID != "" {
		return pipelineID, nil
	}
	if name == "" {
		return "", fmt.Errorf("pipeline ID or name is required")
	}
	pipeline, err := c.GetPipelineByName(ctx, name)
	if err != nil {
		return "", err
	}
	if pipeline == nil {
		return "", fmt.Errorf("Pipeline not found: %s", name)
	}
	return mapID(pipeline), nil
}

// GetDestinationByName scans destinations for a case-insensitive name
// match.
func (c *Client) GetDestinationByName(ctx context.Context, name string) (*DestinationInfo, error) {
	destinations, err := c.ListDestinations(ctx, 0)
	if err != nil {
		return nil, err
	}
	for _, d := range destinations {
		info := DestinationFromAPI(d)
		if equalFold(info.Name, name) {
			return &info, nil
		}
	}
	return nil, nil
}

// GetModelByName scans models for a case-insensitive name match.
func (c *Client) GetModelByName(ctx context.Context, name string) (*ModelInfo, error) {
	models, err := c.ListModels(ctx, 0)
	if err != nil {
		return nil, err
	}
	for _, m := range models {
		info := ModelFromAPI(m)
		if equalFold(info.Name, name) {
			return &info, nil
		}
	}
	return nil, nil
}

// ResolveModelID maps a name to a model ID when no ID is given.
func (c *Client) ResolveModelID(ctx context.Context, modelID, name string) (string, error) {
	if modelID != "" {
		return modelID, nil
	}
	if name == "" {
		return "", fmt.Errorf("model ID or name is required")
	}
	model, err := c.GetModelByName(ctx, name)
	if err != nil {
		return "", err
	}
	if model == nil {
		return "", fmt.Errorf("Model not found: %s", name)
	}
	return model.ID, nil
}

// GetWorkflowByName scans workflows for a case-insensitive name match.
func (c *Client) GetWorkflowByName(ctx context.Context, name string) (*WorkflowInfo, error) {
	workflows, err := c.ListWorkflows(ctx, 0)
	if err != nil {
		return nil, err
	}
	for _, w := range workflows {
		info := WorkflowFromAPI(w)
		if equalFold(info.Name, name) {
			return &info, nil
		}
	}
	return nil, nil
}

// PipelineNames lists pipeline names for prompt grounding.
func (c *Client) PipelineNames(ctx context.Context) ([]string, error) {
	pipelines, err := c.ListPipelines(ctx, 0)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(pipelines))
	for _, p := range pipelines {
		name := firstNonEmpty(mapStr(p, "name"), mapStr(p, "pipeline_name"), mapStr(p, "display_name"))
		if name == "" {
			if src, isMap := p["source"].(map[string]any); isMap {
				name = mapStr(src, "name")
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// DestinationNames lists destination names for prompt grounding.
func (c *Client) DestinationNames(ctx context.Context) ([]string, error) {
	destinations, err := c.ListDestinations(ctx, 0)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if name := mapStr(d, "name"); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func mapStr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func mapStrDefault(m map[string]any, key, fallback string) string {
	if v := mapStr(m, key); v != "" {
		return v
	}
	return fallback
}

// mapID stringifies an "id" field that may arrive as a string or a
// JSON number.
func mapID(m map[string]any) string {
	switch v := m["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
