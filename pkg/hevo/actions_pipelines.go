package hevo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

var validJSONParsingStrategies = []string{"FLAT", "SPLIT", "COLLAPSE", "NATIVE", "NATURAL", "COLLAPSE_EXCEPT_ARRAYS"}

var validPipelineStatuses = []string{"PAUSED", "STREAMING", "SINKING"}

func pipelineDisplayName(p map[string]any) string {
	if src, isMap := p["source"].(map[string]any); isMap {
		if name := mapStr(src, "name"); name != "" {
			return name
		}
	}
	id := mapID(p)
	if id == "" {
		id = "?"
	}
	return "Pipeline #" + id
}

func pipelineSourceType(p map[string]any) string {
	src, isMap := p["source"].(map[string]any)
	if !isMap {
		return ""
	}
	switch t := src["type"].(type) {
	case string:
		return t
	case map[string]any:
		if dn := mapStr(t, "display_name"); dn != "" {
			return dn
		}
		return mapStr(t, "name")
	}
	return ""
}

func pipelineDestinationName(p map[string]any) string {
	if dest, isMap := p["destination"].(map[string]any); isMap {
		return mapStr(dest, "name")
	}
	return ""
}

func (inv *Invoker) listPipelines(ctx context.Context, params Params) (Outcome, error) {
	pipelines, err := inv.client.ListPipelines(ctx, 0)
	if err != nil {
		return Outcome{}, err
	}
	if len(pipelines) == 0 {
		return ok("No pipelines found.", []map[string]any{})
	}

	statusFilter := strings.ToUpper(params.Str("status"))
	if statusFilter != "" {
		filtered := pipelines[:0:0]
		for _, p := range pipelines {
			if strings.ToUpper(mapStr(p, "status")) == statusFilter {
				filtered = append(filtered, p)
			}
		}
		pipelines = filtered
		if len(pipelines) == 0 {
			return ok(fmt.Sprintf("No %s pipelines found.", strings.ToLower(statusFilter)), []map[string]any{})
		}
	}

	limit := params.IntDefault("limit", 20)
	rows := make([][]string, 0, len(pipelines))
	for _, p := range pipelines {
		rows = append(rows, []string{
			pipelineDisplayName(p),
			pipelineSourceType(p),
			pipelineDestinationName(p),
			mapStrDefault(p, "status", "UNKNOWN"),
		})
	}

	message := renderListing("pipelines", limit, []string{"Name", "Source", "Destination", "Status"}, rows)
	return ok(message, pipelines)
}

func (inv *Invoker) getPipeline(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")

	status, err := inv.client.GetPipelineStatus(ctx, pipelineID, name)
	if err != nil {
		return Outcome{}, err
	}
	if status == nil {
		return failf("Pipeline not found: %s", firstNonEmpty(name, pipelineID))
	}

	emoji := "🟡"
	if status.Status == "ACTIVE" {
		emoji = "🟢"
	}

	message := fmt.Sprintf(
		"%s Pipeline: %s\nStatus: %s\nSource: %s\nObjects: %d total, %d active, %d failed",
		emoji, status.Name, status.Status, status.SourceType,
		status.ObjectsCount, status.ActiveObjects, status.FailedObjects,
	)
	return ok(message, status)
}

func (inv *Invoker) createPipeline(ctx context.Context, params Params) (Outcome, error) {
	sourceType := params.Str("source_type")
	destinationID := params.Str("destination_id")
	name := firstNonEmpty(params.Str("name"), params.Str("source_name"))

	if sourceType == "" {
		return fail("Source type is required (e.g., MYSQL, POSTGRES, SALESFORCE_V2).")
	}
	if !params.Has("source_config") {
		return fail("Source configuration is required.")
	}
	if destinationID == "" {
		return fail("Destination ID is required.")
	}

	destID, parsed := params.Int("destination_id")
	if !parsed {
		return fail("Destination ID must be an integer.")
	}

	strategy := strings.ToUpper(params.Str("json_parsing_strategy"))
	if strategy != "" && !contains(validJSONParsingStrategies, strategy) {
		return failf("Invalid json_parsing_strategy. Must be one of: %s", strings.Join(validJSONParsingStrategies, ", "))
	}

	status := strings.ToUpper(params.Str("status"))
	if status != "" && !contains(validPipelineStatuses, status) {
		return failf("Invalid status. Must be one of: %s", strings.Join(validPipelineStatuses, ", "))
	}

	autoMapping := strings.ToUpper(params.Str("auto_mapping"))
	if autoMapping == "" {
		autoMapping = "ENABLED"
	}

	body := map[string]any{
		"source_type":    strings.ToUpper(sourceType),
		"source_config":  params["source_config"],
		"destination_id": destID,
		"auto_mapping":   autoMapping,
	}
	if name != "" {
		body["name"] = name
	}
	if prefix := params.Str("destination_table_prefix"); prefix != "" {
		body["destination_table_prefix"] = prefix
	}
	if strategy != "" {
		body["json_parsing_strategy"] = strategy
	}
	if params.Has("object_configurations") {
		body["object_configurations"] = params["object_configurations"]
	}
	if status != "" {
		body["status"] = status
	}

	result, err := inv.client.CreatePipeline(ctx, body)
	if err != nil {
		return Outcome{}, err
	}
	pipelineID := mapID(result)
	if pipelineID == "" {
		pipelineID = "unknown"
	}
	return ok(fmt.Sprintf("✓ Pipeline created successfully! ID: %s", pipelineID), result)
}

func (inv *Invoker) deletePipeline(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")

	if !params.Bool("confirmed") {
		key := "id"
		if name != "" {
			key = "name"
		}
		return fail(fmt.Sprintf(
			"⚠️ Deleting a pipeline is permanent and cannot be undone.\n"+
				"This will stop all data syncing and remove the pipeline configuration.\n"+
				"Data already in the destination will NOT be deleted.\n\n"+
				"To confirm, use: {\"action\": \"delete_pipeline\", \"params\": {\"%s\": \"%s\", \"confirmed\": true}}",
			key, firstNonEmpty(name, pipelineID),
		))
	}

	resolved, err := inv.client.ResolvePipelineID(ctx, pipelineID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.DeletePipeline(ctx, resolved); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Pipeline '%s' deleted successfully.", firstNonEmpty(name, pipelineID)), nil)
}

func (inv *Invoker) pausePipeline(ctx context.Context, params Params) (Outcome, error) {
	return inv.setPipelineStatus(ctx, params, "paused", inv.client.PausePipeline)
}

func (inv *Invoker) resumePipeline(ctx context.Context, params Params) (Outcome, error) {
	return inv.setPipelineStatus(ctx, params, "resumed", inv.client.ResumePipeline)
}

func (inv *Invoker) runPipeline(ctx context.Context, params Params) (Outcome, error) {
	return inv.setPipelineStatus(ctx, params, "triggered", inv.client.RunPipeline)
}

func (inv *Invoker) setPipelineStatus(
	ctx context.Context,
	params Params,
	verb string,
	call func(context.Context, string) (map[string]any, error),
) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")

	resolved, err := inv.client.ResolvePipelineID(ctx, pipelineID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := call(ctx, resolved); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Pipeline '%s' %s.", firstNonEmpty(name, pipelineID), verb), nil)
}

func (inv *Invoker) updatePipelinePriority(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")
	priority := params.Str("priority")

	if priority == "" {
		return fail("Priority is required (HIGH or NORMAL).")
	}
	if upper := strings.ToUpper(priority); upper != "HIGH" && upper != "NORMAL" {
		return fail("Priority must be HIGH or NORMAL.")
	}

	resolved, err := inv.client.ResolvePipelineID(ctx, pipelineID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.UpdatePipelinePriority(ctx, resolved, strings.ToUpper(priority)); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Pipeline '%s' priority set to %s.", firstNonEmpty(name, pipelineID), strings.ToUpper(priority)), nil)
}

func (inv *Invoker) getPipelineSchedule(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")

	resolved, err := inv.client.ResolvePipelineID(ctx, pipelineID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	schedule, err := inv.client.GetPipelineSchedule(ctx, resolved)
	if err != nil {
		return Outcome{}, err
	}

	scheduleType := mapStrDefault(schedule, "type", "Unknown")
	frequency := "N/A"
	if f, present := schedule["frequency"]; present && f != nil {
		frequency = fmt.Sprintf("%v", f)
	}

	message := fmt.Sprintf("📅 Pipeline '%s' schedule:\nType: %s\nFrequency: %s",
		firstNonEmpty(name, pipelineID), scheduleType, frequency)
	return ok(message, schedule)
}

func (inv *Invoker) updatePipelineSchedule(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("id")
	name := params.Str("name")

	if !params.Has("frequency") {
		return fail("Frequency (in minutes) is required.")
	}
	frequency, parsed := params.Int("frequency")
	if !parsed {
		return fail("Frequency must be an integer (minutes).")
	}

	resolved, err := inv.client.ResolvePipelineID(ctx, pipelineID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.UpdatePipelineSchedule(ctx, resolved, frequency); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Pipeline '%s' schedule updated to every %d minutes.", firstNonEmpty(name, pipelineID), frequency), nil)
}

func (inv *Invoker) listObjects(ctx context.Context, params Params) (Outcome, error) {
	pipelineID, outcome, resolveErr := inv.resolvePipelineParam(ctx, params)
	if resolveErr != nil || outcome != nil {
		return unwrapResolve(outcome, resolveErr)
	}

	objects, err := inv.client.GetPipelineObjects(ctx, pipelineID, "")
	if err != nil {
		return Outcome{}, err
	}
	if len(objects) == 0 {
		return ok("No objects found in this pipeline.", []map[string]any{})
	}

	limit := params.IntDefault("limit", 20)
	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		rows = append(rows, []string{
			mapStrDefault(obj, "name", "Unknown"),
			mapStrDefault(obj, "status", "UNKNOWN"),
		})
	}

	return ok(renderListing("objects", limit, []string{"Object", "Status"}, rows), objects)
}

func (inv *Invoker) getObject(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	objectName := params.Str("object_name")
	if pipelineID == "" || objectName == "" {
		return fail("Both pipeline_id and object_name are required.")
	}

	obj, err := inv.client.GetObject(ctx, pipelineID, objectName)
	if err != nil {
		return Outcome{}, err
	}

	events := int64(0)
	if n, parsed := Params(obj).Int("events_count"); parsed {
		events = int64(n)
	}
	message := fmt.Sprintf("📦 Object: %s\nStatus: %s\nEvents synced: %s",
		objectName, mapStrDefault(obj, "status", "UNKNOWN"), formatCount(events))
	return ok(message, obj)
}

func (inv *Invoker) pauseObject(ctx context.Context, params Params) (Outcome, error) {
	return inv.objectAction(ctx, params, "paused", inv.client.PauseObject)
}

func (inv *Invoker) resumeObject(ctx context.Context, params Params) (Outcome, error) {
	return inv.objectAction(ctx, params, "resumed", inv.client.ResumeObject)
}

func (inv *Invoker) skipObject(ctx context.Context, params Params) (Outcome, error) {
	return inv.objectAction(ctx, params, "skipped", inv.client.SkipObject)
}

func (inv *Invoker) includeObject(ctx context.Context, params Params) (Outcome, error) {
	return inv.objectAction(ctx, params, "included", inv.client.IncludeObject)
}

func (inv *Invoker) restartObject(ctx context.Context, params Params) (Outcome, error) {
	return inv.objectAction(ctx, params, "restarted", inv.client.RestartObject)
}

func (inv *Invoker) objectAction(
	ctx context.Context,
	params Params,
	verb string,
	call func(context.Context, string, string) (map[string]any, error),
) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	objectName := params.Str("object_name")
	if pipelineID == "" || objectName == "" {
		return fail("Both pipeline_id and object_name are required.")
	}

	if _, err := call(ctx, pipelineID, objectName); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Object '%s' %s.", objectName, verb), nil)
}

func (inv *Invoker) getTransformation(ctx context.Context, params Params) (Outcome, error) {
	pipelineID, outcome, resolveErr := inv.resolvePipelineParam(ctx, params)
	if resolveErr != nil || outcome != nil {
		return unwrapResolve(outcome, resolveErr)
	}

	transform, err := inv.client.GetTransformation(ctx, pipelineID)
	if err != nil {
		return Outcome{}, err
	}
	code := mapStrDefault(transform, "code", "No transformation configured")

	message := fmt.Sprintf("🔧 Transformation for pipeline %s:\n\n```python\n%s\n```", pipelineID, code)
	return ok(message, transform)
}

func (inv *Invoker) updateTransformation(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	code := params.Str("code")

	if pipelineID == "" {
		return fail("Pipeline ID is required.")
	}
	if code == "" {
		return fail("Transformation code is required.")
	}

	if _, err := inv.client.UpdateTransformation(ctx, pipelineID, code); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Transformation updated for pipeline %s.", pipelineID), nil)
}

func (inv *Invoker) testTransformation(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	if pipelineID == "" {
		return fail("Pipeline ID is required.")
	}

	result, err := inv.client.TestTransformation(ctx, pipelineID, params["sample_data"])
	if err != nil {
		return Outcome{}, err
	}

	if success, isBool := result["success"].(bool); isBool && success {
		output := mapStrDefault(result, "output", "No output")
		return ok(fmt.Sprintf("✓ Transformation test passed!\n\nOutput:\n%s", output), result)
	}

	errorMsg := "Unknown error"
	if rawErrs, isList := result["errors"].([]any); isList && len(rawErrs) > 0 {
		parts := make([]string, 0, len(rawErrs))
		for _, e := range rawErrs {
			parts = append(parts, fmt.Sprintf("%v", e))
		}
		errorMsg = strings.Join(parts, "\n")
	}
	return Outcome{
		Success: false,
		Message: fmt.Sprintf("❌ Transformation test failed:\n%s", errorMsg),
		Data:    result,
	}, nil
}

func (inv *Invoker) getSchemaMapping(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	eventType := params.Str("event_type")
	if pipelineID == "" || eventType == "" {
		return fail("Both pipeline_id and event_type are required.")
	}

	mapping, err := inv.client.GetSchemaMapping(ctx, pipelineID, eventType)
	if err != nil {
		return Outcome{}, err
	}

	encoded, marshalErr := json.MarshalIndent(mapping, "", "  ")
	if marshalErr != nil {
		encoded = []byte(fmt.Sprintf("%v", mapping))
	}
	return ok(fmt.Sprintf("Schema mapping for '%s':\n```json\n%s\n```", eventType, encoded), mapping)
}

func (inv *Invoker) updateSchemaMapping(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	eventType := params.Str("event_type")
	if pipelineID == "" || eventType == "" {
		return fail("Both pipeline_id and event_type are required.")
	}
	if !params.Has("mapping") {
		return fail("Mapping configuration is required.")
	}

	if _, err := inv.client.UpdateSchemaMapping(ctx, pipelineID, eventType, params["mapping"]); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Schema mapping updated for '%s'.", eventType), nil)
}

func (inv *Invoker) updateAutoMapping(ctx context.Context, params Params) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	if pipelineID == "" {
		return fail("Pipeline ID is required.")
	}
	if !params.Has("enabled") {
		return fail("Enabled flag (true/false) is required.")
	}

	enabled := params.Bool("enabled")
	if _, err := inv.client.UpdateAutoMapping(ctx, pipelineID, enabled); err != nil {
		return Outcome{}, err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return ok(fmt.Sprintf("✓ Auto-mapping %s for pipeline %s.", state, pipelineID), nil)
}

func (inv *Invoker) listEventTypes(ctx context.Context, params Params) (Outcome, error) {
	pipelineID, outcome, resolveErr := inv.resolvePipelineParam(ctx, params)
	if resolveErr != nil || outcome != nil {
		return unwrapResolve(outcome, resolveErr)
	}

	eventTypes, err := inv.client.ListEventTypes(ctx, pipelineID)
	if err != nil {
		return Outcome{}, err
	}
	if len(eventTypes) == 0 {
		return ok("No event types found in this pipeline.", []map[string]any{})
	}

	lines := listingHeader(len(eventTypes), "event types")
	rows := make([][]string, 0, len(eventTypes))
	for _, et := range eventTypes {
		rows = append(rows, []string{
			mapStrDefault(et, "name", "Unknown"),
			mapStrDefault(et, "status", "UNKNOWN"),
		})
	}
	lines = append(lines, tableRows([]string{"Event Type", "Status"}, rows)...)
	return ok(strings.Join(lines, "\n"), eventTypes)
}

func (inv *Invoker) skipEventType(ctx context.Context, params Params) (Outcome, error) {
	return inv.eventTypeAction(ctx, params, "skipped", inv.client.SkipEventType)
}

func (inv *Invoker) includeEventType(ctx context.Context, params Params) (Outcome, error) {
	return inv.eventTypeAction(ctx, params, "included", inv.client.IncludeEventType)
}

func (inv *Invoker) eventTypeAction(
	ctx context.Context,
	params Params,
	verb string,
	call func(context.Context, string, string) (map[string]any, error),
) (Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	eventType := params.Str("event_type")
	if pipelineID == "" || eventType == "" {
		return fail("Both pipeline_id and event_type are required.")
	}

	if _, err := call(ctx, pipelineID, eventType); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Event type '%s' %s.", eventType, verb), nil)
}

// resolvePipelineParam handles the pipeline_id / pipeline_name pair
// shared by object-scoped listings. A non-nil Outcome means resolution
// already produced a user-facing failure.
func (inv *Invoker) resolvePipelineParam(ctx context.Context, params Params) (string, *Outcome, error) {
	pipelineID := params.Str("pipeline_id")
	if pipelineID == "" {
		pipelineID = params.Str("id")
	}
	name := params.Str("pipeline_name")

	if pipelineID == "" && name != "" {
		pipeline, err := inv.client.GetPipelineByName(ctx, name)
		if err != nil {
			return "", nil, err
		}
		if pipeline == nil {
			out := Outcome{Success: false, Message: fmt.Sprintf("Pipeline not found: %s", name)}
			return "", &out, nil
		}
		pipelineID = mapID(pipeline)
	}

	if pipelineID == "" {
		out := Outcome{Success: false, Message: "Pipeline ID or name is required."}
		return "", &out, nil
	}
	return pipelineID, nil, nil
}

func unwrapResolve(outcome *Outcome, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return *outcome, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
