package hevo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

var validLoadTypes = []string{"TRUNCATE_AND_LOAD", "INCREMENTAL_LOAD"}

var validUserRoles = []string{"OWNER", "ADMIN", "MEMBER", "VIEWER"}

func (inv *Invoker) listDestinations(ctx context.Context, params Params) (Outcome, error) {
	destinations, err := inv.client.ListDestinations(ctx, 0)
	if err != nil {
		return Outcome{}, err
	}
	if len(destinations) == 0 {
		return ok("No destinations found.", []map[string]any{})
	}

	limit := params.IntDefault("limit", 20)
	infos := make([]DestinationInfo, 0, len(destinations))
	rows := make([][]string, 0, len(destinations))
	for _, d := range destinations {
		info := DestinationFromAPI(d)
		infos = append(infos, info)
		rows = append(rows, []string{info.Name, info.Type, info.Status})
	}

	return ok(renderListing("destinations", limit, []string{"Name", "Type", "Status"}, rows), infos)
}

func (inv *Invoker) getDestination(ctx context.Context, params Params) (Outcome, error) {
	destinationID := params.Str("id")
	name := params.Str("name")

	if destinationID == "" && name != "" {
		dest, err := inv.client.GetDestinationByName(ctx, name)
		if err != nil {
			return Outcome{}, err
		}
		if dest == nil {
			return failf("Destination not found: %s", name)
		}
		destinationID = dest.ID
	}
	if destinationID == "" {
		return fail("Destination ID or name is required.")
	}

	data, err := inv.client.GetDestination(ctx, destinationID)
	if err != nil {
		if apiErr, isAPI := AsAPIError(err); isAPI && apiErr.StatusCode == 404 {
			return failf("Destination not found: %s", destinationID)
		}
		return Outcome{}, err
	}

	info := DestinationFromAPI(data)
	message := fmt.Sprintf("🎯 Destination: %s\nType: %s\nStatus: %s", info.Name, info.Type, info.Status)
	return ok(message, info)
}

func (inv *Invoker) createDestination(ctx context.Context, params Params) (Outcome, error) {
	destType := params.Str("type")
	name := params.Str("name")

	if destType == "" {
		return fail("Destination type is required (e.g., SNOWFLAKE, BIGQUERY, POSTGRES).")
	}
	if name == "" {
		return fail("Destination name is required.")
	}
	if !params.Has("config") {
		return fail("Connection configuration is required.")
	}

	result, err := inv.client.CreateDestination(ctx, strings.ToUpper(destType), name, params["config"])
	if err != nil {
		return Outcome{}, err
	}
	destID := mapID(result)
	if destID == "" {
		destID = "unknown"
	}
	return ok(fmt.Sprintf("✓ Destination '%s' created successfully! ID: %s", name, destID), result)
}

func (inv *Invoker) getDestinationStats(ctx context.Context, params Params) (Outcome, error) {
	destinationID := params.Str("destination_id")
	tableName := params.Str("table_name")
	if destinationID == "" || tableName == "" {
		return fail("Both destination_id and table_name are required.")
	}

	stats, err := inv.client.GetDestinationTableStats(ctx, destinationID, tableName)
	if err != nil {
		return Outcome{}, err
	}

	rows := int64(Params(stats).IntDefault("row_count", 0))
	size := int64(Params(stats).IntDefault("size_bytes", 0))
	message := fmt.Sprintf("📊 Table '%s' statistics:\nRows: %s\nSize: %.2f MB",
		tableName, formatCount(rows), float64(size)/(1024*1024))
	return ok(message, stats)
}

func (inv *Invoker) loadDestination(ctx context.Context, params Params) (Outcome, error) {
	destinationID := params.Str("destination_id")
	if destinationID == "" {
		return fail("Destination ID is required.")
	}

	if _, err := inv.client.LoadDestination(ctx, destinationID); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Load triggered for destination %s.", destinationID), nil)
}

func (inv *Invoker) listModels(ctx context.Context, params Params) (Outcome, error) {
	models, err := inv.client.ListModels(ctx, 0)
	if err != nil {
		return Outcome{}, err
	}
	if len(models) == 0 {
		return ok("No models found.", []map[string]any{})
	}

	limit := params.IntDefault("limit", 20)
	infos := make([]ModelInfo, 0, len(models))
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		info := ModelFromAPI(m)
		infos = append(infos, info)
		rows = append(rows, []string{info.Name, info.Status, info.Schedule})
	}

	return ok(renderListing("models", limit, []string{"Name", "Status", "Schedule"}, rows), infos)
}

func (inv *Invoker) getModel(ctx context.Context, params Params) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	if modelID == "" && name != "" {
		model, err := inv.client.GetModelByName(ctx, name)
		if err != nil {
			return Outcome{}, err
		}
		if model == nil {
			return failf("Model not found: %s", name)
		}
		modelID = model.ID
	}

	data, err := inv.client.GetModel(ctx, modelID)
	if err != nil {
		if apiErr, isAPI := AsAPIError(err); isAPI && apiErr.StatusCode == 404 {
			return failf("Model not found: %s", modelID)
		}
		return Outcome{}, err
	}

	info := ModelFromAPI(data)
	message := fmt.Sprintf("📐 Model: %s\nStatus: %s\nSchedule: %s\nDestination ID: %s",
		info.Name, info.Status, info.Schedule, info.DestinationID)
	return ok(message, info)
}

func (inv *Invoker) createModel(ctx context.Context, params Params) (Outcome, error) {
	sourceDestinationID := firstNonEmpty(params.Str("source_destination_id"), params.Str("destination_id"))
	name := params.Str("name")
	query := firstNonEmpty(params.Str("query"), params.Str("source_query"))
	tableName := firstNonEmpty(params.Str("table_name"), params.Str("target_table"))
	loadType := params.Str("load_type")
	if loadType == "" {
		loadType = "TRUNCATE_AND_LOAD"
	}

	if sourceDestinationID == "" {
		return fail("Source destination ID (source_destination_id) is required.")
	}
	if name == "" {
		return fail("Model name is required.")
	}
	if query == "" {
		return fail("SQL query (source_query) is required.")
	}
	if tableName == "" {
		return fail("Table name (table_name) is required.")
	}
	if !contains(validLoadTypes, strings.ToUpper(loadType)) {
		return failf("Invalid load_type. Must be one of: %s", strings.Join(validLoadTypes, ", "))
	}

	destID, convErr := strconv.Atoi(sourceDestinationID)
	if convErr != nil {
		return fail("Source destination ID must be an integer.")
	}

	body := map[string]any{
		"source_destination_id": destID,
		"name":                  name,
		"source_query":          query,
		"table_name":            tableName,
		"load_type":             strings.ToUpper(loadType),
	}
	if params.Has("primary_keys") {
		body["primary_keys"] = params["primary_keys"]
	}
	if params.Has("schedule") {
		body["schedule"] = params["schedule"]
	}

	result, err := inv.client.CreateModel(ctx, body)
	if err != nil {
		return Outcome{}, err
	}
	modelID := mapID(result)
	if modelID == "" {
		modelID = "unknown"
	}
	return ok(fmt.Sprintf("✓ Model '%s' created successfully! ID: %s", name, modelID), result)
}

func (inv *Invoker) updateModel(ctx context.Context, params Params) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	if modelID == "" && name == "" {
		return fail("Model ID or name is required.")
	}

	loadType := params.Str("load_type")
	if loadType != "" && !contains(validLoadTypes, strings.ToUpper(loadType)) {
		return failf("Invalid load_type. Must be one of: %s", strings.Join(validLoadTypes, ", "))
	}

	resolved, err := inv.client.ResolveModelID(ctx, modelID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	body := map[string]any{}
	if newName := params.Str("new_name"); newName != "" {
		body["name"] = newName
	}
	if query := firstNonEmpty(params.Str("query"), params.Str("source_query")); query != "" {
		body["source_query"] = query
	}
	if tableName := firstNonEmpty(params.Str("table_name"), params.Str("target_table")); tableName != "" {
		body["table_name"] = tableName
	}
	if params.Has("primary_keys") {
		body["primary_keys"] = params["primary_keys"]
	}
	if loadType != "" {
		body["load_type"] = strings.ToUpper(loadType)
	}

	if _, err := inv.client.UpdateModel(ctx, resolved, body); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Model '%s' updated.", firstNonEmpty(name, modelID)), nil)
}

func (inv *Invoker) deleteModel(ctx context.Context, params Params) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	if !params.Bool("confirmed") {
		key := "id"
		if name != "" {
			key = "name"
		}
		return fail(fmt.Sprintf(
			"⚠️ Deleting a model is permanent and cannot be undone.\n\n"+
				"To confirm, use: {\"action\": \"delete_model\", \"params\": {\"%s\": \"%s\", \"confirmed\": true}}",
			key, firstNonEmpty(name, modelID),
		))
	}

	resolved, err := inv.client.ResolveModelID(ctx, modelID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.DeleteModel(ctx, resolved); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Model '%s' deleted.", firstNonEmpty(name, modelID)), nil)
}

func (inv *Invoker) pauseModel(ctx context.Context, params Params) (Outcome, error) {
	return inv.setModelStatus(ctx, params, "PAUSED", "paused")
}

func (inv *Invoker) resumeModel(ctx context.Context, params Params) (Outcome, error) {
	return inv.setModelStatus(ctx, params, "ACTIVE", "resumed")
}

func (inv *Invoker) setModelStatus(ctx context.Context, params Params, status, verb string) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	resolved, err := inv.client.ResolveModelID(ctx, modelID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.UpdateModelStatus(ctx, resolved, status); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Model '%s' %s.", firstNonEmpty(name, modelID), verb), nil)
}

func (inv *Invoker) runModel(ctx context.Context, params Params) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	resolved, err := inv.client.ResolveModelID(ctx, modelID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.RunModel(ctx, resolved); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Model '%s' triggered.", firstNonEmpty(name, modelID)), nil)
}

func (inv *Invoker) resetModel(ctx context.Context, params Params) (Outcome, error) {
	modelID := params.Str("id")
	name := params.Str("name")

	if !params.Bool("confirmed") {
		key := "id"
		if name != "" {
			key = "name"
		}
		return fail(fmt.Sprintf(
			"⚠️ Resetting a model will clear all processed data. "+
				"The next run will reprocess everything from scratch.\n\n"+
				"To confirm, use: {\"action\": \"reset_model\", \"params\": {\"%s\": \"%s\", \"confirmed\": true}}",
			key, firstNonEmpty(name, modelID),
		))
	}

	resolved, err := inv.client.ResolveModelID(ctx, modelID, name)
	if err != nil {
		if _, isAPI := AsAPIError(err); isAPI {
			return Outcome{}, err
		}
		return fail(err.Error())
	}

	if _, err := inv.client.ResetModel(ctx, resolved); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Model '%s' reset.", firstNonEmpty(name, modelID)), nil)
}

func (inv *Invoker) listWorkflows(ctx context.Context, params Params) (Outcome, error) {
	workflows, err := inv.client.ListWorkflows(ctx, 0)
	if err != nil {
		return Outcome{}, err
	}
	if len(workflows) == 0 {
		return ok("No workflows found.", []map[string]any{})
	}

	limit := params.IntDefault("limit", 20)
	infos := make([]WorkflowInfo, 0, len(workflows))
	rows := make([][]string, 0, len(workflows))
	for _, w := range workflows {
		info := WorkflowFromAPI(w)
		infos = append(infos, info)
		rows = append(rows, []string{info.Name, info.Status})
	}

	return ok(renderListing("workflows", limit, []string{"Name", "Status"}, rows), infos)
}

func (inv *Invoker) getWorkflow(ctx context.Context, params Params) (Outcome, error) {
	workflowID := params.Str("id")
	name := params.Str("name")

	if workflowID == "" && name != "" {
		workflow, err := inv.client.GetWorkflowByName(ctx, name)
		if err != nil {
			return Outcome{}, err
		}
		if workflow == nil {
			return failf("Workflow not found: %s", name)
		}
		workflowID = workflow.ID
	}

	data, err := inv.client.GetWorkflow(ctx, workflowID)
	if err != nil {
		if apiErr, isAPI := AsAPIError(err); isAPI && apiErr.StatusCode == 404 {
			return failf("Workflow not found: %s", workflowID)
		}
		return Outcome{}, err
	}

	info := WorkflowFromAPI(data)
	message := fmt.Sprintf("🔄 Workflow: %s\nStatus: %s\nLast run: %s", info.Name, info.Status, info.LastRunStatus)
	return ok(message, info)
}

func (inv *Invoker) runWorkflow(ctx context.Context, params Params) (Outcome, error) {
	workflowID := params.Str("id")
	name := params.Str("name")

	if workflowID == "" && name != "" {
		workflow, err := inv.client.GetWorkflowByName(ctx, name)
		if err != nil {
			return Outcome{}, err
		}
		if workflow == nil {
			return failf("Workflow not found: %s", name)
		}
		workflowID = workflow.ID
	}

	if _, err := inv.client.RunWorkflow(ctx, workflowID); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Workflow '%s' triggered.", firstNonEmpty(name, workflowID)), nil)
}

func (inv *Invoker) listUsers(ctx context.Context, params Params) (Outcome, error) {
	users, err := inv.client.ListUsers(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if len(users) == 0 {
		return ok("No users found.", []map[string]any{})
	}

	lines := listingHeader(len(users), "team members")
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			mapStrDefault(u, "email", "Unknown"),
			mapStrDefault(u, "role", "UNKNOWN"),
			mapStrDefault(u, "status", "UNKNOWN"),
		})
	}
	lines = append(lines, tableRows([]string{"Email", "Role", "Status"}, rows)...)
	return ok(strings.Join(lines, "\n"), users)
}

func (inv *Invoker) inviteUser(ctx context.Context, params Params) (Outcome, error) {
	email := params.Str("email")
	role := params.Str("role")
	if role == "" {
		role = "MEMBER"
	}

	if email == "" {
		return fail("Email is required.")
	}
	if !contains(validUserRoles, strings.ToUpper(role)) {
		return fail("Role must be OWNER, ADMIN, MEMBER, or VIEWER.")
	}

	if _, err := inv.client.InviteUser(ctx, email, strings.ToUpper(role)); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ Invitation sent to %s as %s.", email, role), nil)
}

func (inv *Invoker) updateUserRole(ctx context.Context, params Params) (Outcome, error) {
	userID := params.Str("user_id")
	role := params.Str("role")

	if userID == "" {
		return fail("User ID is required.")
	}
	if role == "" {
		return fail("Role is required (OWNER, ADMIN, MEMBER, or VIEWER).")
	}
	if !contains(validUserRoles, strings.ToUpper(role)) {
		return fail("Role must be OWNER, ADMIN, MEMBER, or VIEWER.")
	}

	if _, err := inv.client.UpdateUserRole(ctx, userID, strings.ToUpper(role)); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ User role updated to %s.", role), nil)
}

func (inv *Invoker) deleteUser(ctx context.Context, params Params) (Outcome, error) {
	userID := params.Str("user_id")

	if userID == "" {
		return fail("User ID is required.")
	}
	if !params.Bool("confirmed") {
		return fail(fmt.Sprintf(
			"⚠️ Removing a user will revoke their access to this team.\n\n"+
				"To confirm, use: {\"action\": \"delete_user\", \"params\": {\"user_id\": \"%s\", \"confirmed\": true}}",
			userID,
		))
	}

	if _, err := inv.client.DeleteUser(ctx, userID); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ User %s removed from team.", userID), nil)
}

func (inv *Invoker) listOAuthAccounts(ctx context.Context, params Params) (Outcome, error) {
	accounts, err := inv.client.ListOAuthAccounts(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if len(accounts) == 0 {
		return ok("No OAuth accounts found.", []map[string]any{})
	}

	lines := listingHeader(len(accounts), "OAuth accounts")
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			mapStrDefault(a, "name", "Unknown"),
			mapStrDefault(a, "provider", "Unknown"),
			mapStrDefault(a, "status", "UNKNOWN"),
		})
	}
	lines = append(lines, tableRows([]string{"Name", "Provider", "Status"}, rows)...)
	return ok(strings.Join(lines, "\n"), accounts)
}

func (inv *Invoker) getOAuthAccount(ctx context.Context, params Params) (Outcome, error) {
	accountID := params.Str("id")
	if accountID == "" {
		return fail("OAuth account ID is required.")
	}

	account, err := inv.client.GetOAuthAccount(ctx, accountID)
	if err != nil {
		return Outcome{}, err
	}

	message := fmt.Sprintf("🔐 OAuth Account: %s\nProvider: %s\nStatus: %s",
		mapStrDefault(account, "name", "Unknown"),
		mapStrDefault(account, "provider", "Unknown"),
		mapStrDefault(account, "status", "UNKNOWN"))
	return ok(message, account)
}

func (inv *Invoker) removeOAuthAccount(ctx context.Context, params Params) (Outcome, error) {
	accountID := params.Str("id")
	if accountID == "" {
		return fail("OAuth account ID is required.")
	}
	if !params.Bool("confirmed") {
		return fail(fmt.Sprintf(
			"⚠️ Removing an OAuth account may break pipelines that use it.\n\n"+
				"To confirm, use: {\"action\": \"remove_oauth_account\", \"params\": {\"id\": \"%s\", \"confirmed\": true}}",
			accountID,
		))
	}

	if _, err := inv.client.DeleteOAuthAccount(ctx, accountID); err != nil {
		return Outcome{}, err
	}
	return ok(fmt.Sprintf("✓ OAuth account %s removed.", accountID), nil)
}
