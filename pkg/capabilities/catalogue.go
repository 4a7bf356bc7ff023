package capabilities

// catalogue is the full set of Hevo API actions the assistant knows about.
var catalogue = []ActionDefinition{
	// Pipelines
	{
		Name:        "list_pipelines",
		Description: "List all pipelines in your account (optionally filter by status)",
		Category:    CategoryPipelines,
		Method:      "GET",
		Endpoint:    "/pipelines",
		Parameters: []Parameter{
			{Name: "status", Description: "Filter by status: ACTIVE, PAUSED, or DRAFT", Type: "string", Example: "ACTIVE"},
		},
		Examples: []string{
			"Show all my pipelines",
			"List pipelines",
			"What pipelines do I have?",
			"List my active pipelines",
			"Show paused pipelines",
		},
		FollowUps:   []string{"get_pipeline", "run_pipeline"},
		Implemented: true,
	},
	{
		Name:        "get_pipeline",
		Description: "Get details for a specific pipeline",
		Category:    CategoryPipelines,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}",
		Parameters: []Parameter{
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
		},
		Examples: []string{
			"Check status of Salesforce pipeline",
			"Show me pipeline details",
			"What's the status of my MySQL pipeline?",
		},
		FollowUps:   []string{"list_objects", "pause_pipeline", "run_pipeline"},
		Implemented: true,
	},
	{
		Name:        "create_pipeline",
		Description: "Create a new pipeline",
		Category:    CategoryPipelines,
		Method:      "POST",
		Endpoint:    "/pipelines",
		Parameters: []Parameter{
			{Name: "source_type", Description: "Type of source connector", Required: true, Type: "string", Example: "MYSQL"},
			{Name: "source_config", Description: "Source connection configuration", Required: true, Type: "object"},
			{Name: "destination_id", Description: "ID of the destination", Required: true, Type: "string", Example: "123"},
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "MySQL_to_Snowflake"},
		},
		Examples: []string{
			"Create a new pipeline",
			"Set up MySQL to Snowflake pipeline",
			"Create pipeline from Postgres to BigQuery",
		},
		FollowUps:   []string{"list_objects", "run_pipeline", "get_pipeline"},
		Implemented: true,
	},
	{
		Name:        "delete_pipeline",
		Description: "Delete a pipeline",
		Category:    CategoryPipelines,
		Method:      "DELETE",
		Endpoint:    "/pipelines/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "confirmed", Description: "Confirmation flag", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Delete the pipeline", "Remove my old pipeline"},
		FollowUps:   []string{"list_pipelines"},
		Implemented: true,
	},
	{
		Name:        "pause_pipeline",
		Description: "Pause a pipeline (stops data ingestion)",
		Category:    CategoryPipelines,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/status",
		Parameters: []Parameter{
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
		},
		Examples: []string{
			"Pause the Salesforce pipeline",
			"Stop my MySQL pipeline",
			"Halt the data sync",
		},
		FollowUps:   []string{"resume_pipeline", "list_pipelines"},
		Implemented: true,
	},
	{
		Name:        "resume_pipeline",
		Description: "Resume a paused pipeline",
		Category:    CategoryPipelines,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/status",
		Parameters: []Parameter{
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
		},
		Examples: []string{
			"Resume the Salesforce pipeline",
			"Start my MySQL pipeline again",
			"Unpause the sync",
		},
		FollowUps:   []string{"run_pipeline", "get_pipeline"},
		Implemented: true,
	},
	{
		Name:        "run_pipeline",
		Description: "Run a pipeline immediately (trigger sync now)",
		Category:    CategoryPipelines,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/run-now",
		Parameters: []Parameter{
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
		},
		Examples: []string{
			"Run the Salesforce pipeline now",
			"Sync my MySQL data immediately",
			"Trigger the pipeline",
		},
		FollowUps:   []string{"get_pipeline", "list_objects"},
		Implemented: true,
	},
	{
		Name:        "update_pipeline_schedule",
		Description: "Update pipeline sync schedule",
		Category:    CategoryPipelines,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/schedule",
		Parameters: []Parameter{
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "schedule", Description: "Schedule configuration", Required: true, Type: "object"},
		},
		Examples:    []string{"Change pipeline schedule", "Update sync frequency"},
		FollowUps:   []string{"get_pipeline"},
		Implemented: true,
	},
	{
		Name:        "update_pipeline_priority",
		Description: "Update pipeline priority (HIGH, NORMAL, LOW)",
		Category:    CategoryPipelines,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/priority",
		Parameters: []Parameter{
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "priority", Description: "Priority level", Required: true, Type: "string", Example: "HIGH"},
		},
		Examples:    []string{"Set pipeline priority to high", "Change priority"},
		FollowUps:   []string{"get_pipeline"},
		Implemented: true,
	},
	{
		Name:        "get_pipeline_schedule",
		Description: "Get pipeline schedule configuration",
		Category:    CategoryPipelines,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/schedule",
		Parameters: []Parameter{
			{Name: "id", Description: "Pipeline ID", Type: "string", Example: "12345"},
			{Name: "name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
		},
		Examples:    []string{"Show pipeline schedule", "Get sync frequency"},
		FollowUps:   []string{"update_pipeline_schedule"},
		Implemented: true,
	},

	// Pipeline objects
	{
		Name:        "list_objects",
		Description: "List all objects (tables) in a pipeline",
		Category:    CategoryObjects,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/objects",
		Parameters: []Parameter{
			{Name: "pipeline_name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
			{Name: "pipeline_id", Description: "Pipeline ID", Type: "string", Example: "12345"},
		},
		Examples: []string{
			"Show objects in my Salesforce pipeline",
			"List tables being synced",
			"What tables are in this pipeline?",
		},
		FollowUps:   []string{"skip_object", "restart_object"},
		Implemented: true,
	},
	{
		Name:        "pause_object",
		Description: "Pause syncing for a specific object",
		Category:    CategoryObjects,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/objects/{name}/pause",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "users"},
		},
		Examples:    []string{"Pause the users table", "Stop syncing orders"},
		FollowUps:   []string{"resume_object", "list_objects"},
		Implemented: true,
	},
	{
		Name:        "resume_object",
		Description: "Resume syncing for a paused object",
		Category:    CategoryObjects,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/objects/{name}/resume",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "users"},
		},
		Examples:    []string{"Resume the users table", "Start syncing orders again"},
		FollowUps:   []string{"list_objects"},
		Implemented: true,
	},
	{
		Name:        "skip_object",
		Description: "Skip (exclude) an object from syncing",
		Category:    CategoryObjects,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/objects/{name}/skip",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "audit_logs"},
		},
		Examples: []string{
			"Skip the audit_logs table",
			"Exclude this table from sync",
			"Don't sync the temp table",
		},
		FollowUps:   []string{"include_object", "list_objects"},
		Implemented: true,
	},
	{
		Name:        "include_object",
		Description: "Include a previously skipped object",
		Category:    CategoryObjects,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/objects/{name}/include",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "audit_logs"},
		},
		Examples:    []string{"Include the audit_logs table again", "Start syncing this table"},
		FollowUps:   []string{"list_objects", "restart_object"},
		Implemented: true,
	},
	{
		Name:        "get_object",
		Description: "Get details for a specific object",
		Category:    CategoryObjects,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/objects/{name}",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "users"},
		},
		Examples:    []string{"Show object details", "Get info about users table"},
		FollowUps:   []string{"pause_object", "restart_object"},
		Implemented: true,
	},
	{
		Name:        "restart_object",
		Description: "Restart syncing for an object (full resync)",
		Category:    CategoryObjects,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/objects/{name}/restart",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "object_name", Description: "Object/table name", Required: true, Type: "string", Example: "orders"},
		},
		Examples: []string{
			"Restart the orders table",
			"Resync the users table",
			"Do a full refresh of this table",
		},
		FollowUps:   []string{"list_objects", "get_pipeline"},
		Implemented: true,
	},

	// Transformations
	{
		Name:        "get_transformation",
		Description: "Get transformation code for a pipeline",
		Category:    CategoryTransformations,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/transformations",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "pipeline_name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
		},
		Examples:    []string{"Show transformation code", "Get the transformation"},
		FollowUps:   []string{"update_transformation", "test_transformation"},
		Implemented: true,
	},
	{
		Name:        "update_transformation",
		Description: "Update transformation code",
		Category:    CategoryTransformations,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/transformations",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "code", Description: "Transformation code", Required: true, Type: "string"},
		},
		Examples:    []string{"Update the transformation", "Change transformation code"},
		FollowUps:   []string{"test_transformation", "get_transformation"},
		Implemented: true,
	},
	{
		Name:        "test_transformation",
		Description: "Test transformation code with sample data",
		Category:    CategoryTransformations,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/transformations/test",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "sample_data", Description: "Sample data to test with", Type: "object"},
		},
		Examples:    []string{"Test the transformation", "Try the transformation"},
		FollowUps:   []string{"update_transformation"},
		Implemented: true,
	},

	// Schema mapping
	{
		Name:        "get_schema_mapping",
		Description: "Get schema mapping for an event type",
		Category:    CategorySchemaMapping,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/mappings/{event_type}",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "event_type", Description: "Event type name", Required: true, Type: "string", Example: "users"},
		},
		Examples:    []string{"Show schema mapping", "Get the mapping"},
		FollowUps:   []string{"update_schema_mapping"},
		Implemented: true,
	},
	{
		Name:        "update_schema_mapping",
		Description: "Update schema mapping for an event type",
		Category:    CategorySchemaMapping,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/mappings/{event_type}",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "event_type", Description: "Event type name", Required: true, Type: "string", Example: "users"},
			{Name: "mapping", Description: "Mapping configuration", Required: true, Type: "object"},
		},
		Examples:    []string{"Update schema mapping", "Change the mapping"},
		FollowUps:   []string{"get_schema_mapping"},
		Implemented: true,
	},
	{
		Name:        "update_auto_mapping",
		Description: "Enable/disable auto-mapping for a pipeline",
		Category:    CategorySchemaMapping,
		Method:      "PUT",
		Endpoint:    "/pipelines/{id}/auto-mapping",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "enabled", Description: "Enable auto-mapping", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Enable auto-mapping", "Turn on auto schema mapping"},
		FollowUps:   []string{"get_pipeline"},
		Implemented: true,
	},

	// Event types
	{
		Name:        "list_event_types",
		Description: "List all event types in a pipeline",
		Category:    CategoryEventTypes,
		Method:      "GET",
		Endpoint:    "/pipelines/{id}/event-types",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "pipeline_name", Description: "Pipeline name", Type: "string", Example: "Salesforce_to_Snowflake"},
		},
		Examples:    []string{"Show event types", "List event types"},
		FollowUps:   []string{"skip_event_type"},
		Implemented: true,
	},
	{
		Name:        "skip_event_type",
		Description: "Skip an event type",
		Category:    CategoryEventTypes,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/event-types/{event_type}/skip",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "event_type", Description: "Event type name", Required: true, Type: "string", Example: "debug_logs"},
		},
		Examples:    []string{"Skip this event type", "Exclude debug events"},
		FollowUps:   []string{"include_event_type", "list_event_types"},
		Implemented: true,
	},
	{
		Name:        "include_event_type",
		Description: "Include a previously skipped event type",
		Category:    CategoryEventTypes,
		Method:      "POST",
		Endpoint:    "/pipelines/{id}/event-types/{event_type}/include",
		Parameters: []Parameter{
			{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Type: "string", Example: "12345"},
			{Name: "event_type", Description: "Event type name", Required: true, Type: "string", Example: "debug_logs"},
		},
		Examples:    []string{"Include this event type", "Start syncing these events"},
		FollowUps:   []string{"list_event_types"},
		Implemented: true,
	},

	// Destinations
	{
		Name:        "list_destinations",
		Description: "List all destinations in your account",
		Category:    CategoryDestinations,
		Method:      "GET",
		Endpoint:    "/destinations",
		Examples: []string{
			"Show all destinations",
			"List my destinations",
			"What destinations do I have?",
		},
		FollowUps:   []string{"get_destination"},
		Implemented: true,
	},
	{
		Name:        "get_destination",
		Description: "Get details for a specific destination",
		Category:    CategoryDestinations,
		Method:      "GET",
		Endpoint:    "/destinations/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Destination ID", Type: "string", Example: "123"},
			{Name: "name", Description: "Destination name", Type: "string", Example: "Production_Snowflake"},
		},
		Examples:    []string{"Show destination details", "Get my Snowflake destination"},
		FollowUps:   []string{"list_destinations", "get_destination_stats"},
		Implemented: true,
	},
	{
		Name:        "create_destination",
		Description: "Create a new destination",
		Category:    CategoryDestinations,
		Method:      "POST",
		Endpoint:    "/destinations",
		Parameters: []Parameter{
			{Name: "type", Description: "Destination type", Required: true, Type: "string", Example: "SNOWFLAKE"},
			{Name: "name", Description: "Destination name", Required: true, Type: "string", Example: "Production_Snowflake"},
			{Name: "config", Description: "Connection configuration", Required: true, Type: "object"},
		},
		Examples:    []string{"Create a new destination", "Add Snowflake destination"},
		FollowUps:   []string{"list_destinations"},
		Implemented: true,
	},
	{
		Name:        "get_destination_stats",
		Description: "Get table statistics for a destination",
		Category:    CategoryDestinations,
		Method:      "GET",
		Endpoint:    "/destinations/{id}/tables/{table_name}/stats",
		Parameters: []Parameter{
			{Name: "destination_id", Description: "Destination ID", Required: true, Type: "string", Example: "123"},
			{Name: "table_name", Description: "Table name", Required: true, Type: "string", Example: "users"},
		},
		Examples:    []string{"Show table stats", "Get stats for users table"},
		FollowUps:   []string{"list_destinations"},
		Implemented: true,
	},
	{
		Name:        "load_destination",
		Description: "Load events to destination immediately",
		Category:    CategoryDestinations,
		Method:      "POST",
		Endpoint:    "/destinations/{id}/load-now",
		Parameters: []Parameter{
			{Name: "destination_id", Description: "Destination ID", Required: true, Type: "string", Example: "123"},
		},
		Examples:    []string{"Load data to destination now", "Flush to destination"},
		FollowUps:   []string{"list_destinations"},
		Implemented: true,
	},

	// Models
	{
		Name:        "list_models",
		Description: "List all models in your account",
		Category:    CategoryModels,
		Method:      "GET",
		Endpoint:    "/models",
		Examples: []string{
			"Show all models",
			"List my models",
			"What models do I have?",
		},
		FollowUps:   []string{"run_model"},
		Implemented: true,
	},
	{
		Name:        "get_model",
		Description: "Get details for a specific model",
		Category:    CategoryModels,
		Method:      "GET",
		Endpoint:    "/models/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
		},
		Examples:    []string{"Show model details", "Get my revenue model"},
		FollowUps:   []string{"run_model", "update_model"},
		Implemented: true,
	},
	{
		Name:        "create_model",
		Description: "Create a new model",
		Category:    CategoryModels,
		Method:      "POST",
		Endpoint:    "/models",
		Parameters: []Parameter{
			{Name: "destination_id", Description: "Destination ID", Required: true, Type: "string", Example: "123"},
			{Name: "query", Description: "SQL query", Required: true, Type: "string"},
			{Name: "name", Description: "Model name", Required: true, Type: "string", Example: "daily_summary"},
			{Name: "target_table", Description: "Target table name", Type: "string", Example: "daily_sales"},
			{Name: "load_type", Description: "Load type (FULL_LOAD or INCREMENTAL)", Type: "string", Example: "FULL_LOAD"},
		},
		Examples:    []string{"Create a new model", "Add a model"},
		FollowUps:   []string{"run_model", "list_models"},
		Implemented: true,
	},
	{
		Name:        "update_model",
		Description: "Update a model",
		Category:    CategoryModels,
		Method:      "PUT",
		Endpoint:    "/models/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
			{Name: "new_name", Description: "New model name", Type: "string"},
			{Name: "query", Description: "New SQL query", Type: "string"},
			{Name: "target_table", Description: "New target table", Type: "string"},
		},
		Examples:    []string{"Update the model", "Change model query"},
		FollowUps:   []string{"run_model", "get_model"},
		Implemented: true,
	},
	{
		Name:        "delete_model",
		Description: "Delete a model",
		Category:    CategoryModels,
		Method:      "DELETE",
		Endpoint:    "/models/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
			{Name: "confirmed", Description: "Confirmation flag", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Delete the model", "Remove my old model"},
		FollowUps:   []string{"list_models"},
		Implemented: true,
	},
	{
		Name:        "pause_model",
		Description: "Pause a model",
		Category:    CategoryModels,
		Method:      "PUT",
		Endpoint:    "/models/{id}/activity-status",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
		},
		Examples:    []string{"Pause the model", "Stop running the model"},
		FollowUps:   []string{"resume_model", "list_models"},
		Implemented: true,
	},
	{
		Name:        "resume_model",
		Description: "Resume a paused model",
		Category:    CategoryModels,
		Method:      "PUT",
		Endpoint:    "/models/{id}/activity-status",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
		},
		Examples:    []string{"Resume the model", "Start the model again"},
		FollowUps:   []string{"run_model", "get_model"},
		Implemented: true,
	},
	{
		Name:        "run_model",
		Description: "Run a model immediately",
		Category:    CategoryModels,
		Method:      "POST",
		Endpoint:    "/models/{id}/run-now",
		Parameters: []Parameter{
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
		},
		Examples: []string{
			"Run the daily_summary model",
			"Execute my revenue model",
			"Trigger the model now",
		},
		FollowUps:   []string{"list_models"},
		Implemented: true,
	},
	{
		Name:        "reset_model",
		Description: "Reset a model (clear processed data)",
		Category:    CategoryModels,
		Method:      "DELETE",
		Endpoint:    "/models/{id}/reset",
		Parameters: []Parameter{
			{Name: "id", Description: "Model ID", Type: "string", Example: "456"},
			{Name: "name", Description: "Model name", Type: "string", Example: "daily_summary"},
			{Name: "confirmed", Description: "Confirmation flag", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Reset the model", "Clear model data"},
		FollowUps:   []string{"run_model"},
		Implemented: true,
	},

	// Workflows
	{
		Name:        "list_workflows",
		Description: "List all workflows in your account",
		Category:    CategoryWorkflows,
		Method:      "GET",
		Endpoint:    "/workflows",
		Examples: []string{
			"Show all workflows",
			"List my workflows",
			"What workflows do I have?",
		},
		FollowUps:   []string{"run_workflow"},
		Implemented: true,
	},
	{
		Name:        "get_workflow",
		Description: "Get details for a specific workflow",
		Category:    CategoryWorkflows,
		Method:      "GET",
		Endpoint:    "/workflows/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "Workflow ID", Type: "string", Example: "789"},
			{Name: "name", Description: "Workflow name", Type: "string", Example: "nightly_etl"},
		},
		Examples:    []string{"Show workflow details", "Get my ETL workflow"},
		FollowUps:   []string{"run_workflow"},
		Implemented: true,
	},
	{
		Name:        "run_workflow",
		Description: "Run a workflow immediately",
		Category:    CategoryWorkflows,
		Method:      "POST",
		Endpoint:    "/workflows/{id}/run-now",
		Parameters: []Parameter{
			{Name: "name", Description: "Workflow name", Type: "string", Example: "nightly_etl"},
			{Name: "id", Description: "Workflow ID", Type: "string", Example: "789"},
		},
		Examples: []string{
			"Run the nightly_etl workflow",
			"Execute my ETL workflow",
			"Trigger the workflow now",
		},
		FollowUps:   []string{"list_workflows"},
		Implemented: true,
	},

	// Team management
	{
		Name:        "list_users",
		Description: "List all users in your team",
		Category:    CategoryUsers,
		Method:      "GET",
		Endpoint:    "/accounts/users",
		Examples: []string{
			"Show team members",
			"List users",
			"Who's on my team?",
		},
		FollowUps:   []string{"invite_user"},
		Implemented: true,
	},
	{
		Name:        "invite_user",
		Description: "Invite a user to your team",
		Category:    CategoryUsers,
		Method:      "POST",
		Endpoint:    "/accounts/users",
		Parameters: []Parameter{
			{Name: "email", Description: "User email", Required: true, Type: "string", Example: "john@company.com"},
			{Name: "role", Description: "User role (OWNER, ADMIN, MEMBER, VIEWER)", Type: "string", Example: "MEMBER"},
		},
		Examples:    []string{"Invite john@company.com", "Add a new team member"},
		FollowUps:   []string{"list_users"},
		Implemented: true,
	},
	{
		Name:        "update_user_role",
		Description: "Update a user's role",
		Category:    CategoryUsers,
		Method:      "PUT",
		Endpoint:    "/accounts/users/{user_id}",
		Parameters: []Parameter{
			{Name: "user_id", Description: "User ID", Required: true, Type: "string", Example: "user123"},
			{Name: "role", Description: "New role (OWNER, ADMIN, MEMBER, VIEWER)", Required: true, Type: "string", Example: "ADMIN"},
		},
		Examples:    []string{"Make this user an admin", "Change user role"},
		FollowUps:   []string{"list_users"},
		Implemented: true,
	},
	{
		Name:        "delete_user",
		Description: "Remove a user from your team",
		Category:    CategoryUsers,
		Method:      "DELETE",
		Endpoint:    "/accounts/users/{user_id}",
		Parameters: []Parameter{
			{Name: "user_id", Description: "User ID", Required: true, Type: "string", Example: "user123"},
			{Name: "confirmed", Description: "Confirmation flag", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Remove this user", "Delete team member"},
		FollowUps:   []string{"list_users"},
		Implemented: true,
	},

	// OAuth accounts
	{
		Name:        "list_oauth_accounts",
		Description: "List all OAuth accounts",
		Category:    CategoryOAuth,
		Method:      "GET",
		Endpoint:    "/oauth-accounts",
		Examples:    []string{"Show OAuth accounts", "List connected accounts"},
		FollowUps:   []string{"get_oauth_account"},
		Implemented: true,
	},
	{
		Name:        "get_oauth_account",
		Description: "Get details for an OAuth account",
		Category:    CategoryOAuth,
		Method:      "GET",
		Endpoint:    "/oauth-accounts/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "OAuth account ID", Required: true, Type: "string", Example: "oauth123"},
		},
		Examples:    []string{"Show OAuth account details"},
		FollowUps:   []string{"list_oauth_accounts"},
		Implemented: true,
	},
	{
		Name:        "remove_oauth_account",
		Description: "Remove an OAuth account",
		Category:    CategoryOAuth,
		Method:      "DELETE",
		Endpoint:    "/oauth-accounts/{id}",
		Parameters: []Parameter{
			{Name: "id", Description: "OAuth account ID", Required: true, Type: "string", Example: "oauth123"},
			{Name: "confirmed", Description: "Confirmation flag", Required: true, Type: "boolean"},
		},
		Examples:    []string{"Remove OAuth account", "Disconnect this account"},
		FollowUps:   []string{"list_oauth_accounts"},
		Implemented: true,
	},
}
