package knowledge

// Connector describes a single connector's capabilities for help text and
// category listings.
type Connector struct {
	DisplayName      string
	Category         string
	CanBeSource      bool
	CanBeDestination bool
}

var connectorInfo = map[string]Connector{
	"MYSQL":      {DisplayName: "MySQL", Category: "Database", CanBeSource: true, CanBeDestination: true},
	"POSTGRES":   {DisplayName: "PostgreSQL", Category: "Database", CanBeSource: true, CanBeDestination: true},
	"MONGODB":    {DisplayName: "MongoDB", Category: "Database", CanBeSource: true},
	"SNOWFLAKE":  {DisplayName: "Snowflake", Category: "Data Warehouse", CanBeDestination: true},
	"BIGQUERY":   {DisplayName: "Google BigQuery", Category: "Data Warehouse", CanBeSource: true, CanBeDestination: true},
	"REDSHIFT":   {DisplayName: "Amazon Redshift", Category: "Data Warehouse", CanBeSource: true, CanBeDestination: true},
	"DATABRICKS": {DisplayName: "Databricks", Category: "Data Warehouse", CanBeDestination: true},
	"SALESFORCE": {DisplayName: "Salesforce", Category: "SaaS - CRM", CanBeSource: true},
	"HUBSPOT":    {DisplayName: "HubSpot", Category: "SaaS - Marketing", CanBeSource: true},
	"SHOPIFY":    {DisplayName: "Shopify", Category: "SaaS - E-commerce", CanBeSource: true},
	"STRIPE":     {DisplayName: "Stripe", Category: "SaaS - Payments", CanBeSource: true},
	"S3":         {DisplayName: "Amazon S3", Category: "Cloud Storage", CanBeSource: true, CanBeDestination: true},
	"KAFKA":      {DisplayName: "Apache Kafka", Category: "Streaming", CanBeSource: true},
}

// ConnectorInfo returns metadata for a connector, if known.
func ConnectorInfo(connector string) (Connector, bool) {
	c, ok := connectorInfo[NormalizeConnectorName(connector)]
	return c, ok
}

// SourceCategories groups known source connectors by category.
func SourceCategories() map[string][]string {
	categories := make(map[string][]string)
	for _, info := range connectorInfo {
		if info.CanBeSource {
			categories[info.Category] = append(categories[info.Category], info.DisplayName)
		}
	}
	return categories
}

// DestinationCategories groups known destination connectors by category.
func DestinationCategories() map[string][]string {
	categories := make(map[string][]string)
	for _, info := range connectorInfo {
		if info.CanBeDestination {
			categories[info.Category] = append(categories[info.Category], info.DisplayName)
		}
	}
	return categories
}
