// Package knowledge holds Hevo connector compatibility rules: which
// connector types may act as a pipeline source, a destination, or both,
// and the validator for source to destination pairings.
package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Sources lists every connector supported as a pipeline source.
var Sources = newSet(
	// Databases
	"MYSQL", "POSTGRES", "MONGODB", "SQL_SERVER", "ORACLE", "DYNAMODB",
	"DOCUMENTDB", "ELASTICSEARCH", "MARIADB", "COCKROACHDB", "COUCHDB",
	"CASSANDRA", "FIRESTORE", "FIREBASE_REALTIME",

	// Data warehouses usable as sources
	"REDSHIFT", "BIGQUERY",

	// SaaS - marketing
	"GOOGLE_ADS", "FACEBOOK_ADS", "HUBSPOT", "SALESFORCE_MARKETING_CLOUD",
	"MAILCHIMP", "LINKEDIN_ADS", "TIKTOK_ADS", "SNAPCHAT_ADS",
	"PINTEREST_ADS", "TWITTER_ADS", "MICROSOFT_ADS", "KLAVIYO",
	"ACTIVECAMPAIGN", "SENDGRID", "BRAZE", "ITERABLE", "MARKETO", "PARDOT",

	// SaaS - sales and CRM
	"SALESFORCE", "ZENDESK", "FRESHDESK", "INTERCOM", "PIPEDRIVE",
	"HUBSPOT_CRM", "OUTREACH", "FRONT", "CLOSE", "COPPER", "ZOHO_CRM",

	// SaaS - product and e-commerce
	"SHOPIFY", "WOOCOMMERCE", "STRIPE", "AMPLITUDE", "MIXPANEL", "SEGMENT",
	"PENDO", "BIGCOMMERCE", "MAGENTO", "RECHARGE", "GORGIAS",

	// SaaS - engineering
	"GITHUB", "GITLAB", "JIRA", "ASANA", "TRELLO", "PAGERDUTY", "OPSGENIE",
	"DATADOG", "NEW_RELIC", "CLICKUP", "MONDAY", "NOTION",

	// SaaS - finance
	"BRAINTREE", "CHARGEBEE", "RECURLY", "QUICKBOOKS", "XERO", "NETSUITE",
	"ZUORA", "SQUARE", "PAYPAL",

	// SaaS - analytics
	"GOOGLE_ANALYTICS", "GOOGLE_ANALYTICS_4", "FACEBOOK_INSIGHTS",
	"INSTAGRAM_INSIGHTS", "YOUTUBE_ANALYTICS", "LINKEDIN_PAGES",
	"TWITTER_ANALYTICS", "APPSFLYER", "ADJUST", "BRANCH",

	// File storage and cloud
	"S3", "GCS", "AZURE_BLOB", "SFTP", "FTP", "GOOGLE_SHEETS",
	"GOOGLE_DRIVE", "DROPBOX", "BOX", "ONEDRIVE",

	// Streaming and events
	"KAFKA", "WEBHOOKS", "REST_API", "ANDROID_SDK", "IOS_SDK",
	"JAVASCRIPT_SDK", "KINESIS", "PUBSUB",

	// HR and productivity
	"WORKDAY", "BAMBOOHR", "GREENHOUSE", "LEVER", "NAMELY", "GUSTO",
	"SLACK", "ZOOM", "MICROSOFT_TEAMS",
)

// Destinations lists every connector supported as a pipeline destination.
var Destinations = newSet(
	"SNOWFLAKE", "BIGQUERY", "REDSHIFT", "DATABRICKS", "POSTGRES", "MYSQL",
	"AURORA", "MS_SQL", "AZURE_SYNAPSE", "S3", "GCS", "FIREBOLT",
	"CLICKHOUSE",
)

// Bidirectional lists connectors valid as both source and destination.
var Bidirectional = newSet(
	"POSTGRES", "MYSQL", "REDSHIFT", "BIGQUERY", "S3", "GCS",
)

// DestinationOnly holds connectors that can never be used as a source.
var DestinationOnly = func() map[string]bool {
	out := make(map[string]bool)
	for name := range Destinations {
		if !Bidirectional[name] {
			out[name] = true
		}
	}
	return out
}()

func newSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// NormalizeConnectorName maps a free-form connector name to its canonical
// form: uppercase with underscores.
func NormalizeConnectorName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "-", "_")
	return n
}

// IsValidSource reports whether a connector can be used as a source.
func IsValidSource(connector string) bool {
	return Sources[NormalizeConnectorName(connector)]
}

// IsValidDestination reports whether a connector can be used as a destination.
func IsValidDestination(connector string) bool {
	return Destinations[NormalizeConnectorName(connector)]
}

// ValidatePipelineDirection checks that a source to destination pairing is
// something Hevo can build a pipeline for. The rejection order matters:
// destination-only connectors used as a source get a specific message
// before the generic unknown-source check fires.
func ValidatePipelineDirection(sourceType, destinationType string) (bool, string) {
	if sourceType == "" || destinationType == "" {
		return false, "Both source and destination types are required."
	}

	source := NormalizeConnectorName(sourceType)
	dest := NormalizeConnectorName(destinationType)

	if DestinationOnly[source] {
		return false, fmt.Sprintf(
			"%s can only be used as a destination, not as a source. "+
				"Hevo does not support %s as a data source.",
			sourceType, sourceType)
	}

	if !Sources[source] {
		return false, fmt.Sprintf(
			"%s is not a supported source type. "+
				"Please check the Hevo documentation for supported sources.",
			sourceType)
	}

	if !Destinations[dest] {
		names := make([]string, 0, len(Destinations))
		for name := range Destinations {
			names = append(names, name)
		}
		sort.Strings(names)
		return false, fmt.Sprintf(
			"%s is not a supported destination type. Supported destinations: %s...",
			destinationType, strings.Join(names[:5], ", "))
	}

	return true, "Valid pipeline configuration."
}
