// Package validator checks proposed actions against the capability
// registry and screens raw user text for categorically unsupported
// requests.
package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/capabilities"
	"github.com/hevoctl/hevoctl/pkg/knowledge"
)

type unsupportedPattern struct {
	pattern *regexp.Regexp
	message string
}

// unsupportedPatterns screens for requests the API cannot serve. Order is
// significant: the first match wins, so specific patterns precede the
// generic ones they overlap with.
var unsupportedPatterns = []unsupportedPattern{
	{
		regexp.MustCompile(`\b(delete|remove)\s+(my\s+)?destination`),
		"Deleting destinations is not available via the API for safety reasons. " +
			"Please use the Hevo dashboard to delete destinations.",
	},
	{
		regexp.MustCompile(`\b(change|update|reset)\s+(my\s+)?password`),
		"Password changes are not supported via the API. " +
			"Please use the Hevo dashboard or the password reset feature.",
	},
	{
		regexp.MustCompile(`\b(billing|invoice|payment|subscription|plan)`),
		"Billing and subscription management is not available via the API. " +
			"Please visit the Hevo dashboard or contact support.",
	},
	{
		regexp.MustCompile(`\b(export|download)\s+(my\s+)?data`),
		"Direct data export is not supported. Your data is synced to your " +
			"destination where you can query it directly.",
	},
	{
		regexp.MustCompile(`\bsnowflake\b.{0,20}\b(as\s+)?source\b`),
		"Snowflake cannot be used as a data source. " +
			"It's only supported as a destination. " +
			"Check docs.hevodata.com for supported source connectors.",
	},
	{
		regexp.MustCompile(`\bfrom\s+snowflake\b`),
		"Snowflake cannot be used as a source connector. " +
			"Hevo supports Snowflake only as a destination.",
	},
	{
		regexp.MustCompile(`\bdatabricks\b.{0,20}\b(as\s+)?source\b`),
		"Databricks cannot be used as a data source. " +
			"It's only supported as a destination.",
	},
}

// Validator validates action requests against a capability registry.
type Validator struct {
	registry *capabilities.Registry
}

// New builds a validator over the given registry.
func New(registry *capabilities.Registry) *Validator {
	return &Validator{registry: registry}
}

// CheckUnsupported scans raw user text against the denylist. It returns the
// first matching pattern's message and true, or "" and false.
func (v *Validator) CheckUnsupported(query string) (string, bool) {
	lowered := strings.ToLower(query)
	for _, p := range unsupportedPatterns {
		if p.pattern.MatchString(lowered) {
			return p.message, true
		}
	}
	return "", false
}

// ValidateAction checks whether an action can be executed with the given
// parameters. When parameters are missing, ok is false, errMsg is empty and
// the caller is expected to branch into a clarification flow using missing.
func (v *Validator) ValidateAction(actionName string, params map[string]any) (ok bool, errMsg string, missing []capabilities.Parameter) {
	action, found := v.registry.Lookup(actionName)
	if !found {
		names := v.registry.Names()
		sort.Strings(names)
		if len(names) > 5 {
			names = names[:5]
		}
		return false, fmt.Sprintf("Unknown action '%s'. Some available actions: %s...",
			actionName, strings.Join(names, ", ")), nil
	}

	if !action.Implemented {
		return false, fmt.Sprintf("The '%s' action is not yet available via the API. "+
			"This feature is coming soon!", actionName), nil
	}

	missing = v.registry.MissingRequired(actionName, params)
	if len(missing) > 0 {
		return false, "", missing
	}

	if actionName == "create_pipeline" {
		source, _ := params["source_type"].(string)
		dest, _ := params["destination_type"].(string)
		if source != "" && dest != "" {
			if valid, msg := knowledge.ValidatePipelineDirection(source, dest); !valid {
				return false, msg, nil
			}
		}
	}

	return true, "", nil
}

// MissingParamsPrompt renders a clarification question asking the user for
// each missing parameter.
func (v *Validator) MissingParamsPrompt(actionName string, missing []capabilities.Parameter) string {
	desc := actionName
	if action, ok := v.registry.Lookup(actionName); ok {
		desc = action.Description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "To %s, I need a few details:\n", strings.ToLower(desc))
	for i, param := range missing {
		example := ""
		if param.Example != "" {
			example = fmt.Sprintf(" (e.g., %s)", param.Example)
		}
		fmt.Fprintf(&b, "\n%d. **%s**: %s%s", i+1, param.Name, param.Description, example)
	}
	b.WriteString("\n\nPlease provide these details and I'll help you proceed.")
	return b.String()
}

// ActionRequirements describes what an action needs, split into required
// and optional parameters. Returns "" for unknown actions.
func (v *Validator) ActionRequirements(actionName string) string {
	action, ok := v.registry.Lookup(actionName)
	if !ok {
		return ""
	}
	if len(action.Parameters) == 0 {
		return fmt.Sprintf("No additional information needed for '%s'.", action.Description)
	}

	var required, optional []capabilities.Parameter
	for _, p := range action.Parameters {
		if p.Required {
			required = append(required, p)
		} else {
			optional = append(optional, p)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "To %s, you'll need:\n", strings.ToLower(action.Description))
	if len(required) > 0 {
		b.WriteString("\n**Required:**\n")
		for _, p := range required {
			writeRequirement(&b, p)
		}
	}
	if len(optional) > 0 {
		b.WriteString("\n**Optional:**\n")
		for _, p := range optional {
			writeRequirement(&b, p)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeRequirement(b *strings.Builder, p capabilities.Parameter) {
	ex := ""
	if p.Example != "" {
		ex = fmt.Sprintf(" (e.g., %s)", p.Example)
	}
	fmt.Fprintf(b, "  - %s: %s%s\n", p.Name, p.Description, ex)
}
