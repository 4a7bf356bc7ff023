package capabilities

import (
	"fmt"
	"strings"
)

// DescribeParameter renders a parameter for help text.
func DescribeParameter(p Parameter) string {
	req := "(optional)"
	if p.Required {
		req = "(required)"
	}
	ex := ""
	if p.Example != "" {
		ex = fmt.Sprintf(" e.g., %s", p.Example)
	}
	return fmt.Sprintf("%s %s: %s%s", p.Name, req, p.Description, ex)
}

// FormatList renders the full capability catalogue for display to the user.
func (r *Registry) FormatList() string {
	grouped := r.ByCategory()

	var b strings.Builder
	b.WriteString("Here's what I can help you with:\n")
	for _, category := range Categories {
		actions := grouped[category]
		if len(actions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n**%s**\n", category)
		for _, action := range actions {
			status := ""
			if !action.Implemented {
				status = " (coming soon)"
			}
			fmt.Fprintf(&b, "  - %s%s\n", action.Description, status)
		}
	}
	b.WriteString("\nJust ask me in natural language! For example:\n")
	b.WriteString("  - \"List my pipelines\"\n")
	b.WriteString("  - \"Pause the Salesforce pipeline\"\n")
	b.WriteString("  - \"Run my daily_summary model\"")
	return b.String()
}

// FormatHelp renders help text for one action, or "" if unknown.
func (r *Registry) FormatHelp(actionName string) string {
	action, ok := r.actions[actionName]
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", action.Description)
	if len(action.Parameters) > 0 {
		b.WriteString("\nRequired information:\n")
		for _, param := range action.Parameters {
			fmt.Fprintf(&b, "  - %s\n", DescribeParameter(param))
		}
	}
	if len(action.Examples) > 0 {
		b.WriteString("\nYou can say things like:\n")
		examples := action.Examples
		if len(examples) > 3 {
			examples = examples[:3]
		}
		for _, ex := range examples {
			fmt.Fprintf(&b, "  - %q\n", ex)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// PromptText renders the implemented actions grouped by category for the
// coordinator's system prompt, showing the first two parameter names per
// action.
func (r *Registry) PromptText() string {
	grouped := r.ByCategory()

	var b strings.Builder
	b.WriteString("## Available Actions\n")
	for _, category := range Categories {
		var implemented []ActionDefinition
		for _, action := range grouped[category] {
			if action.Implemented {
				implemented = append(implemented, action)
			}
		}
		if len(implemented) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n", category)
		for _, action := range implemented {
			params := "none"
			if len(action.Parameters) > 0 {
				names := make([]string, 0, 2)
				for _, p := range action.Parameters {
					names = append(names, p.Name)
					if len(names) == 2 {
						break
					}
				}
				params = strings.Join(names, ", ")
			}
			fmt.Fprintf(&b, "- %s: %s (params: %s)\n", action.Name, action.Description, params)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
