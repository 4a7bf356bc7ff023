package agent

import (
	"regexp"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/schema"
)

// Extraction stages, tried in order. The LLM is instructed to emit a
// fenced JSON block, but models drift, so bare fences and inline JSON
// are accepted too.
var directivePatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```"),
	regexp.MustCompile("(?s)```\\s*(\\{.*?\\})\\s*```"),
	regexp.MustCompile(`(\{[^{}]*"directive_type"[^{}]*\})`),
}

var clarifyCues = []string{"which", "what", "please specify", "could you"}

var refusalCues = []string{"cannot", "not supported", "not available", "sorry"}

// ParseDirective extracts an ActionDirective from raw LLM output.
// When no valid JSON is found, the directive type is inferred from the
// wording of the response so the caller always gets something usable.
func ParseDirective(response string) schema.ActionDirective {
	for _, pattern := range directivePatterns {
		match := pattern.FindStringSubmatch(response)
		if match == nil {
			continue
		}
		directive, err := schema.DecodeDirective([]byte(match[1]))
		if err != nil {
			continue
		}
		return directive
	}

	lower := strings.ToLower(response)

	for _, cue := range clarifyCues {
		if strings.Contains(lower, cue) {
			return schema.Clarify(response, []string{"unknown"})
		}
	}

	for _, cue := range refusalCues {
		if strings.Contains(lower, cue) {
			return schema.Unsupported(response)
		}
	}

	return schema.InfoOnly(response)
}
