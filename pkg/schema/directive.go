// Package schema defines the wire contract between the coordinator and
// executor agents: the ActionDirective produced by the coordinator and the
// AgentActionResult produced by the executor.
package schema

import (
	"encoding/json"
	"fmt"
)

// DirectiveType discriminates the four directive variants.
type DirectiveType string

const (
	DirectiveExecute     DirectiveType = "execute"
	DirectiveClarify     DirectiveType = "clarify"
	DirectiveUnsupported DirectiveType = "unsupported"
	DirectiveInfoOnly    DirectiveType = "info_only"
)

// ActionDirective is the coordinator's output: a tagged union with exactly
// one active payload shape per directive type. Fields belonging to other
// tags are omitted on serialization.
type ActionDirective struct {
	Type DirectiveType `json:"directive_type"`

	// execute
	Action  string         `json:"action,omitempty"`
	Params  map[string]any `json:"params,omitempty"`
	Context string         `json:"context,omitempty"`

	// clarify
	Question      string   `json:"question,omitempty"`
	MissingParams []string `json:"missing_params,omitempty"`

	// unsupported / info_only
	InfoResponse string `json:"info_response,omitempty"`
}

// Execute builds an execute directive for a known action.
func Execute(action string, params map[string]any, context string) ActionDirective {
	if params == nil {
		params = map[string]any{}
	}
	return ActionDirective{
		Type:    DirectiveExecute,
		Action:  action,
		Params:  params,
		Context: context,
	}
}

// Clarify builds a clarify directive asking the user for missing parameters.
func Clarify(question string, missingParams []string) ActionDirective {
	return ActionDirective{
		Type:          DirectiveClarify,
		Question:      question,
		MissingParams: missingParams,
	}
}

// Unsupported builds an unsupported directive with an explanation.
func Unsupported(info string) ActionDirective {
	return ActionDirective{
		Type:         DirectiveUnsupported,
		InfoResponse: info,
	}
}

// InfoOnly builds an informational directive with no side effects.
func InfoOnly(info string) ActionDirective {
	return ActionDirective{
		Type:         DirectiveInfoOnly,
		InfoResponse: info,
	}
}

// DecodeDirective parses a directive from JSON. An absent directive_type
// defaults to execute so that bare action objects emitted by an LLM still
// decode into something actionable.
func DecodeDirective(data []byte) (ActionDirective, error) {
	var d ActionDirective
	if err := json.Unmarshal(data, &d); err != nil {
		return ActionDirective{}, fmt.Errorf("invalid directive JSON: %w", err)
	}
	if d.Type == "" {
		d.Type = DirectiveExecute
	}
	switch d.Type {
	case DirectiveExecute, DirectiveClarify, DirectiveUnsupported, DirectiveInfoOnly:
	default:
		return ActionDirective{}, fmt.Errorf("unknown directive type: %q", d.Type)
	}
	if d.Type == DirectiveExecute && d.Params == nil {
		d.Params = map[string]any{}
	}
	return d, nil
}

// Encode serializes the directive, omitting fields that do not belong to
// the active tag.
func (d ActionDirective) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// IsExecute reports whether the directive requests an API action.
func (d ActionDirective) IsExecute() bool {
	return d.Type == DirectiveExecute
}
