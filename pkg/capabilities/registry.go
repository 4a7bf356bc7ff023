// Package capabilities is the static catalogue of every action the
// assistant can perform against the Hevo API: names, parameters, examples,
// and follow-up suggestions. The registry is immutable after construction.
package capabilities

// Category groups actions for help text and prompt construction.
type Category string

const (
	CategoryPipelines       Category = "Pipelines"
	CategoryObjects         Category = "Pipeline Objects"
	CategoryTransformations Category = "Transformations"
	CategorySchemaMapping   Category = "Schema Mapping"
	CategoryEventTypes      Category = "Event Types"
	CategoryDestinations    Category = "Destinations"
	CategoryModels          Category = "Models"
	CategoryWorkflows       Category = "Workflows"
	CategoryUsers           Category = "Team Management"
	CategoryOAuth           Category = "OAuth Accounts"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryPipelines,
	CategoryObjects,
	CategoryTransformations,
	CategorySchemaMapping,
	CategoryEventTypes,
	CategoryDestinations,
	CategoryModels,
	CategoryWorkflows,
	CategoryUsers,
	CategoryOAuth,
}

// Parameter describes a single action parameter.
type Parameter struct {
	Name        string
	Description string
	Required    bool
	Type        string // string, boolean or object
	Example     string
}

// ActionDefinition describes one action exposed by the Hevo API.
type ActionDefinition struct {
	Name        string
	Description string
	Category    Category
	Method      string
	Endpoint    string
	Parameters  []Parameter
	Examples    []string
	FollowUps   []string
	Implemented bool
}

// Registry is an immutable lookup table of action definitions. Build one
// with Default() at startup; there is no mutation API.
type Registry struct {
	actions map[string]ActionDefinition
	order   []string
}

// NewRegistry builds a registry from a fixed set of definitions, preserving
// the given order for display purposes.
func NewRegistry(defs []ActionDefinition) *Registry {
	r := &Registry{
		actions: make(map[string]ActionDefinition, len(defs)),
		order:   make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if _, exists := r.actions[def.Name]; !exists {
			r.order = append(r.order, def.Name)
		}
		r.actions[def.Name] = def
	}
	return r
}

// Default returns the full Hevo action catalogue.
func Default() *Registry {
	return NewRegistry(catalogue)
}

// Lookup returns the definition for an action name.
func (r *Registry) Lookup(name string) (ActionDefinition, bool) {
	def, ok := r.actions[name]
	return def, ok
}

// Names returns all action names in catalogue order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// ByCategory groups all definitions by category, in catalogue order.
func (r *Registry) ByCategory() map[Category][]ActionDefinition {
	grouped := make(map[Category][]ActionDefinition)
	for _, name := range r.order {
		def := r.actions[name]
		grouped[def.Category] = append(grouped[def.Category], def)
	}
	return grouped
}

// MissingRequired returns the required parameters of an action that are not
// satisfied by the provided params. Parameters named "name" and "id" are
// mutually substitutable: supplying either satisfies both. Returns an empty
// list for unknown actions; callers must check existence separately.
func (r *Registry) MissingRequired(actionName string, provided map[string]any) []Parameter {
	def, ok := r.actions[actionName]
	if !ok {
		return nil
	}

	var missing []Parameter
	for _, param := range def.Parameters {
		if !param.Required {
			continue
		}
		if _, present := provided[param.Name]; present {
			continue
		}
		if param.Name == "name" || param.Name == "id" {
			alt := "id"
			if param.Name == "id" {
				alt = "name"
			}
			if _, present := provided[alt]; present {
				continue
			}
		}
		missing = append(missing, param)
	}
	return missing
}
