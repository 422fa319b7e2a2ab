package routing

// Department is a routing destination. Keys other than name and description are kept in Extra.
type Department struct {
	ID          string         `yaml:"-" json:"id"`
	Name        string         `yaml:"name" json:"name,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// Prerequisite is something the patient must provide or complete before being routed.
type Prerequisite struct {
	ID          string         `yaml:"-" json:"id"`
	Name        string         `yaml:"name" json:"name,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// RoutingRule maps an intent to a destination and its prerequisites.
type RoutingRule struct {
	Intent                string   `yaml:"intent"`
	Description           string   `yaml:"description"`
	ExampleUtterances     []string `yaml:"example_utterances"`
	RouteTo               string   `yaml:"route_to"`
	RequiredPrerequisites []string `yaml:"required_prerequisites"`
	OptionalPrerequisites []string `yaml:"optional_prerequisites"`
}

// GlobalRules holds settings that apply to every utterance.
type GlobalRules struct {
	EmergencyKeywords []string       `yaml:"emergency_keywords"`
	Extra             map[string]any `yaml:",inline"`
}

// PrerequisiteSet is the pair of prerequisite lists attached to an intent.
type PrerequisiteSet struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// document is the on-disk layout of routing_rules.yaml.
type document struct {
	Departments   map[string]Department   `yaml:"departments"`
	Prerequisites map[string]Prerequisite `yaml:"prerequisites"`
	RoutingRules  []RoutingRule           `yaml:"routing_rules"`
	GlobalRules   GlobalRules             `yaml:"global_rules"`
}
