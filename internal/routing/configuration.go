package routing

import (
	"slices"
	"sort"
)

// Configuration is the loaded, read-only routing configuration.
// It is never mutated after load and is safe for concurrent use.
type Configuration struct {
	source        string
	departments   map[string]Department
	prerequisites map[string]Prerequisite
	rules         []RoutingRule
	ruleIndex     map[string]int
	globalRules   GlobalRules
}

func newConfiguration(doc document) (*Configuration, error) {
	if err := validateRules(doc.RoutingRules); err != nil {
		return nil, err
	}

	cfg := &Configuration{
		departments:   make(map[string]Department, len(doc.Departments)),
		prerequisites: make(map[string]Prerequisite, len(doc.Prerequisites)),
		rules:         make([]RoutingRule, len(doc.RoutingRules)),
		ruleIndex:     make(map[string]int, len(doc.RoutingRules)),
		globalRules:   doc.GlobalRules,
	}

	for id, d := range doc.Departments {
		d.ID = id
		cfg.departments[id] = d
	}
	for id, p := range doc.Prerequisites {
		p.ID = id
		cfg.prerequisites[id] = p
	}
	for i, rule := range doc.RoutingRules {
		cfg.rules[i] = normalizeRule(rule)
		cfg.ruleIndex[rule.Intent] = i
	}
	if cfg.globalRules.EmergencyKeywords == nil {
		cfg.globalRules.EmergencyKeywords = []string{}
	}

	return cfg, nil
}

// New builds a Configuration directly from values. Intended for tests and tooling
// that assemble a configuration in code rather than from YAML.
func New(departments map[string]Department, prerequisites map[string]Prerequisite, rules []RoutingRule, global GlobalRules) (*Configuration, error) {
	return newConfiguration(document{
		Departments:   departments,
		Prerequisites: prerequisites,
		RoutingRules:  rules,
		GlobalRules:   global,
	})
}

func normalizeRule(rule RoutingRule) RoutingRule {
	if rule.ExampleUtterances == nil {
		rule.ExampleUtterances = []string{}
	}
	if rule.RequiredPrerequisites == nil {
		rule.RequiredPrerequisites = []string{}
	}
	if rule.OptionalPrerequisites == nil {
		rule.OptionalPrerequisites = []string{}
	}
	return rule
}

func cloneRule(rule RoutingRule) RoutingRule {
	rule.ExampleUtterances = slices.Clone(rule.ExampleUtterances)
	rule.RequiredPrerequisites = slices.Clone(rule.RequiredPrerequisites)
	rule.OptionalPrerequisites = slices.Clone(rule.OptionalPrerequisites)
	return rule
}

// Source returns the path the configuration was loaded from, if any.
func (c *Configuration) Source() string {
	return c.source
}

// Department returns the department with the given id.
func (c *Configuration) Department(id string) (Department, bool) {
	d, ok := c.departments[id]
	return d, ok
}

// Prerequisite returns the prerequisite with the given id.
func (c *Configuration) Prerequisite(id string) (Prerequisite, bool) {
	p, ok := c.prerequisites[id]
	return p, ok
}

// RuleByIntent returns the routing rule declared for intent.
func (c *Configuration) RuleByIntent(intent string) (RoutingRule, bool) {
	i, ok := c.ruleIndex[intent]
	if !ok {
		return RoutingRule{}, false
	}
	return cloneRule(c.rules[i]), true
}

// Rules returns the routing rules in declaration order.
func (c *Configuration) Rules() []RoutingRule {
	out := make([]RoutingRule, len(c.rules))
	for i, rule := range c.rules {
		out[i] = cloneRule(rule)
	}
	return out
}

// EmergencyKeywords returns the configured emergency keywords, empty when unset.
func (c *Configuration) EmergencyKeywords() []string {
	return slices.Clone(c.globalRules.EmergencyKeywords)
}

// PrerequisitesForIntent returns the required and optional prerequisites for intent.
// Both lists are empty when the intent is unknown.
func (c *Configuration) PrerequisitesForIntent(intent string) PrerequisiteSet {
	rule, ok := c.RuleByIntent(intent)
	if !ok {
		return PrerequisiteSet{Required: []string{}, Optional: []string{}}
	}
	return PrerequisiteSet{
		Required: rule.RequiredPrerequisites,
		Optional: rule.OptionalPrerequisites,
	}
}

// DepartmentIDs returns all department ids, sorted.
func (c *Configuration) DepartmentIDs() []string {
	ids := make([]string, 0, len(c.departments))
	for id := range c.departments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// UnknownRouteTargets lists route_to values that do not name a configured department.
func (c *Configuration) UnknownRouteTargets() []string {
	var unknown []string
	for _, rule := range c.rules {
		if _, ok := c.departments[rule.RouteTo]; !ok {
			unknown = append(unknown, rule.RouteTo)
		}
	}
	return unknown
}
