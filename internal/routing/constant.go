package routing

// DefaultRulesFile is the file name LoadFromDir looks for.
const DefaultRulesFile = "routing_rules.yaml"

// IntentNeedsClarification is the sentinel intent returned when no single intent fits.
// It is reserved and may not be declared by a routing rule.
const IntentNeedsClarification = "needs_clarification"

// Top-level sections every routing document must declare.
const (
	SectionDepartments   = "departments"
	SectionPrerequisites = "prerequisites"
	SectionRoutingRules  = "routing_rules"
	SectionGlobalRules   = "global_rules"
)

var requiredSections = []string{
	SectionDepartments,
	SectionPrerequisites,
	SectionRoutingRules,
	SectionGlobalRules,
}
