package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixProcess  = "internal.router.ProcessUserInput"
)

// Prompt lookup
const (
	PromptCategory = "intent_routing"
	PromptName     = "intent_classification"
)

// Prompt variables
const (
	VarUserInput          = "user_input"
	VarIntentDescriptions = "intent_descriptions"
	VarEmergencyKeywords  = "emergency_keywords"
)

// ActionRouteToEmergency is the action attached to every emergency decision.
const ActionRouteToEmergency = "route_to_emergency"

// Messages
const (
	MsgPromptNotFound = "Intent classification prompt not found"
	MsgNoRoutingRule  = "No routing rule found for classified intent"
)

const tracerName = "patient-intake-router/internal/router"
