package router

import (
	"strings"

	"patient-intake-router/internal/routing"
)

// formatIntentDescriptions renders every rule as a block, in declaration order,
// separated by blank lines.
func formatIntentDescriptions(rules []routing.RoutingRule) string {
	blocks := make([]string, 0, len(rules))
	for _, rule := range rules {
		var b strings.Builder
		b.WriteString("Intent: " + rule.Intent + "\n")
		b.WriteString("Description: " + rule.Description + "\n")
		b.WriteString("Example utterances:\n")
		examples := make([]string, len(rule.ExampleUtterances))
		for i, ex := range rule.ExampleUtterances {
			examples[i] = "- " + ex
		}
		b.WriteString(strings.Join(examples, "\n"))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func formatEmergencyKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// buildVariables assembles the prompt variables for one utterance.
func (r *IntentRouter) buildVariables(text string) map[string]string {
	return map[string]string{
		VarUserInput:          text,
		VarIntentDescriptions: formatIntentDescriptions(r.cfg.Rules()),
		VarEmergencyKeywords:  formatEmergencyKeywords(r.cfg.EmergencyKeywords()),
	}
}
