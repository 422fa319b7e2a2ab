package router

import "patient-intake-router/internal/prediction"

// ClassificationSchema is the output contract handed to the prediction gateway.
var ClassificationSchema = prediction.Schema{
	Name: "IntentClassification",
	JSON: map[string]any{
		"type":        "object",
		"description": "Structured output for intent classification",
		"properties": map[string]any{
			"classified_intent": map[string]any{
				"type":        "string",
				"description": "The classified intent or 'needs_clarification'",
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"description": "Confidence in the classification from 0.0 to 1.0",
				"minimum":     0.0,
				"maximum":     1.0,
			},
			"is_emergency": map[string]any{
				"type":        "boolean",
				"description": "Whether emergency keywords were detected",
			},
			"clarifying_questions": map[string]any{
				"type":        "array",
				"description": "List of clarifying questions if intent is unclear",
				"nullable":    true,
				"items":       map[string]any{"type": "string"},
			},
			"possible_intents": map[string]any{
				"type":        "array",
				"description": "List of possible intents when clarification is needed",
				"nullable":    true,
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []string{"classified_intent", "confidence_score", "is_emergency"},
	},
}
