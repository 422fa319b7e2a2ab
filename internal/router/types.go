package router

import "encoding/json"

// Status is the discriminator of a routing Decision.
type Status string

const (
	StatusEmergency          Status = "emergency"
	StatusNeedsClarification Status = "needs_clarification"
	StatusClassified         Status = "classified"
	StatusError              Status = "error"
)

// ErrorKind tells error decisions apart without parsing the message.
type ErrorKind string

const (
	ErrorKindConfiguration ErrorKind = "configuration"
	ErrorKindPrediction    ErrorKind = "prediction"
	ErrorKindNoRoute       ErrorKind = "no_route"
	ErrorKindInternal      ErrorKind = "internal"
)

// IntentClassification is the structured model output for one utterance.
type IntentClassification struct {
	ClassifiedIntent    string   `json:"classified_intent" validate:"required"`
	ConfidenceScore     float64  `json:"confidence_score" validate:"gte=0,lte=1"`
	IsEmergency         bool     `json:"is_emergency"`
	ClarifyingQuestions []string `json:"clarifying_questions"`
	PossibleIntents     []string `json:"possible_intents"`
}

// Decision is the result of routing one utterance. Which fields are set depends on Status.
type Decision struct {
	Status Status

	// emergency
	Action string

	// classified
	Intent                string
	Confidence            float64
	RouteTo               string
	RequiredPrerequisites []string
	OptionalPrerequisites []string

	// needs_clarification
	Questions       []string
	PossibleIntents []string

	// error
	Message   string
	ErrorKind ErrorKind
	Err       error

	// Classification is nil only for error decisions raised before the model answered.
	Classification *IntentClassification
}

// MarshalJSON emits only the keys that belong to d.Status.
func (d Decision) MarshalJSON() ([]byte, error) {
	out := map[string]any{"status": d.Status}

	switch d.Status {
	case StatusEmergency:
		out["action"] = d.Action
	case StatusNeedsClarification:
		out["questions"] = d.Questions
		out["possible_intents"] = d.PossibleIntents
	case StatusClassified:
		out["intent"] = d.Intent
		out["confidence"] = d.Confidence
		out["route_to"] = d.RouteTo
		out["required_prerequisites"] = d.RequiredPrerequisites
		out["optional_prerequisites"] = d.OptionalPrerequisites
	case StatusError:
		out["message"] = d.Message
		out["error_kind"] = d.ErrorKind
	}

	if d.Classification != nil {
		out["classification"] = d.Classification
	}
	return json.Marshal(out)
}
