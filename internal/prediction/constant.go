package prediction

// Log prefixes
const (
	LogPrefixPredict = "internal.prediction.Predict"
)

// Failure stages reported in PredictionError
const (
	StageRender   = "render"
	StageProvider = "provider"
	StageDecode   = "decode"
	StageValidate = "validate"
)

const tracerName = "patient-intake-router/internal/prediction"

const systemInstructionTemplate = `Respond with a single JSON object and nothing else.
The object must conform to this JSON schema (%s):
%s`
