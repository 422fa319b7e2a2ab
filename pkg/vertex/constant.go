package vertex

const (
	// DefaultModel is the default Vertex AI model
	DefaultModel = "gemini-2.5-flash"

	// DefaultLocation is the default Vertex AI region
	DefaultLocation = "us-central1"

	// MIMETypeJSON requests a JSON reply
	MIMETypeJSON = "application/json"
)
