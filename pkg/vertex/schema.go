package vertex

import (
	"strings"

	"google.golang.org/genai"
)

// ConvertSchema maps a JSON Schema onto *genai.Schema. Unknown keywords are ignored.
func ConvertSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}

	out := &genai.Schema{}
	if t, ok := schema["type"].(string); ok {
		out.Type = genai.Type(strings.ToUpper(t))
	}
	if d, ok := schema["description"].(string); ok {
		out.Description = d
	}
	if f, ok := schema["format"].(string); ok {
		out.Format = f
	}
	if n, ok := schema["nullable"].(bool); ok {
		out.Nullable = genai.Ptr(n)
	}
	if v, ok := toFloat(schema["minimum"]); ok {
		out.Minimum = genai.Ptr(v)
	}
	if v, ok := toFloat(schema["maximum"]); ok {
		out.Maximum = genai.Ptr(v)
	}
	out.Required = toStrings(schema["required"])
	out.Enum = toStrings(schema["enum"])

	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, p := range props {
			if sub, ok := p.(map[string]any); ok {
				out.Properties[name] = ConvertSchema(sub)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = ConvertSchema(items)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toStrings(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
