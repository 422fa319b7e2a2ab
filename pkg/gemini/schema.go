package gemini

import "strings"

// schemaKeys are the JSON Schema keywords the generateContent API understands.
var schemaKeys = map[string]bool{
	"type":        true,
	"description": true,
	"properties":  true,
	"required":    true,
	"items":       true,
	"enum":        true,
	"nullable":    true,
	"minimum":     true,
	"maximum":     true,
	"format":      true,
}

// ConvertSchema rewrites a JSON Schema into the API's OpenAPI subset:
// type names are upper-cased and unsupported keywords are dropped.
func ConvertSchema(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		if !schemaKeys[k] {
			continue
		}
		switch k {
		case "type":
			if s, ok := v.(string); ok {
				out[k] = strings.ToUpper(s)
			}
		case "properties":
			props, ok := v.(map[string]any)
			if !ok {
				continue
			}
			converted := make(map[string]any, len(props))
			for name, p := range props {
				if sub, ok := p.(map[string]any); ok {
					converted[name] = ConvertSchema(sub)
				}
			}
			out[k] = converted
		case "items":
			if sub, ok := v.(map[string]any); ok {
				out[k] = ConvertSchema(sub)
			}
		default:
			out[k] = v
		}
	}
	return out
}
