package prompt

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a prompt with {name} placeholders. {{ and }} render as literal braces.
type Template struct {
	Category    string
	Name        string
	Description string
	Text        string
}

// templateEntry is the mapping form of a prompt entry in the library file.
type templateEntry struct {
	Template    string `yaml:"template"`
	Description string `yaml:"description"`
}

// UnmarshalYAML accepts either a plain string or a {template, description} mapping.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&t.Text)
	case yaml.MappingNode:
		var entry templateEntry
		if err := node.Decode(&entry); err != nil {
			return err
		}
		if entry.Template == "" {
			return fmt.Errorf("line %d: prompt entry has no template", node.Line)
		}
		t.Text = entry.Template
		t.Description = entry.Description
		return nil
	default:
		return fmt.Errorf("line %d: prompt entry must be a string or a mapping", node.Line)
	}
}

// Variables returns the placeholder names in order of first appearance.
func (t Template) Variables() []string {
	var names []string
	seen := map[string]bool{}
	_ = scan(t.Text, func(literal string) {}, func(name string) error {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	return names
}

// Render substitutes every placeholder with its value from vars.
// A placeholder without a value is an error.
func (t Template) Render(vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.Text))

	err := scan(t.Text, func(literal string) {
		b.WriteString(literal)
	}, func(name string) error {
		v, ok := vars[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingVariable, name)
		}
		b.WriteString(v)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("render prompt %s/%s: %w", t.Category, t.Name, err)
	}
	return b.String(), nil
}

// scan walks text, emitting literal runs and placeholder names.
// A brace that does not open a valid {identifier} is emitted literally.
func scan(text string, literal func(string), placeholder func(string) error) error {
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				literal(text[start:i] + "{")
				i++
				start = i + 1
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				continue
			}
			name := text[i+1 : i+1+end]
			if !isIdentifier(name) {
				continue
			}
			literal(text[start:i])
			if err := placeholder(name); err != nil {
				return err
			}
			i += end + 1
			start = i + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				literal(text[start:i] + "}")
				i++
				start = i + 1
			}
		}
	}
	literal(text[start:])
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
