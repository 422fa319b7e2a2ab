package routing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates the routing configuration at path.
func LoadFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigLoadError{Path: path, Err: fmt.Errorf("%w: %s", ErrConfigNotFound, path)}
		}
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	return Parse(data, path)
}

// LoadFromDir reads DefaultRulesFile from the given configuration directory.
func LoadFromDir(dir string) (*Configuration, error) {
	return LoadFile(filepath.Join(dir, DefaultRulesFile))
}

// Parse decodes a routing document. source is only used in error messages.
func Parse(data []byte, source string) (*Configuration, error) {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, &ConfigLoadError{Path: source, Err: fmt.Errorf("%w: %v", ErrMalformedConfig, err)}
	}

	var missing []string
	for _, name := range requiredSections {
		if _, ok := sections[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigLoadError{
			Path:    source,
			Missing: missing,
			Err:     fmt.Errorf("%w: %s", ErrMissingSections, strings.Join(missing, ", ")),
		}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigLoadError{Path: source, Err: fmt.Errorf("%w: %v", ErrMalformedConfig, err)}
	}

	cfg, err := newConfiguration(doc)
	if err != nil {
		return nil, &ConfigLoadError{Path: source, Err: err}
	}
	cfg.source = source
	return cfg, nil
}

// validateRules enforces required fields and intent uniqueness.
func validateRules(rules []RoutingRule) error {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Intent) == "" {
			return fmt.Errorf("%w: rule %d: intent is required", ErrInvalidRule, i)
		}
		if strings.TrimSpace(rule.RouteTo) == "" {
			return fmt.Errorf("%w: rule %q: route_to is required", ErrInvalidRule, rule.Intent)
		}
		if rule.Intent == IntentNeedsClarification {
			return fmt.Errorf("%w: intent %q is reserved", ErrInvalidRule, rule.Intent)
		}
		if first, dup := seen[rule.Intent]; dup {
			return fmt.Errorf("%w: %q declared by rules %d and %d", ErrDuplicateIntent, rule.Intent, first, i)
		}
		seen[rule.Intent] = i
	}
	return nil
}
