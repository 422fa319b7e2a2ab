package routing_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patient-intake-router/internal/routing"
)

func TestLoadFile(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		cfg, err := routing.LoadFile(filepath.Join("testdata", "routing_rules.yaml"))
		require.NoError(t, err)
		assert.Len(t, cfg.Rules(), 5)
		assert.Equal(t, filepath.Join("testdata", "routing_rules.yaml"), cfg.Source())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := routing.LoadFile(filepath.Join("testdata", "does_not_exist.yaml"))
		require.Error(t, err)

		var loadErr *routing.ConfigLoadError
		require.True(t, errors.As(err, &loadErr))
		assert.ErrorIs(t, err, routing.ErrConfigNotFound)
	})

	t.Run("missing global_rules section", func(t *testing.T) {
		_, err := routing.LoadFile(filepath.Join("testdata", "missing_global_rules.yaml"))
		require.Error(t, err)

		var loadErr *routing.ConfigLoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, []string{"global_rules"}, loadErr.Missing)
		assert.ErrorIs(t, err, routing.ErrMissingSections)
		assert.Contains(t, err.Error(), "missing required sections in config: global_rules")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := routing.LoadFile(filepath.Join("testdata", "malformed.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrMalformedConfig)
	})

	t.Run("duplicate intent", func(t *testing.T) {
		_, err := routing.LoadFile(filepath.Join("testdata", "duplicate_intent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, routing.ErrDuplicateIntent)
	})
}

func TestLoadFromDir(t *testing.T) {
	cfg, err := routing.LoadFromDir("testdata")
	require.NoError(t, err)

	rule, ok := cfg.RuleByIntent("orthopedic_care")
	require.True(t, ok)
	assert.Equal(t, "orthopedics", rule.RouteTo)
}

func TestParse(t *testing.T) {
	t.Run("empty document names every section", func(t *testing.T) {
		_, err := routing.Parse([]byte(""), "inline")

		var loadErr *routing.ConfigLoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, []string{"departments", "prerequisites", "routing_rules", "global_rules"}, loadErr.Missing)
	})

	t.Run("rule without route_to", func(t *testing.T) {
		doc := `
departments: {}
prerequisites: {}
routing_rules:
  - intent: billing_inquiry
    description: Billing
global_rules: {}
`
		_, err := routing.Parse([]byte(doc), "inline")
		assert.ErrorIs(t, err, routing.ErrInvalidRule)
	})

	t.Run("reserved intent", func(t *testing.T) {
		doc := `
departments: {}
prerequisites: {}
routing_rules:
  - intent: needs_clarification
    route_to: triage
global_rules: {}
`
		_, err := routing.Parse([]byte(doc), "inline")
		assert.ErrorIs(t, err, routing.ErrInvalidRule)
	})

	t.Run("sections present but empty", func(t *testing.T) {
		doc := `
departments:
prerequisites:
routing_rules:
global_rules:
`
		cfg, err := routing.Parse([]byte(doc), "inline")
		require.NoError(t, err)
		assert.Empty(t, cfg.Rules())
		assert.NotNil(t, cfg.EmergencyKeywords())
		assert.Empty(t, cfg.EmergencyKeywords())
	})
}
