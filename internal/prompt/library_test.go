package prompt

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	errors []string
	infos  []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infos = append(m.infos, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors = append(m.errors, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestLoadFile(t *testing.T) {
	t.Run("default library", func(t *testing.T) {
		lib, err := LoadFile(filepath.Join("testdata", "prompt_library.yaml"))
		require.NoError(t, err)

		tmpl, ok := lib.Get("intent_routing", "intent_classification")
		require.True(t, ok)
		assert.Equal(t, "intent_routing", tmpl.Category)
		assert.Equal(t, "intent_classification", tmpl.Name)
		assert.NotEmpty(t, tmpl.Description)
		assert.ElementsMatch(t, []string{"user_input", "intent_descriptions", "emergency_keywords"}, tmpl.Variables())
	})

	t.Run("scalar and mapping entries", func(t *testing.T) {
		lib, err := LoadFile(filepath.Join("testdata", "mixed.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 3, lib.Len())
		assert.Equal(t, []string{"intent_routing", "smalltalk"}, lib.Categories())

		greeting, ok := lib.Get("intent_routing", "greeting")
		require.True(t, ok)
		assert.Equal(t, "Hello {caller_name}", greeting.Text)
		assert.Equal(t, "Greets the caller.", greeting.Description)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "nope.yaml"))
		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.ErrorIs(t, err, ErrLibraryNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "malformed.yaml"))
		assert.ErrorIs(t, err, ErrMalformedLibrary)
	})
}

func TestLoad_SoftFailure(t *testing.T) {
	l := &mockLogger{}
	lib := Load(context.Background(), filepath.Join("testdata", "nope.yaml"), l)

	require.NotNil(t, lib)
	assert.Equal(t, 0, lib.Len())
	_, ok := lib.Get("intent_routing", "intent_classification")
	assert.False(t, ok)
	require.Len(t, l.errors, 1)
	assert.Contains(t, l.errors[0], "Prompt library file not found")
}

func TestLoadFromDir(t *testing.T) {
	l := &mockLogger{}
	lib := LoadFromDir(context.Background(), "testdata", l)

	assert.Equal(t, 1, lib.Len())
	assert.Empty(t, l.errors)
	require.Len(t, l.infos, 1)
}

func TestGet_UnknownCategoryOrName(t *testing.T) {
	lib := NewLibrary(map[string]map[string]string{
		"intent_routing": {"intent_classification": "{user_input}"},
	})

	_, ok := lib.Get("billing", "intent_classification")
	assert.False(t, ok)
	_, ok = lib.Get("intent_routing", "summary")
	assert.False(t, ok)
}
