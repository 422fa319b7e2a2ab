package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"patient-intake-router/pkg/log"
)

// DefaultLibraryFile is the file name LoadFromDir looks for.
const DefaultLibraryFile = "prompt_library.yaml"

const logPrefixLoad = "internal.prompt.Load"

// Library maps category -> name -> Template. It is read-only after load.
type Library struct {
	prompts map[string]map[string]Template
}

// NewLibrary builds a Library from in-memory templates keyed by category and name.
func NewLibrary(prompts map[string]map[string]string) *Library {
	lib := &Library{prompts: make(map[string]map[string]Template, len(prompts))}
	for category, entries := range prompts {
		lib.prompts[category] = make(map[string]Template, len(entries))
		for name, text := range entries {
			lib.prompts[category][name] = Template{Category: category, Name: name, Text: text}
		}
	}
	return lib
}

// Empty returns a library with no prompts.
func Empty() *Library {
	return &Library{prompts: map[string]map[string]Template{}}
}

// LoadFile reads the library strictly, returning a *LoadError on any failure.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrLibraryNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	var raw map[string]map[string]Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedLibrary, err)}
	}

	lib := Empty()
	for category, entries := range raw {
		lib.prompts[category] = make(map[string]Template, len(entries))
		for name, tmpl := range entries {
			tmpl.Category = category
			tmpl.Name = name
			lib.prompts[category][name] = tmpl
		}
	}
	return lib, nil
}

// Load reads the library at path. Missing or malformed files are logged and an
// empty library is returned, so startup continues and requests fail individually.
func Load(ctx context.Context, path string, l log.Logger) *Library {
	lib, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, ErrLibraryNotFound) {
			l.Errorf(ctx, "%s: Prompt library file not found: %s", logPrefixLoad, path)
		} else {
			l.Errorf(ctx, "%s: %v", logPrefixLoad, err)
		}
		return Empty()
	}
	l.Infof(ctx, "%s: Loaded %d prompt(s) from %s", logPrefixLoad, lib.Len(), path)
	return lib
}

// LoadFromDir calls Load on DefaultLibraryFile inside dir.
func LoadFromDir(ctx context.Context, dir string, l log.Logger) *Library {
	return Load(ctx, filepath.Join(dir, DefaultLibraryFile), l)
}

// Get returns the template registered under category and name.
func (lib *Library) Get(category, name string) (Template, bool) {
	entries, ok := lib.prompts[category]
	if !ok {
		return Template{}, false
	}
	tmpl, ok := entries[name]
	return tmpl, ok
}

// Len returns the total number of templates.
func (lib *Library) Len() int {
	n := 0
	for _, entries := range lib.prompts {
		n += len(entries)
	}
	return n
}

// Categories returns the category names, sorted.
func (lib *Library) Categories() []string {
	out := make([]string, 0, len(lib.prompts))
	for category := range lib.prompts {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
