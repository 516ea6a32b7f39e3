// Package registry loads alias registries: YAML documents declaring named
// values together with the extra keys that resolve to them.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/homier/aliasmap"
)

var (
	// ErrNoName marks an entry without a canonical name.
	ErrNoName = errors.New("entry has no name")
	// ErrDuplicateName marks a canonical name that is already registered,
	// as a name or as an alias of an earlier entry.
	ErrDuplicateName = errors.New("name already registered")
	// ErrSelfAlias marks an alias equal to its own entry name.
	ErrSelfAlias = errors.New("alias equals entry name")
	// ErrDuplicateAlias marks an alias that is already registered.
	ErrDuplicateAlias = errors.New("alias already registered")
)

// Entry declares one stored value: a canonical name, the value itself, and
// any number of extra aliases resolving to it.
type Entry struct {
	Name    string   `yaml:"name"`
	Value   string   `yaml:"value"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// File is the top-level registry document.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads the registry at path and builds the aliased store from it.
// A missing file is an error, unlike an empty one.
func Load(path string) (*aliasmap.Map[string, string], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}

	return m, nil
}

// Parse builds the aliased store from a YAML registry document. Unlike the
// container itself, which silently repoints keys, parsing is strict: unknown
// fields, nameless entries, duplicate names, self-aliases and reused aliases
// are all rejected with a typed error.
func Parse(raw []byte) (*aliasmap.Map[string, string], error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document is an empty registry.
			return aliasmap.New[string, string](), nil
		}
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}

	m := aliasmap.New(aliasmap.WithCapacity[string, string](len(file.Entries)))
	for i, e := range file.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNoName)
		}
		if m.Has(e.Name) {
			return nil, fmt.Errorf("entry %q: %w", e.Name, ErrDuplicateName)
		}

		m.Insert(e.Name, e.Value)

		for _, alias := range e.Aliases {
			if alias == e.Name {
				return nil, fmt.Errorf("entry %q: alias %q: %w", e.Name, alias, ErrSelfAlias)
			}
			if m.Has(alias) {
				return nil, fmt.Errorf("entry %q: alias %q: %w", e.Name, alias, ErrDuplicateAlias)
			}
			m.InsertAlias(e.Name, alias)
		}
	}

	return m, nil
}
