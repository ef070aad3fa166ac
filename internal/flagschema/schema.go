// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package flagschema

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/specialistvlad/porpoiseful/internal/grouper"
)

// Entry holds the constraints for a single flag.
type Entry struct {
	// Name is the flag in its prefixed form, e.g. "--battery".
	Name string
	// Values is the set of permitted arguments. A nil slice accepts any value.
	Values []string
	// MinArgs is the minimum number of arguments.
	MinArgs int
	// MaxArgs is the maximum number of arguments.
	MaxArgs int
	// ConfigPath marks a flag whose value resolves to a configuration file.
	ConfigPath bool
	// CommandPath marks a flag whose value is produced by an executable.
	CommandPath bool
	// FilePath marks a flag whose value is read directly from a file.
	FilePath bool
}

// HasValueSet reports whether the entry restricts its argument values.
func (e Entry) HasValueSet() bool {
	return e.Values != nil
}

// Permits reports whether value is an accepted argument for the entry.
func (e Entry) Permits(value string) bool {
	if !e.HasValueSet() {
		return true
	}
	return lo.Contains(e.Values, value)
}

// Sources names the capability markers set on the entry: "config",
// "command" and "file", in that order.
func (e Entry) Sources() []string {
	sources := []string{}
	if e.ConfigPath {
		sources = append(sources, "config")
	}
	if e.CommandPath {
		sources = append(sources, "command")
	}
	if e.FilePath {
		sources = append(sources, "file")
	}
	return sources
}

func (e Entry) clone() Entry {
	e.Values = slices.Clone(e.Values)
	return e
}

// Schema is an immutable, ordered set of entries indexed by flag name.
// A nil *Schema behaves like a schema with no flags.
type Schema struct {
	entries []Entry
	index   map[string]int
}

// New validates entries and builds a Schema from a private copy of them.
func New(entries []Entry) (*Schema, error) {
	s := &Schema{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if err := checkEntry(e); err != nil {
			return nil, err
		}
		if _, exists := s.index[e.Name]; exists {
			return nil, fmt.Errorf("flag %s is declared more than once", e.Name)
		}
		s.index[e.Name] = len(s.entries)
		s.entries = append(s.entries, e.clone())
	}

	return s, nil
}

func checkEntry(e Entry) error {
	if !grouper.IsFlag(e.Name) || len(e.Name) == len(grouper.FlagPrefix) {
		return fmt.Errorf("invalid flag name %q: must be %q followed by a name", e.Name, grouper.FlagPrefix)
	}
	if e.MinArgs < 0 {
		return fmt.Errorf("flag %s: min_args must not be negative, got %d", e.Name, e.MinArgs)
	}
	if e.MaxArgs < e.MinArgs {
		return fmt.Errorf("flag %s: max_args (%d) is lower than min_args (%d)", e.Name, e.MaxArgs, e.MinArgs)
	}
	if len(lo.Uniq(e.Values)) != len(e.Values) {
		return fmt.Errorf("flag %s: permitted values contain duplicates", e.Name)
	}
	return nil
}

// Lookup returns a copy of the entry for name.
func (s *Schema) Lookup(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Names lists every flag name in declaration order.
func (s *Schema) Names() []string {
	if s == nil {
		return []string{}
	}
	return lo.Map(s.entries, func(e Entry, _ int) string {
		return e.Name
	})
}

// Entries returns copies of all entries in declaration order.
func (s *Schema) Entries() []Entry {
	if s == nil {
		return []Entry{}
	}
	return lo.Map(s.entries, func(e Entry, _ int) Entry {
		return e.clone()
	})
}

// Len is the number of flags in the schema.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
