// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package validator

import (
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
	"github.com/specialistvlad/porpoiseful/internal/grouper"
)

// Validate checks every group against schema in order and returns the first
// failure, or nil when all groups pass. An empty list of groups is valid.
func Validate(groups []grouper.Group, schema *flagschema.Schema) error {
	for _, g := range groups {
		if err := ValidateGroup(g, schema); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGroup checks a single group: the flag must exist in schema, its
// argument count must be within bounds and, when the entry restricts values,
// every argument must be one of them.
func ValidateGroup(g grouper.Group, schema *flagschema.Schema) error {
	entry, ok := schema.Lookup(g.Flag)
	if !ok {
		return unknownFlag(g.Flag)
	}

	n := len(g.Args)
	if n < entry.MinArgs {
		return tooFewArguments(g.Flag, entry.MinArgs, n)
	}
	if n > entry.MaxArgs {
		return tooManyArguments(g.Flag, entry.MaxArgs, n)
	}

	if !entry.HasValueSet() {
		return nil
	}
	for _, arg := range g.Args {
		if !entry.Permits(arg) {
			return invalidArgumentValue(arg, g.Flag, entry.Values)
		}
	}
	return nil
}
