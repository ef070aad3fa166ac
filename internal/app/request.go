// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
	"github.com/specialistvlad/porpoiseful/internal/grouper"
)

// Request is a validated status flag together with the capability markers of
// its schema entry. It tells the acquisition layer what to show and where the
// value may come from.
type Request struct {
	Flag string
	Args []string

	ConfigPath  bool
	CommandPath bool
	FilePath    bool
}

// Sources names the capability markers set on the request, in a fixed order.
func (r Request) Sources() []string {
	return flagschema.Entry{
		ConfigPath:  r.ConfigPath,
		CommandPath: r.CommandPath,
		FilePath:    r.FilePath,
	}.Sources()
}

// Resolve maps validated groups to requests, preserving their order. Groups
// are expected to have passed validation against schema; any group whose
// flag is missing from schema is skipped.
func Resolve(groups []grouper.Group, schema *flagschema.Schema) []Request {
	requests := make([]Request, 0, len(groups))
	for _, g := range groups {
		entry, ok := schema.Lookup(g.Flag)
		if !ok {
			continue
		}
		requests = append(requests, Request{
			Flag:        g.Flag,
			Args:        append([]string{}, g.Args...),
			ConfigPath:  entry.ConfigPath,
			CommandPath: entry.CommandPath,
			FilePath:    entry.FilePath,
		})
	}
	return requests
}
