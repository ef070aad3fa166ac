// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grouper

import "strings"

// FlagPrefix marks a token as a flag.
const FlagPrefix = "--"

// Group is a flag token followed by the data tokens that belong to it.
type Group struct {
	Flag string
	Args []string
}

// Tokens returns the group in its flat form: the flag followed by its arguments.
func (g Group) Tokens() []string {
	out := make([]string, 0, len(g.Args)+1)
	out = append(out, g.Flag)
	return append(out, g.Args...)
}

// IsFlag reports whether token starts with FlagPrefix.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, FlagPrefix)
}

// Parse scans tokens left to right and returns one Group per flag token, in
// input order. The first token must be a flag, otherwise there is no group to
// attach it to and a *NotAFlagError is returned. An empty input yields an
// empty result.
func Parse(tokens []string) ([]Group, error) {
	groups := make([]Group, 0, countFlags(tokens))

	for i, token := range tokens {
		if IsFlag(token) {
			groups = append(groups, Group{Flag: token, Args: []string{}})
			continue
		}
		if i == 0 {
			return nil, &NotAFlagError{Token: token}
		}
		last := &groups[len(groups)-1]
		last.Args = append(last.Args, token)
	}

	return groups, nil
}

func countFlags(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if IsFlag(t) {
			n++
		}
	}
	return n
}
