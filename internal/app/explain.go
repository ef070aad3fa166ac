package app

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// writePlan renders the resolved requests as a table.
func writePlan(w io.Writer, requests []Request) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Flag", "Arguments", "Source"})
	for i, r := range requests {
		args := strings.Join(r.Args, " ")
		if args == "" {
			args = "-"
		}
		source := strings.Join(r.Sources(), ", ")
		if source == "" {
			source = "-"
		}
		t.AppendRow(table.Row{i + 1, r.Flag, args, source})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
