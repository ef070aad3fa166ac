package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/specialistvlad/porpoiseful/internal/flagschema"
)

// writeFlagTable lists every flag of schema with its argument bounds,
// permitted values and value sources.
func writeFlagTable(w io.Writer, schema *flagschema.Schema) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Flag", "Arguments", "Values", "Source"})
	for _, e := range schema.Entries() {
		t.AppendRow(table.Row{e.Name, argumentBounds(e), permittedValues(e), sources(e)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func argumentBounds(e flagschema.Entry) string {
	if e.MinArgs == e.MaxArgs {
		return fmt.Sprintf("%d", e.MinArgs)
	}
	return fmt.Sprintf("%d-%d", e.MinArgs, e.MaxArgs)
}

func permittedValues(e flagschema.Entry) string {
	if !e.HasValueSet() {
		return "any"
	}
	return strings.Join(e.Values, ", ")
}

func sources(e flagschema.Entry) string {
	if out := e.Sources(); len(out) > 0 {
		return strings.Join(out, ", ")
	}
	return "-"
}
