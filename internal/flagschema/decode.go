// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package flagschema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// manifestRoot is the top-level structure of a schema manifest.
type manifestRoot struct {
	Flags []*hclFlag `hcl:"flag,block"`
}

// hclFlag is a single 'flag' block as written in a manifest.
type hclFlag struct {
	Name        string         `hcl:"name,label"`
	Values      hcl.Expression `hcl:"values,optional"`
	MinArgs     int            `hcl:"min_args"`
	MaxArgs     int            `hcl:"max_args"`
	ConfigPath  bool           `hcl:"config_path,optional"`
	CommandPath bool           `hcl:"command_path,optional"`
	FilePath    bool           `hcl:"file_path,optional"`
}

// Decode parses an HCL schema manifest and builds a Schema from its 'flag'
// blocks. filename is only used in diagnostics.
func Decode(src []byte, filename string) (*Schema, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema manifest %s: %w", filename, diags)
	}

	var root manifestRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema manifest %s: %w", filename, diags)
	}

	entries := make([]Entry, 0, len(root.Flags))
	for _, f := range root.Flags {
		values, diags := decodeValues(f.Values)
		if diags.HasErrors() {
			return nil, fmt.Errorf("flag %s in %s: %w", f.Name, filename, diags)
		}
		entries = append(entries, Entry{
			Name:        f.Name,
			Values:      values,
			MinArgs:     f.MinArgs,
			MaxArgs:     f.MaxArgs,
			ConfigPath:  f.ConfigPath,
			CommandPath: f.CommandPath,
			FilePath:    f.FilePath,
		})
	}

	schema, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid schema manifest %s: %w", filename, err)
	}
	return schema, nil
}

// decodeValues turns the optional 'values' attribute into a permitted-value
// set. A missing or null attribute yields nil, meaning any value is accepted.
func decodeValues(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if expr == nil {
		return nil, diags
	}

	val, valDiags := expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, diags
	}

	ty := val.Type()
	if !(ty.IsTupleType() || ty.IsListType() || ty.IsSetType()) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid values attribute",
			Detail:   fmt.Sprintf("The 'values' attribute must be a list of strings, got %s.", ty.FriendlyName()),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid values attribute",
			Detail:   fmt.Sprintf("The 'values' attribute must be a list of strings: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	values := []string{}
	if list.LengthInt() == 0 {
		return values, diags
	}
	if err := gocty.FromCtyValue(list, &values); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid values attribute",
			Detail:   fmt.Sprintf("The 'values' attribute must not contain null elements: %s.", err),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}
	return values, diags
}
