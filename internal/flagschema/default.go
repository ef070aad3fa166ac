// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package flagschema

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed default.hcl
var defaultManifest []byte

var loadDefault = sync.OnceValues(func() (*Schema, error) {
	return Decode(defaultManifest, "default.hcl")
})

// Default returns the built-in schema. It is decoded on first use and the
// same instance is returned afterwards. It panics if the embedded manifest is
// invalid, which can only happen when the binary was built from a broken
// default.hcl.
func Default() *Schema {
	schema, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("flagschema: built-in schema is invalid: %v", err))
	}
	return schema
}
