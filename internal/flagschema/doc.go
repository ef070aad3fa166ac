/*
Package flagschema describes which status flags the tool understands.

Every flag has an Entry that bounds how many arguments it takes, optionally
restricts which argument values are accepted, and carries three capability
markers (config path, command path, file path) that the value-acquisition
layer uses to decide where a flag's data comes from.

Schemas are declared as HCL manifests:

	flag "--battery" {
	  values   = ["time", "percentage"]
	  min_args = 1
	  max_args = 2
	}

A Schema is immutable once built. Default returns the built-in schema, which
is decoded from an embedded manifest exactly once and may be shared freely
between goroutines.
*/
package flagschema
