// Package validator checks argument groups against a flag schema.
//
// Validation stops at the first group that fails and reports exactly one
// cause as a *Error. It performs no I/O and never modifies its inputs.
package validator
