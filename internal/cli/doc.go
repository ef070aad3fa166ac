// Package cli is responsible for parsing command-line arguments and handling
// process-level concerns like exit codes. It separates the front-end options
// from the status flags and translates them into the application's
// configuration.
package cli
