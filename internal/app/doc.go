// Package app contains the core application lifecycle. It turns the status
// flags collected by the CLI into validated requests for the acquisition
// layer, decoupled from any specific entrypoint.
package app
