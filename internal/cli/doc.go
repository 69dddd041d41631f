// Package cli defines the Cobra command tree for the embassy-cli tool. Each
// file in this package registers one top-level command (create, list, config,
// etc.) with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing, prompting, and
// output formatting.
package cli
