// Package cli defines the gallery command tree: the root command starts the
// TUI, "list" prints the catalogue as a table, JSON or YAML, and "logs" tails
// the structured log file.
package cli
