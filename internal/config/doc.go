// Package config loads and merges the smart-planner application
// configuration from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// The main entry point is [GetStructuredConfig]. Sources are merged with
// mergo in priority order (env > flags > JSON file > defaults); the merged
// result is validated before use.
package config
