// Package config provides configuration loading, merging, and validation
// facilities for the dashboard.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// Remaining zero fields are filled from built-in defaults. The main entry
// points are [GetStructuredConfig] for the server and [GetToolConfig] for
// the maintenance commands.
package config
