// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (JSON, TOML or YAML, chosen by extension)
//
// The main entry points are [GetStructuredConfig] for the merged
// configuration and [GetClientConfig] for the view consumed by the loyalty
// keeper runtime.
package config
