// Package config provides configuration loading, merging, and validation
// facilities for the athenc client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which maps the merged
// [StructuredConfig] onto the client view, applies defaults, and validates
// the result.
package config
