// Package config provides configuration loading, merging, and validation
// facilities for the feedback client and the sandbox API.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetClientConfig] and [GetSandboxConfig], which return
// validated views of the merged [StructuredConfig].
package config
