// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// feedback client and the sandbox API. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: logging and the survey link the
	// client opens on start.
	App App `envPrefix:"APP_"`

	// Adapter holds the feedback API origin and outbound request timeout
	// used by the client transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sandbox holds the settings of the in-memory contract server.
	Sandbox Sandbox `envPrefix:"SANDBOX_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the client writes its logs to. A relative path is
	// resolved against the directory of the executable so the terminal UI
	// stays clean.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SurveyLink is a survey token or a full survey link. When set, the
	// client opens the survey form directly instead of the menu.
	// Env: APP_SURVEY_LINK
	SurveyLink string `env:"SURVEY_LINK"`
}

// Adapter holds configuration of the outbound feedback API transport.
type Adapter struct {
	// HTTPAddress is the base URL of the feedback API, either a full URL
	// ("https://feedback.example.com") or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sandbox holds configuration of the in-memory contract server.
type Sandbox struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SANDBOX_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SANDBOX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicURL is the origin used to build the survey links the sandbox
	// logs instead of emailing them.
	// Env: SANDBOX_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// LinkTTL is how long an unused survey token stays valid.
	// Env: SANDBOX_LINK_TTL
	LinkTTL time.Duration `env:"LINK_TTL"`

	// SweepInterval is how often expired survey tokens are purged.
	// Env: SANDBOX_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
