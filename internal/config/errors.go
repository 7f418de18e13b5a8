package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSandboxConfigs indicates invalid sandbox server settings
	// (for example, missing listen address or zero link lifetime).
	ErrInvalidSandboxConfigs = errors.New("invalid sandbox configuration")
	// ErrInvalidAppConfigs indicates invalid process-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
