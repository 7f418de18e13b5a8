package config

import (
	"fmt"
	"time"
)

// SandboxServer holds the inbound transport settings of the sandbox API.
type SandboxServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// SandboxLinks controls the survey tokens issued by the sandbox API.
type SandboxLinks struct {
	// PublicURL is the origin of issued survey links.
	PublicURL string
	// TTL is the lifetime of an unused token.
	TTL time.Duration
	// SweepInterval is the period of the expired-token sweeper.
	SweepInterval time.Duration
}

// SandboxConfig is the sandbox API configuration assembled from
// [StructuredConfig].
type SandboxConfig struct {
	LogLevel string
	Server   SandboxServer
	Links    SandboxLinks
}

// GetSandboxConfig builds and validates the sandbox config view from the
// merged structured configuration.
func GetSandboxConfig(args []string) (*SandboxConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sandboxCfg := newSandboxConfig(cfg)
	return sandboxCfg, sandboxCfg.validate()
}

func newSandboxConfig(cfg *StructuredConfig) *SandboxConfig {
	return &SandboxConfig{
		LogLevel: cfg.App.LogLevel,
		Server: SandboxServer{
			HTTPAddress:    cfg.Sandbox.HTTPAddress,
			RequestTimeout: cfg.Sandbox.RequestTimeout,
		},
		Links: SandboxLinks{
			PublicURL:     cfg.Sandbox.PublicURL,
			TTL:           cfg.Sandbox.LinkTTL,
			SweepInterval: cfg.Sandbox.SweepInterval,
		},
	}
}
