package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{LogLevel: "info", LogFile: "logs"},
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8000", RequestTimeout: time.Second},
	}
}

func validSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		LogLevel: "debug",
		Server:   SandboxServer{HTTPAddress: "localhost:8000", RequestTimeout: time.Second},
		Links:    SandboxLinks{PublicURL: "http://localhost:8000", TTL: time.Hour, SweepInterval: time.Minute},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"empty address", func(c *ClientConfig) { c.Adapter.HTTPAddress = " " }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"empty log level", func(c *ClientConfig) { c.App.LogLevel = "" }, ErrInvalidAppConfigs},
		{"unknown log level", func(c *ClientConfig) { c.App.LogLevel = "verbose" }, ErrInvalidAppConfigs},
		{"empty log file", func(c *ClientConfig) { c.App.LogFile = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSandboxConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SandboxConfig)
		wantErr error
	}{
		{"valid", func(*SandboxConfig) {}, nil},
		{"empty address", func(c *SandboxConfig) { c.Server.HTTPAddress = "" }, ErrInvalidSandboxConfigs},
		{"zero timeout", func(c *SandboxConfig) { c.Server.RequestTimeout = 0 }, ErrInvalidSandboxConfigs},
		{"zero ttl", func(c *SandboxConfig) { c.Links.TTL = 0 }, ErrInvalidSandboxConfigs},
		{"zero sweep", func(c *SandboxConfig) { c.Links.SweepInterval = 0 }, ErrInvalidSandboxConfigs},
		{"empty public url", func(c *SandboxConfig) { c.Links.PublicURL = "" }, ErrInvalidSandboxConfigs},
		{"bad log level", func(c *SandboxConfig) { c.LogLevel = "nope" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSandboxConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
