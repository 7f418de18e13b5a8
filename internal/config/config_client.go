package config

import (
	"fmt"
	"time"
)

// ClientApp holds client process settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is where the client writes its logs.
	LogFile string
	// SurveyLink, when non-empty, opens the survey form on start.
	SurveyLink string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the feedback API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel:   cfg.App.LogLevel,
			LogFile:    cfg.App.LogFile,
			SurveyLink: cfg.App.SurveyLink,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}
