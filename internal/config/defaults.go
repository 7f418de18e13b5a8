package config

import "time"

// Built-in defaults, used for fields no other source sets.
const (
	DefaultLogLevel       = "info"
	DefaultLogFile        = "logs"
	DefaultAPIAddress     = "http://localhost:8000"
	DefaultRequestTimeout = 15 * time.Second

	DefaultSandboxAddress       = "localhost:8000"
	DefaultSandboxTimeout       = 10 * time.Second
	DefaultSandboxPublicURL     = "http://localhost:8000"
	DefaultSandboxLinkTTL       = 7 * 24 * time.Hour
	DefaultSandboxSweepInterval = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  DefaultLogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sandbox: Sandbox{
			HTTPAddress:    DefaultSandboxAddress,
			RequestTimeout: DefaultSandboxTimeout,
			PublicURL:      DefaultSandboxPublicURL,
			LinkTTL:        DefaultSandboxLinkTTL,
			SweepInterval:  DefaultSandboxSweepInterval,
		},
	}
}
