// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !validLogLevel(cfg.App.LogLevel) || strings.TrimSpace(cfg.App.LogFile) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *SandboxConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidSandboxConfigs
	}

	if cfg.Links.TTL <= 0 || cfg.Links.SweepInterval <= 0 || strings.TrimSpace(cfg.Links.PublicURL) == "" {
		return ErrInvalidSandboxConfigs
	}

	if !validLogLevel(cfg.LogLevel) {
		return ErrInvalidAppConfigs
	}

	return nil
}

func validLogLevel(level string) bool {
	_, err := zerolog.ParseLevel(level)
	return err == nil && level != ""
}
