package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8000", want: NetAddress{Host: "localhost", Port: 8000}},
		{name: "ip", input: "0.0.0.0:9000", want: NetAddress{Host: "0.0.0.0", Port: 9000}},
		{name: "all interfaces", input: ":8000", want: NetAddress{Port: 8000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "feedback.local:8000",
		"-t", "9s",
		"-token", "abc",
		"-log-level", "warn",
		"-log-file", "client.log",
		"-config", "/etc/feedback.json",
		"-sandbox-address", "127.0.0.1:8100",
		"-sandbox-public-url", "http://127.0.0.1:8100",
		"-sandbox-link-ttl", "2h",
	})
	require.NoError(t, err)

	assert.Equal(t, "feedback.local:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 9*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "abc", cfg.App.SurveyLink)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "/etc/feedback.json", cfg.JSONFilePath)
	assert.Equal(t, "127.0.0.1:8100", cfg.Sandbox.HTTPAddress)
	assert.Equal(t, "http://127.0.0.1:8100", cfg.Sandbox.PublicURL)
	assert.Equal(t, 2*time.Hour, cfg.Sandbox.LinkTTL)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadSandboxAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-sandbox-address", "nowhere"})
	assert.Error(t, err)
}
