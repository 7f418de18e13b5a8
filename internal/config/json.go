package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are written as strings ("15s", "168h").
type StructuredJSONConfig struct {
	App struct {
		LogLevel   string `json:"log_level"`
		LogFile    string `json:"log_file"`
		SurveyLink string `json:"survey_link"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sandbox struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
		LinkTTL        Duration `json:"link_ttl"`
		SweepInterval  Duration `json:"sweep_interval"`
	} `json:"sandbox,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:   jsonCfg.App.LogLevel,
			LogFile:    jsonCfg.App.LogFile,
			SurveyLink: jsonCfg.App.SurveyLink,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sandbox: Sandbox{
			HTTPAddress:    jsonCfg.Sandbox.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Sandbox.RequestTimeout),
			PublicURL:      jsonCfg.Sandbox.PublicURL,
			LinkTTL:        time.Duration(jsonCfg.Sandbox.LinkTTL),
			SweepInterval:  time.Duration(jsonCfg.Sandbox.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
