package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML config
// files. Durations are accepted as strings ("30s") or integer nanoseconds.
type StructuredFileConfig struct {
	App struct {
		Version          string   `json:"version" yaml:"version"`
		SessionSignKey   string   `json:"session_sign_key" yaml:"session_sign_key"`
		SessionIssuer    string   `json:"session_issuer" yaml:"session_issuer"`
		SessionTimeout   Duration `json:"session_timeout" yaml:"session_timeout"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DataDir      string `json:"data_dir" yaml:"data_dir"`
		DevicesFile  string `json:"devices_file" yaml:"devices_file"`
		SettingsFile string `json:"settings_file" yaml:"settings_file"`
		AuthFile     string `json:"auth_file" yaml:"auth_file"`
		KeyFile      string `json:"key_file" yaml:"key_file"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		SecureCookies  bool     `json:"secure_cookies" yaml:"secure_cookies"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Firewall struct {
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
		VerifyTLS      bool     `json:"verify_tls" yaml:"verify_tls"`
		Address        string   `json:"address" yaml:"address"`
		APIKey         string   `json:"api_key" yaml:"api_key"`
	} `json:"firewall,omitempty" yaml:"firewall,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval" yaml:"poll_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file, choosing YAML for .yaml/.yml extensions
// and JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:          f.App.Version,
			SessionSignKey:   f.App.SessionSignKey,
			SessionIssuer:    f.App.SessionIssuer,
			SessionTimeout:   time.Duration(f.App.SessionTimeout),
			PasswordHashCost: f.App.PasswordHashCost,
		},
		Storage: Storage{
			DataDir:      f.Storage.DataDir,
			DevicesFile:  f.Storage.DevicesFile,
			SettingsFile: f.Storage.SettingsFile,
			AuthFile:     f.Storage.AuthFile,
			KeyFile:      f.Storage.KeyFile,
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			SecureCookies:  f.Server.SecureCookies,
		},
		Firewall: Firewall{
			RequestTimeout: time.Duration(f.Firewall.RequestTimeout),
			ConnectTimeout: time.Duration(f.Firewall.ConnectTimeout),
			VerifyTLS:      f.Firewall.VerifyTLS,
			LegacyAddress:  f.Firewall.Address,
			LegacyAPIKey:   f.Firewall.APIKey,
		},
		Workers: Workers{
			PollInterval: time.Duration(f.Workers.PollInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from integer nanoseconds.
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

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
