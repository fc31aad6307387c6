package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/hikekeeper/internal/timex"
)

// Config holds runtime settings for the hikectl CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DatabasePath: local SQLite file holding the session and the hike outbox.
//   - RequestTimeout: deadline applied to each remote call.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "hikekeeper.db"
	c.RequestTimeout = 10 * time.Second
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// go through timex.Duration so files may say "10s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	DatabasePath       *string         `json:"database_path"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the fields present in the JSON file at path.
// An empty path is a no-op.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

// parseEnv applies HIKECTL_* overrides.
func parseEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("HIKECTL_SERVER"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := getenv("HIKECTL_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv("HIKECTL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HIKECTL_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file at path (if any) and the environment. Command-line flags are
// applied on top by the CLI.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}
