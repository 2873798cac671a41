// Package config loads runtime settings for the brainkeep CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - ServerEndpointAddr: base URL of the bookmarking API.
//   - RefreshInterval: cadence of the periodic collection refresh.
//   - RequestTimeout: per-request HTTP timeout.
//   - EnableUpload: gates the file-backed content variant and its
//     multipart endpoint.
//   - StateFile: overrides the session state-file location; empty means
//     the default under the user config directory.
type Config struct {
	ServerEndpointAddr string
	RefreshInterval    time.Duration
	RequestTimeout     time.Duration
	EnableUpload       bool
	StateFile          string
}

// LoadDefaults populates c with sensible defaults. The refresh interval
// matches the behavior of the reference web client (every 300 seconds).
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:3000"
	c.RefreshInterval = 300 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.EnableUpload = false
	c.StateFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
