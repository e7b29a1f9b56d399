package config

import "time"

// Config holds runtime settings for the filevault CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - TokenFile: name of the file keeping the session token between runs,
//     stored under the user's home directory.
//   - RequestTimeout: per-request deadline when talking to the server.
type Config struct {
	ServerURL      string
	TokenFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.TokenFile = "token"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
