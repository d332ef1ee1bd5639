package config

import "time"

// Config holds runtime settings for the VaultChat CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OrgID: organization the client registers and logs in under.
//   - HeartbeatInterval: how often the relay stream sends a heartbeat frame.
//
// Units: HeartbeatInterval is a time.Duration (e.g., 30*time.Second).
type Config struct {
	ServerEndpointAddr string
	OrgID              string
	HeartbeatInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OrgID = "default"
	c.HeartbeatInterval = 30 * time.Second
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
