// Package config assembles runtime settings for the learnhub CLI from
// defaults, an optional JSON file, environment variables (with .env
// support), and command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the learnhub CLI.
//
// Fields:
//   - DataDir: directory where the users, locations, and statistics
//     documents are kept. Created on first use.
//   - AdminSecret: the shared secret gating admin-role assignment at
//     registration and admin elevation at login. There is no rotation
//     mechanism; changing it only affects future challenges.
type Config struct {
	DataDir     string
	AdminSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.AdminSecret = "02plataforma!"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment (including a .env file in the
// working directory), and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
