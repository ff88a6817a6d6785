package config

// Config holds runtime settings for the Skill Bridge CLI.
//
// Fields:
//   - DataDir: directory holding the persisted storage slots (state blob and
//     session pointer).
//   - DemoData: whether to seed demo records when the store has no users.
type Config struct {
	DataDir  string
	DemoData bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "bridge-data"
	c.DemoData = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
