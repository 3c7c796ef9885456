package config

// Config holds runtime settings for the provision CLI.
type Config struct {
	Format       string
	LogLevel     string
	LogBackend   string
	Indent       int
	DefaultQuota int
}

// GlobalFlags are the flags owned by this package, in every accepted form.
var GlobalFlags = []string{"-c", "-config", "-f", "-l", "-b", "-i", "-q"}

// LoadDefaults populates Config with defaults: indented XML output, info
// logging through slog and no default quota.
func (c *Config) LoadDefaults() {
	c.Format = "xml"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.Indent = 2
	c.DefaultQuota = 0
}

// LoadConfig builds a Config by applying defaults, then overlaying the
// environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
