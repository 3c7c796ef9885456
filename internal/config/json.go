package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/appsprov/internal/flagx"
)

// JsonConfig is the on-disk shape of the JSON config file. Pointer fields
// distinguish "absent" from zero so a file can set indent to 0.
type JsonConfig struct {
	Format       string `json:"format"`
	LogLevel     string `json:"log_level"`
	LogBackend   string `json:"log_backend"`
	Indent       *int   `json:"indent"`
	DefaultQuota *int   `json:"default_quota"`
}

// parseJson loads the file named by -c/-config into config. Only keys
// present in the file are applied. An unreadable file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.Format != "" {
		config.Format = c.Format
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogBackend != "" {
		config.LogBackend = c.LogBackend
	}
	if c.Indent != nil {
		config.Indent = *c.Indent
	}
	if c.DefaultQuota != nil {
		config.DefaultQuota = *c.DefaultQuota
	}
}
