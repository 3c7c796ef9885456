package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	envFormat       = "PROVISION_FORMAT"
	envLogLevel     = "PROVISION_LOG_LEVEL"
	envLogBackend   = "PROVISION_LOG_BACKEND"
	envIndent       = "PROVISION_INDENT"
	envDefaultQuota = "PROVISION_DEFAULT_QUOTA"
)

// parseEnv overlays values from the environment. files are dotenv files to
// read (".env" when none are given); a missing or unreadable file is
// ignored. A malformed integer panics, like the other loaders.
func parseEnv(config *Config, files ...string) {
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		fileEnv = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(envFormat); ok {
		config.Format = v
	}
	if v, ok := lookup(envLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := lookup(envLogBackend); ok {
		config.LogBackend = v
	}
	if v, ok := lookup(envIndent); ok {
		config.Indent = mustAtoi(envIndent, v)
	}
	if v, ok := lookup(envDefaultQuota); ok {
		config.DefaultQuota = mustAtoi(envDefaultQuota, v)
	}
}

func mustAtoi(key, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", key, err))
	}
	return n
}
