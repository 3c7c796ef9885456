// Package config loads runtime configuration for the provision CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, also read from a .env file in the working
//     directory (see parseEnv). Variables already set in the process win
//     over the file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   document format: xml or atom
//	-l string   log level: debug, info, warn, error
//	-b string   log backend: slog or zap
//	-i int      output indent in spaces (0 = compact)
//	-q int      default quota in megabytes for new users (0 = none)
//
// Environment
//
//	PROVISION_FORMAT, PROVISION_LOG_LEVEL, PROVISION_LOG_BACKEND,
//	PROVISION_INDENT, PROVISION_DEFAULT_QUOTA
//
// # JSON schema
//
//	{
//	  "format": "atom",
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "indent": 0,
//	  "default_quota": 2048
//	}
//
// Global flags may appear before or after the subcommand; GlobalFlags lists
// them so the CLI can strip them from the subcommand's arguments.
package config
