package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/appsprov/internal/flagx"
)

// parseFlags populates Config from the global command-line flags (see the
// package documentation). Subcommand flags are filtered out first so both
// can share os.Args.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l", "-b", "-i", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Format, "f", config.Format, "document format (xml, atom)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend (slog, zap)")
	fs.IntVar(&config.Indent, "i", config.Indent, "output indent in spaces")
	fs.IntVar(&config.DefaultQuota, "q", config.DefaultQuota, "default quota in megabytes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
