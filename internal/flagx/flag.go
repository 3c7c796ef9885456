// Package flagx helps several flag sets share one command line: global
// configuration flags are picked out of os.Args wherever they appear and
// the remainder is handed to the subcommand.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the flags named in allowedFlags, each followed by
// its value when the value was given as a separate argument.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	matched, _ := partition(args, allowedFlags)
	return matched
}

// ExcludeArgs is the complement of FilterArgs: it drops the named flags and
// their values and keeps everything else in order.
func ExcludeArgs(args []string, flags []string) []string {
	_, rest := partition(args, flags)
	return rest
}

// Command returns the first positional argument (the subcommand) and the
// arguments after it. Flags named in globalFlags are removed first, so they
// may appear before or after the subcommand.
//
//	Command([]string{"-f", "atom", "new-user", "-user", "jdoe"}, []string{"-f"})
//	// "new-user", []string{"-user", "jdoe"}
func Command(args []string, globalFlags []string) (string, []string) {
	rest := ExcludeArgs(args, globalFlags)
	for i, arg := range rest {
		if !strings.HasPrefix(arg, "-") {
			return arg, rest[i+1:]
		}
	}
	return "", rest
}

func partition(args []string, flags []string) (matched, rest []string) {
	named := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		named[f] = struct{}{}
	}

	// Both slices are non-nil so callers can compare against empty literals.
	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" or "-f=value"
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := named[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := named[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		matched = append(matched, arg)
		// A following token that does not look like a flag is the value.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// ConfigFile returns the JSON config path given with -c or -config, or ""
// when neither is present. Other arguments are ignored.
func ConfigFile() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
