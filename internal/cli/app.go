package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/appsprov/internal/atom"
	"github.com/dmitrijs2005/appsprov/internal/common"
	"github.com/dmitrijs2005/appsprov/internal/config"
	"github.com/dmitrijs2005/appsprov/internal/filex"
	"github.com/dmitrijs2005/appsprov/internal/flagx"
	"github.com/dmitrijs2005/appsprov/internal/handler"
	"github.com/dmitrijs2005/appsprov/internal/logging"
)

const userType = "user"

type App struct {
	config  *config.Config
	handler *handler.DocumentHandler
	logger  logging.Logger
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
}

// NewApp wires the handler and logger described by c to the process's
// standard streams. Payloads go to stdout; logs and prompts go to stderr.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	format, err := handler.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogBackend, c.LogLevel, errOut)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		handler: handler.New(format),
		logger:  logger,
		in:      in,
		out:     out,
		errOut:  errOut,
	}, nil
}

// Run executes the subcommand found in args (usually os.Args[1:]).
func (a *App) Run(ctx context.Context, args []string) error {
	cmd, rest := flagx.Command(args, config.GlobalFlags)

	switch cmd {
	case "new-user":
		return a.NewUser(ctx, rest)
	case "update-user":
		return a.UpdateUser(ctx, rest)
	case "render":
		return a.Render(ctx, rest)
	case "types":
		return a.Types(ctx)
	case "", "help":
		a.help()
		return nil
	}

	return fmt.Errorf("%w: %s", common.ErrUnknownCommand, cmd)
}

// Close flushes the logger when its backend buffers entries.
func (a *App) Close() error {
	if s, ok := a.logger.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Types prints the document types of the configured format, one per line.
func (a *App) Types(ctx context.Context) error {
	for _, t := range a.handler.Types() {
		if _, err := fmt.Fprintln(a.out, t); err != nil {
			return err
		}
	}
	return nil
}

// userBuilder asks the handler for a user document so that the configured
// format decides whether users are available at all.
func (a *App) userBuilder(text string) (*atom.User, error) {
	e, err := a.handler.BuildTypedDocument(text, userType)
	if err != nil {
		return nil, err
	}
	u, ok := e.(*atom.User)
	if !ok {
		return nil, fmt.Errorf("unexpected %T for document type %q", e, userType)
	}
	return u, nil
}

// write serializes e, indented as configured, to path or to the output
// when path is empty.
func (a *App) write(e atom.Entity, path string) error {
	doc := e.Document()
	if a.config.Indent > 0 {
		doc.Indent(a.config.Indent)
	}

	s, err := doc.Serialize()
	if err != nil {
		return err
	}

	s = strings.TrimRight(s, "\n") + "\n"
	if path != "" {
		return filex.WriteFile(path, []byte(s))
	}

	_, err = io.WriteString(a.out, s)
	return err
}

func (a *App) help() {
	fmt.Fprintf(a.out, `Usage: provision [global flags] <command> [flags]

Commands:
  new-user     -user NAME -first NAME -last NAME [-quota MB] [-password PW] [-out FILE]
  update-user  -user NAME [-first NAME -last NAME] [-quota MB] [-suspend] [-password PW | -password-prompt] [-out FILE]
  render       -type TYPE [-in FILE] [-strict] [-out FILE]
  types
  help

Global flags:
  -c, -config FILE   JSON config file
  -f FORMAT          xml or atom (current: %s)
  -l LEVEL           log level
  -b BACKEND         slog or zap
  -i N               indent (0 = compact)
  -q MB              default quota for new-user
`, a.handler.Format())
}
