package cli

import (
	"context"
	"flag"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/appsprov/internal/atom"
)

// Render reads text from -in (stdin by default) and builds a document of
// -type from it. Without -strict an unknown or empty type falls back to a
// plain document of the configured format; with -strict it is an error.
func (a *App) Render(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(a.errOut)

	docType := fs.String("type", "", "document type, see the types command")
	in := fs.String("in", "", "input file (default stdin)")
	strict := fs.Bool("strict", false, "fail on unsupported types")
	out := fs.String("out", "", "write the payload to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	log := a.logger.With("build_id", uuid.NewString(), "command", "render")

	text, err := readInput(a.in, *in)
	if err != nil {
		log.Error(ctx, "read failed", "in", *in, "error", err)
		return err
	}

	var e atom.Entity
	if *strict {
		e, err = a.handler.BuildTypedDocument(text, *docType)
	} else {
		e, err = a.handler.CreateDocument(text, *docType)
	}
	if err != nil {
		log.Error(ctx, "render failed", "type", *docType, "error", err)
		return err
	}

	if !a.handler.Supports(*docType) {
		log.Debug(ctx, "rendered as plain document", "type", *docType, "format", a.handler.Format())
	}

	if err := a.write(e, *out); err != nil {
		log.Error(ctx, "write failed", "error", err)
		return err
	}

	log.Info(ctx, "document rendered", "type", *docType, "bytes", len(text))
	return nil
}
