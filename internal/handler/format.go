package handler

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/appsprov/internal/atom"
	"github.com/dmitrijs2005/appsprov/internal/common"
)

// Format selects the document family a DocumentHandler produces.
type Format string

const (
	FormatXML  Format = "xml"
	FormatAtom Format = "atom"
)

// formatBuilders maps each format to the builders it can dispatch to.
// Both formats share the Atom builders.
var formatBuilders = map[Format][]atom.Builder{
	FormatXML:  atom.Builders(),
	FormatAtom: atom.Builders(),
}

// ParseFormat accepts "xml" or "atom" in any letter case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := formatBuilders[f]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, s)
	}
	return f, nil
}

// lookUpDocTypes returns the builders of format keyed by document type name.
// Unknown formats have none.
func lookUpDocTypes(format Format) map[string]atom.Builder {
	types := make(map[string]atom.Builder)
	for _, b := range formatBuilders[format] {
		types[atom.TypeName(b.Identifier)] = b
	}
	return types
}
