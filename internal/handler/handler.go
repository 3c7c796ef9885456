// Package handler dispatches document construction by format and document
// type.
//
// A DocumentHandler holds one configured Format. For that format it knows a
// fixed set of document types ("user", ...), each backed by an atom.Builder.
// CreateDocument builds a typed document when the type is known and falls
// back to parsing the raw text otherwise; BuildTypedDocument refuses unknown
// types with an *UnsupportedTypeError.
//
// A DocumentHandler is not safe for concurrent Configure calls.
package handler

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/appsprov/internal/atom"
	"github.com/dmitrijs2005/appsprov/internal/common"
)

type DocumentHandler struct {
	format Format
	types  map[string]atom.Builder
}

// New returns a handler configured for format.
func New(format Format) *DocumentHandler {
	h := &DocumentHandler{}
	h.Configure(format)
	return h
}

// Configure sets the active format and refreshes the supported types.
func (h *DocumentHandler) Configure(format Format) {
	h.format = format
	h.types = lookUpDocTypes(format)
}

func (h *DocumentHandler) Format() Format {
	return h.format
}

// Types returns the supported document type names in sorted order.
func (h *DocumentHandler) Types() []string {
	names := make([]string, 0, len(h.types))
	for name := range h.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *DocumentHandler) Supports(docType string) bool {
	_, ok := h.types[docType]
	return ok
}

// CreateDocument builds a document of docType from text. An empty or
// unsupported docType parses text as a plain document of the current format.
func (h *DocumentHandler) CreateDocument(text string, docType string) (atom.Entity, error) {
	if h.Supports(docType) {
		return h.BuildTypedDocument(text, docType)
	}
	return h.unknownType(text)
}

// BuildTypedDocument builds a document of docType from text, failing with
// *UnsupportedTypeError when the current format has no such type.
func (h *DocumentHandler) BuildTypedDocument(text string, docType string) (atom.Entity, error) {
	b, ok := h.types[docType]
	if !ok {
		return nil, &UnsupportedTypeError{Format: h.format, Type: docType}
	}
	return b.New(text)
}

func (h *DocumentHandler) unknownType(text string) (atom.Entity, error) {
	switch h.format {
	case FormatAtom, FormatXML:
		doc, err := atom.ParseDocument(text)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, h.format)
}
