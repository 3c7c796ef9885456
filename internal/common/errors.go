// Package common defines sentinel errors and small helpers shared by the
// provisioning packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Document dispatch errors.
	ErrUnsupportedType   = errors.New("unsupported document type")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoRoot            = errors.New("document has no root element")

	// Command-line errors.
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
