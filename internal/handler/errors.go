package handler

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/appsprov/internal/common"
)

// UnsupportedTypeError reports a document type that the configured format
// does not provide. It matches common.ErrUnsupportedType with errors.Is.
type UnsupportedTypeError struct {
	Format Format
	Type   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("No %s document of type: %s", capitalize(string(e.Format)), e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == common.ErrUnsupportedType
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
