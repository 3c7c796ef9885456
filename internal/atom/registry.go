package atom

import (
	"regexp"
	"strings"
)

// Builder creates a typed document from raw text.
type Builder struct {
	// Identifier is the builder's compound name, e.g. "User" or "GroupMember".
	Identifier string
	New        func(text string) (Entity, error)
}

var builders = []Builder{
	{Identifier: "User", New: newUserEntity},
}

func newUserEntity(text string) (Entity, error) {
	u, err := NewUserFromText(text)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Builders lists the document builders available in the Atom format.
func Builders() []Builder {
	out := make([]Builder, len(builders))
	copy(out, builders)
	return out
}

var wordPattern = regexp.MustCompile(`[A-Z][a-z0-9]+`)

// TypeName converts a builder identifier to its document type name:
// "GroupMember" becomes "group_member". Only the last segment of a
// qualified identifier ("pkg.User", "Apps::User") is used.
func TypeName(identifier string) string {
	if i := strings.LastIndex(identifier, "::"); i >= 0 {
		identifier = identifier[i+2:]
	}
	if i := strings.LastIndex(identifier, "."); i >= 0 {
		identifier = identifier[i+1:]
	}

	words := wordPattern.FindAllString(identifier, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}
