package atom

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/appsprov/internal/common"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"User", "user"},
		{"GroupMember", "group_member"},
		{"Nickname", "nickname"},
		{"MessageAttributes2", "message_attributes2"},
		{"GoogleApps::Atom::User", "user"},
		{"atom.PublicKey", "public_key"},
		{"", ""},
		{"lowercase", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.identifier))
		})
	}
}

func TestBuilders_ReturnsCopy(t *testing.T) {
	b := Builders()
	require.Len(t, b, 1)
	assert.Equal(t, "User", b[0].Identifier)

	b[0].Identifier = "Changed"
	assert.Equal(t, "User", Builders()[0].Identifier)
}

func TestBuilders_UserConstructor(t *testing.T) {
	e, err := Builders()[0].New("")
	require.NoError(t, err)

	u, ok := e.(*User)
	require.True(t, ok, "expected *User, got %T", e)
	assert.Equal(t, NewUser().String(), u.String())

	_, err = Builders()[0].New("<atom:entry <broken/>")
	require.Error(t, err)
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(`<feed><entry id="1"/></feed>`)
	require.NoError(t, err)
	assert.Same(t, doc, doc.Document())
	require.NotNil(t, doc.Root())
	assert.Equal(t, "feed", doc.Root().Tag)

	_, err = ParseDocument("<atom:entry <broken/>")
	assert.Error(t, err)
}

func TestParseDocument_NoRoot(t *testing.T) {
	for _, text := range []string{"", "   \n", "not xml at all", `<?xml version="1.0"?>`} {
		doc, err := ParseDocument(text)
		assert.ErrorIs(t, err, common.ErrNoRoot, "text %q", text)
		assert.Nil(t, doc)
	}
}

func TestDocument_AppendWithoutRoot(t *testing.T) {
	doc := NewDocument()
	assert.Nil(t, doc.Root())

	doc.Append(etree.NewElement("apps:login"))
	require.NotNil(t, doc.Root())
	assert.Equal(t, "apps:login", doc.Root().FullTag())

	doc.Append(etree.NewElement("apps:quota"))
	assert.Len(t, doc.Root().ChildElements(), 1)
}

func TestDocument_IndentAndWriteTo(t *testing.T) {
	u := NewUser()
	u.BuildNewUser("jdoe", "Jane", "Doe", "secret", nil)
	doc := u.Document()
	doc.Indent(2)

	var sb strings.Builder
	_, err := doc.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, doc.String(), sb.String())
	assert.Contains(t, sb.String(), "\n  <apps:login")
}
