// Package atom builds Atom entry documents for the Google Apps provisioning
// API. Documents are mutable XML trees: builders append nodes to the root
// and callers serialize the result once they are done.
package atom

import (
	"io"

	"github.com/beevik/etree"

	"github.com/dmitrijs2005/appsprov/internal/common"
)

// Namespaces and fixed attribute values of the provisioning protocol.
const (
	NamespaceAtom = "http://www.w3.org/2005/Atom"
	NamespaceApps = "http://schemas.google.com/apps/2006"

	KindScheme   = "http://schemas.google.com/g/2005#kind"
	UserKindTerm = "http://schemas.google.com/apps/2006#user"

	// HashFunction is the digest name the API expects next to a hashed password.
	HashFunction = "SHA-1"
)

// Entity is anything that owns an entry document.
type Entity interface {
	Document() *Document
	Serialize() (string, error)
}

// Document is a mutable XML document.
type Document struct {
	doc *etree.Document
}

// NewDocument returns an empty document carrying only the XML declaration.
func NewDocument() *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return &Document{doc: doc}
}

// ParseDocument reads text as an XML document. Parser errors are returned
// as-is; text without a root element fails with common.ErrNoRoot.
func ParseDocument(text string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, common.ErrNoRoot
	}
	return &Document{doc: doc}, nil
}

// Document returns d itself so that a bare document satisfies Entity.
func (d *Document) Document() *Document {
	return d
}

// Root returns the root element, or nil for a document without one.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// SetRoot replaces the root element.
func (d *Document) SetRoot(root *etree.Element) {
	d.doc.SetRoot(root)
}

// Append adds node as the last child of the root element. A document
// without a root takes node as its root.
func (d *Document) Append(node *etree.Element) {
	root := d.doc.Root()
	if root == nil {
		d.doc.SetRoot(node)
		return
	}
	root.AddChild(node)
}

// Indent reformats the document with the given number of spaces per level.
func (d *Document) Indent(spaces int) {
	d.doc.Indent(spaces)
}

func (d *Document) Serialize() (string, error) {
	return d.doc.WriteToString()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// String implements fmt.Stringer. Serialization errors yield "".
func (d *Document) String() string {
	s, err := d.Serialize()
	if err != nil {
		return ""
	}
	return s
}
