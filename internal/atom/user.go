package atom

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// UserValues carries the optional fields of a user payload. A nil field is
// absent and leaves the matching attribute unset.
type UserValues struct {
	Suspended *bool
	Username  *string
	Password  *string
	FirstName *string
	LastName  *string
	// Quota is the mailbox limit in megabytes.
	Quota *int
}

// User builds a user entry document. Each User owns exactly one document;
// build a new User for every payload.
type User struct {
	document *Document
}

// NewUser returns a builder whose document already holds the entry root,
// both namespace declarations and the user category.
func NewUser() *User {
	u := &User{document: NewDocument()}
	u.addHeader()
	return u
}

// NewUserFromText returns a builder over an existing payload. Blank text
// gives the same result as NewUser.
func NewUserFromText(text string) (*User, error) {
	if strings.TrimSpace(text) == "" {
		return NewUser(), nil
	}

	doc, err := ParseDocument(text)
	if err != nil {
		return nil, err
	}
	return &User{document: doc}, nil
}

// BuildNewUser adds the nodes needed to create an active user. quota is
// optional and overrides the domain default when set.
//
//	doc := atom.NewUser().BuildNewUser("jdoe", "Jane", "Doe", "secret", atom.Int(2048))
//
// The returned document is the builder's own, not a copy.
func (u *User) BuildNewUser(username, firstName, lastName, password string, quota *int) *Document {
	return u.SetValues(UserValues{
		Suspended: Bool(false),
		Username:  &username,
		Password:  &password,
		FirstName: &firstName,
		LastName:  &lastName,
		Quota:     quota,
	})
}

// SetValues appends a login node, then a quota node when Quota is set and a
// name node when both names are set. Calls are additive: every call appends
// another login node.
func (u *User) SetValues(values UserValues) *Document {
	u.document.Append(BuildLoginNode(values.Suspended, values.Username, values.Password))

	if values.Quota != nil {
		u.document.Append(BuildQuotaNode(*values.Quota))
	}

	if values.FirstName != nil && values.LastName != nil {
		u.document.Append(BuildNameNode(*values.FirstName, *values.LastName))
	}

	return u.document
}

func (u *User) Document() *Document {
	return u.document
}

func (u *User) Serialize() (string, error) {
	return u.document.Serialize()
}

func (u *User) String() string {
	return u.document.String()
}

func (u *User) addHeader() {
	root := etree.NewElement("atom:entry")
	root.CreateAttr("xmlns:atom", NamespaceAtom)
	root.CreateAttr("xmlns:apps", NamespaceApps)

	category := root.CreateElement("atom:category")
	category.CreateAttr("scheme", KindScheme)
	category.CreateAttr("term", UserKindTerm)

	u.document.SetRoot(root)
}

// BuildLoginNode returns an apps:login node. The password is stored as its
// digest together with the digest name; suspended defaults to false.
func BuildLoginNode(suspended *bool, username, password *string) *etree.Element {
	login := etree.NewElement("apps:login")

	if username != nil {
		login.CreateAttr("userName", *username)
	}
	if password != nil {
		login.CreateAttr("password", HashPassword(*password))
		login.CreateAttr("hashFunctionName", HashFunction)
	}
	login.CreateAttr("suspended", strconv.FormatBool(suspended != nil && *suspended))

	return login
}

// BuildQuotaNode returns an apps:quota node limiting the mailbox to limit
// megabytes.
func BuildQuotaNode(limit int) *etree.Element {
	quota := etree.NewElement("apps:quota")
	quota.CreateAttr("limit", strconv.Itoa(limit))
	return quota
}

// BuildNameNode returns an apps:name node.
func BuildNameNode(first, last string) *etree.Element {
	name := etree.NewElement("apps:name")
	name.CreateAttr("familyName", last)
	name.CreateAttr("givenName", first)
	return name
}

// HashPassword returns the lowercase hex SHA-1 digest of plain. The API only
// accepts this digest, so the algorithm cannot change.
func HashPassword(plain string) string {
	sum := sha1.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}

func String(s string) *string { return &s }

func Int(i int) *int { return &i }

func Bool(b bool) *bool { return &b }
