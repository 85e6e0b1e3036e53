// Package pfn computes MSIX Package Family Names.
//
// A Package Family Name joins an identity name and a publisher ID with an
// underscore. The publisher ID is the lowercase Crockford Base32 encoding of the
// first 8 bytes of the SHA-256 digest of the UTF-16LE encoded identity publisher:
//
//	pfn.Compute("AppName", "Publisher Software") // "AppName_zj75k085cmj1a"
//
// Everything in this package is pure and safe for concurrent use.
package pfn

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the identity name and the publisher ID.
const Separator = "_"

var ErrMissingSeparator = errors.New("package family name has no '_' separator")

// PackageFamilyName is an identity name paired with a publisher ID.
type PackageFamilyName struct {
	IdentityName string
	PublisherID  PublisherID
}

// New computes the Package Family Name of an identity name and publisher.
// The name is used verbatim; no validation is performed on either input.
func New(identityName, identityPublisher string) PackageFamilyName {
	return PackageFamilyName{
		IdentityName: identityName,
		PublisherID:  PublisherIDOf(identityPublisher),
	}
}

// Compute returns identityName + "_" + the publisher ID of identityPublisher.
func Compute(identityName, identityPublisher string) string {
	return New(identityName, identityPublisher).String()
}

// Parse splits s at its last underscore and parses the publisher ID after it.
// Everything before the underscore is taken as the identity name.
func Parse(s string) (PackageFamilyName, error) {
	i := strings.LastIndex(s, Separator)
	if i < 0 {
		return PackageFamilyName{}, fmt.Errorf("parse package family name %q: %w", s, ErrMissingSeparator)
	}

	id, err := ParsePublisherID(s[i+len(Separator):])
	if err != nil {
		return PackageFamilyName{}, fmt.Errorf("parse package family name %q: %w", s, err)
	}
	return PackageFamilyName{IdentityName: s[:i], PublisherID: id}, nil
}

func (p PackageFamilyName) String() string {
	id := p.PublisherID.String()

	var b strings.Builder
	b.Grow(len(p.IdentityName) + len(Separator) + len(id))
	b.WriteString(p.IdentityName)
	b.WriteString(Separator)
	b.WriteString(id)
	return b.String()
}

// Compare orders by identity name, then publisher ID.
func (p PackageFamilyName) Compare(other PackageFamilyName) int {
	if c := strings.Compare(p.IdentityName, other.IdentityName); c != 0 {
		return c
	}
	return p.PublisherID.Compare(other.PublisherID)
}

// MarshalText implements encoding.TextMarshaler.
func (p PackageFamilyName) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PackageFamilyName) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
