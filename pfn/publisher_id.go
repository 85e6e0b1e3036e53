package pfn

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/russellbanks/package-family-name/internal/crockford"
	"github.com/russellbanks/package-family-name/internal/hashutil"
)

// PublisherIDLen is the length of an encoded publisher ID.
const PublisherIDLen = crockford.Encoded64Len

var (
	ErrInvalidLength     = fmt.Errorf("expected publisher id length of %d", PublisherIDLen)
	ErrInvalidCharacters = errors.New("expected crockford base-32 string (a-z0-9 except i, l, o or u)")
	ErrNonCanonical      = errors.New("publisher id has a non-zero padding bit")
)

// PublisherID is the 13-character Crockford Base32 ID derived from an identity
// publisher. It holds the first 8 bytes of the publisher's SHA-256 digest, so
// IDs parsed from upper- and lowercase text compare equal.
//
// The zero value renders as "0000000000000".
//
// See https://learn.microsoft.com/windows/apps/desktop/modernize/package-identity-overview#publisher-id
type PublisherID struct {
	prefix [hashutil.PrefixLen]byte
}

// PublisherIDOf derives the publisher ID of identityPublisher.
func PublisherIDOf(identityPublisher string) PublisherID {
	return PublisherID{prefix: hashutil.PublisherPrefix(identityPublisher)}
}

// ParsePublisherID parses a 13-character publisher ID in either case.
func ParsePublisherID(s string) (PublisherID, error) {
	for i := 0; i < len(s); i++ {
		if !crockford.IsAlphabet(s[i]) {
			return PublisherID{}, fmt.Errorf("parse publisher id %q: %w", s, ErrInvalidCharacters)
		}
	}
	// All bytes are ASCII at this point, so byte length is character count.
	if len(s) != PublisherIDLen {
		return PublisherID{}, fmt.Errorf("parse publisher id %q: %w", s, ErrInvalidLength)
	}

	b, err := crockford.Decode(s)
	if errors.Is(err, crockford.ErrNonCanonical) {
		return PublisherID{}, fmt.Errorf("parse publisher id %q: %w", s, ErrNonCanonical)
	}
	if err != nil {
		return PublisherID{}, fmt.Errorf("parse publisher id %q: %w", s, err)
	}
	return PublisherID{prefix: [hashutil.PrefixLen]byte(b)}, nil
}

// HashPrefix returns the truncated publisher digest the ID encodes.
func (id PublisherID) HashPrefix() [hashutil.PrefixLen]byte {
	return id.prefix
}

func (id PublisherID) String() string {
	out := crockford.Encode64(id.prefix)
	return string(out[:])
}

// Compare orders IDs the same way as their lowercase text.
func (id PublisherID) Compare(other PublisherID) int {
	return bytes.Compare(id.prefix[:], other.prefix[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id PublisherID) MarshalText() ([]byte, error) {
	out := crockford.Encode64(id.prefix)
	return out[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PublisherID) UnmarshalText(text []byte) error {
	parsed, err := ParsePublisherID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
