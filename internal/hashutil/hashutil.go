package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// PrefixLen is the number of digest bytes kept for a publisher ID.
const PrefixLen = 8

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func newEncoder() *encoding.Encoder {
	return utf16le.NewEncoder()
}

// EncodeUTF16LE returns the UTF-16 little-endian code units of s, two bytes each.
// Characters outside the basic plane become surrogate pairs.
func EncodeUTF16LE(s string) []byte {
	b, err := newEncoder().Bytes([]byte(s))
	if err != nil {
		// The UTF-16 encoder replaces what it cannot represent.
		panic(fmt.Sprintf("hashutil: utf-16 encoding failed: %v", err))
	}
	return b
}

// SumUTF16LE computes the SHA-256 digest of the UTF-16LE encoding of s.
func SumUTF16LE(s string) [sha256.Size]byte {
	h := sha256.New()
	w := transform.NewWriter(h, newEncoder())
	if _, err := io.WriteString(w, s); err != nil {
		panic(fmt.Sprintf("hashutil: hashing failed: %v", err))
	}
	if err := w.Close(); err != nil {
		panic(fmt.Sprintf("hashutil: hashing failed: %v", err))
	}

	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	return sum
}

// Truncate returns the first PrefixLen bytes of digest.
// It panics if digest is shorter than PrefixLen.
func Truncate(digest []byte) [PrefixLen]byte {
	if len(digest) < PrefixLen {
		panic(fmt.Sprintf("hashutil: digest has %d bytes, need at least %d", len(digest), PrefixLen))
	}
	return [PrefixLen]byte(digest[:PrefixLen])
}

// PublisherPrefix hashes a publisher string and truncates the digest.
func PublisherPrefix(publisher string) [PrefixLen]byte {
	sum := SumUTF16LE(publisher)
	return Truncate(sum[:])
}
