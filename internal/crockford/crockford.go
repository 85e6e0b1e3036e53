// Package crockford implements the lowercase Crockford Base32 encoding used for
// MSIX publisher IDs.
//
// Bits are consumed most significant first. When the input bit count is not a
// multiple of five, the final group is left-aligned and padded with zero bits.
// No '=' padding is ever emitted.
package crockford

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Alphabet is the lowercase Crockford Base32 alphabet. It omits i, l, o and u.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Encoded64Len is the encoded length of a 64-bit value.
const Encoded64Len = 13

var (
	ErrInvalidCharacter = errors.New("invalid crockford base32 character")
	ErrInvalidLength    = errors.New("invalid crockford base32 length")
	ErrNonCanonical     = errors.New("non-zero crockford base32 padding bits")
)

const invalid = 0xff

var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		decodeMap[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			decodeMap[c-'a'+'A'] = byte(i)
		}
	}
}

// Shift reads prefix as a big-endian 64-bit value and shifts it left by one bit
// into a 65-bit value. hi holds bit 64, lo holds bits 63..0. Bit 0 is always zero.
func Shift(prefix [8]byte) (hi uint8, lo uint64) {
	v := binary.BigEndian.Uint64(prefix[:])
	return uint8(v >> 63), v << 1
}

// EncodeShifted splits a 65-bit value into thirteen 5-bit groups, most
// significant first.
func EncodeShifted(hi uint8, lo uint64) [Encoded64Len]byte {
	var out [Encoded64Len]byte
	out[0] = Alphabet[(hi&1)<<4|uint8(lo>>60)]
	for j := 1; j < Encoded64Len; j++ {
		out[j] = Alphabet[(lo>>(60-5*j))&31]
	}
	return out
}

// Encode64 encodes 8 bytes into 13 characters without allocating.
func Encode64(prefix [8]byte) [Encoded64Len]byte {
	return EncodeShifted(Shift(prefix))
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// Encode encodes src of any length.
func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// AppendEncode appends the encoding of src to dst.
func AppendEncode(dst, src []byte) []byte {
	var acc uint16
	bits := 0
	for _, b := range src {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst = append(dst, Alphabet[(acc>>bits)&31])
		}
		acc &= 1<<bits - 1
	}
	if bits > 0 {
		dst = append(dst, Alphabet[(acc<<(5-bits))&31])
	}
	return dst
}

// Decode decodes s, accepting either case. Characters outside the alphabet,
// lengths no encoding can have and non-zero padding bits are rejected.
func Decode(s string) ([]byte, error) {
	n := len(s) * 5 / 8
	if EncodedLen(n) != len(s) {
		return nil, fmt.Errorf("%w: %d characters", ErrInvalidLength, len(s))
	}

	out := make([]byte, 0, n)
	var acc uint16
	bits := 0
	for i := 0; i < len(s); i++ {
		v := decodeMap[s[i]]
		if v == invalid {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		acc = acc<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}
	if acc != 0 {
		return nil, ErrNonCanonical
	}
	return out, nil
}

// IsAlphabet reports whether c belongs to the alphabet in either case.
func IsAlphabet(c byte) bool {
	return decodeMap[c] != invalid
}
