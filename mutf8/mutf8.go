// Package mutf8 implements the modified UTF-8 encoding used for strings
// in the tag wire format.
//
// Modified UTF-8 differs from standard UTF-8 in two ways: the NUL
// character is encoded as the two byte sequence 0xC0 0x80, and
// characters outside the Basic Multilingual Plane are encoded as a UTF-16
// surrogate pair, each half taking three bytes.  On the wire an encoded
// string is prefixed by its byte length as an unsigned 16-bit integer.
package mutf8

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxLen is the maximum number of encoded bytes of a single string.
const MaxLen = 0xFFFF

var (
	ErrTooLong   = errors.New("encoded string too long")
	ErrMalformed = errors.New("malformed modified utf-8")
)

// EncodedLen returns the number of bytes Encode would produce for s.
func EncodedLen(s string) int {
	n := 0
	for _, r := range s {
		n += runeLen(r)
	}
	return n
}

func runeLen(r rune) int {
	switch {
	case r >= 0x01 && r <= 0x7F:
		return 1
	case r <= 0x7FF:
		return 2
	case r <= 0xFFFF:
		return 3
	default:
		return 6
	}
}

// Units returns the length of s in UTF-16 code units.
func Units(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Append appends the modified UTF-8 encoding of s to dst.  Invalid
// UTF-8 in s is encoded as U+FFFD.
func Append(dst []byte, s string) ([]byte, error) {
	if n := EncodedLen(s); n > MaxLen {
		return dst, fmt.Errorf("%w: %d bytes", ErrTooLong, n)
	}
	for _, r := range s {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
			continue
		}
		switch runeLen(r) {
		case 1:
			dst = append(dst, byte(r))
		case 2:
			dst = append(dst, byte(0xC0|(r>>6)&0x1F), byte(0x80|r&0x3F))
		default:
			dst = append3(dst, r)
		}
	}
	return dst, nil
}

func append3(dst []byte, r rune) []byte {
	return append(dst, byte(0xE0|(r>>12)&0x0F), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
}

// Encode returns the modified UTF-8 encoding of s.
func Encode(s string) ([]byte, error) {
	return Append(make([]byte, 0, len(s)), s)
}

// Decode decodes modified UTF-8 bytes into a Go string.  A raw 0x00
// byte is read as U+0000 like the two byte form.  Unpaired surrogates
// are replaced with U+FFFD.
func Decode(b []byte) (string, error) {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 2 byte sequence at %d", ErrMalformed, i)
			}
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad 3 byte sequence at %d", ErrMalformed, i)
			}
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", fmt.Errorf("%w: bad lead byte 0x%02x at %d", ErrMalformed, c, i)
		}
	}
	buf := make([]byte, 0, len(b))
	for _, r := range utf16.Decode(units) {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}
