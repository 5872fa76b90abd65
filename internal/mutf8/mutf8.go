// Package mutf8 implements the Modified UTF-8 encoding JNI uses for its
// string ABI: U+0000 is encoded as the two-byte sequence 0xC0 0x80, and
// code points above U+FFFF are encoded as a CESU-8 surrogate pair rather
// than UTF-8's native 4-byte form. The codec is built as a
// golang.org/x/text/transform.Transformer so it composes with the rest of
// the x/text pipeline instead of being a bespoke standalone function pair
// (see DESIGN.md for why no ready-made CESU-8 module is assumed here).
package mutf8

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Encoder transforms standard UTF-8 into Modified UTF-8.
type Encoder struct{ transform.NopResetter }

// Decoder transforms Modified UTF-8 into standard UTF-8.
type Decoder struct{ transform.NopResetter }

var (
	_ transform.Transformer = Encoder{}
	_ transform.Transformer = Decoder{}
)

// ToMUTF8 is a convenience wrapper for one-shot encoding of a whole string,
// the common case for signature literals and JNI string arguments.
func ToMUTF8(s string) []byte {
	out := make([]byte, 0, len(s)+8)
	for _, r := range s {
		out = appendRune(out, r)
	}
	return out
}

// FromMUTF8 is a convenience wrapper for one-shot decoding of a whole
// Modified UTF-8 byte sequence (e.g. the result of GetStringUTFChars).
func FromMUTF8(b []byte) (string, error) {
	var out []byte
	i := 0
	for i < len(b) {
		r, size, err := decodeRune(b[i:])
		if err != nil {
			return "", err
		}
		out = utf8.AppendRune(out, r)
		i += size
	}
	return string(out), nil
}

func appendRune(out []byte, r rune) []byte {
	switch {
	case r == 0:
		return append(out, 0xC0, 0x80)
	case r <= 0x7F:
		return append(out, byte(r))
	case r <= 0x7FF:
		return append(out,
			0xC0|byte(r>>6),
			0x80|byte(r&0x3F),
		)
	case r <= 0xFFFF:
		return append(out,
			0xE0|byte(r>>12),
			0x80|byte((r>>6)&0x3F),
			0x80|byte(r&0x3F),
		)
	default:
		// CESU-8: encode as a UTF-16 surrogate pair, each surrogate then
		// encoded as its own 3-byte UTF-8-shaped sequence.
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		out = appendRune(out, hi)
		out = appendRune(out, lo)
		return out
	}
}

func decodeRune(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, errShortInput
	}
	b0 := b[0]
	switch {
	case b0&0x80 == 0:
		return rune(b0), 1, nil
	case b0&0xE0 == 0xC0:
		if len(b) < 2 {
			return 0, 0, errShortInput
		}
		r := rune(b0&0x1F)<<6 | rune(b[1]&0x3F)
		if r == 0 {
			return 0, 2, nil // the 0xC0 0x80 NUL encoding
		}
		return r, 2, nil
	case b0&0xF0 == 0xE0:
		if len(b) < 3 {
			return 0, 0, errShortInput
		}
		r := rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if isHighSurrogate(r) && len(b) >= 6 {
			lo, loSize, err := decodeRune(b[3:])
			if err == nil && isLowSurrogate(lo) {
				combined := 0x10000 + (r-0xD800)<<10 + (lo - 0xDC00)
				return combined, 3 + loSize, nil
			}
		}
		return r, 3, nil
	default:
		return 0, 0, errInvalidByte
	}
}

func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

var (
	errShortInput  = mutf8Error("mutf8: truncated sequence")
	errInvalidByte = mutf8Error("mutf8: invalid leading byte")
)

type mutf8Error string

func (e mutf8Error) Error() string { return string(e) }

// Transform implements transform.Transformer, encoding UTF-8 src into
// Modified UTF-8 dst.
func (Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && size == 0 {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errInvalidByte
		}
		encoded := appendRune(nil, r)
		if len(dst)-nDst < len(encoded) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], encoded)
		nDst += len(encoded)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Transform implements transform.Transformer, decoding Modified UTF-8 src
// into UTF-8 dst.
func (Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size, derr := decodeRune(src[nSrc:])
		if derr == errShortInput {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errShortInput
		}
		if derr != nil {
			return nDst, nSrc, derr
		}
		need := utf8.RuneLen(r)
		if len(dst)-nDst < need {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}
