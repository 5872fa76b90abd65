package mutf8

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Test",
		"with a \x00 nul byte",
		"emoji \U0001F600 party",
		"supplementary \U00010000 plane",
		"mixed éè latin-1 range",
	}
	for _, s := range cases {
		encoded := ToMUTF8(s)
		decoded, err := FromMUTF8(encoded)
		if err != nil {
			t.Fatalf("FromMUTF8(ToMUTF8(%q)) error: %v", s, err)
		}
		if decoded != s {
			t.Fatalf("round trip mismatch: %q -> %x -> %q", s, encoded, decoded)
		}
	}
}

func TestNulEncodedAsTwoBytes(t *testing.T) {
	encoded := ToMUTF8("\x00")
	want := []byte{0xC0, 0x80}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("NUL encoded as % x, want % x", encoded, want)
	}
}

func TestSupplementaryEncodedAsSixBytes(t *testing.T) {
	encoded := ToMUTF8("\U0001F600")
	if len(encoded) != 6 {
		t.Fatalf("supplementary code point encoded as %d bytes, want 6 (CESU-8 surrogate pair)", len(encoded))
	}
}

func TestAsciiPassesThroughUnchanged(t *testing.T) {
	encoded := ToMUTF8("hello world")
	if string(encoded) != "hello world" {
		t.Fatalf("ASCII-only input changed: %q", encoded)
	}
}

func TestTransformerRoundTrip(t *testing.T) {
	src := "round \U0001F600 trip \x00 via transform.Transformer"

	var encDst [256]byte
	enc := Encoder{}
	nDst, nSrc, err := enc.Transform(encDst[:], []byte(src), true)
	if err != nil {
		t.Fatalf("Encoder.Transform: %v", err)
	}
	if nSrc != len(src) {
		t.Fatalf("Encoder consumed %d of %d bytes", nSrc, len(src))
	}

	var decDst [256]byte
	dec := Decoder{}
	dnDst, dnSrc, err := dec.Transform(decDst[:], encDst[:nDst], true)
	if err != nil {
		t.Fatalf("Decoder.Transform: %v", err)
	}
	if dnSrc != nDst {
		t.Fatalf("Decoder consumed %d of %d bytes", dnSrc, nDst)
	}
	if string(decDst[:dnDst]) != src {
		t.Fatalf("transformer round trip = %q, want %q", decDst[:dnDst], src)
	}
}

func TestFromMUTF8RejectsTruncatedSequence(t *testing.T) {
	if _, err := FromMUTF8([]byte{0xE0}); err == nil {
		t.Fatal("expected an error decoding a truncated 3-byte sequence")
	}
}
