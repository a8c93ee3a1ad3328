// Package charset implements the charset-conversion collaborators the QR
// encoding core consults: Unicode code point <-> Shift-JIS and Unicode
// code point <-> Latin-1 transcoding, plus UTF-8 <-> code point walking.
// The core (internal/qrcode) never imports this package directly — it
// only depends on the narrow qrcode.Transcoder interface — so swapping
// the transcoding backend never touches the encoder itself.
package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Transcoder implements qrcode.Transcoder, backed by golang.org/x/text's
// Shift-JIS and ISO-8859-1 encoders.
type Transcoder struct{}

// ShiftJISPair reports the big-endian Shift-JIS double-byte encoding of
// cp, and whether cp is representable as one. Single-byte Shift-JIS
// results (ASCII/half-width katakana) are not "Kanji-representable" for
// segmentation purposes, so those return ok=false.
func (Transcoder) ShiftJISPair(cp rune) (uint16, bool) {
	enc := japanese.ShiftJIS.NewEncoder()
	out, err := enc.Bytes([]byte(string(cp)))
	if err != nil || len(out) != 2 {
		return 0, false
	}
	return uint16(out[0])<<8 | uint16(out[1]), true
}

// CodepointsToShiftJIS transcodes a sequence of code points into packed
// Shift-JIS bytes, reporting each code point's encoded byte length and
// an overall validity flag (false if any code point has no Shift-JIS
// representation).
func (t Transcoder) CodepointsToShiftJIS(codepoints []rune) (data []byte, perCharLengths []int, valid bool) {
	enc := japanese.ShiftJIS.NewEncoder()
	perCharLengths = make([]int, len(codepoints))
	for i, cp := range codepoints {
		out, err := enc.Bytes([]byte(string(cp)))
		if err != nil {
			return nil, nil, false
		}
		data = append(data, out...)
		perCharLengths[i] = len(out)
	}
	return data, perCharLengths, true
}

// CodepointsToLatin1 transcodes a sequence of code points into ISO-8859-1
// bytes, one byte per code point, reporting false if any code point falls
// outside Latin-1's range.
func (Transcoder) CodepointsToLatin1(codepoints []rune) (data []byte, valid bool) {
	enc := charmap.ISO8859_1.NewEncoder()
	out, err := enc.Bytes([]byte(string(codepoints)))
	if err != nil {
		return nil, false
	}
	return out, true
}

// UTF8ToCodepoints decodes a UTF-8 byte sequence into Unicode code points.
func UTF8ToCodepoints(b []byte) []rune {
	cps := make([]rune, 0, utf8.RuneCount(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		cps = append(cps, r)
		b = b[size:]
	}
	return cps
}

// CodepointsToUTF8 encodes a sequence of Unicode code points as UTF-8.
func CodepointsToUTF8(codepoints []rune) []byte {
	var out []byte
	var tmp [utf8.UTFMax]byte
	for _, cp := range codepoints {
		n := utf8.EncodeRune(tmp[:], cp)
		out = append(out, tmp[:n]...)
	}
	return out
}
