package qrcode

import "unicode/utf8"

// Transcoder lets the segmentation heuristic ask: can this code point be
// represented as a 2-byte Shift-JIS pair? internal/charset implements this
// interface on top of golang.org/x/text; qrcode never imports that package
// directly, keeping the core's only coupling to the outside world at this
// narrow seam.
type Transcoder interface {
	// ShiftJISPair reports the big-endian Shift-JIS byte pair for cp, and
	// whether cp is representable as one.
	ShiftJISPair(cp rune) (pair uint16, ok bool)
}

// minimum run lengths before switching a run into its own segment; Micro
// QR Code uses shorter runs than QR Code since its header overhead is
// smaller.
const (
	thresholdKanjiMicro = 5
	thresholdKanjiQR    = 7
	thresholdNumMicro   = 4
	thresholdNumQR      = 6
	thresholdAlnumMicro = 6
	thresholdAlnumQR    = 8
)

func isDigitCP(cp rune) bool { return cp >= '0' && cp <= '9' }

func isAlnumCP(cp rune) bool {
	if cp > 0x7F {
		return false
	}
	_, ok := alphanumericValue(byte(cp))
	return ok
}

// SegmentFromCodepoints runs a greedy text-segmentation heuristic: it tags
// runs of code points by mode and coalesces non-run code points into Byte
// segments. level is unused by the heuristic itself; it's accepted here so
// callers have one call site regardless of error-correction level.
func SegmentFromCodepoints(codepoints []rune, level ECLevel, form Form, tc Transcoder) ([]Segment, error) {
	thresholdK, thresholdN, thresholdA := thresholdKanjiQR, thresholdNumQR, thresholdAlnumQR
	if form == FormMicroQR {
		thresholdK, thresholdN, thresholdA = thresholdKanjiMicro, thresholdNumMicro, thresholdAlnumMicro
	}

	var segments []Segment
	var byteAccum []rune

	flushByte := func() error {
		if len(byteAccum) == 0 {
			return nil
		}
		var buf []byte
		for _, cp := range byteAccum {
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], cp)
			buf = append(buf, tmp[:n]...)
		}
		seg, err := NewSegment(ModeByte, buf, defaultECI)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
		byteAccum = nil
		return nil
	}

	i := 0
	for i < len(codepoints) {
		if n := kanjiRunLength(codepoints, i, tc); n >= thresholdK {
			if err := flushByte(); err != nil {
				return nil, err
			}
			payload := make([]byte, 0, n*2)
			for j := 0; j < n; j++ {
				pair, _ := tc.ShiftJISPair(codepoints[i+j])
				payload = append(payload, byte(pair>>8), byte(pair))
			}
			seg, err := NewSegment(ModeKanji, payload, defaultECI)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
			i += n
			continue
		}

		if n := digitRunLength(codepoints, i); n >= thresholdN {
			if err := flushByte(); err != nil {
				return nil, err
			}
			payload := make([]byte, n)
			for j := 0; j < n; j++ {
				payload[j] = byte(codepoints[i+j])
			}
			seg, err := NewSegment(ModeNumeric, payload, defaultECI)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
			i += n
			continue
		}

		if n := alnumRunLength(codepoints, i); n >= thresholdA {
			if err := flushByte(); err != nil {
				return nil, err
			}
			payload := make([]byte, n)
			for j := 0; j < n; j++ {
				payload[j] = byte(codepoints[i+j])
			}
			seg, err := NewSegment(ModeAlphanumeric, payload, defaultECI)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
			i += n
			continue
		}

		byteAccum = append(byteAccum, codepoints[i])
		i++
	}
	if err := flushByte(); err != nil {
		return nil, err
	}

	return segments, nil
}

func kanjiRunLength(cps []rune, start int, tc Transcoder) int {
	n := 0
	for start+n < len(cps) {
		if _, ok := tc.ShiftJISPair(cps[start+n]); !ok {
			break
		}
		n++
	}
	return n
}

func digitRunLength(cps []rune, start int) int {
	n := 0
	for start+n < len(cps) && isDigitCP(cps[start+n]) {
		n++
	}
	return n
}

func alnumRunLength(cps []rune, start int) int {
	n := 0
	for start+n < len(cps) && isAlnumCP(cps[start+n]) {
		n++
	}
	return n
}
