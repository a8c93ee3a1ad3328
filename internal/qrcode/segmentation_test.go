package qrcode

import "testing"

type fakeTranscoder struct{}

// fakeTranscoder treats code points in the Hiragana/Katakana/CJK ranges as
// Shift-JIS representable without pulling in golang.org/x/text.
func (fakeTranscoder) ShiftJISPair(cp rune) (uint16, bool) {
	switch {
	case cp >= 0x3040 && cp <= 0x30FF:
		return uint16(0x8100 + (cp - 0x3040)), true
	case cp >= 0x4E00 && cp <= 0x9FFF:
		return uint16(0x8900 + (cp - 0x4E00)), true
	default:
		return 0, false
	}
}

func TestSegmentFromCodepoints_PureDigitsBecomeNumeric(t *testing.T) {
	segs, err := SegmentFromCodepoints([]rune("123456"), ECLow, FormQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != ModeNumeric {
		t.Fatalf("segments = %+v, want single Numeric segment", segs)
	}
}

func TestSegmentFromCodepoints_ShortDigitRunFallsBackToByte(t *testing.T) {
	// Below the QR numeric threshold (6), so it must not become Numeric.
	segs, err := SegmentFromCodepoints([]rune("123"), ECLow, FormQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != ModeByte {
		t.Fatalf("segments = %+v, want single Byte segment", segs)
	}
}

func TestSegmentFromCodepoints_MicroThresholdsAreLower(t *testing.T) {
	// Four digits meets the Micro numeric threshold but not the QR one.
	segs, err := SegmentFromCodepoints([]rune("1234"), ECLow, FormMicroQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != ModeNumeric {
		t.Fatalf("segments = %+v, want single Numeric segment under Micro thresholds", segs)
	}
}

func TestSegmentFromCodepoints_MixedRunsProduceMultipleSegments(t *testing.T) {
	// Long digit run, then short alphanumeric-shaped run (too short to
	// qualify), so the whole tail collapses into one Byte segment.
	segs, err := SegmentFromCodepoints([]rune("123456AB"), ECLow, FormQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("segments = %+v, want 2", segs)
	}
	if segs[0].Mode != ModeNumeric || segs[1].Mode != ModeByte {
		t.Fatalf("segments = %+v, want Numeric then Byte", segs)
	}
}

func TestSegmentFromCodepoints_KanjiRunRecognizedByTranscoder(t *testing.T) {
	kanji := []rune{0x4E00, 0x4E01, 0x4E02, 0x4E03, 0x4E04, 0x4E05, 0x4E06}
	segs, err := SegmentFromCodepoints(kanji, ECLow, FormQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != ModeKanji {
		t.Fatalf("segments = %+v, want single Kanji segment", segs)
	}
	if segs[0].CharCount() != len(kanji) {
		t.Errorf("CharCount() = %d, want %d", segs[0].CharCount(), len(kanji))
	}
}

func TestSegmentFromCodepoints_EmptyInputProducesNoSegments(t *testing.T) {
	segs, err := SegmentFromCodepoints(nil, ECLow, FormQR, fakeTranscoder{})
	if err != nil {
		t.Fatalf("SegmentFromCodepoints: %v", err)
	}
	if len(segs) != 0 {
		t.Fatalf("segments = %+v, want none", segs)
	}
}
