package qrcode

import "testing"

func numericSegment(t *testing.T, payload string) Segment {
	t.Helper()
	seg, err := NewSegment(ModeNumeric, []byte(payload), defaultECI)
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}
	return seg
}

func TestEncodeProducesFullyAssignedBoard(t *testing.T) {
	seg := numericSegment(t, "12345")
	board, err := Encode(EncodeRequest{Segments: []Segment{seg}, ECLevel: ECLow})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i, cell := range board.Grid {
		if cell.Color() == ColorNeutral {
			t.Fatalf("cell %d is still Neutral after encode", i)
		}
	}
}

func TestEncodeMatchesDimensionFormula(t *testing.T) {
	seg := numericSegment(t, "12345")
	board, err := Encode(EncodeRequest{Segments: []Segment{seg}, ECLevel: ECLow})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := DimensionForVersion(FormQR, 1)
	if board.Dimension != want {
		t.Errorf("Dimension = %d, want %d", board.Dimension, want)
	}
}

func TestEncodeDarkModuleIsSetForQR(t *testing.T) {
	seg := numericSegment(t, "12345")
	board, err := Encode(EncodeRequest{Segments: []Segment{seg}, ECLevel: ECLow})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dim := board.Dimension
	cell := board.Grid[(dim-8)*dim+8]
	if cell.Role() != RoleDark || !cell.IsSet() {
		t.Error("dark module must be Role Dark and Set for a QR symbol")
	}
}

func TestEncodeForcedMaskIsHonored(t *testing.T) {
	seg := numericSegment(t, "12345")
	board, err := Encode(EncodeRequest{
		Segments: []Segment{seg}, ECLevel: ECLow,
		ForcedMask: 3, ForceMask: true,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Re-derive the format bits for mask 3 and confirm they match what
	// was stamped into the board's Format-role cells on row 8, cols 0..5.
	want := qrFormatString(ECLow, 3)
	dim := board.Dimension
	_ = dim
	got := uint32(0)
	for i := 0; i < 6; i++ {
		if board.Grid[8*board.Dimension+i].IsSet() {
			got |= 1 << uint(i)
		}
	}
	for i := 0; i < 6; i++ {
		bit := (want >> uint(i)) & 1
		gotBit := (got >> uint(i)) & 1
		if bit != gotBit {
			t.Fatalf("format bit %d = %d, want %d", i, gotBit, bit)
		}
	}
}

func TestEncodeRejectsEmptySegments(t *testing.T) {
	_, err := Encode(EncodeRequest{Segments: nil, ECLevel: ECLow})
	if err == nil {
		t.Fatal("expected an error for an empty segment list")
	}
}

func TestEncodeMicroQRExtraModeSucceeds(t *testing.T) {
	seg := numericSegment(t, "12345")
	_, err := Encode(EncodeRequest{
		Segments: []Segment{seg}, ECLevel: ECLow,
		Extra: ExtraMode{Kind: ExtraModeMicroQR},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
}

func TestEncodeMicroHighOnlyFitsVersion1(t *testing.T) {
	seg := numericSegment(t, "1")
	board, err := Encode(EncodeRequest{
		Segments: []Segment{seg}, ECLevel: ECHigh,
		Extra: ExtraMode{Kind: ExtraModeMicroQR},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if board.Dimension != DimensionForVersion(FormMicroQR, 1) {
		t.Errorf("Dimension = %d, want M1's dimension", board.Dimension)
	}
}

func TestEncodeMicroHighRejectsLongerPayload(t *testing.T) {
	seg := numericSegment(t, "1234567890")
	_, err := Encode(EncodeRequest{
		Segments: []Segment{seg}, ECLevel: ECHigh,
		Extra: ExtraMode{Kind: ExtraModeMicroQR},
	})
	if err == nil {
		t.Fatal("expected capacity-exceeded error: only M1 offers High, and M1 cannot hold this payload")
	}
}
