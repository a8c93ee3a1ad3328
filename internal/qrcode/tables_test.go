package qrcode

import "testing"

func TestQRSymbolInfoVersion1Low(t *testing.T) {
	info := qrSymbolInfo(1, ECLow)
	if info.TotalDataCodewords != 19 {
		t.Errorf("TotalDataCodewords = %d, want 19", info.TotalDataCodewords)
	}
	if info.G1Blocks != 1 || info.G2Blocks != 0 {
		t.Errorf("blocks = %d/%d, want 1/0", info.G1Blocks, info.G2Blocks)
	}
}

func TestQRSymbolInfoMultiBlockVersion(t *testing.T) {
	// Version 5, EC level Q has a two-group split (ISO/IEC 18004 table 9).
	info := qrSymbolInfo(5, ECQuartile)
	if info.TotalBlocks() != info.G1Blocks+info.G2Blocks {
		t.Fatalf("TotalBlocks() inconsistent with group counts")
	}
	if info.G2Blocks == 0 {
		t.Error("expected version 5 Quartile to split into two groups")
	}
}

func TestMicroSymbolInfoM1IgnoresLevel(t *testing.T) {
	low, okLow := microSymbolInfo(1, ECLow)
	high, okHigh := microSymbolInfo(1, ECHigh)
	if !okLow || !okHigh {
		t.Fatal("expected M1 to resolve regardless of requested level")
	}
	if low.TotalDataCodewords != high.TotalDataCodewords {
		t.Error("M1 must have exactly one configuration regardless of level")
	}
}

func TestMicroSymbolInfoRejectsUnsupportedCombination(t *testing.T) {
	if _, ok := microSymbolInfo(2, ECQuartile); ok {
		t.Error("M2 Quartile does not exist in the standard")
	}
}

func TestMicroSymbolInfoM4SupportsQuartile(t *testing.T) {
	if _, ok := microSymbolInfo(4, ECQuartile); !ok {
		t.Error("M4 Quartile must exist")
	}
}

func TestAlignmentCoordinatesEmptyBelowVersion2(t *testing.T) {
	if coords := alignmentCoordinates(1); coords != nil {
		t.Errorf("alignmentCoordinates(1) = %v, want nil", coords)
	}
}

func TestAlignmentCoordinatesVersion35HasSevenEntries(t *testing.T) {
	coords := alignmentCoordinates(35)
	if len(coords) != 7 {
		t.Errorf("len(alignmentCoordinates(35)) = %d, want 7", len(coords))
	}
}

func TestRemainderBitsVersion1IsZero(t *testing.T) {
	if remainderBits[1] != 0 {
		t.Errorf("remainderBits[1] = %d, want 0", remainderBits[1])
	}
}

func TestCharCountWidthMicroM3KanjiIsThreeNotFour(t *testing.T) {
	if got := charCountWidth(FormMicroQR, 3, ModeKanji); got != 3 {
		t.Errorf("charCountWidth(Micro, M3, Kanji) = %d, want 3", got)
	}
	if got := charCountWidth(FormMicroQR, 3, ModeByte); got != 4 {
		t.Errorf("charCountWidth(Micro, M3, Byte) = %d, want 4", got)
	}
}

func TestCharCountWidthQRVersionBands(t *testing.T) {
	if got := charCountWidth(FormQR, 1, ModeNumeric); got != 10 {
		t.Errorf("v1-9 numeric = %d, want 10", got)
	}
	if got := charCountWidth(FormQR, 10, ModeNumeric); got != 12 {
		t.Errorf("v10-26 numeric = %d, want 12", got)
	}
	if got := charCountWidth(FormQR, 27, ModeNumeric); got != 14 {
		t.Errorf("v27-40 numeric = %d, want 14", got)
	}
}

func TestModeIndicatorWidthQRIsAlwaysFour(t *testing.T) {
	if got := modeIndicatorWidth(FormQR, 40); got != 4 {
		t.Errorf("modeIndicatorWidth(QR, 40) = %d, want 4", got)
	}
}

func TestModeIndicatorWidthMicroGrowsWithVersion(t *testing.T) {
	want := map[int]int{1: 0, 2: 1, 3: 2, 4: 3}
	for v, w := range want {
		if got := modeIndicatorWidth(FormMicroQR, v); got != w {
			t.Errorf("modeIndicatorWidth(Micro, %d) = %d, want %d", v, got, w)
		}
	}
}

func TestNumRawDataModulesMatchesKnownVersion1(t *testing.T) {
	// Version 1: 208 raw data bits (26 codewords * 8), a well-known figure.
	if got := numRawDataModules(1); got != 208 {
		t.Errorf("numRawDataModules(1) = %d, want 208", got)
	}
}
