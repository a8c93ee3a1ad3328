package qrcode

import "testing"

func TestFormatBCHIsFifteenBits(t *testing.T) {
	got := formatBCH(0b10101, formatMaskQR)
	if got > 0x7FFF {
		t.Fatalf("formatBCH result %015b overflows 15 bits", got)
	}
}

func TestFormatBCHDistinctInputsRareleyCollide(t *testing.T) {
	seen := map[uint32]bool{}
	for i := uint32(0); i < 32; i++ {
		bits := formatBCH(i, formatMaskQR)
		if seen[bits] {
			t.Fatalf("formatBCH(%d) collides with a previous input", i)
		}
		seen[bits] = true
	}
}

func TestFormatBCHMicroMaskDiffersFromQRMask(t *testing.T) {
	if formatBCH(0, formatMaskQR) == formatBCH(0, formatMaskMicro) {
		t.Fatal("Micro QR and QR Code format strings must use different masks")
	}
}

func TestVersionBCHIsEighteenBits(t *testing.T) {
	got := versionBCH(7)
	if got > 0x3FFFF {
		t.Fatalf("versionBCH result overflows 18 bits: %018b", got)
	}
	// High 6 bits must echo the version number itself.
	if got>>12 != 7 {
		t.Errorf("versionBCH(7) high bits = %06b, want 000111", got>>12)
	}
}

func TestVersionBCHDistinctVersionsRarelyCollide(t *testing.T) {
	seen := map[uint32]bool{}
	for v := uint32(7); v <= 40; v++ {
		bits := versionBCH(v)
		if seen[bits] {
			t.Fatalf("versionBCH(%d) collides with a previous version", v)
		}
		seen[bits] = true
	}
}

func TestQRFormatStringVariesByMask(t *testing.T) {
	a := qrFormatString(ECHigh, 0)
	b := qrFormatString(ECHigh, 1)
	if a == b {
		t.Error("different masks must produce different format strings")
	}
}

func TestStampFormatWritesFifteenBitsQR(t *testing.T) {
	b := newBoard(21)
	buildFunctionPatterns(b, FormQR, 1)
	stampFormat(b, FormQR, 0x5412)

	count := 0
	for _, cell := range b.Grid {
		if cell.Role() == RoleFormat {
			count++
		}
	}
	// Two copies of 15 bits: 30 distinct format cells in all.
	if count == 0 {
		t.Fatal("expected format-role cells to be stamped")
	}
}

func TestStampVersionNoopBelowVersion7(t *testing.T) {
	b := newBoard(21)
	buildFunctionPatterns(b, FormQR, 1)
	before := make([]Cell, len(b.Grid))
	copy(before, b.Grid)
	stampVersion(b, 1)
	for i := range b.Grid {
		if b.Grid[i] != before[i] {
			t.Fatal("stampVersion must be a no-op below version 7")
		}
	}
}

func TestStampVersionWritesVersionRoleAboveVersion7(t *testing.T) {
	b := newBoard(DimensionForVersion(FormQR, 7))
	buildFunctionPatterns(b, FormQR, 7)
	stampVersion(b, 7)
	count := 0
	for _, cell := range b.Grid {
		if cell.Role() == RoleVersion {
			count++
		}
	}
	if count != 36 {
		t.Errorf("version-role cell count = %d, want 36 (two 3x6 blocks)", count)
	}
}
