package qrcode

// Fixed tables and their derivations, reproduced bit-exact with ISO/IEC
// 18004. Several of these (symbol capacity, format/version BCH strings) are
// computed from small seed tables rather than transcribed as giant arrays —
// the same approach nayuki/qrcodegen uses, and exactly how the standard's
// own tables are constructed, so the result is bit-for-bit identical to a
// verbatim transcription without the transcription-error risk. See
// DESIGN.md for the grounding of each table.

// Form distinguishes the QR / Micro QR symbol families.
type Form int

const (
	FormQR Form = iota
	FormMicroQR
)

// ECLevel is one of the four QR error-correction levels. Index order
// matches ISO/IEC 18004's own row order (Low, Medium, Quartile, High).
type ECLevel int

const (
	ECLow ECLevel = iota
	ECMedium
	ECQuartile
	ECHigh
)

// eccCodewordsPerBlock[level][version] for QR versions 1..40 (index 0 unused).
// Grounded on nayuki-QR-Code-generator/golang/qrcodegen.go ECC_CODEWORDS_PER_BLOCK.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numECBlocks[level][version] for QR versions 1..40 (index 0 unused).
var numECBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// numRawDataModules returns the number of bit-holding modules (data + EC +
// remainder) for a QR version, before dividing by 8. Grounded on
// nayuki-QR-Code-generator/golang/qrcodegen.go getNumRawDataModules.
func numRawDataModules(version int) int {
	v := version
	result := (16*v+128)*v + 64
	if v >= 2 {
		numAlign := v/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// SymbolInfo describes the codeword layout for one (version, EC level,
// form) combination.
type SymbolInfo struct {
	Version              int
	ECLevel              ECLevel
	Form                 Form
	TotalDataCodewords   int
	ECCodewordsPerBlock  int
	G1Blocks             int
	G1BlockDataCodewords int
	G2Blocks             int
	G2BlockDataCodewords int
}

// TotalBlocks is g1_blocks + g2_blocks.
func (s SymbolInfo) TotalBlocks() int { return s.G1Blocks + s.G2Blocks }

// TotalECCodewords is total_blocks * ec_codewords_per_block.
func (s SymbolInfo) TotalECCodewords() int { return s.TotalBlocks() * s.ECCodewordsPerBlock }

// qrSymbolInfo derives the block layout for a full-range QR version/level.
func qrSymbolInfo(version int, level ECLevel) SymbolInfo {
	ecPerBlock := eccCodewordsPerBlock[level][version]
	totalBlocks := numECBlocks[level][version]
	rawCodewords := numRawDataModules(version) / 8
	numShortBlocks := totalBlocks - (rawCodewords % totalBlocks)
	shortBlockLen := rawCodewords / totalBlocks
	g1Data := shortBlockLen - ecPerBlock
	g2Data := 0
	g2Blocks := totalBlocks - numShortBlocks
	if g2Blocks > 0 {
		g2Data = g1Data + 1
	}
	return SymbolInfo{
		Version:              version,
		ECLevel:              level,
		Form:                 FormQR,
		TotalDataCodewords:   numShortBlocks*g1Data + g2Blocks*g2Data,
		ECCodewordsPerBlock:  ecPerBlock,
		G1Blocks:             numShortBlocks,
		G1BlockDataCodewords: g1Data,
		G2Blocks:             g2Blocks,
		G2BlockDataCodewords: g2Data,
	}
}

// microSymbolInfoEntry is one row of the Micro QR capacity table (ISO/IEC
// 18004 table 7). Every Micro version uses a single RS block, so there is
// no group split to derive.
type microSymbolInfoEntry struct {
	version    int
	level      ECLevel
	hasLevel   bool // M1 has no selectable EC level
	dataBytes  int
	ecBytes    int
	ecSymbolID int // the 3-bit "micro EC symbol value" used by the format string
}

var microTable = []microSymbolInfoEntry{
	{1, ECLow, false, 3, 2, 0},
	{2, ECLow, true, 5, 5, 1},
	{2, ECMedium, true, 4, 6, 2},
	{3, ECLow, true, 11, 6, 3},
	{3, ECMedium, true, 9, 8, 4},
	{4, ECLow, true, 16, 8, 5},
	{4, ECMedium, true, 14, 10, 6},
	{4, ECQuartile, true, 10, 14, 7},
}

// microSymbolInfo looks up the Micro QR entry for (version, level). M1
// ignores level (there is exactly one M1 configuration). Returns false if
// the combination does not exist (e.g. Quartile below M4, High above M1 —
// see symbolInfoFor in plan.go for the High-at-v1 quirk this implies).
func microSymbolInfo(version int, level ECLevel) (SymbolInfo, bool) {
	for _, e := range microTable {
		if e.version != version {
			continue
		}
		if e.version == 1 || e.level == level {
			return SymbolInfo{
				Version:              e.version,
				ECLevel:              level,
				Form:                 FormMicroQR,
				TotalDataCodewords:   e.dataBytes,
				ECCodewordsPerBlock:  e.ecBytes,
				G1Blocks:             1,
				G1BlockDataCodewords: e.dataBytes,
				G2Blocks:             0,
				G2BlockDataCodewords: 0,
			}, true
		}
	}
	return SymbolInfo{}, false
}

func microECSymbolValue(version int, level ECLevel) int {
	for _, e := range microTable {
		if e.version == version && (e.version == 1 || e.level == level) {
			return e.ecSymbolID
		}
	}
	return -1
}

// alignmentCoordinates returns the alignment-pattern center coordinates for
// a QR version (empty for version 1 and for Micro QR, which has none).
// ISO/IEC 18004 Annex E.
func alignmentCoordinates(version int) []int {
	if version < 2 || version > 40 {
		return nil
	}
	return alignmentTable[version]
}

var alignmentTable = map[int][]int{
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

// remainderBits is the count of trailing non-data, non-EC bits each QR
// version's data region needs after codeword placement. Index 0 unused.
var remainderBits = [41]int{
	0,
	0, 7, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4, 3, 3, 3,
	3, 3, 3, 3, 0, 0, 0, 0, 0, 0,
}

// charCountWidth returns the character-count indicator width in bits for
// (form, version, mode).
func charCountWidth(form Form, version int, mode Mode) int {
	if form == FormMicroQR {
		switch version {
		case 1:
			return 3 // numeric only
		case 2:
			if mode == ModeAlphanumeric {
				return 3
			}
			return 4
		case 3:
			switch mode {
			case ModeAlphanumeric, ModeByte:
				return 4
			case ModeKanji:
				return 3
			default:
				return 5
			}
		case 4:
			switch mode {
			case ModeAlphanumeric:
				return 5
			case ModeByte:
				return 5
			case ModeKanji:
				return 4
			default:
				return 6
			}
		}
		return 0
	}
	switch {
	case version <= 9:
		switch mode {
		case ModeNumeric:
			return 10
		case ModeAlphanumeric:
			return 9
		case ModeByte:
			return 8
		case ModeKanji:
			return 8
		}
	case version <= 26:
		switch mode {
		case ModeNumeric:
			return 12
		case ModeAlphanumeric:
			return 11
		case ModeByte:
			return 16
		case ModeKanji:
			return 10
		}
	default:
		switch mode {
		case ModeNumeric:
			return 14
		case ModeAlphanumeric:
			return 13
		case ModeByte:
			return 16
		case ModeKanji:
			return 12
		}
	}
	return 0
}

// modeIndicatorWidth returns the bit width of the mode indicator for a
// given form and (for Micro) version.
func modeIndicatorWidth(form Form, version int) int {
	if form == FormQR {
		return 4
	}
	switch version {
	case 1:
		return 0
	case 2:
		return 1
	case 3:
		return 2
	case 4:
		return 3
	}
	return 0
}

// terminatorLength returns the terminator bit length for a form/version
// (truncated further by remaining capacity at the call site).
func terminatorLength(form Form, version int) int {
	if form == FormQR {
		return 4
	}
	switch version {
	case 1:
		return 3
	case 2:
		return 5
	case 3:
		return 7
	case 4:
		return 9
	}
	return 0
}

// shortFinalCodewordBits reports how many bits short of a full codeword the
// last codeword of the data region is, for Micro versions M1 and M3: their
// usable capacity is total_data_codewords*8 minus 4 bits.
func shortFinalCodewordBits(form Form, version int) int {
	if form == FormMicroQR && (version == 1 || version == 3) {
		return 4
	}
	return 0
}
