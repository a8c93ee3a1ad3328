package qrcode

// structuredAppendHeader carries the (index, total, parity) header emitted
// ahead of a part's segments.
type structuredAppendHeader struct {
	Index  int
	Total  int
	Parity byte
}

const padByteEven = 0xEC
const padByteOdd = 0x11

// eciValueBits appends an ECI value using the standard 1/2/3-byte prefix
// scheme: 0xxxxxxx for ≤127, 10xxxxxx xxxxxxxx for ≤16383, 110xxxxx
// xxxxxxxx xxxxxxxx for ≤999999.
func eciValueBits(buf *bitBuffer, eci uint32) {
	switch {
	case eci <= 127:
		buf.copyBits(eci, 8)
	case eci <= 16383:
		buf.copyBits(0x8000|eci, 16)
	default:
		buf.copyBits(0xC00000|eci, 24)
	}
}

// assembleBits packs the structured-append header (if any), each segment's
// ECI/FNC1/mode/char-count/payload, the terminator, byte alignment and pad
// fill into one buffer. It returns the packed data codewords, sized
// exactly info.TotalDataCodewords bytes.
func assembleBits(info SymbolInfo, form Form, version int, segments []Segment, extra ExtraMode, sa *structuredAppendHeader) []byte {
	totalBytes := info.TotalDataCodewords
	buf := newBitBuffer(totalBytes * 8)
	usableBits := buf.capacityBits() - shortFinalCodewordBits(form, version)

	if sa != nil {
		buf.copyBits(0b0011, 4)
		buf.copyBits(uint32(sa.Index), 4)
		buf.copyBits(uint32(sa.Total-1), 4)
		buf.copyBits(uint32(sa.Parity), 8)
	}

	for i, seg := range segments {
		if seg.ECI != defaultECI && form == FormQR {
			buf.copyBits(0b0111, 4)
			eciValueBits(buf, seg.ECI)
		}
		if i == 0 {
			switch extra.Kind {
			case ExtraModeFnc1First:
				buf.copyBits(0b0101, 4)
			case ExtraModeFnc1Second:
				buf.copyBits(0b1001, 4)
				ind, err := fnc1SecondIndicator(extra.AppID)
				if err != nil {
					panic("qrcode: invalid FNC1 second-position app id reached assembleBits; planner must validate first")
				}
				buf.copyBits(ind, 8)
			}
		}

		if w := modeIndicatorWidth(form, version); w > 0 {
			var v uint32
			if form == FormQR {
				v = qrModeIndicatorValue(seg.Mode)
			} else {
				v = microModeIndicatorValue(seg.Mode)
			}
			buf.copyBits(v, w)
		}

		ccWidth := charCountWidth(form, version, seg.Mode)
		buf.copyBits(uint32(seg.CharCount()), ccWidth)

		emitPayload(buf, seg)
	}

	// Terminator, truncated to remaining usable capacity.
	term := terminatorLength(form, version)
	remaining := usableBits - buf.lengthBits()
	if term > remaining {
		term = remaining
	}
	if term > 0 {
		buf.copyBits(0, term)
	}

	// Byte alignment within the usable region.
	for buf.lengthBits()%8 != 0 && buf.lengthBits() < usableBits {
		buf.copyBits(0, 1)
	}

	// Pad fill, alternating 0xEC/0x11, one full byte at a time.
	useOdd := false
	for buf.lengthBits()+8 <= usableBits {
		if useOdd {
			buf.copyBits(padByteOdd, 8)
		} else {
			buf.copyBits(padByteEven, 8)
		}
		useOdd = !useOdd
	}

	return buf.bytes()
}
