package qrcode

// EncodeRequest bundles the inputs to a single-symbol encode.
type EncodeRequest struct {
	Segments   []Segment
	ECLevel    ECLevel
	Extra      ExtraMode
	MinVersion int  // 0 means "no hint"
	ForcedMask int  // ignored unless ForceMask is true
	ForceMask  bool
}

// Encode runs the full pipeline (plan -> assemble -> EC/interleave ->
// matrix -> mask) for one symbol. It returns the zero Board and an error
// on any invalid-input or capacity-exhausted condition; there are no
// partial results.
func Encode(req EncodeRequest) (Board, error) {
	return encodePart(req.Segments, req.ECLevel, req.Extra, req.MinVersion, req.ForcedMask, req.ForceMask, nil)
}

func validateRequest(extra ExtraMode, structuredAppend bool) error {
	if extra.Kind == ExtraModeMicroQR && structuredAppend {
		return ErrMicroExclusive
	}
	if extra.Kind == ExtraModeFnc1Second {
		if _, err := fnc1SecondIndicator(extra.AppID); err != nil {
			return err
		}
	}
	return nil
}

func encodePart(segments []Segment, level ECLevel, extra ExtraMode, minVersion, forcedMask int, forceMask bool, sa *structuredAppendHeader) (Board, error) {
	if len(segments) == 0 {
		return emptyBoard, ErrEmptyPayload
	}
	if err := validateRequest(extra, sa != nil); err != nil {
		return emptyBoard, err
	}

	info, ok := PlanVersion(segments, level, extra, minVersion, sa != nil)
	if !ok {
		return emptyBoard, ErrCapacityExceeded
	}

	form := info.Form
	version := info.Version

	data := assembleBits(info, form, version, segments, extra, sa)
	blocks := splitIntoBlocks(info, data)
	codewords := interleave(blocks)

	dataBitCount := info.TotalDataCodewords * 8
	allBits := bytesToBits(codewords)
	dataBits := allBits[:dataBitCount]
	ecBits := allBits[dataBitCount:]

	remainder := 0
	if form == FormQR {
		remainder = remainderBits[version]
	}

	board := newBoard(DimensionForVersion(form, version))
	buildFunctionPatterns(board, form, version)
	placeData(board, form, dataBits, ecBits, remainder)

	maskID, masked := chooseMask(board, form, forcedMask, forceMask)

	var formatBits uint32
	if form == FormQR {
		formatBits = qrFormatString(level, maskID)
	} else {
		formatBits = microFormatString(microECSymbolValue(version, level), maskID)
	}
	stampFormat(masked, form, formatBits)
	if form == FormQR {
		stampVersion(masked, version)
	}

	return *masked, nil
}

// StructuredAppendPart is one part of a structured-append request.
// ExtraMode.MicroQR is ignored when used inside structured append.
type StructuredAppendPart struct {
	Segments   []Segment
	ECLevel    ECLevel
	MinVersion int
	ForcedMask int
	ForceMask  bool
	Extra      ExtraMode
}

// StructuredAppend computes the parity of every part's segment payload
// bytes in input order, then encodes each part with its own
// structured-append header. It returns no boards if planning fails for
// any part — fail-fast, rather than returning partial results with empty
// slots.
func StructuredAppend(parts []StructuredAppendPart) ([]Board, error) {
	if len(parts) == 0 {
		return nil, ErrNoPartsProvided
	}
	if len(parts) > 16 {
		return nil, ErrTooManyParts
	}

	var parity byte
	for _, p := range parts {
		for _, seg := range p.Segments {
			for _, b := range seg.Payload {
				parity ^= b
			}
		}
	}

	boards := make([]Board, len(parts))
	for i, p := range parts {
		extra := p.Extra
		extra.Kind = normalizeStructuredAppendExtra(extra.Kind)
		header := &structuredAppendHeader{Index: i, Total: len(parts), Parity: parity}
		b, err := encodePart(p.Segments, p.ECLevel, extra, p.MinVersion, p.ForcedMask, p.ForceMask, header)
		if err != nil {
			return nil, err
		}
		boards[i] = b
	}
	return boards, nil
}

// normalizeStructuredAppendExtra strips ExtraModeMicroQR from a part's
// extra mode: it is ignored when part of structured append rather than
// rejected outright.
func normalizeStructuredAppendExtra(k ExtraModeKind) ExtraModeKind {
	if k == ExtraModeMicroQR {
		return ExtraModeNone
	}
	return k
}
