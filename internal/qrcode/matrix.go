package qrcode

// buildFunctionPatterns stamps finders, separators, timing, alignment,
// the dark module and the reserved format/version strips onto an
// otherwise-Neutral board.
func buildFunctionPatterns(b *Board, form Form, version int) {
	dim := b.Dimension

	placeFinder := func(topRow, topCol int) {
		for r := -1; r <= 7; r++ {
			for c := -1; c <= 7; c++ {
				row, col := topRow+r, topCol+c
				if !b.inBounds(row, col) {
					continue
				}
				if r < 0 || r > 6 || c < 0 || c > 6 {
					b.set(row, col, makeCell(RoleSeparator, ColorUnset))
					continue
				}
				dark := r == 0 || r == 6 || c == 0 || c == 6 || (r >= 2 && r <= 4 && c >= 2 && c <= 4)
				color := ColorUnset
				if dark {
					color = ColorSet
				}
				b.set(row, col, makeCell(RoleFinder, color))
			}
		}
	}

	placeFinder(0, 0)
	if form == FormQR {
		placeFinder(0, dim-7)
		placeFinder(dim-7, 0)
	}

	// Timing.
	if form == FormQR {
		for i := 8; i <= dim-9; i++ {
			color := ColorUnset
			if i%2 == 0 {
				color = ColorSet
			}
			if b.at(6, i).Role() == RoleNone {
				b.set(6, i, makeCell(RoleTiming, color))
			}
			if b.at(i, 6).Role() == RoleNone {
				b.set(i, 6, makeCell(RoleTiming, color))
			}
		}
	} else {
		for i := 8; i < dim; i++ {
			color := ColorUnset
			if i%2 == 0 {
				color = ColorSet
			}
			if b.at(0, i).Role() == RoleNone {
				b.set(0, i, makeCell(RoleTiming, color))
			}
			if b.at(i, 0).Role() == RoleNone {
				b.set(i, 0, makeCell(RoleTiming, color))
			}
		}
	}

	// Alignment (QR version >= 2 only).
	if form == FormQR {
		coords := alignmentCoordinates(version)
		for _, r := range coords {
			for _, c := range coords {
				if fitsAlignment(b, r, c) {
					placeAlignment(b, r, c)
				}
			}
		}
	}

	// Dark module (QR only).
	if form == FormQR {
		b.set(dim-8, 8, makeCell(RoleDark, ColorSet))
	}

	reserveFormatStrips(b, form, version)
	if form == FormQR && version >= 7 {
		reserveVersionStrips(b)
	}
}

// fitsAlignment reports whether a 5x5 alignment footprint centered at
// (r,c) lies entirely within still-Neutral cells.
func fitsAlignment(b *Board, r, c int) bool {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			row, col := r+dr, c+dc
			if !b.inBounds(row, col) {
				return false
			}
			if b.at(row, col).Role() != RoleNone {
				return false
			}
		}
	}
	return true
}

func placeAlignment(b *Board, r, c int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dark := dr == -2 || dr == 2 || dc == -2 || dc == 2 || (dr == 0 && dc == 0)
			color := ColorUnset
			if dark {
				color = ColorSet
			}
			b.set(r+dr, c+dc, makeCell(RoleAlignment, color))
		}
	}
}

// reserveFormatStrips marks every not-yet-used Neutral cell in the format
// strips next to each finder as role Format, color Unset.
func reserveFormatStrips(b *Board, form Form, version int) {
	dim := b.Dimension
	reserve := func(row, col int) {
		if !b.inBounds(row, col) {
			return
		}
		if b.at(row, col).Role() == RoleNone {
			b.set(row, col, makeCell(RoleFormat, ColorUnset))
		}
	}

	if form == FormMicroQR {
		for i := 1; i <= 8; i++ {
			reserve(8, i)
		}
		for i := 1; i <= 7; i++ {
			reserve(i, 8)
		}
		return
	}

	// Top-left L-shaped strip.
	for i := 0; i <= 8; i++ {
		reserve(8, i)
		reserve(i, 8)
	}
	// Top-right strip (row 8, rightmost 8 columns).
	for i := 0; i < 8; i++ {
		reserve(8, dim-1-i)
	}
	// Bottom-left strip (column 8, bottom 7 rows).
	for i := 0; i < 7; i++ {
		reserve(dim-1-i, 8)
	}
}

func reserveVersionStrips(b *Board) {
	dim := b.Dimension
	for r := 0; r < 6; r++ {
		for c := 0; c < 3; c++ {
			b.set(r, dim-11+c, makeCell(RoleVersion, ColorUnset))
			b.set(dim-11+c, r, makeCell(RoleVersion, ColorUnset))
		}
	}
}

// placeData streams data, EC and remainder bits into the board's Neutral
// cells in the standard zigzag order: starting at the bottom-right,
// moving in two-column stripes, alternating direction, skipping column 6
// (QR timing column).
func placeData(b *Board, form Form, dataBits, ecBits []bool, remainderBitCount int) {
	bits := make([]bool, 0, len(dataBits)+len(ecBits)+remainderBitCount)
	bits = append(bits, dataBits...)
	bits = append(bits, ecBits...)
	for i := 0; i < remainderBitCount; i++ {
		bits = append(bits, false)
	}

	dataLen := len(dataBits)
	ecEnd := dataLen + len(ecBits)

	dim := b.Dimension
	idx := 0
	col := dim - 1
	upward := true
	for col >= 0 {
		if form == FormQR && col == 6 {
			col--
			continue
		}
		for i := 0; i < dim; i++ {
			row := i
			if upward {
				row = dim - 1 - i
			}
			for _, c := range [2]int{col, col - 1} {
				if c < 0 {
					continue
				}
				if b.at(row, c).Role() != RoleNone {
					continue
				}
				if idx >= len(bits) {
					continue
				}
				role := RoleNone
				switch {
				case idx < dataLen:
					role = RoleNone
				case idx < ecEnd:
					role = RoleErrorCorrection
				default:
					role = RoleRemainder
				}
				color := ColorUnset
				if bits[idx] {
					color = ColorSet
				}
				b.set(row, c, makeCell(role, color))
				idx++
			}
		}
		col -= 2
		upward = !upward
	}
}

func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, v := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (v>>uint(i))&1 == 1)
		}
	}
	return bits
}
