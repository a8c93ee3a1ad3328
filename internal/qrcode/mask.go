package qrcode

// maskPredicate returns whether mask m flips module (row, col), per the
// eight standard QR mask formulas (0..7).
func maskPredicate(m, row, col int) bool {
	switch m {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return (row*col)%2+(row*col)%3 == 0
	case 6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case 7:
		return ((row+col)%2+(row*col)%3)%2 == 0
	}
	panic("qrcode: unreachable mask id")
}

// microMaskIDs maps the four Micro QR candidate mask slots (0..3) to the
// QR mask predicates they reuse: the candidate masks are the subset
// {1,4,6,7} relabeled as 0..3.
var microMaskIDs = [4]int{1, 4, 6, 7}

// applyMask XORs color on every non-function-pattern cell of b where
// maskPredicate(maskID, row, col) holds.
func applyMask(b *Board, maskID int) {
	dim := b.Dimension
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			cell := b.at(r, c)
			if cell.Role().IsFunctionPattern() {
				continue
			}
			if maskPredicate(maskID, r, c) {
				newColor := ColorUnset
				if cell.Color() == ColorUnset {
					newColor = ColorSet
				}
				b.set(r, c, cell.withColor(newColor))
			}
		}
	}
}

// cloneBoard deep-copies a board so mask candidates can be evaluated
// independently.
func cloneBoard(b *Board) *Board {
	out := &Board{Dimension: b.Dimension, Grid: make([]Cell, len(b.Grid))}
	copy(out.Grid, b.Grid)
	return out
}

// qrPenaltyScore computes the four-rule ISO/IEC 18004 penalty score for a
// fully masked QR board (P1..P4).
func qrPenaltyScore(b *Board) int {
	dim := b.Dimension
	score := 0

	runPenalty := func(get func(i int) bool, n int) int {
		p := 0
		run := 1
		prev := get(0)
		for i := 1; i < n; i++ {
			v := get(i)
			if v == prev {
				run++
			} else {
				if run >= 5 {
					p += 3 + (run - 5)
				}
				run = 1
				prev = v
			}
		}
		if run >= 5 {
			p += 3 + (run - 5)
		}
		return p
	}

	for r := 0; r < dim; r++ {
		row := r
		score += runPenalty(func(c int) bool { return b.at(row, c).IsSet() }, dim)
	}
	for c := 0; c < dim; c++ {
		col := c
		score += runPenalty(func(r int) bool { return b.at(r, col).IsSet() }, dim)
	}

	// P2: 2x2 monochrome blocks.
	for r := 0; r < dim-1; r++ {
		for c := 0; c < dim-1; c++ {
			v := b.at(r, c).IsSet()
			if b.at(r, c+1).IsSet() == v && b.at(r+1, c).IsSet() == v && b.at(r+1, c+1).IsSet() == v {
				score += 3
			}
		}
	}

	// P3: finder-like 1:1:3:1:1 patterns, either polarity, horizontal/vertical.
	pat1 := []bool{true, false, true, true, true, false, true, false, false, false, false}
	pat2 := []bool{false, false, false, false, true, false, true, true, true, false, true}
	matches := func(get func(i int) bool) bool {
		m1, m2 := true, true
		for k := 0; k < 11; k++ {
			v := get(k)
			if v != pat1[k] {
				m1 = false
			}
			if v != pat2[k] {
				m2 = false
			}
		}
		return m1 || m2
	}
	for r := 0; r < dim; r++ {
		row := r
		for c := 0; c <= dim-11; c++ {
			base := c
			if matches(func(k int) bool { return b.at(row, base+k).IsSet() }) {
				score += 40
			}
		}
	}
	for c := 0; c < dim; c++ {
		col := c
		for r := 0; r <= dim-11; r++ {
			base := r
			if matches(func(k int) bool { return b.at(base+k, col).IsSet() }) {
				score += 40
			}
		}
	}

	// P4: dark-module proportion.
	dark := 0
	for _, cell := range b.Grid {
		if cell.IsSet() {
			dark++
		}
	}
	total := dim * dim
	percent := dark * 100 / total
	prevMultiple := (percent / 5) * 5
	nextMultiple := prevMultiple + 5
	d1, d2 := absInt(prevMultiple-50), absInt(nextMultiple-50)
	minD := d1
	if d2 < minD {
		minD = d2
	}
	score += (minD / 5) * 10

	return score
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// microPenaltyScore computes the Micro QR evaluation score: sum1 is the
// count of Set modules on the last column, sum2 on the last row;
// score = 16*min(sum1,sum2) + max(sum1,sum2).
func microPenaltyScore(b *Board) int {
	dim := b.Dimension
	sum1, sum2 := 0, 0
	for r := 0; r < dim; r++ {
		if b.at(r, dim-1).IsSet() {
			sum1++
		}
	}
	for c := 0; c < dim; c++ {
		if b.at(dim-1, c).IsSet() {
			sum2++
		}
	}
	minS, maxS := sum1, sum2
	if sum2 < sum1 {
		minS, maxS = sum2, sum1
	}
	return 16*minS + maxS
}

// chooseMask evaluates every candidate mask (or just the forced one, if
// provided) and returns the winning mask ID in the space the format
// string expects (0..7 for QR, 0..3 for Micro) plus the masked board.
func chooseMask(unmasked *Board, form Form, forcedMask int, forced bool) (int, *Board) {
	if forced {
		predicateID := forcedMask
		if form == FormMicroQR {
			predicateID = microMaskIDs[forcedMask]
		}
		b := cloneBoard(unmasked)
		applyMask(b, predicateID)
		return forcedMask, b
	}

	if form == FormQR {
		bestID, bestScore := -1, 0
		var bestBoard *Board
		for id := 0; id < 8; id++ {
			b := cloneBoard(unmasked)
			applyMask(b, id)
			score := qrPenaltyScore(b)
			if bestBoard == nil || score < bestScore {
				bestID, bestScore, bestBoard = id, score, b
			}
		}
		return bestID, bestBoard
	}

	bestSlot, bestScore := -1, 0
	var bestBoard *Board
	for slot, id := range microMaskIDs {
		b := cloneBoard(unmasked)
		applyMask(b, id)
		score := microPenaltyScore(b)
		if bestBoard == nil || score > bestScore {
			bestSlot, bestScore, bestBoard = slot, score, b
		}
	}
	return bestSlot, bestBoard
}
