package qrcode

// dataBlock is one RS block's data codewords plus its computed EC
// codewords.
type dataBlock struct {
	data []byte
	ec   []byte
}

// splitIntoBlocks divides the filled data buffer into info.G1Blocks blocks
// of info.G1BlockDataCodewords bytes followed by info.G2Blocks blocks of
// info.G2BlockDataCodewords bytes, then computes each block's Reed–Solomon
// remainder.
func splitIntoBlocks(info SymbolInfo, data []byte) []dataBlock {
	blocks := make([]dataBlock, 0, info.TotalBlocks())
	offset := 0
	appendGroup := func(count, size int) {
		for i := 0; i < count; i++ {
			d := data[offset : offset+size]
			offset += size
			blocks = append(blocks, dataBlock{
				data: d,
				ec:   reedSolomonRemainder(d, info.ECCodewordsPerBlock),
			})
		}
	}
	appendGroup(info.G1Blocks, info.G1BlockDataCodewords)
	appendGroup(info.G2Blocks, info.G2BlockDataCodewords)
	return blocks
}

// interleave produces the final codeword sequence: data columns first
// (skipping blocks shorter than the current column), then EC columns
// (all blocks have equal EC length). A single-block symbol is emitted
// in place, with no interleaving.
func interleave(blocks []dataBlock) []byte {
	if len(blocks) == 1 {
		out := make([]byte, 0, len(blocks[0].data)+len(blocks[0].ec))
		out = append(out, blocks[0].data...)
		out = append(out, blocks[0].ec...)
		return out
	}

	maxData := 0
	for _, b := range blocks {
		if len(b.data) > maxData {
			maxData = len(b.data)
		}
	}
	out := make([]byte, 0)
	for col := 0; col < maxData; col++ {
		for _, b := range blocks {
			if col < len(b.data) {
				out = append(out, b.data[col])
			}
		}
	}
	ecLen := len(blocks[0].ec)
	for col := 0; col < ecLen; col++ {
		for _, b := range blocks {
			out = append(out, b.ec[col])
		}
	}
	return out
}
