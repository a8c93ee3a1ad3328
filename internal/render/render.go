// Package render turns a qrcode.Board into pixels a terminal or an image
// file can show. The half-block writer is a direct generalization of
// whatsapp.renderQR's quiet-zone and two-rows-per-line half-block trick,
// now driven by the shared Board type instead of a one-off inline encoder,
// plus the PNG path that function's own doc comment said a production
// renderer should grow.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/dfbb/qrmatrix/internal/qrcode"
)

// QuietZoneModules is the number of blank modules of padding (ISO/IEC
// 18004's recommendation of >= 4 modules) added on every side.
const QuietZoneModules = 4

// HalfBlock writes board to w as Unicode half-block characters, two module
// rows per terminal line, with a QuietZoneModules-wide blank border.
func HalfBlock(w io.Writer, board qrcode.Board) {
	dim := board.Dimension
	quiet := QuietZoneModules
	totalCols := dim + 2*quiet

	dark := func(row, col int) bool {
		if row < 0 || row >= dim || col < 0 || col >= dim {
			return false
		}
		return board.Grid[row*dim+col].IsSet()
	}

	for r := -quiet; r < dim+quiet; r += 2 {
		for c := 0; c < totalCols; c++ {
			col := c - quiet
			top := dark(r, col)
			bot := dark(r+1, col)
			switch {
			case top && bot:
				fmt.Fprint(w, "██")
			case top && !bot:
				fmt.Fprint(w, "▀▀")
			case !top && bot:
				fmt.Fprint(w, "▄▄")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

// Text writes board to w as plain ASCII, two characters per module
// ("##" for dark, "  " for light), for terminals without Unicode support.
func Text(w io.Writer, board qrcode.Board) {
	dim := board.Dimension
	quiet := QuietZoneModules
	blankLine := func() {
		for c := 0; c < dim+2*quiet; c++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}
	for i := 0; i < quiet; i++ {
		blankLine()
	}
	for r := 0; r < dim; r++ {
		for c := 0; c < quiet; c++ {
			fmt.Fprint(w, "  ")
		}
		for c := 0; c < dim; c++ {
			if board.Grid[r*dim+c].IsSet() {
				fmt.Fprint(w, "##")
			} else {
				fmt.Fprint(w, "  ")
			}
		}
		for c := 0; c < quiet; c++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}
	for i := 0; i < quiet; i++ {
		blankLine()
	}
}

// PNG encodes board as a 1-bit paletted PNG, scale pixels per module, with
// a QuietZoneModules-wide white border, and writes it to w.
func PNG(w io.Writer, board qrcode.Board, scale int) error {
	if scale < 1 {
		scale = 1
	}
	dim := board.Dimension
	quiet := QuietZoneModules
	side := (dim + 2*quiet) * scale

	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{color.White, color.Black})
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if !board.Grid[r*dim+c].IsSet() {
				continue
			}
			startX := (c + quiet) * scale
			startY := (r + quiet) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}
	return png.Encode(w, img)
}
