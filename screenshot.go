package vtcore

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls the debug/test PNG rendering path in
// Screenshot. It exists purely for test harnesses and offline
// debugging; the wire protocol in instructions.go is the real output
// path a connected gateway uses.
type ScreenshotConfig struct {
	CellWidth, CellHeight int
	Face                  font.Face
}

// DefaultScreenshotConfig uses the golang.org/x/image basicfont 7x13 face at its
// native cell metrics.
func DefaultScreenshotConfig() ScreenshotConfig {
	return ScreenshotConfig{
		CellWidth:  7,
		CellHeight: 13,
		Face:       basicfont.Face7x13,
	}
}

// Screenshot renders the terminal's current visible screen to a PNG,
// written to w. Intended for tests and debug tooling, not the live
// rendering path.
func (t *Terminal) Screenshot(w io.Writer, cfg ScreenshotConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	width := t.cols * cfg.CellWidth
	height := t.rows * cfg.CellHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	bg := resolveCellColor(Cell{Attrs: DefaultAttributes()}, t.foreground, t.background)
	draw(img, color.RGBA{bg.R, bg.G, bg.B, 0xff})

	for r := 0; r < t.rows; r++ {
		row := t.active.GetRow(r)
		if row == nil {
			continue
		}
		for c, cell := range row.Cells {
			if cell.IsBlank() || cell.IsContinuation() {
				continue
			}
			fg := resolveGlyphColor(cell, t.foreground, t.background)
			drawer := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.RGBA{fg.R, fg.G, fg.B, 0xff}),
				Face: cfg.Face,
				Dot: fixed.Point26_6{
					X: fixed.I(c * cfg.CellWidth),
					Y: fixed.I(r*cfg.CellHeight + cfg.CellHeight - 3),
				},
			}
			drawer.DrawString(string(cell.Rune()))
		}
	}

	return png.Encode(w, img)
}

func draw(img *image.RGBA, c color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// resolveGlyphColor picks the foreground a glyph should be drawn in,
// the inverse of resolveCellColor's background resolution.
func resolveGlyphColor(c Cell, fg, bg Color) Color {
	f, b := c.Attrs.Foreground, c.Attrs.Background
	if f.PaletteIndex == ColorForeground {
		f = fg
	}
	if b.PaletteIndex == ColorBackground {
		b = bg
	}
	if c.Attrs.Reverse {
		return b
	}
	return f
}
