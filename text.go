package img2paint

import (
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/wbrown/img2paint/imageutil"
)

// rampIndex maps a sampled cell color to an index into Ramp.
// Luminance uses the Rec. 601 weights; alpha is ignored. The index is
// floor((1-L) * (len(Ramp)-1)) clamped to the ramp, so lower luminance
// always yields an index at least as high as brighter cells.
func rampIndex(c color.RGBA) int {
	l := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	idx := int(math.Floor((1 - l) * float64(len(Ramp)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(Ramp)-1 {
		idx = len(Ramp) - 1
	}
	return idx
}

// face returns the glyph face for the given pixel size: a TrueType
// face when a font is configured, the built-in bitmap face otherwise.
func (c *Converter) face(sizePx int) font.Face {
	if c.ttf == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(c.ttf, &truetype.Options{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// renderText renders the character-art surface and the matching glyph
// string. The surface has the source's pixel dimensions, is cleared to
// white, and gets one glyph per grid cell. Cell origins use rounded
// cell dimensions (round(W/cols), round(H/rows)) so the cell lattice
// reaches the right and bottom edges instead of leaving an unpainted
// strip.
func (c *Converter) renderText(opts TextOptions) (*imageutil.RGBAImage, string, error) {
	opts = opts.normalized()

	w, h := c.src.Width(), c.src.Height()
	cols := opts.Columns
	rows := DeriveRows(cols, w, h)

	grid, err := SampleGrid(c.src, cols, rows)
	if err != nil {
		return nil, "", err
	}

	charW := int(math.Round(float64(w) / float64(cols)))
	charH := int(math.Round(float64(h) / float64(rows)))
	if charW < 1 {
		charW = 1
	}
	if charH < 1 {
		charH = 1
	}

	surface := imageutil.NewRGBAImage(w, h)
	surface.Fill(color.White)

	dc := gg.NewContextForRGBA(surface.RGBA)
	dc.SetFontFace(c.face(opts.FontSize))
	dc.SetColor(color.Black)

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			glyph := Ramp[rampIndex(grid.At(col, row))]
			sb.WriteByte(glyph)
			if glyph == ' ' {
				continue
			}
			cx := float64(col*charW) + float64(charW)/2
			cy := float64(row*charH) + float64(charH)/2
			dc.DrawStringAnchored(string(rune(glyph)), cx, cy, 0.5, 0.5)
		}
		sb.WriteByte('\n')
	}

	return surface, sb.String(), nil
}
