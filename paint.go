package img2paint

import (
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/wbrown/img2paint/imageutil"
)

// paintContext carries the per-call state shared by the paint layers:
// the surface being composited, the cell samples, the normalized
// options, and the random source.
type paintContext struct {
	surface  *imageutil.RGBAImage
	grid     *Grid
	opts     PaintOptions
	cellSize int
	rng      *rand.Rand
	dc       *gg.Context
}

// cellCenter returns the pixel-space center of a cell.
func (pc *paintContext) cellCenter(col, row int) (float64, float64) {
	cs := float64(pc.cellSize)
	return float64(col)*cs + cs/2, float64(row)*cs + cs/2
}

// paintLayer is one composable paint effect. Layers run in the order
// they appear in paintLayers; adding an effect means appending an
// entry, existing layers are never touched.
type paintLayer struct {
	name    string
	enabled func(PaintOptions) bool
	render  func(*paintContext)
}

var paintLayers = []paintLayer{
	{"pixels", func(o PaintOptions) bool { return o.Pixels }, renderPixelLayer},
	{"brush", func(o PaintOptions) bool { return o.Brush }, renderBrushLayer},
	{"impressionist", func(o PaintOptions) bool { return o.Impressionist }, renderImpressionistLayer},
	{"watercolor", func(o PaintOptions) bool { return o.Watercolor }, renderWatercolorLayer},
	{"texture", func(o PaintOptions) bool { return o.Gallery || o.TextureStrength > 0 }, renderTextureLayer},
}

// renderPaint composites the enabled layers onto a fresh white surface
// sized to the source. All layers read the same grid, sampled once at
// the cell resolution implied by opts.CellSize.
func (c *Converter) renderPaint(opts PaintOptions) (*imageutil.RGBAImage, error) {
	opts = opts.normalized()

	w, h := c.src.Width(), c.src.Height()
	cellSize := opts.CellSize
	cols := w / cellSize
	if cols < 1 {
		cols = 1
	}
	rows := h / cellSize
	if rows < 1 {
		rows = 1
	}

	grid, err := SampleGrid(c.src, cols, rows)
	if err != nil {
		return nil, err
	}

	surface := imageutil.NewRGBAImage(w, h)
	surface.Fill(color.White)

	pc := &paintContext{
		surface:  surface,
		grid:     grid,
		opts:     opts,
		cellSize: cellSize,
		rng:      c.rng,
		dc:       gg.NewContextForRGBA(surface.RGBA),
	}
	for _, layer := range paintLayers {
		if layer.enabled(opts) {
			layer.render(pc)
		}
	}
	return surface, nil
}
