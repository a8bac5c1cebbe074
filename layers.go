package img2paint

import (
	"image"
	"image/color"
	"math"

	"github.com/wbrown/img2paint/imageutil"
)

// daubJitter is the maximum daub center offset as a fraction of the
// cell size, applied independently per axis.
const daubJitter = 0.3

// withAlpha returns the cell color with its alpha replaced by the
// given fraction of full opacity.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clampChannel(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// renderPixelLayer fills one flat rectangle per cell. The last column
// and row stretch to the true surface edge, so a source whose
// dimensions are not a multiple of the cell size has no unpainted
// border strip.
func renderPixelLayer(pc *paintContext) {
	w, h := pc.surface.Width(), pc.surface.Height()
	for row := 0; row < pc.grid.Rows; row++ {
		for col := 0; col < pc.grid.Cols; col++ {
			x := col * pc.cellSize
			y := row * pc.cellSize
			cw, ch := pc.cellSize, pc.cellSize
			if col == pc.grid.Cols-1 {
				cw = w - x
			}
			if row == pc.grid.Rows-1 {
				ch = h - y
			}
			c := pc.grid.At(col, row)
			pc.surface.FillRect(x, y, cw, ch, withAlpha(c, float64(c.A)/255))
		}
	}
}

// renderBrushLayer draws overlapping jittered daubs per cell with
// source-over blending. Daub count scales with cell size, positions
// are offset up to ±30% of the cell size per axis, and radii are
// drawn from [0.45, 0.85] x cellSize.
func renderBrushLayer(pc *paintContext) {
	cs := float64(pc.cellSize)
	daubs := int(math.Round(cs / 2))
	if daubs < 1 {
		daubs = 1
	}
	for row := 0; row < pc.grid.Rows; row++ {
		for col := 0; col < pc.grid.Cols; col++ {
			c := pc.grid.At(col, row)
			cx, cy := pc.cellCenter(col, row)
			pc.dc.SetColor(withAlpha(c, float64(c.A)/255*pc.opts.BrushStrength))
			for i := 0; i < daubs; i++ {
				dx := (pc.rng.Float64()*2 - 1) * daubJitter * cs
				dy := (pc.rng.Float64()*2 - 1) * daubJitter * cs
				r := (0.45 + pc.rng.Float64()*0.4) * cs
				pc.dc.DrawCircle(cx+dx, cy+dy, r)
				pc.dc.Fill()
			}
		}
	}
}

// renderImpressionistLayer sparsely scatters larger dabs: each cell
// independently draws one with probability 0.25, color nudged brighter
// on the red and green channels.
func renderImpressionistLayer(pc *paintContext) {
	cs := float64(pc.cellSize)
	for row := 0; row < pc.grid.Rows; row++ {
		for col := 0; col < pc.grid.Cols; col++ {
			if pc.rng.Float64() >= 0.25 {
				continue
			}
			c := pc.grid.At(col, row)
			dab := color.NRGBA{
				R: clampChannel(int(c.R) + 20),
				G: clampChannel(int(c.G) + 10),
				B: c.B,
				A: uint8(clamp01(float64(c.A)/255*0.9)*255 + 0.5),
			}
			cx, cy := pc.cellCenter(col, row)
			dx := (pc.rng.Float64()*2 - 1) * daubJitter * cs
			dy := (pc.rng.Float64()*2 - 1) * daubJitter * cs
			pc.dc.SetColor(dab)
			pc.dc.DrawCircle(cx+dx, cy+dy, 0.8*cs)
			pc.dc.Fill()
		}
	}
}

// renderWatercolorLayer pools one large, highly translucent circle per
// cell with additive blending, simulating pigment accumulating where
// washes overlap.
func renderWatercolorLayer(pc *paintContext) {
	cs := float64(pc.cellSize)
	for row := 0; row < pc.grid.Rows; row++ {
		for col := 0; col < pc.grid.Cols; col++ {
			c := pc.grid.At(col, row)
			alpha := 0.12 * (float64(c.A)/255 + 0.2)
			cx, cy := pc.cellCenter(col, row)
			imageutil.AddCircle(pc.surface, cx, cy, cs, withAlpha(c, alpha))
		}
	}
}

// renderTextureLayer generates full-surface near-white noise and
// composites it with the overlay blend mode, giving the output a
// canvas grain whose weight follows TextureStrength.
func renderTextureLayer(pc *paintContext) {
	w, h := pc.surface.Width(), pc.surface.Height()
	noise := image.NewNRGBA(image.Rect(0, 0, w, h))
	grainAlpha := uint8(10 + pc.opts.TextureStrength*40)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(230 + pc.rng.Intn(26))
			noise.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: grainAlpha})
		}
	}
	opacity := math.Min(0.95, 0.3+pc.opts.TextureStrength*0.7)
	imageutil.CompositeOverlay(pc.surface, noise, opacity)
}
