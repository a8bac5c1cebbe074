package imageutil

import (
	"image"
	"image/color"
	"math"
)

// AddCircle composites a filled circle onto dst using additive
// ("lighter") blending: source channel values are added to the
// backdrop and clamped at 255, alpha included. The circle rim gets a
// one-pixel coverage feather so repeated washes pool smoothly instead
// of aliasing. The circle is clipped to the surface.
func AddCircle(dst *RGBAImage, cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	b := dst.Bounds()
	x0 := maxInt(b.Min.X, int(math.Floor(cx-r-1)))
	x1 := minInt(b.Max.X, int(math.Ceil(cx+r+1)))
	y0 := maxInt(b.Min.Y, int(math.Floor(cy-r-1)))
	y1 := minInt(b.Max.Y, int(math.Ceil(cy+r+1)))

	alpha := float64(c.A) / 255
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			cov := r + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			w := alpha * cov
			p := dst.RGBAAt(x, y)
			p.R = addClamp(p.R, float64(c.R)*w)
			p.G = addClamp(p.G, float64(c.G)*w)
			p.B = addClamp(p.B, float64(c.B)*w)
			p.A = addClamp(p.A, float64(c.A)*cov)
			dst.SetRGBA(x, y, p)
		}
	}
}

// CompositeOverlay blends src onto dst with the overlay blend mode at
// the given global opacity. Each source pixel's contribution is
// weighted by its own alpha times opacity; the backdrop alpha is left
// unchanged. Only the intersection of the two bounds is touched.
func CompositeOverlay(dst *RGBAImage, src *image.NRGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	r := dst.Bounds().Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := src.NRGBAAt(x, y)
			if s.A == 0 {
				continue
			}
			w := float64(s.A) / 255 * opacity
			d := dst.RGBAAt(x, y)
			d.R = lerpChannel(d.R, overlayChannel(d.R, s.R), w)
			d.G = lerpChannel(d.G, overlayChannel(d.G, s.G), w)
			d.B = lerpChannel(d.B, overlayChannel(d.B, s.B), w)
			dst.SetRGBA(x, y, d)
		}
	}
}

// overlayChannel applies the overlay blend formula to one channel:
// multiply below the midpoint, screen above it.
func overlayChannel(b, s uint8) float64 {
	bf, sf := float64(b), float64(s)
	if bf < 128 {
		return 2 * bf * sf / 255
	}
	return 255 - 2*(255-bf)*(255-sf)/255
}

func lerpChannel(from uint8, to, w float64) uint8 {
	v := float64(from) + (to-float64(from))*w
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func addClamp(u uint8, v float64) uint8 {
	sum := float64(u) + v
	if sum > 255 {
		return 255
	}
	return uint8(sum + 0.5)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
