package img2paint

import (
	"image/color"
	"testing"

	"github.com/wbrown/img2paint/imageutil"
)

func TestPixelLayerSolidRed(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := imageutil.CreateSolidImage(10, 10, red)
	conv, err := NewConverter(img.RGBA, WithSeed(1))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	err = conv.ConvertPaint(PaintOptions{Pixels: true, CellSize: 5})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	out := conv.Output()
	if out.Width() != 10 || out.Height() != 10 {
		t.Fatalf("Expected 10x10 output, got %dx%d", out.Width(), out.Height())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := out.RGBAAt(x, y); got != red {
				t.Fatalf("Pixel (%d,%d): expected solid red, got %v", x, y, got)
			}
		}
	}
}

func TestPixelLayerEdgeCoverage(t *testing.T) {
	// Dimensions that do not divide evenly by the cell size: the last
	// column and row must stretch so no white background survives.
	blue := color.RGBA{B: 200, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cases := []struct {
		w, h, cell int
	}{
		{13, 11, 5},
		{17, 9, 4},
		{10, 10, 3},
		{7, 23, 2},
	}
	for _, tc := range cases {
		img := imageutil.CreateSolidImage(tc.w, tc.h, blue)
		conv, err := NewConverter(img.RGBA, WithSeed(1))
		if err != nil {
			t.Fatalf("NewConverter failed: %v", err)
		}
		if err := conv.ConvertPaint(PaintOptions{Pixels: true, CellSize: tc.cell}); err != nil {
			t.Fatalf("ConvertPaint failed: %v", err)
		}

		out := conv.Output()
		for y := 0; y < tc.h; y++ {
			for x := 0; x < tc.w; x++ {
				if out.RGBAAt(x, y) == white {
					t.Fatalf("%dx%d cell %d: unpainted background at (%d,%d)",
						tc.w, tc.h, tc.cell, x, y)
				}
			}
		}
	}
}

func TestPaintSeededDeterminism(t *testing.T) {
	img := imageutil.CreateColorBarsImage(64, 48)
	opts := PaintOptions{
		Pixels:          true,
		Brush:           true,
		Impressionist:   true,
		Watercolor:      true,
		Gallery:         true,
		CellSize:        6,
		BrushStrength:   0.7,
		TextureStrength: 0.5,
	}

	render := func() *imageutil.RGBAImage {
		conv, err := NewConverter(img.RGBA, WithSeed(42))
		if err != nil {
			t.Fatalf("NewConverter failed: %v", err)
		}
		if err := conv.ConvertPaint(opts); err != nil {
			t.Fatalf("ConvertPaint failed: %v", err)
		}
		return conv.Output()
	}

	if !imageutil.SamePixels(render(), render()) {
		t.Error("Same seed and options should produce identical pixels")
	}
}

func TestBrushStrengthZeroLeavesBackground(t *testing.T) {
	img := imageutil.CreateSolidImage(32, 32, color.RGBA{R: 10, G: 120, B: 30, A: 255})
	conv, err := NewConverter(img.RGBA, WithSeed(7))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	// Brush-only with zero strength: fully transparent daubs, the
	// white background must survive untouched.
	err = conv.ConvertPaint(PaintOptions{Brush: true, CellSize: 8, BrushStrength: 0})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	out := conv.Output()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if out.RGBAAt(x, y) != white {
				t.Fatalf("Expected untouched white at (%d,%d), got %v",
					x, y, out.RGBAAt(x, y))
			}
		}
	}
}

func TestBrushLayerPaintsCellColor(t *testing.T) {
	img := imageutil.CreateSolidImage(40, 40, color.RGBA{G: 180, A: 255})
	conv, err := NewConverter(img.RGBA, WithSeed(3))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	err = conv.ConvertPaint(PaintOptions{Brush: true, CellSize: 8, BrushStrength: 1})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	// Full-strength daubs of a pure green source must leave green ink
	// somewhere, and never anything redder than the white background.
	out := conv.Output()
	painted := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := out.RGBAAt(x, y)
			if c.G > c.R && c.G > c.B {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("Brush layer left no daub ink on the surface")
	}
}

func TestWatercolorBrightensDarkBackdrop(t *testing.T) {
	gray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	img := imageutil.CreateSolidImage(30, 30, gray)
	conv, err := NewConverter(img.RGBA, WithSeed(5))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	err = conv.ConvertPaint(PaintOptions{Pixels: true, Watercolor: true, CellSize: 5})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	// Additive washes over the flat gray backdrop only accumulate:
	// every pixel inside a wash gets strictly brighter, none darker.
	out := conv.Output()
	brightened := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			c := out.RGBAAt(x, y)
			if c.R < gray.R {
				t.Fatalf("Additive layer darkened pixel (%d,%d): %v", x, y, c)
			}
			if c.R > gray.R {
				brightened++
			}
		}
	}
	if brightened == 0 {
		t.Error("Watercolor layer left the backdrop unchanged")
	}
}

func TestTextureOverlayArithmetic(t *testing.T) {
	// Flat dark backdrop under the texture overlay: every output pixel
	// must sit inside the bounds the overlay multiply branch allows
	// for the noise range [230, 255].
	const backdrop = 60
	img := imageutil.CreateSolidImage(24, 24, color.RGBA{R: backdrop, G: backdrop, B: backdrop, A: 255})
	conv, err := NewConverter(img.RGBA, WithSeed(11))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	const strength = 0.5
	err = conv.ConvertPaint(PaintOptions{
		Pixels:          true,
		CellSize:        4,
		TextureStrength: strength,
	})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	// overlay(b, s) = 2*b*s/255 for b < 128, blended at
	// w = grainAlpha/255 * min(0.95, 0.3 + strength*0.7).
	opacity := 0.3 + strength*0.7
	grainAlpha := (10 + strength*40) / 255
	w := grainAlpha * opacity
	lo := float64(backdrop) + (2*backdrop*230.0/255-backdrop)*w
	hi := float64(backdrop) + (2*backdrop*255.0/255-backdrop)*w + 1

	out := conv.Output()
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			c := out.RGBAAt(x, y)
			if float64(c.R) < lo || float64(c.R) > hi {
				t.Fatalf("Pixel (%d,%d) = %d outside overlay bounds [%f, %f]",
					x, y, c.R, lo, hi)
			}
			if c.R != c.G || c.G != c.B {
				t.Fatalf("Gray noise over gray backdrop must stay gray, got %v", c)
			}
			if c.A != 255 {
				t.Fatalf("Overlay must not change alpha, got %d", c.A)
			}
		}
	}
}

func TestGalleryFlagEnablesOverlay(t *testing.T) {
	gray := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	img := imageutil.CreateSolidImage(16, 16, gray)
	conv, err := NewConverter(img.RGBA, WithSeed(2))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	// Gallery on with zero TextureStrength still applies the grain.
	err = conv.ConvertPaint(PaintOptions{Pixels: true, Gallery: true, CellSize: 4})
	if err != nil {
		t.Fatalf("ConvertPaint failed: %v", err)
	}

	changed := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if conv.Output().RGBAAt(x, y) != gray {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("Gallery flag should apply the texture overlay")
	}
}

func TestPaintClampsCellSize(t *testing.T) {
	img := imageutil.CreateSolidImage(12, 12, color.RGBA{R: 40, G: 40, B: 40, A: 255})
	conv, err := NewConverter(img.RGBA, WithSeed(9))
	if err != nil {
		t.Fatalf("NewConverter failed: %v", err)
	}

	// Cell size below the floor is clamped to 2, not rejected.
	if err := conv.ConvertPaint(PaintOptions{Pixels: true, CellSize: -10}); err != nil {
		t.Fatalf("Expected clamped conversion, got error: %v", err)
	}
}
