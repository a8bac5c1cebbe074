// Package img2paint converts raster images into stylized artwork.
// It supports two output families: monospace ASCII renderings built
// from a fixed luminance ramp, and painterly compositions built from
// up to five independently toggled layers (pixel blocks, brush daubs,
// impressionist dabs, watercolor washes, and a canvas texture
// overlay).
//
// A Converter owns two distinct buffers: the pristine source bitmap,
// which is never written after construction, and the mutable output
// surface, which every successful conversion replaces wholesale.
// Conversions always read from the source, so repeated re-conversions
// with different parameters never accumulate loss.
//
// The stochastic paint layers draw from the Converter's random source.
// By default it is time-seeded, so repeated conversions with identical
// options produce visually different output; use WithSeed or
// WithRandSource when reproducible output is needed.
package img2paint

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/wbrown/img2paint/imageutil"
)

// Converter holds one loaded image and produces stylized conversions
// of it. It is not safe for concurrent use; a conversion runs to
// completion on the calling goroutine.
type Converter struct {
	// src is the single source of truth for every conversion.
	// It is never mutated; loading a new image means constructing a
	// new Converter.
	src *imageutil.RGBAImage

	// out is the current conversion result, always the same
	// dimensions as src. It starts as a copy of the source and is
	// swapped wholesale by each successful conversion.
	out *imageutil.RGBAImage

	// text is the glyph string from the most recent ASCII conversion,
	// empty after a paint conversion.
	text string

	ttf *truetype.Font
	rng *rand.Rand
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithSeed makes the stochastic paint layers reproducible by seeding
// the Converter's random source.
func WithSeed(seed int64) ConverterOption {
	return func(c *Converter) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandSource supplies the random source used by the stochastic
// paint layers.
func WithRandSource(rng *rand.Rand) ConverterOption {
	return func(c *Converter) {
		c.rng = rng
	}
}

// WithFont sets the TrueType font used to stamp ASCII-mode glyphs.
// Without it the built-in fixed-size bitmap face is used and
// TextOptions.FontSize has no effect.
func WithFont(f *truetype.Font) ConverterOption {
	return func(c *Converter) {
		c.ttf = f
	}
}

// NewConverter creates a Converter for the given decoded image. The
// pixel data is copied, so the caller's image can be discarded. Fails
// with ErrInvalidImageDimensions for a nil or empty image.
func NewConverter(src image.Image, opts ...ConverterOption) (*Converter, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrInvalidImageDimensions)
	}
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImageDimensions,
			bounds.Dx(), bounds.Dy())
	}

	c := &Converter{
		src: imageutil.RGBAImageFromImage(src),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.out = c.src.Clone()
	return c, nil
}

// LoadFont parses a TrueType font file for use with WithFont.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// Source returns the pristine source bitmap. Callers must treat it as
// read-only.
func (c *Converter) Source() *imageutil.RGBAImage {
	return c.src
}

// Output returns the current output surface: the result of the most
// recent conversion, or a copy of the source if none has run yet.
func (c *Converter) Output() *imageutil.RGBAImage {
	return c.out
}

// Text returns the glyph string produced by the most recent ASCII
// conversion, newline-separated per row. Empty after a paint
// conversion.
func (c *Converter) Text() string {
	return c.text
}

// Convert dispatches to the stylizer selected by req.Mode. For ASCII
// mode it returns the glyph string; for paint mode the string is
// empty. On failure the previous output surface is left untouched.
func (c *Converter) Convert(req Request) (string, error) {
	switch req.Mode {
	case ModeASCII:
		return c.ConvertText(req.Text)
	case ModePaint:
		return "", c.ConvertPaint(req.Paint)
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, req.Mode)
	}
}

// ConvertText renders the source as character art and replaces the
// output surface. It returns the glyph string, which stays in exact
// sync with the drawn surface. Text mode is fully deterministic.
func (c *Converter) ConvertText(opts TextOptions) (string, error) {
	surface, text, err := c.renderText(opts)
	if err != nil {
		return "", err
	}
	c.out = surface
	c.text = text
	return text, nil
}

// ConvertPaint renders the source through the paint layer stack and
// replaces the output surface.
func (c *Converter) ConvertPaint(opts PaintOptions) error {
	surface, err := c.renderPaint(opts)
	if err != nil {
		return err
	}
	c.out = surface
	c.text = ""
	return nil
}
