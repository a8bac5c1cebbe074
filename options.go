package img2paint

// Mode selects which stylizer a conversion runs.
type Mode string

const (
	// ModeASCII renders the source as monospace character art.
	ModeASCII Mode = "ascii"
	// ModePaint renders the source through the painterly layer stack.
	ModePaint Mode = "paint"
)

// Ramp is the fixed character ramp, ordered darkest to lightest.
const Ramp = "@%#*+=-:. "

const (
	// MinColumns is the smallest text-mode column count.
	MinColumns = 20
	// MinRows is the floor for the derived text-mode row count.
	MinRows = 4
	// MinCellSize is the smallest paint-mode cell size in pixels.
	MinCellSize = 2

	// charAspect corrects for monospace glyphs being roughly twice as
	// tall as they are wide.
	charAspect = 0.5
)

// TextOptions configures an ASCII-mode conversion. Zero or
// out-of-range values are clamped to tolerant defaults rather than
// rejected.
type TextOptions struct {
	// FontSize is the glyph size in pixels. Only honored when a
	// TrueType font is configured on the Converter; the built-in
	// bitmap face has a fixed size.
	FontSize int

	// Columns is the target grid width in characters. Rows are always
	// derived from the source aspect ratio and are not settable.
	Columns int
}

// DefaultTextOptions returns the text-mode defaults.
func DefaultTextOptions() TextOptions {
	return TextOptions{FontSize: 12, Columns: 100}
}

func (o TextOptions) normalized() TextOptions {
	if o.FontSize < 1 {
		o.FontSize = 12
	}
	if o.Columns < MinColumns {
		o.Columns = MinColumns
	}
	return o
}

// PaintOptions configures a paint-mode conversion: which layers are
// composited and the three continuous parameters they read. A fresh
// value is consumed per conversion call and is not retained.
type PaintOptions struct {
	Pixels        bool
	Brush         bool
	Impressionist bool
	Watercolor    bool
	Gallery       bool

	// CellSize is the sampling cell edge in pixels, floored at 2.
	CellSize int
	// BrushStrength scales daub opacity, clamped to [0, 1].
	BrushStrength float64
	// TextureStrength drives the canvas overlay, clamped to [0, 1].
	// A non-zero value enables the overlay even without Gallery.
	TextureStrength float64
}

// DefaultPaintOptions returns the paint-mode defaults.
func DefaultPaintOptions() PaintOptions {
	return PaintOptions{
		Pixels:          true,
		Brush:           true,
		CellSize:        8,
		BrushStrength:   0.6,
		TextureStrength: 0.3,
	}
}

func (o PaintOptions) normalized() PaintOptions {
	if o.CellSize < MinCellSize {
		o.CellSize = MinCellSize
	}
	o.BrushStrength = clamp01(o.BrushStrength)
	o.TextureStrength = clamp01(o.TextureStrength)
	return o
}

// Request bundles a conversion mode with the options for that mode.
// Only the options matching Mode are read.
type Request struct {
	Mode  Mode
	Text  TextOptions
	Paint PaintOptions
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
