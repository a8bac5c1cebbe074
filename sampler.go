package img2paint

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/wbrown/img2paint/imageutil"
)

var (
	// ErrInvalidImageDimensions reports a bitmap with zero width or
	// height. It fails before any sampling happens.
	ErrInvalidImageDimensions = errors.New("invalid image dimensions")

	// ErrInvalidOptions reports option values that clamping cannot
	// repair, such as a non-positive grid resolution.
	ErrInvalidOptions = errors.New("invalid options")
)

// Grid holds one box-filtered RGBA sample per cell. It is call-scoped:
// produced for a single conversion and discarded afterwards.
type Grid struct {
	Cols int
	Rows int

	cells []color.RGBA
}

// At returns the sampled color of the cell at (col, row).
func (g *Grid) At(col, row int) color.RGBA {
	return g.cells[row*g.Cols+col]
}

// SampleGrid resamples the bitmap into a cols x rows grid of RGBA
// samples using area averaging. It is a pure function of its inputs:
// identical calls return identical grids.
func SampleGrid(bitmap *imageutil.RGBAImage, cols, rows int) (*Grid, error) {
	if bitmap == nil || bitmap.Width() <= 0 || bitmap.Height() <= 0 {
		return nil, fmt.Errorf("%w: bitmap must be non-empty", ErrInvalidImageDimensions)
	}
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d",
			ErrInvalidOptions, cols, rows)
	}

	small := imageutil.Resize(bitmap, cols, rows, imageutil.InterpolationArea)
	g := &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]color.RGBA, cols*rows),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[y*cols+x] = small.RGBAAt(x, y)
		}
	}
	return g, nil
}

// DeriveRows computes the text-mode row count from the column count
// and the source dimensions. The 0.5 factor corrects for glyph aspect;
// the result never drops below MinRows.
func DeriveRows(cols, width, height int) int {
	rows := int(math.Round(float64(cols) * float64(height) / float64(width) * charAspect))
	if rows < MinRows {
		rows = MinRows
	}
	return rows
}
