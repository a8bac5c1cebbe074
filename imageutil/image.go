// Package imageutil provides pure Go image plumbing for img2paint:
// an RGBA surface wrapper, aspect-correct resampling, blend-mode
// compositing, and image file I/O.
package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// RGBAImage wraps image.RGBA with convenience methods for surface
// manipulation.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage. The pixel
// data is copied; the result shares no storage with the input.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// Fill overwrites every pixel with the given color.
func (img *RGBAImage) Fill(c color.Color) {
	draw.Draw(img.RGBA, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// FillRect composites a solid rectangle over the surface using
// source-over blending. The rectangle is clipped to the surface.
func (img *RGBAImage) FillRect(x, y, width, height int, c color.Color) {
	rect := image.Rect(x, y, x+width, y+height)
	draw.Draw(img.RGBA, rect, &image.Uniform{c}, image.Point{}, draw.Over)
}

// SamePixels reports whether two images have identical dimensions and
// byte-for-byte identical pixel data.
func SamePixels(a, b *RGBAImage) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	return bytes.Equal(a.Pix, b.Pix)
}
