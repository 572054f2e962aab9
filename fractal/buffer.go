package fractal

import (
	"fmt"
	"image"
	"image/color"
)

// ColorBuffer is a flat RGBA pixel buffer, 4 bytes per pixel, row-major
// with the top row first.
type ColorBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewColorBuffer allocates a zeroed buffer. Non-positive dimensions are
// rejected with ErrInvalidCanvasDimensions.
func NewColorBuffer(width, height int) (*ColorBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("color buffer %dx%d: %w", width, height, ErrInvalidCanvasDimensions)
	}
	return &ColorBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width in pixels.
func (b *ColorBuffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *ColorBuffer) Height() int { return b.height }

// Pix returns the raw RGBA bytes. The slice aliases the buffer.
func (b *ColorBuffer) Pix() []uint8 { return b.data }

// Rows returns the bytes of rows [start, end). The capacity is clipped so
// slices for disjoint row ranges never overlap.
func (b *ColorBuffer) Rows(start, end int) []uint8 {
	stride := b.width * 4
	return b.data[start*stride : end*stride : end*stride]
}

// RGBAAt returns the pixel at (x, y), or transparent black outside.
func (b *ColorBuffer) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Image returns an image.RGBA that shares memory with the buffer. It is
// only valid until the next render into the buffer.
func (b *ColorBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// ToImage copies the buffer into a new image.RGBA.
func (b *ColorBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// At implements the image.Image interface.
func (b *ColorBuffer) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *ColorBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *ColorBuffer) ColorModel() color.Model {
	return color.RGBAModel
}
