// Package assets provides the sprite sequences the game draws.
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Sprite is one frame of ARGB pixels, row-major
type Sprite struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewSprite creates a transparent sprite
func NewSprite(w, h int) Sprite {
	return Sprite{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// At returns the ARGB pixel at (x, y), transparent outside the sprite
func (s Sprite) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Pix[y*s.Width+x]
}

// Set writes the ARGB pixel at (x, y). Writes outside the sprite are dropped.
func (s Sprite) Set(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Pix[y*s.Width+x] = argb
}

// ARGB packs a color into the sprite pixel format
func ARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// SliceSheet cuts count frames of w x h from a sheet, left to right then top
// to bottom.
func SliceSheet(sheet image.Image, w, h, count int) ([]Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", w, h)
	}
	b := sheet.Bounds()
	cols := b.Dx() / w
	rows := b.Dy() / h
	if cols*rows < count {
		return nil, fmt.Errorf("sheet %dx%d holds %d frames of %dx%d, want %d", b.Dx(), b.Dy(), cols*rows, w, h, count)
	}

	frames := make([]Sprite, 0, count)
	for i := 0; i < count; i++ {
		x := b.Min.X + (i%cols)*w
		y := b.Min.Y + (i/cols)*h
		crop := imaging.Crop(sheet, image.Rect(x, y, x+w, y+h))
		frames = append(frames, fromNRGBA(crop))
	}
	return frames, nil
}

func fromNRGBA(img *image.NRGBA) Sprite {
	b := img.Bounds()
	s := NewSprite(b.Dx(), b.Dy())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Pix[y*s.Width+x] = ARGB(img.NRGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}
