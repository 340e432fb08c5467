// Package render draws sprites into a low-resolution framebuffer and scales
// it up for the window.
package render

import (
	"image"

	"github.com/younwookim/boxkick/internal/infrastructure/assets"
)

// Framebuffer is a fixed-size ARGB pixel buffer, row-major
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, Pix: make([]uint32, w*h)}
}

// Clear fills the whole buffer with argb
func (f *Framebuffer) Clear(argb uint32) {
	for i := range f.Pix {
		f.Pix[i] = argb
	}
}

// At returns the pixel at (x, y), 0 outside the buffer
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// SetPixel writes argb at (x, y) as is. Writes outside the buffer are dropped.
func (f *Framebuffer) SetPixel(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = argb
}

// Blend composites argb over the pixel at (x, y) using its alpha
func (f *Framebuffer) Blend(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := y*f.Width + x
	f.Pix[i] = blend(f.Pix[i], argb)
}

// Blit draws a sprite with its top-left corner at (x, y), clipped to the buffer
func (f *Framebuffer) Blit(x, y int, s assets.Sprite) {
	for sy := 0; sy < s.Height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= f.Height {
			continue
		}
		row := s.Pix[sy*s.Width : (sy+1)*s.Width]
		for sx, argb := range row {
			dx := x + sx
			if dx < 0 || dx >= f.Width {
				continue
			}
			i := dy*f.Width + dx
			f.Pix[i] = blend(f.Pix[i], argb)
		}
	}
}

// Fill blends a solid rectangle of argb, clipped to the buffer
func (f *Framebuffer) Fill(r image.Rectangle, argb uint32) {
	r = r.Intersect(image.Rect(0, 0, f.Width, f.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*f.Width + x
			f.Pix[i] = blend(f.Pix[i], argb)
		}
	}
}

// blend composites src over dst. The result is always opaque when dst is.
func blend(dst, src uint32) uint32 {
	a := src >> 24
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}

	inv := 255 - a
	r := ((src>>16&0xff)*a + (dst>>16&0xff)*inv) / 255
	g := ((src>>8&0xff)*a + (dst>>8&0xff)*inv) / 255
	b := ((src&0xff)*a + (dst&0xff)*inv) / 255
	da := dst >> 24
	outA := a + da*inv/255
	return outA<<24 | r<<16 | g<<8 | b
}
