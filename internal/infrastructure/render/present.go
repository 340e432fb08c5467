package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ToRGBA copies the framebuffer into an RGBA image of the same size
func (f *Framebuffer) ToRGBA(dst *image.RGBA) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			argb := f.Pix[y*f.Width+x]
			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = uint8(argb >> 16)
			dst.Pix[o+1] = uint8(argb >> 8)
			dst.Pix[o+2] = uint8(argb)
			dst.Pix[o+3] = 0xff
		}
	}
}

// Presenter scales a framebuffer up to the window size and hands it to ebiten
type Presenter struct {
	src    *image.RGBA
	scaled *image.RGBA
}

// NewPresenter creates a presenter for a w x h framebuffer shown at outW x outH
func NewPresenter(w, h, outW, outH int) *Presenter {
	return &Presenter{
		src:    image.NewRGBA(image.Rect(0, 0, w, h)),
		scaled: image.NewRGBA(image.Rect(0, 0, outW, outH)),
	}
}

// Size returns the output size
func (p *Presenter) Size() (int, int) {
	b := p.scaled.Bounds()
	return b.Dx(), b.Dy()
}

// Upscale scales the framebuffer into the presenter's output image using
// nearest neighbour sampling and returns it
func (p *Presenter) Upscale(f *Framebuffer) *image.RGBA {
	f.ToRGBA(p.src)
	draw.NearestNeighbor.Scale(p.scaled, p.scaled.Bounds(), p.src, p.src.Bounds(), draw.Src, nil)
	return p.scaled
}

// Present upscales the framebuffer and writes it to screen, which must be
// the output size.
func (p *Presenter) Present(f *Framebuffer, screen *ebiten.Image) {
	screen.WritePixels(p.Upscale(f).Pix)
}
