package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/boxkick/internal/infrastructure/assets"
)

const (
	black = uint32(0xff000000)
	white = uint32(0xffffffff)
	red   = uint32(0xffff0000)
)

func createTestSprite(w, h int, argb uint32) assets.Sprite {
	s := assets.NewSprite(w, h)
	for i := range s.Pix {
		s.Pix[i] = argb
	}
	return s
}

func TestFramebuffer_ClearAndSetPixel(t *testing.T) {
	f := NewFramebuffer(4, 3)
	f.Clear(black)
	f.SetPixel(1, 2, red)
	f.SetPixel(-1, 0, white)
	f.SetPixel(4, 0, white)

	assert.Equal(t, red, f.At(1, 2))
	assert.Equal(t, black, f.At(0, 0))
	assert.Equal(t, uint32(0), f.At(4, 0))
	for _, px := range f.Pix {
		assert.NotEqual(t, white, px)
	}
}

func TestFramebuffer_BlitClips(t *testing.T) {
	f := NewFramebuffer(4, 4)
	f.Clear(black)

	f.Blit(2, -1, createTestSprite(3, 3, red))

	// rows 0-1, columns 2-3 are covered
	assert.Equal(t, red, f.At(2, 0))
	assert.Equal(t, red, f.At(3, 1))
	assert.Equal(t, black, f.At(1, 0))
	assert.Equal(t, black, f.At(2, 2))
}

func TestFramebuffer_BlitTransparent(t *testing.T) {
	f := NewFramebuffer(2, 2)
	f.Clear(black)

	s := createTestSprite(2, 2, 0)
	s.Set(0, 0, red)
	f.Blit(0, 0, s)

	assert.Equal(t, red, f.At(0, 0))
	assert.Equal(t, black, f.At(1, 1))
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name string
		dst  uint32
		src  uint32
		want uint32
	}{
		{"transparent keeps dst", black, 0x00ffffff, black},
		{"opaque replaces dst", black, red, red},
		{"half white over black", black, 0x80ffffff, 0xff808080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blend(tt.dst, tt.src))
		})
	}
}

func TestFramebuffer_Fill(t *testing.T) {
	f := NewFramebuffer(4, 4)
	f.Clear(black)

	f.Fill(image.Rect(-2, 2, 2, 10), white)

	assert.Equal(t, white, f.At(0, 3))
	assert.Equal(t, white, f.At(1, 2))
	assert.Equal(t, black, f.At(2, 2))
	assert.Equal(t, black, f.At(0, 1))
}

func TestPresenter_Upscale(t *testing.T) {
	f := NewFramebuffer(2, 2)
	f.Clear(black)
	f.SetPixel(1, 0, red)

	p := NewPresenter(2, 2, 8, 8)
	w, h := p.Size()
	require.Equal(t, 8, w)
	require.Equal(t, 8, h)

	img := p.Upscale(f)

	// pixel (1, 0) covers x 4-7, y 0-3
	for _, pt := range []image.Point{{4, 0}, {7, 3}, {5, 2}} {
		r, g, b, a := img.At(pt.X, pt.Y).RGBA()
		assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a}, "at %v", pt)
	}
	r, _, _, a := img.At(3, 3).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), a)
}
