package assets

import "image/color"

var (
	colorSkin     = color.NRGBA{240, 200, 160, 255}
	colorShirt    = color.NRGBA{60, 120, 220, 255}
	colorPants    = color.NRGBA{40, 40, 90, 255}
	colorShadow   = color.NRGBA{0, 0, 0, 90}
	colorMetal    = color.NRGBA{150, 160, 175, 255}
	colorRivet    = color.NRGBA{90, 95, 110, 255}
	colorCrack    = color.NRGBA{40, 40, 50, 255}
	colorGrass    = color.NRGBA{60, 170, 70, 255}
	colorBlade    = color.NRGBA{110, 210, 90, 255}
	colorSky      = color.NRGBA{120, 180, 240, 255}
	colorCloud    = color.NRGBA{250, 250, 255, 220}
	colorBlue     = color.NRGBA{70, 110, 200, 255}
	colorGameOver = color.NRGBA{150, 0, 0, 255}
)

// Placeholder builds a procedural sprite set with the same frame sizes as
// the shipped sheets, for runs without art.
func Placeholder() *Sprites {
	s := &Sprites{}

	for i := 0; i < PlayerSheet.Frames; i++ {
		s.Player = append(s.Player, figure(PlayerSheet.Width, PlayerSheet.Height, i >= 4, i%4, 0))
	}
	for i := 0; i < KickSheet.Frames; i++ {
		s.Kick = append(s.Kick, figure(KickSheet.Width, KickSheet.Height, i >= 2, 0, 3+4*(i%2)))
	}
	for i := 0; i < JumpSheet.Frames; i++ {
		s.Jump = append(s.Jump, figure(JumpSheet.Width, JumpSheet.Height, i >= 3, 2, 0))
	}
	// ground, air, almost ground
	for _, w := range []int{24, 12, 18} {
		s.Shadow = append(s.Shadow, ellipse(ShadowSheet.Width, ShadowSheet.Height, w))
	}
	for damage := 0; damage < BoxSheet.Frames; damage++ {
		s.Box = append(s.Box, box(damage))
	}
	for i := 0; i < GrassSheet.Frames; i++ {
		s.Grass = append(s.Grass, grass(i))
	}
	for i := 0; i < SkySheet.Frames; i++ {
		s.Sky = append(s.Sky, sky(i))
	}
	for i := 0; i < GameOverSheet.Frames; i++ {
		s.GameOver = append(s.GameOver, overlay(uint8(60*(i+1))))
	}
	s.Background = fill(BackgroundSheet.Width, BackgroundSheet.Height, colorBlue)

	return s
}

func fill(w, h int, c color.NRGBA) Sprite {
	s := NewSprite(w, h)
	argb := ARGB(c)
	for i := range s.Pix {
		s.Pix[i] = argb
	}
	return s
}

func rect(s Sprite, x0, y0, w, h int, c color.NRGBA) {
	argb := ARGB(c)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.Set(x, y, argb)
		}
	}
}

// figure draws a stick figure; stride moves the legs, kick extends the
// leading leg forward.
func figure(w, h int, left bool, stride, kick int) Sprite {
	s := NewSprite(w, h)
	cx := 11

	rect(s, cx-3, 2, 7, 7, colorSkin)
	rect(s, cx-4, 9, 9, 11, colorShirt)

	legY := 20
	legH := h - legY - 3
	swing := []int{0, 2, 0, -2}[stride%4]
	rect(s, cx-3+swing, legY, 3, legH, colorPants)
	rect(s, cx+1-swing, legY, 3, legH, colorPants)
	if kick > 0 {
		rect(s, cx+2, legY+4, kick+4, 3, colorPants)
	}

	if left {
		mirror(s)
	}
	return s
}

func mirror(s Sprite) {
	for y := 0; y < s.Height; y++ {
		row := s.Pix[y*s.Width : (y+1)*s.Width]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

func ellipse(w, h, rx int) Sprite {
	s := NewSprite(w, h)
	cx, cy := w/2, h/2
	ry := h / 3
	argb := ARGB(colorShadow)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x-cx) / float64(rx/2+1)
			dy := float64(y-cy) / float64(ry+1)
			if dx*dx+dy*dy <= 1 {
				s.Set(x, y, argb)
			}
		}
	}
	return s
}

func box(damage int) Sprite {
	s := fill(BoxSheet.Width, BoxSheet.Height, colorMetal)
	rect(s, 0, 0, 16, 1, colorRivet)
	rect(s, 0, 15, 16, 1, colorRivet)
	rect(s, 0, 0, 1, 16, colorRivet)
	rect(s, 15, 0, 1, 16, colorRivet)
	for _, p := range [][2]int{{2, 2}, {13, 2}, {2, 13}, {13, 13}} {
		s.Set(p[0], p[1], ARGB(colorRivet))
	}
	for i := 0; i < damage*5; i++ {
		s.Set(4+i, 3+i%7+i/3, ARGB(colorCrack))
	}
	return s
}

func grass(frame int) Sprite {
	s := fill(GrassSheet.Width, GrassSheet.Height, colorGrass)
	for x := frame; x < s.Width; x += 4 {
		rect(s, x, 0, 1, 3, colorBlade)
	}
	return s
}

func sky(frame int) Sprite {
	s := fill(SkySheet.Width, SkySheet.Height, colorSky)
	for i, base := range []int{20, 110, 190} {
		x := (base + frame*8) % s.Width
		rect(s, x, 18+i*22, 30, 8, colorCloud)
		rect(s, x+6, 14+i*22, 16, 4, colorCloud)
	}
	return s
}

func overlay(alpha uint8) Sprite {
	c := colorGameOver
	c.A = alpha
	return fill(GameOverSheet.Width, GameOverSheet.Height, c)
}
