package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
)

// Sheet describes one sprite sheet file and how to cut it
type Sheet struct {
	File   string
	Width  int
	Height int
	Frames int
}

// Sheet layouts of the shipped art
var (
	PlayerSheet     = Sheet{File: "player.png", Width: 23, Height: 33, Frames: 8}
	KickSheet       = Sheet{File: "kick.png", Width: 27, Height: 33, Frames: 4}
	JumpSheet       = Sheet{File: "jump.png", Width: 24, Height: 34, Frames: 6}
	ShadowSheet     = Sheet{File: "shadow.png", Width: 24, Height: 10, Frames: 3}
	BoxSheet        = Sheet{File: "box.png", Width: 16, Height: 16, Frames: 3}
	GrassSheet      = Sheet{File: "grass.png", Width: 256, Height: 17, Frames: 2}
	SkySheet        = Sheet{File: "sky.png", Width: 256, Height: 134, Frames: 4}
	GameOverSheet   = Sheet{File: "gameover.png", Width: 256, Height: 224, Frames: 4}
	BackgroundSheet = Sheet{File: "background.png", Width: 256, Height: 224, Frames: 1}
)

// Sprites holds every sprite sequence the renderer draws.
// Player holds the 8 walk frames: 0-3 facing right, 4-7 facing left.
// Kick holds 2 frames per direction, right first; Jump holds 3 per direction.
type Sprites struct {
	Player     []Sprite
	Kick       []Sprite
	Jump       []Sprite
	Shadow     []Sprite
	Box        []Sprite
	Grass      []Sprite
	Sky        []Sprite
	GameOver   []Sprite
	Background Sprite
}

// Load decodes every sheet from fsys. A missing or short sheet is an error.
func Load(fsys fs.FS) (*Sprites, error) {
	s := &Sprites{}
	targets := []struct {
		sheet Sheet
		dst   *[]Sprite
	}{
		{PlayerSheet, &s.Player},
		{KickSheet, &s.Kick},
		{JumpSheet, &s.Jump},
		{ShadowSheet, &s.Shadow},
		{BoxSheet, &s.Box},
		{GrassSheet, &s.Grass},
		{SkySheet, &s.Sky},
		{GameOverSheet, &s.GameOver},
	}
	for _, t := range targets {
		frames, err := loadSheet(fsys, t.sheet)
		if err != nil {
			return nil, err
		}
		*t.dst = frames
	}

	bg, err := loadSheet(fsys, BackgroundSheet)
	if err != nil {
		return nil, err
	}
	s.Background = bg[0]

	return s, nil
}

func loadSheet(fsys fs.FS, sheet Sheet) ([]Sprite, error) {
	f, err := fsys.Open(sheet.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", sheet.File, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", sheet.File, err)
	}

	frames, err := SliceSheet(img, sheet.Width, sheet.Height, sheet.Frames)
	if err != nil {
		return nil, fmt.Errorf("failed to slice sheet %s: %w", sheet.File, err)
	}
	return frames, nil
}
