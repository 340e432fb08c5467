package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningFile is the tuning file name inside a config directory
const TuningFile = "tuning.yaml"

// MapsDir is the directory holding map files inside a config directory
const MapsDir = "maps"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Maps   []*MapConfig
}

// Loader loads game configuration from YAML and map files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.yaml on top of the built-in defaults
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, TuningFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TuningFile, err)
	}

	cfg, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TuningFile, err)
	}

	return cfg, nil
}

// ParseTuning decodes YAML tuning data. Keys missing from data keep their
// defaults. A tiles table replaces the default symbols as a whole.
func ParseTuning(data []byte) (*Tuning, error) {
	var top map[string]yaml.Node
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	cfg := Default()
	if _, ok := top["tiles"]; ok {
		cfg.Tiles = nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tuning values the simulation cannot run with
func (t *Tuning) Validate() error {
	if t.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", t.TileSize)
	}
	if t.Display.ScreenWidth <= 0 || t.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", t.Display.ScreenWidth, t.Display.ScreenHeight)
	}
	if t.Physics.MaxVelocity <= 0 {
		return fmt.Errorf("max_velocity must be positive, got %v", t.Physics.MaxVelocity)
	}
	if t.Physics.UpperBound <= t.Physics.LowerBound {
		return fmt.Errorf("upper_bound %v must exceed lower_bound %v", t.Physics.UpperBound, t.Physics.LowerBound)
	}
	if t.Collision.LeftDivisor == 0 || t.Collision.RightDivisor == 0 {
		return fmt.Errorf("collision divisors must be non-zero")
	}
	if t.Animation.WalkFrameTicks <= 0 || t.Animation.KickFrameTicks <= 0 {
		return fmt.Errorf("animation tick counts must be positive")
	}
	if t.Obstacles.DefaultDurability < 0 {
		return fmt.Errorf("default_durability must not be negative, got %d", t.Obstacles.DefaultDurability)
	}
	for symbol, m := range t.Tiles {
		if m.Durability != nil && *m.Durability < 0 {
			return fmt.Errorf("tile %q: durability must not be negative, got %d", symbol, *m.Durability)
		}
	}
	if len(t.Maps) == 0 {
		return fmt.Errorf("at least one map is required")
	}
	return nil
}

// LoadMap loads one map file from the maps directory.
// Files ending in .tmx are read as Tiled maps, everything else as a text grid.
func (l *Loader) LoadMap(name string) (*MapConfig, error) {
	p := path.Join(MapsDir, name)
	if strings.EqualFold(path.Ext(name), ".tmx") {
		cfg, err := loadTiledMap(l.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to load map %s: %w", name, err)
		}
		return cfg, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	cfg, err := ParseTextMap(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	return cfg, nil
}

// LoadMaps loads every map named by the tuning, in order
func (l *Loader) LoadMaps(t *Tuning) ([]*MapConfig, error) {
	maps := make([]*MapConfig, 0, len(t.Maps))
	for _, name := range t.Maps {
		m, err := l.LoadMap(name)
		if err != nil {
			return nil, err
		}
		if m.TileSize == 0 {
			m.TileSize = t.TileSize
		}
		maps = append(maps, m)
	}
	return maps, nil
}

// LoadAll loads the tuning and all of its maps
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	maps, err := l.LoadMaps(tuning)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Maps:   maps,
	}, nil
}
