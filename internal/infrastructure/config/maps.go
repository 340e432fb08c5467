package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/lafriks/go-tiled"
)

// GridLayer is the Tiled tile layer read as the map grid
const GridLayer = "grid"

// tiledSymbols maps Tiled local tile ids to grid symbols
var tiledSymbols = []string{".", "G", "B", "^", "b"}

// MapConfig is a parsed map file: rows of single-character symbols
type MapConfig struct {
	Name     string
	TileSize int // 0 means the tuning default
	Rows     [][]string
}

// Cols returns the width of the widest row
func (m *MapConfig) Cols() int {
	cols := 0
	for _, row := range m.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// ParseTextMap parses a text grid. Rows hold whitespace-separated single-character
// tokens; blank lines and lines starting with "//" are skipped.
func ParseTextMap(name string, data []byte) (*MapConfig, error) {
	cfg := &MapConfig{Name: name}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}

		tokens := strings.Fields(text)
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) != 1 {
				return nil, fmt.Errorf("line %d: token %q is not a single character", line, tok)
			}
		}
		cfg.Rows = append(cfg.Rows, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("map %s has no rows", name)
	}

	return cfg, nil
}

// loadTiledMap reads the grid layer of a .tmx file into symbol rows
func loadTiledMap(fsys fs.FS, tmxPath string) (*MapConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var grid *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == GridLayer {
			grid = layer
			break
		}
	}
	if grid == nil {
		return nil, fmt.Errorf("TMX %s has no %q layer", tmxPath, GridLayer)
	}

	cfg := &MapConfig{
		Name:     path.Base(tmxPath),
		TileSize: levelMap.TileWidth,
		Rows:     make([][]string, levelMap.Height),
	}
	for y := 0; y < levelMap.Height; y++ {
		row := make([]string, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := grid.Tiles[y*levelMap.Width+x]
			row[x] = "."
			if tile.IsNil() {
				continue
			}
			if int(tile.ID) < len(tiledSymbols) {
				row[x] = tiledSymbols[tile.ID]
			} else {
				row[x] = "?"
			}
		}
		cfg.Rows[y] = row
	}

	return cfg, nil
}
