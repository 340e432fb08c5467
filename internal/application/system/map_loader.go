package system

import (
	"log"

	"github.com/younwookim/boxkick/internal/domain/entity"
	"github.com/younwookim/boxkick/internal/infrastructure/config"
)

// LoadMap converts a parsed map file into a Map entity.
// Each box cell becomes an obstacle one tile wide whose landing band is the
// tile row above the cell, so the box sprite is drawn at its YBottom.
func LoadMap(id int, cfg *config.MapConfig, t *config.Tuning) *entity.Map {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = t.TileSize
	}
	cols := cfg.Cols()
	rows := len(cfg.Rows)

	tiles := make([][]entity.Tile, rows)
	var obstacles []entity.Obstacle
	unknown := make(map[string]bool)

	for y, row := range cfg.Rows {
		tiles[y] = make([]entity.Tile, cols)
		for x := 0; x < cols; x++ {
			symbol := "."
			if x < len(row) {
				symbol = row[x]
			}

			mapping, ok := t.Tiles[symbol]
			tileType := tileTypeOf(mapping.Type)
			if !ok || tileType == entity.TileUnknown {
				tileType = entity.TileUnknown
				if !unknown[symbol] {
					unknown[symbol] = true
					log.Printf("map %s: unknown tile symbol %q at (%d,%d)", cfg.Name, symbol, x, y)
				}
			}
			tiles[y][x] = entity.Tile{Type: tileType, Symbol: symbol}

			if tileType != entity.TileBox {
				continue
			}
			durability := t.Obstacles.DefaultDurability
			if mapping.Durability != nil {
				durability = *mapping.Durability
			}
			ts := float64(tileSize)
			obstacles = append(obstacles, entity.NewObstacle(
				entity.ObstacleID(len(obstacles)+1),
				float64(x)*ts,
				float64(x+1)*ts,
				float64(y-1)*ts,
				float64(y)*ts,
				durability,
			))
		}
	}

	return &entity.Map{
		ID:          id,
		Name:        cfg.Name,
		Cols:        cols,
		Rows:        rows,
		TileSize:    tileSize,
		Tiles:       tiles,
		Obstacles:   entity.NewObstacleStore(cols*tileSize, rows*tileSize, obstacles),
		SpawnX:      t.Physics.LowerBound,
		SpawnY:      t.Physics.Ground,
		TransitionX: t.Physics.UpperBound,
	}
}

// LoadMaps converts every parsed map file, keeping their order
func LoadMaps(cfgs []*config.MapConfig, t *config.Tuning) []*entity.Map {
	maps := make([]*entity.Map, 0, len(cfgs))
	for i, cfg := range cfgs {
		maps = append(maps, LoadMap(i+1, cfg, t))
	}
	return maps
}

// CloneMaps returns fresh copies of maps for a new run
func CloneMaps(maps []*entity.Map) []*entity.Map {
	out := make([]*entity.Map, len(maps))
	for i, m := range maps {
		out[i] = m.Clone()
	}
	return out
}

func tileTypeOf(name string) entity.TileType {
	switch name {
	case "sky":
		return entity.TileSky
	case "grass":
		return entity.TileGrass
	case "box":
		return entity.TileBox
	case "spike":
		return entity.TileSpike
	default:
		return entity.TileUnknown
	}
}
