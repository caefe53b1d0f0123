package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from the TMX files.
const (
	LayerWalls         = "walls"
	GroupWalls         = "Walls"
	GroupPlayerSpawn   = "PlayerSpawn"
	GroupMobs          = "Mobs"
	GroupInteractables = "Talkables"
	GroupTransitions   = "Transitions"
)

// LoadMap parses a TMX file from fsys. The map id is the file stem.
func LoadMap(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		ID:        strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				data.Walls = append(data.Walls, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				data.SpawnX, data.SpawnY = og.Objects[0].X, og.Objects[0].Y
				data.HasSpawn = true
			}
		case GroupMobs:
			for _, o := range og.Objects {
				mobType := o.Properties.GetString("type")
				if mobType == "" {
					mobType = o.Name
				}
				data.Mobs = append(data.Mobs, MobSpawn{
					Type: mobType,
					X:    o.X,
					Y:    o.Y,
					UI:   o.Properties.GetString("ui"),
				})
			}
		case GroupInteractables:
			for _, o := range og.Objects {
				data.Interactables = append(data.Interactables, InteractableArea{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					UI:   o.Properties.GetString("ui"),
				})
			}
		case GroupTransitions:
			for _, o := range og.Objects {
				data.Transitions = append(data.Transitions, TransitionArea{
					Rect:   Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Target: o.Properties.GetString("target_map"),
					ExitX:  float64(o.Properties.GetInt("exit_x")),
					ExitY:  float64(o.Properties.GetInt("exit_y")),
					Facing: o.Properties.GetString("facing"),
				})
			}
		}
	}

	// Keep mob spawn order stable left-to-right
	sort.SliceStable(data.Mobs, func(i, j int) bool {
		return data.Mobs[i].X < data.Mobs[j].X
	})

	return data, nil
}

// LoadAllMaps discovers all .tmx files in dir within fsys and returns them
// keyed by id, plus the sorted list of ids.
func LoadAllMaps(fsys fs.FS, dir string) (map[string]*MapData, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*MapData, len(matches))
	ids := make([]string, 0, len(matches))

	for _, file := range matches {
		data, err := LoadMap(fsys, file)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", file, err)
		}
		maps[data.ID] = data
		ids = append(ids, data.ID)
	}

	sort.Strings(ids)
	return maps, ids, nil
}
