package factory

import (
	"fmt"

	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/leveldata"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
)

// CreateLevel registers a parsed map with the world and spawns its walls,
// mobs, interactables and transitions. A mob of unknown type is logged and
// skipped; the rest of the map still loads.
func CreateLevel(w *world.World, data *leveldata.MapData) error {
	spawnX, spawnY := data.SpawnX, data.SpawnY
	if !data.HasSpawn {
		spawnX, spawnY = float64(data.MapWidth)/2, float64(data.MapHeight)/2
	}
	w.AddMap(world.Map{
		ID:     data.ID,
		Width:  float64(data.MapWidth),
		Height: float64(data.MapHeight),
		SpawnX: spawnX,
		SpawnY: spawnY,
	})

	for _, r := range data.Walls {
		CreateWall(w, data.ID, r.X, r.Y, r.W, r.H)
	}

	log := w.Logger("level").WithField("map", data.ID)
	for _, m := range data.Mobs {
		mob, err := SpawnMob(w, data.ID, m.X, m.Y, m.Type)
		if err != nil {
			log.WithError(err).Warn("mob skipped")
			continue
		}
		if m.UI != "" {
			AttachInteractable(w, mob, m.UI)
		}
	}

	for _, it := range data.Interactables {
		CreateInteractable(w, data.ID, it.X, it.Y, it.W, it.H, it.UI)
	}

	for _, tr := range data.Transitions {
		if tr.Target == "" {
			return fmt.Errorf("map %s: transition at (%v, %v) has no target", data.ID, tr.X, tr.Y)
		}
		from := Gate{Map: data.ID, X: tr.X, Y: tr.Y, W: tr.W, H: tr.H}
		to := Gate{Map: tr.Target, ExitX: tr.ExitX, ExitY: tr.ExitY, Facing: cfg.ParseDirection(tr.Facing)}
		CreateTransition(w, from, to)
	}

	log.WithFields(logrus.Fields{
		"walls": len(data.Walls),
		"mobs":  len(data.Mobs),
	}).Info("level created")
	return nil
}
