package factory

import (
	"time"

	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Gate is one end of a transition: the trigger area on Map and the point
// where the player lands when arriving through it. The exit point must lie
// outside the area or the player bounces back on the next frame.
type Gate struct {
	Map        string
	X, Y, W, H float64
	ExitX      float64
	ExitY      float64
	Facing     cfg.Direction
}

// CreateTransition places a trigger on from that sends the player to the
// exit point of to.
func CreateTransition(w *world.World, from, to Gate) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(w.ECS)

	h := collision.New(from.X, from.Y, from.X+from.W, from.Y+from.H, from.Map, collision.NoOwner(), false)
	h.Command = func(_, other *collision.Hitbox, _ time.Duration) {
		if !other.Player {
			return
		}
		if err := w.Transition(from.Map, to.Map, to.ExitX, to.ExitY, to.Facing); err != nil {
			w.Logger("trigger").WithError(err).WithFields(logrus.Fields{
				"from": from.Map,
				"to":   to.Map,
			}).Error("transition failed")
		}
	}
	components.Object.SetValue(trigger, components.ObjectData{
		Hitbox: w.Hitboxes.Register(h, collision.ClassNone),
	})
	return trigger
}

// CreateSwitchTriggers links two maps both ways.
func CreateSwitchTriggers(w *world.World, a, b Gate) (*donburi.Entry, *donburi.Entry) {
	return CreateTransition(w, a, b), CreateTransition(w, b, a)
}

// CreateTeleportTriggers links two areas of the same map both ways.
func CreateTeleportTriggers(w *world.World, mapID string, a, b Gate) (*donburi.Entry, *donburi.Entry) {
	a.Map, b.Map = mapID, mapID
	return CreateSwitchTriggers(w, a, b)
}
