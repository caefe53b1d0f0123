package factory

import (
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// ActorSpec is everything needed to place an actor on a map.
type ActorSpec struct {
	Name   string
	Sprite string
	Map    string
	X, Y   float64

	CombatBox cfg.Box
	CollBox   cfg.Box

	Damage    int
	Draggable bool
	Player    bool
}

// setupActor fills the Actor component of e, registers both of its
// hitboxes and appends it to the world update order.
func setupActor(w *world.World, e *donburi.Entry, spec ActorSpec) *components.ActorData {
	owner := collision.ActorOwner(e)
	combat := collision.New(0, 0, spec.CombatBox.W, spec.CombatBox.H, spec.Map, owner, spec.Player)
	coll := collision.New(0, 0, spec.CollBox.W, spec.CollBox.H, spec.Map, owner, spec.Player)

	components.Actor.SetValue(e, components.ActorData{
		Name:         spec.Name,
		Sprite:       spec.Sprite,
		Map:          spec.Map,
		X:            spec.X,
		Y:            spec.Y,
		SpawnX:       spec.X,
		SpawnY:       spec.Y,
		Combat:       w.Hitboxes.Register(combat, collision.ClassCombat),
		Collision:    w.Hitboxes.Register(coll, collision.ClassCollision),
		CombatBox:    spec.CombatBox,
		CollBox:      spec.CollBox,
		State:        cfg.Idle,
		Direction:    cfg.Down,
		LastFrameAt:  w.Now,
		Charges:      cfg.Combat.MaxCharges,
		ChargeTickAt: w.Now,
		Damage:       spec.Damage,
		Active:       true,
		Draggable:    spec.Draggable,
		Alpha:        1,
	})

	a := components.Actor.Get(e)
	a.PlaceHitboxes()
	w.AddActor(e)

	w.Logger("factory").WithFields(logrus.Fields{
		"actor": spec.Name,
		"map":   spec.Map,
		"x":     spec.X,
		"y":     spec.Y,
	}).Debug("actor spawned")
	return a
}
