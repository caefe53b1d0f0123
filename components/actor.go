package components

import (
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/config"
	"github.com/yohamta/donburi"
)

// ActorData is the shared state of every moving entity. X and Y are the
// center of the combat hitbox minus its offset.
type ActorData struct {
	Name   string
	Sprite string
	Map    string

	X, Y   float64
	VX, VY float64

	SpawnX, SpawnY float64

	Combat    *collision.Hitbox
	Collision *collision.Hitbox
	CombatBox config.Box
	CollBox   config.Box

	State       config.StateID
	Direction   config.Direction
	Frame       int
	LastFrameAt time.Duration

	Charges      int
	ChargeTickAt time.Duration

	Damage    int
	Active    bool
	Draggable bool
	Alpha     float32
}

var Actor = donburi.NewComponentType[ActorData]()

// PlaceHitboxes centers both hitboxes on the actor position plus their
// offsets.
func (a *ActorData) PlaceHitboxes() {
	if a.Combat != nil {
		a.Combat.CenterAround(a.X+a.CombatBox.OffsetX, a.Y+a.CombatBox.OffsetY)
	}
	if a.Collision != nil {
		a.Collision.CenterAround(a.X+a.CollBox.OffsetX, a.Y+a.CollBox.OffsetY)
	}
}

// HalfExtent is the distance from the actor position to the map edge it
// may reach on the x axis.
func (a *ActorData) HalfExtent() float64 {
	return a.CombatBox.W/2 + a.CombatBox.OffsetX
}

// HalfExtentY is HalfExtent for the y axis.
func (a *ActorData) HalfExtentY() float64 {
	return a.CombatBox.H/2 + a.CombatBox.OffsetY
}
