package components

import (
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/yohamta/donburi"
)

// PlayerControlData is the input driven capability of the player actor.
type PlayerControlData struct {
	Accel    float64
	MaxSpeed float64

	Dashing          bool
	DashStartedAt    time.Duration
	LastDashAt       time.Duration
	HasDashed        bool
	DashResetPending bool

	Raycast *collision.Hitbox
	Dragged *donburi.Entry

	SelectedSlot int
}

var PlayerControl = donburi.NewComponentType[PlayerControlData]()

// ResetDash clears the dash cooldown. A dash in progress keeps going and the
// reset is applied when it ends.
func (p *PlayerControlData) ResetDash() {
	if p.Dashing {
		p.DashResetPending = true
		return
	}
	p.HasDashed = false
}
