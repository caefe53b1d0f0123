package factory

import (
	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

// CreateInteractable places a static interactable that opens ui.
func CreateInteractable(w *world.World, mapID string, x, y, width, height float64, ui string) *donburi.Entry {
	e := archetypes.Interactable.Spawn(w.ECS)
	h := collision.New(x, y, x+width, y+height, mapID, collision.InteractableOwner(e), false)
	components.Interactable.SetValue(e, components.InteractableData{
		UI:     ui,
		Hitbox: w.Hitboxes.Register(h, collision.ClassNone),
	})
	return e
}

// AttachInteractable makes an actor talkable. The hitbox covers the
// actor's combat box and follows it until the actor is gone.
func AttachInteractable(w *world.World, actor *donburi.Entry, ui string) *donburi.Entry {
	a := components.Actor.Get(actor)
	e := archetypes.Interactable.Spawn(w.ECS)

	h := collision.New(0, 0, a.CombatBox.W, a.CombatBox.H, a.Map, collision.InteractableOwner(e), false)
	h.CenterAround(a.X+a.CombatBox.OffsetX, a.Y+a.CombatBox.OffsetY)
	components.Interactable.SetValue(e, components.InteractableData{
		UI:      ui,
		Hitbox:  w.Hitboxes.Register(h, collision.ClassNone),
		Follow:  actor,
		OffsetX: a.CombatBox.OffsetX,
		OffsetY: a.CombatBox.OffsetY,
	})
	return e
}
