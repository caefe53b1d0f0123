package systems

import (
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteractables keeps talkable hitboxes on the actor they follow. An
// interactable whose actor is gone goes with it.
func UpdateInteractables(e *ecs.ECS) {
	w := world.From(e)
	tags.Interactable.Each(e.World, func(entry *donburi.Entry) {
		it := components.Interactable.Get(entry)
		if it.Follow == nil || !it.Hitbox.Active {
			return
		}
		if !it.Follow.Valid() || !components.Actor.Get(it.Follow).Active {
			it.Hitbox.Destroy()
			return
		}
		a := components.Actor.Get(it.Follow)
		if it.Hitbox.Map != a.Map {
			w.Hitboxes.Relocate(it.Hitbox, a.Map)
		}
		it.Hitbox.CenterAround(a.X+it.OffsetX, a.Y+it.OffsetY)
	})
}
