package systems

import (
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSweep removes everything destroyed during the frame. It must run
// last.
func UpdateSweep(e *ecs.ECS) {
	w := world.From(e)

	var dead []donburi.Entity
	tags.Attack.Each(e.World, func(entry *donburi.Entry) {
		if !components.Attack.Get(entry).Active {
			dead = append(dead, entry.Entity())
		}
	})
	tags.Interactable.Each(e.World, func(entry *donburi.Entry) {
		if !components.Interactable.Get(entry).Hitbox.Active {
			dead = append(dead, entry.Entity())
		}
	})
	for _, entity := range dead {
		e.World.Remove(entity)
	}

	w.Sweep()
}
