package systems

import (
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances every timed effect of the world.
func UpdateEffects(e *ecs.ECS) {
	w := world.From(e)
	w.Effects.Update(w.Now)
}
