package systems

import (
	"github.com/automoto/openworld/world"
)

// Install adds the simulation systems to the world in frame order.
func Install(w *world.World) {
	w.ECS.
		AddSystem(UpdatePlayer).
		AddSystem(UpdateAI).
		AddSystem(UpdateInteractables).
		AddSystem(UpdateActors).
		AddSystem(UpdateAttacks).
		AddSystem(UpdateEffects).
		AddSystem(UpdateSweep)
}
