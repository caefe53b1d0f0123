package archetypes

import (
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Actor,
		tags.Player,
		components.Actor,
		components.Health,
		components.PlayerControl,
		components.Inventory,
	)
	// Mob has no Health; the factory adds it for mobs that can die.
	Mob = newArchetype(
		tags.Actor,
		tags.Mob,
		components.Actor,
	)
	Projectile = newArchetype(
		tags.Attack,
		tags.Projectile,
		components.Attack,
	)
	Swing = newArchetype(
		tags.Attack,
		tags.Swing,
		components.Attack,
	)
	Interactable = newArchetype(
		tags.Interactable,
		components.Interactable,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
