package factory

import (
	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

// CreateWall registers an ownerless collision box on mapID.
func CreateWall(w *world.World, mapID string, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w.ECS)

	h := collision.New(x, y, x+width, y+height, mapID, collision.NoOwner(), false)
	components.Object.SetValue(wall, components.ObjectData{
		Hitbox: w.Hitboxes.Register(h, collision.ClassCollision),
	})

	return wall
}
