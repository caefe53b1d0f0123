package factory

import (
	"fmt"

	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/items"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

// SpawnPlayer creates the player actor on mapID and makes it the world's
// player. The interaction raycast is not registered; it is only used as a
// query box.
func SpawnPlayer(w *world.World, mapID string, x, y float64) (*donburi.Entry, error) {
	if _, err := w.Map(mapID); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	player := archetypes.Player.Spawn(w.ECS)
	a := setupActor(w, player, ActorSpec{
		Name:      "player",
		Sprite:    "player",
		Map:       mapID,
		X:         x,
		Y:         y,
		CombatBox: cfg.Player.Combat,
		CollBox:   cfg.Player.Collision,
		Damage:    cfg.Combat.SwingDamage,
		Player:    true,
	})

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	cx, cy := a.Combat.Center()
	ray := collision.New(cx, cy, cx, cy+cfg.Player.RaycastLength, mapID, collision.ActorOwner(player), true)
	components.PlayerControl.SetValue(player, components.PlayerControlData{
		Accel:    cfg.Player.Acceleration,
		MaxSpeed: cfg.Player.FullSpeed,
		Raycast:  ray,
	})
	components.Inventory.SetValue(player, components.InventoryData{Inventory: items.NewInventory()})

	w.Player = player
	return player, nil
}
