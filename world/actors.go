package world

import (
	"fmt"

	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// AddActor appends an actor to the update order.
func (w *World) AddActor(e *donburi.Entry) {
	w.actors = append(w.actors, e)
}

// Actors returns the actors in creation order. The slice is only valid
// until the next Sweep.
func (w *World) Actors() []*donburi.Entry {
	return w.actors
}

// IsPlayer reports whether e is the player actor.
func (w *World) IsPlayer(e *donburi.Entry) bool {
	return w.Player != nil && e != nil && w.Player.Entity() == e.Entity()
}

// Damage subtracts amount from the actor's life when it is tracked. Life is
// not clamped.
func (w *World) Damage(e *donburi.Entry, amount int) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	components.Health.Get(e).Current -= amount
}

// OnAttacked runs after damage. An actor at or below zero life dies.
func (w *World) OnAttacked(e *donburi.Entry) error {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return nil
	}
	if components.Health.Get(e).Current <= 0 {
		return w.OnDeath(e)
	}
	return nil
}

// OnDeath publishes the death and destroys the actor. The player is
// announced but never destroyed.
func (w *World) OnDeath(e *donburi.Entry) error {
	actor := components.Actor.Get(e)
	Deaths.Publish(w.ECS.World, DeathEvent{Actor: e, Name: actor.Name, At: w.Now})
	w.Sound.PlaySound(config.SceneGame, config.SoundDeath, config.Audio.DefaultSFXVol)
	if w.IsPlayer(e) {
		return nil
	}
	return w.Destroy(e)
}

// ApplyDamage is the inbound damage entry point: damage then react.
func (w *World) ApplyDamage(e *donburi.Entry, amount int) error {
	w.Damage(e, amount)
	if err := w.OnAttacked(e); err != nil {
		return fmt.Errorf("apply damage: %w", err)
	}
	return nil
}

// Destroy soft-deletes an actor. Its entity is removed at the end of the
// frame by the sweep system.
func (w *World) Destroy(e *donburi.Entry) error {
	if w.IsPlayer(e) {
		return ErrPlayerDestroyed
	}
	if !e.Valid() {
		return nil
	}
	actor := components.Actor.Get(e)
	actor.Active = false
	actor.VX, actor.VY = 0, 0
	if actor.Combat != nil {
		actor.Combat.Destroy()
	}
	if actor.Collision != nil {
		actor.Collision.Destroy()
	}

	if w.Player != nil && w.Player.Valid() && w.Player.HasComponent(components.PlayerControl) {
		pc := components.PlayerControl.Get(w.Player)
		if pc.Dragged != nil && pc.Dragged.Entity() == e.Entity() {
			pc.Dragged = nil
		}
	}

	w.Logger("world").WithFields(logrus.Fields{
		"actor": actor.Name,
		"map":   actor.Map,
	}).Debug("actor destroyed")
	return nil
}

// Sweep drops dead actors from the update order and removes their entities,
// then compacts the hitbox registry. Call it once per frame after all
// iteration is done.
func (w *World) Sweep() {
	kept := w.actors[:0]
	for _, e := range w.actors {
		if e.Valid() && components.Actor.Get(e).Active {
			kept = append(kept, e)
			continue
		}
		if e.Valid() {
			w.ECS.World.Remove(e.Entity())
		}
	}
	for i := len(kept); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = kept
	w.Hitboxes.Sweep()
}

// TriggerInteraction opens the interface bound to an interactable.
func (w *World) TriggerInteraction(e *donburi.Entry) {
	ui := components.Interactable.Get(e).UI
	w.UI = ui
	Interactions.Publish(w.ECS.World, InteractionEvent{Source: e, UI: ui, At: w.Now})
	w.Sound.PlaySound(config.SceneGame, config.SoundInteract, config.Audio.DefaultSFXVol)
}

// Transition moves the player from one map to another at (x, y) facing dir.
// The arrival point is clamped inside the new map. It drops any dragged
// actor and resets the dash cooldown.
func (w *World) Transition(from, to string, x, y float64, dir config.Direction) error {
	m, err := w.Map(to)
	if err != nil {
		return fmt.Errorf("transition: %w", err)
	}
	if w.Player == nil || !w.Player.Valid() {
		return ErrNoPlayer
	}
	actor := components.Actor.Get(w.Player)
	if actor.Map != from {
		return fmt.Errorf("transition from %q: %w", from, ErrNotOnMap)
	}
	actor.Map = to
	w.Hitboxes.Relocate(actor.Combat, to)
	w.Hitboxes.Relocate(actor.Collision, to)
	hx, hy := actor.HalfExtent(), actor.HalfExtentY()
	actor.X = gamemath.Clamp(x, hx, m.Width-hx)
	actor.Y = gamemath.Clamp(y, hy, m.Height-hy)
	actor.Direction = dir
	actor.PlaceHitboxes()

	if w.Player.HasComponent(components.PlayerControl) {
		pc := components.PlayerControl.Get(w.Player)
		pc.Dragged = nil
		pc.ResetDash()
		w.Hitboxes.Relocate(pc.Raycast, to)
	}
	w.Current = to
	w.Logger("world").WithFields(logrus.Fields{"from": from, "to": to}).Info("map transition")
	return nil
}

// PlayerMap is the map the player stands on, or "" without a player.
func (w *World) PlayerMap() string {
	if w.Player == nil || !w.Player.Valid() {
		return ""
	}
	return components.Actor.Get(w.Player).Map
}

// TransitionToSpawn moves the player to the spawn point of a map.
func (w *World) TransitionToSpawn(to string) error {
	m, err := w.Map(to)
	if err != nil {
		return fmt.Errorf("transition: %w", err)
	}
	dir := config.Down
	if w.Player != nil {
		dir = components.Actor.Get(w.Player).Direction
	}
	return w.Transition(w.PlayerMap(), to, m.SpawnX, m.SpawnY, dir)
}
