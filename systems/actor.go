package systems

import (
	"math"
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors moves every live actor in creation order and resolves what
// it touches.
func UpdateActors(e *ecs.ECS) {
	w := world.From(e)
	for _, entry := range w.Actors() {
		if !entry.Valid() || !components.Actor.Get(entry).Active {
			continue
		}
		updateActor(w, entry)
	}
}

// updateActor runs one actor. A panic is logged and contained so the rest
// of the frame still runs.
func updateActor(w *world.World, entry *donburi.Entry) {
	a := components.Actor.Get(entry)
	defer func() {
		if r := recover(); r != nil {
			w.Logger("actors").WithFields(logrus.Fields{
				"actor":  a.Name,
				"entity": entry.Entity(),
				"panic":  r,
			}).Error("actor update failed")
		}
	}()
	now := w.Now

	regenCharges(a, now)

	if a.Map != w.Current {
		return
	}
	m := w.CurrentMap()
	if m == nil {
		return
	}

	companion := companionOf(w, entry)
	skip := ownedBy(entry, companion)
	oldX, oldY := a.X, a.Y

	moveX(w, m, a, skip)
	moveY(w, m, a, skip)
	if entry.HasComponent(components.PlayerControl) {
		if pc := components.PlayerControl.Get(entry); pc.Dragged != nil {
			dragFollow(w, m, a, pc, oldX, oldY)
		}
	}

	// Collision reactions
	for _, other := range w.Hitboxes.Query(a.Collision, true, false) {
		if other.Command != nil && collision.Overlaps(other, a.Collision) {
			other.Command(other, a.Collision, now)
		}
	}

	// Combat reactions
	for _, other := range w.Hitboxes.Query(a.Combat, false, true) {
		if !collision.Overlaps(other, a.Combat) {
			continue
		}
		if other.Owner.Kind() == collision.OwnerAttack {
			applyAttack(w, other.Owner.Entry(), entry)
		}
		if other.Command != nil {
			other.Command(other, a.Combat, now)
		}
		if !a.Active {
			return
		}
	}

	// Triggers
	for _, other := range w.Hitboxes.Query(a.Combat, false, false) {
		if other.Command != nil && collision.Overlaps(other, a.Combat) {
			other.Command(other, a.Combat, now)
		}
	}

	animate(a, now)
}

// regenCharges gives back one attack charge per elapsed interval.
func regenCharges(a *components.ActorData, now time.Duration) {
	if now-a.ChargeTickAt < cfg.Combat.ChargeInterval {
		return
	}
	if a.Charges < cfg.Combat.MaxCharges {
		a.Charges++
	}
	a.ChargeTickAt = now
}

// companionOf returns the actor that moves together with entry: the actor
// dragged by the player, or the player dragging entry.
func companionOf(w *world.World, entry *donburi.Entry) *donburi.Entry {
	if entry.HasComponent(components.PlayerControl) {
		if d := components.PlayerControl.Get(entry).Dragged; d != nil && d.Valid() {
			return d
		}
		return nil
	}
	p := w.Player
	if p == nil || !p.Valid() || !p.HasComponent(components.PlayerControl) {
		return nil
	}
	if d := components.PlayerControl.Get(p).Dragged; d != nil && d.Valid() && d.Entity() == entry.Entity() {
		return p
	}
	return nil
}

// ownedBy matches hitboxes belonging to any of the given actors.
func ownedBy(actors ...*donburi.Entry) func(*collision.Hitbox) bool {
	return func(h *collision.Hitbox) bool {
		if h.Owner.Kind() != collision.OwnerActor || !h.Owner.Alive() {
			return false
		}
		owner := h.Owner.Entry().Entity()
		for _, a := range actors {
			if a != nil && a.Valid() && a.Entity() == owner {
				return true
			}
		}
		return false
	}
}

// blocked reports whether the actor's collision hitbox touches a collision
// hitbox that skip does not exclude.
func blocked(w *world.World, a *components.ActorData, skip func(*collision.Hitbox) bool) bool {
	for _, other := range w.Hitboxes.Query(a.Collision, true, false) {
		if !skip(other) {
			return true
		}
	}
	return false
}

func moveX(w *world.World, m *world.Map, a *components.ActorData, skip func(*collision.Hitbox) bool) {
	if a.VX == 0 {
		return
	}
	oldX := a.X
	half := a.HalfExtent()
	a.X += a.VX
	a.X = gamemath.Clamp(a.X, half, m.Width-half)
	if a.X == half || a.X == m.Width-half {
		a.VX = 0
	}
	a.PlaceHitboxes()

	if blocked(w, a, skip) {
		a.X = oldX
		a.VX = 0
		a.PlaceHitboxes()
	}
}

func moveY(w *world.World, m *world.Map, a *components.ActorData, skip func(*collision.Hitbox) bool) {
	if a.VY == 0 {
		return
	}
	oldY := a.Y
	half := a.HalfExtentY()
	a.Y += a.VY
	a.Y = gamemath.Clamp(a.Y, half, m.Height-half)
	if a.Y == half || a.Y == m.Height-half {
		a.VY = 0
	}
	a.PlaceHitboxes()

	if blocked(w, a, skip) {
		a.Y = oldY
		a.VY = 0
		a.PlaceHitboxes()
	}
}

// animate picks the facing from the dominant velocity component and steps
// the animation frame.
func animate(a *components.ActorData, now time.Duration) {
	if a.State != cfg.Drag && (a.VX != 0 || a.VY != 0) {
		if math.Abs(a.VY) > math.Abs(a.VX) {
			if a.VY > 0 {
				a.Direction = cfg.Down
			} else {
				a.Direction = cfg.Up
			}
		} else {
			if a.VX > 0 {
				a.Direction = cfg.Right
			} else {
				a.Direction = cfg.Left
			}
		}
	}

	if a.State == cfg.Idle || a.State == cfg.Walk {
		next := cfg.Idle
		if a.VX != 0 || a.VY != 0 {
			next = cfg.Walk
		}
		if next != a.State {
			a.State = next
			a.Frame = 0
			a.LastFrameAt = now
			return
		}
	}

	if now-a.LastFrameAt < cfg.Animation.FrameDuration {
		return
	}
	a.LastFrameAt = now
	if n := cfg.Animation.FrameCounts[a.State]; n > 0 {
		a.Frame = (a.Frame + 1) % n
	} else {
		a.Frame = 0
	}
}
