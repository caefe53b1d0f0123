package systems

import (
	"math"
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
	"github.com/automoto/openworld/items"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minThrowDistance keeps the player from throwing at their own feet.
const minThrowDistance = 10

// UpdatePlayer turns input into the player's desired velocity and actions.
func UpdatePlayer(e *ecs.ECS) {
	w := world.From(e)
	player := w.Player
	if player == nil || !player.Valid() || !player.HasComponent(components.PlayerControl) {
		return
	}
	a := components.Actor.Get(player)
	if !a.Active {
		return
	}
	pc := components.PlayerControl.Get(player)
	now := w.Now

	placeRaycast(a, pc)
	updateDash(w, a, pc, now)
	updateInventory(w, player, pc, now)

	switch a.State {
	case cfg.Attack:
		// Locked until the swing ends
	case cfg.Drag:
		if pc.Dragged == nil || !pc.Dragged.Valid() || w.Input.IsKeyPressed(cfg.ActionDrag) {
			releaseDrag(a, pc, now)
			break
		}
		handleMoveInput(w, a, pc, false)
	default:
		handleMoveInput(w, a, pc, true)
		if handleAttackInput(w, player, a, now) {
			break
		}
		placeRaycast(a, pc)
		if w.Input.IsKeyPressed(cfg.ActionDrag) && !pc.Dashing {
			grabDraggable(w, player, a, pc, now)
		}
		if w.Input.IsKeyPressed(cfg.ActionInteract) {
			interact(w, pc)
		}
	}
}

// placeRaycast lays the interaction ray from the player center in the
// facing direction.
func placeRaycast(a *components.ActorData, pc *components.PlayerControlData) {
	if pc.Raycast == nil {
		return
	}
	cx, cy := a.Combat.Center()
	dx, dy := a.Direction.Vector()
	pc.Raycast.Map = a.Map
	pc.Raycast.Set(cx, cy, cx+dx*cfg.Player.RaycastLength, cy+dy*cfg.Player.RaycastLength)
}

func updateDash(w *world.World, a *components.ActorData, pc *components.PlayerControlData, now time.Duration) {
	if pc.Dashing && now-pc.DashStartedAt >= cfg.Player.DashDuration {
		pc.Dashing = false
		pc.Accel = cfg.Player.Acceleration
		pc.MaxSpeed = cfg.Player.FullSpeed
		if pc.DashResetPending {
			pc.HasDashed = false
			pc.DashResetPending = false
		} else {
			pc.LastDashAt = now
		}
	}

	if pc.Dashing || a.State == cfg.Drag || a.State == cfg.Attack {
		return
	}
	if !w.Input.IsKeyDown(cfg.ActionDash) {
		return
	}
	if pc.HasDashed && now-pc.LastDashAt < cfg.Player.DashCooldown {
		return
	}

	pc.Dashing = true
	pc.HasDashed = true
	pc.DashStartedAt = now
	pc.LastDashAt = now
	pc.Accel = cfg.Player.DashAcceleration
	pc.MaxSpeed = cfg.Player.DashSpeed
	w.Sound.PlaySound(cfg.SceneGame, cfg.SoundDash, cfg.Audio.DefaultSFXVol)
}

// handleMoveInput accelerates along pressed axes and decelerates the
// others. Diagonal speed is capped so it is not faster than straight.
func handleMoveInput(w *world.World, a *components.ActorData, pc *components.PlayerControlData, turn bool) {
	in := w.Input
	up, down := in.IsKeyDown(cfg.ActionMoveUp), in.IsKeyDown(cfg.ActionMoveDown)
	left, right := in.IsKeyDown(cfg.ActionMoveLeft), in.IsKeyDown(cfg.ActionMoveRight)

	switch {
	case up && !down:
		a.VY -= pc.Accel
		if turn {
			a.Direction = cfg.Up
		}
	case down && !up:
		a.VY += pc.Accel
		if turn {
			a.Direction = cfg.Down
		}
	default:
		a.VY = gamemath.ApplyFriction(a.VY, cfg.Player.Deceleration)
	}

	switch {
	case left && !right:
		a.VX -= pc.Accel
		if turn {
			a.Direction = cfg.Left
		}
	case right && !left:
		a.VX += pc.Accel
		if turn {
			a.Direction = cfg.Right
		}
	default:
		a.VX = gamemath.ApplyFriction(a.VX, cfg.Player.Deceleration)
	}

	limit := gamemath.DiagonalCap(a.VX, a.VY, pc.MaxSpeed)
	a.VX = gamemath.ClampSpeed(a.VX, limit)
	a.VY = gamemath.ClampSpeed(a.VY, limit)
}

// handleAttackInput throws on the secondary button and swings on the
// primary one. It reports whether an attack started.
func handleAttackInput(w *world.World, player *donburi.Entry, a *components.ActorData, now time.Duration) bool {
	sx, sy := w.Input.MousePosition()
	mx, my := ScreenToWorld(w, sx, sy)
	cx, cy := a.Combat.Center()

	if w.Input.IsMousePressed(cfg.MouseSecondary) {
		if a.Charges <= 0 || math.Hypot(mx-cx, my-cy) <= minThrowDistance {
			return false
		}
		factory.CreateProjectile(w, player, cx, cy, mx, my, factory.PlayerProjectile(w))
		a.Charges--
		a.ChargeTickAt = now
		w.Sound.PlaySound(cfg.SceneGame, cfg.SoundThrow, cfg.Audio.DefaultSFXVol)
		return true
	}

	if w.Input.IsMousePressed(cfg.MousePrimary) {
		faceToward(a, mx, my)
		w.Stock.Attacking.Apply(now, player, cfg.Combat.SwingDuration)
		w.Stock.Motionless.Apply(now, player, cfg.Combat.SwingDuration)
		factory.CreateSwing(w, player, factory.PlayerSwing(w))
		w.Sound.PlaySound(cfg.SceneGame, cfg.SoundSlash, 0.5)
		return true
	}
	return false
}

// faceToward turns the actor toward a world point along the dominant axis.
func faceToward(a *components.ActorData, x, y float64) {
	cx, cy := a.Combat.Center()
	dx, dy := x-cx, y-cy
	if dx == 0 && dy == 0 {
		return
	}
	if math.Abs(dy) > math.Abs(dx) {
		if dy > 0 {
			a.Direction = cfg.Down
		} else {
			a.Direction = cfg.Up
		}
		return
	}
	if dx > 0 {
		a.Direction = cfg.Right
	} else {
		a.Direction = cfg.Left
	}
}

// grabDraggable starts dragging the first draggable actor under the ray.
func grabDraggable(w *world.World, player *donburi.Entry, a *components.ActorData, pc *components.PlayerControlData, now time.Duration) {
	for _, h := range w.Hitboxes.Query(pc.Raycast, true, true) {
		target, err := h.Owner.Actor()
		if err != nil || target == nil || !target.Valid() || target.Entity() == player.Entity() {
			continue
		}
		ta := components.Actor.Get(target)
		if !ta.Active || !ta.Draggable {
			continue
		}
		pc.Dragged = target
		pc.MaxSpeed = cfg.Player.DragSpeed
		a.State = cfg.Drag
		a.Frame = 0
		a.LastFrameAt = now
		return
	}
}

func releaseDrag(a *components.ActorData, pc *components.PlayerControlData, now time.Duration) {
	pc.Dragged = nil
	pc.MaxSpeed = cfg.Player.FullSpeed
	a.State = cfg.Idle
	a.Frame = 0
	a.LastFrameAt = now
}

// dragFollow puts the dragged actor in front of the player after the player
// moved. If either of them ends up blocked both go back to where they were
// at the start of the frame.
func dragFollow(w *world.World, m *world.Map, a *components.ActorData, pc *components.PlayerControlData, oldX, oldY float64) {
	dragged := pc.Dragged
	if !dragged.Valid() {
		pc.Dragged = nil
		return
	}
	d := components.Actor.Get(dragged)
	if !d.Active || d.Map != a.Map {
		pc.Dragged = nil
		return
	}

	prevX, prevY := d.X, d.Y
	pcx, pcy := a.Collision.Center()
	gap := cfg.Player.DragGap
	tx, ty := pcx, pcy
	switch a.Direction {
	case cfg.Right:
		tx = a.Collision.X2() + gap + d.CollBox.W/2
	case cfg.Left:
		tx = a.Collision.X1() - gap - d.CollBox.W/2
	case cfg.Down:
		ty = a.Collision.Y2() + gap + d.CollBox.H/2
	case cfg.Up:
		ty = a.Collision.Y1() - gap - d.CollBox.H/2
	}
	d.X, d.Y = tx-d.CollBox.OffsetX, ty-d.CollBox.OffsetY
	d.PlaceHitboxes()

	skip := ownedBy(w.Player, dragged)
	if !d.Combat.WithinBounds(m.Width, m.Height) || blocked(w, d, skip) || blocked(w, a, skip) {
		d.X, d.Y = prevX, prevY
		d.PlaceHitboxes()
		a.X, a.Y = oldX, oldY
		a.VX, a.VY = 0, 0
		a.PlaceHitboxes()
	}
}

// interact triggers the first interactable under the ray.
func interact(w *world.World, pc *components.PlayerControlData) {
	for _, h := range w.Hitboxes.Query(pc.Raycast, false, false) {
		if h.Owner.Kind() != collision.OwnerInteractable || !h.Owner.Alive() {
			continue
		}
		w.TriggerInteraction(h.Owner.Entry())
		return
	}
}

func updateInventory(w *world.World, player *donburi.Entry, pc *components.PlayerControlData, now time.Duration) {
	if !player.HasComponent(components.Inventory) {
		return
	}
	inv := components.Inventory.Get(player).Inventory
	inv.UpdatePassives(player, now)

	log := w.Logger("inventory")
	switch {
	case w.Input.IsKeyPressed(cfg.ActionNextSlot):
		pc.SelectedSlot = (pc.SelectedSlot + 1) % items.Slots
	case w.Input.IsKeyPressed(cfg.ActionUseItem):
		if err := inv.Use(pc.SelectedSlot, player, now); err != nil {
			log.WithError(err).Debug("use item")
		}
	case w.Input.IsKeyPressed(cfg.ActionDropItem):
		if err := inv.Discard(pc.SelectedSlot, 1); err != nil {
			log.WithError(err).Debug("drop item")
		}
	}
}
