package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

var hitboxColors = map[collision.Class]color.RGBA{
	collision.ClassNone:      {R: 255, G: 255, B: 0, A: 255},
	collision.ClassCollision: {R: 0, G: 120, B: 255, A: 255},
	collision.ClassCombat:    {R: 255, G: 0, B: 0, A: 255},
}

// DrawWorld draws the active map through the world renderer.
func DrawWorld(w *world.World) {
	r := w.Renderer
	camX, camY := Camera(w)

	for _, entry := range w.Actors() {
		if !entry.Valid() {
			continue
		}
		a := components.Actor.Get(entry)
		if !a.Active || a.Map != w.Current {
			continue
		}
		rect := screenRect(a.Combat, camX, camY)
		r.DrawEntity(rect, a.Sprite, a.Direction, a.Frame, a.Alpha)
		if entry.HasComponent(components.Health) && !w.IsPlayer(entry) {
			drawHealthBar(r, rect, components.Health.Get(entry))
		}
	}

	tags.Attack.Each(w.ECS.World, func(entry *donburi.Entry) {
		atk := components.Attack.Get(entry)
		if !atk.Active || atk.Map != w.Current {
			return
		}
		sprite := "swing"
		if atk.Kind == components.AttackProjectile {
			sprite = "projectile"
		}
		for _, h := range atk.Hitboxes {
			r.DrawEntity(screenRect(h, camX, camY), sprite, cfg.Down, 0, 1)
		}
	})

	if cfg.Debug.ShowHitboxes {
		for _, h := range w.Hitboxes.All() {
			if h.Active && h.Map == w.Current {
				r.DrawRect(screenRect(h, camX, camY), hitboxColors[h.Class], false)
			}
		}
	}

	drawHUD(w)
}

func screenRect(h *collision.Hitbox, camX, camY float64) world.Rect {
	return world.Rect{X: h.X - camX, Y: h.Y - camY, W: h.W, H: h.H}
}

// HealthColor buckets a life ratio into the three bar colors.
func HealthColor(ratio float64) color.RGBA {
	switch math.Round(ratio * 2) {
	case 2:
		return cfg.UI.HealthHigh
	case 1:
		return cfg.UI.HealthMid
	default:
		return cfg.UI.HealthLow
	}
}

// drawHealthBar draws a bar centered above rect whose width follows life.
func drawHealthBar(r world.Renderer, rect world.Rect, h *components.HealthData) {
	ratio := h.Ratio()
	width := rect.W * ratio
	bar := world.Rect{
		X: rect.X + (rect.W-width)/2,
		Y: rect.Y - cfg.UI.HealthBarOffset - cfg.UI.HealthBarHeight,
		W: width,
		H: cfg.UI.HealthBarHeight,
	}
	r.DrawRect(bar, HealthColor(ratio), true)
}

func drawHUD(w *world.World) {
	r := w.Renderer
	p := w.Player
	if p == nil || !p.Valid() {
		return
	}
	a := components.Actor.Get(p)

	const margin = 10
	if p.HasComponent(components.Health) {
		h := components.Health.Get(p)
		frame := world.Rect{X: margin, Y: margin, W: cfg.UI.HealthBarWidth * 2, H: cfg.UI.HealthBarHeight * 2}
		r.DrawRect(frame, color.White, false)
		fill := frame
		fill.W *= h.Ratio()
		r.DrawRect(fill, HealthColor(h.Ratio()), true)
	}

	size := cfg.UI.HealthBarHeight * 2
	for i := 0; i < cfg.Combat.MaxCharges; i++ {
		slot := world.Rect{X: margin + float64(i)*(size+4), Y: margin + size + 6, W: size, H: size}
		r.DrawRect(slot, cfg.UI.ChargeColor, i < a.Charges)
	}

	if p.HasComponent(components.PlayerControl) && p.HasComponent(components.Inventory) {
		slot := components.PlayerControl.Get(p).SelectedSlot
		label := fmt.Sprintf("slot %d: empty", slot+1)
		if s, err := components.Inventory.Get(p).Slot(slot); err == nil {
			label = fmt.Sprintf("slot %d: %s x%d", slot+1, s.Item.Name, s.Count)
		}
		r.DrawText(margin, margin+size*2+12, label)
	}

	if w.UI != "" {
		r.DrawText(margin, float64(cfg.C.Height)-30, "> "+w.UI)
	}
}
