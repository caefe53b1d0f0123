package systems

import (
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
	"github.com/automoto/openworld/world"
)

// Camera returns the world position of the top-left screen corner. It
// follows the player and keeps the map filling the screen; a map smaller
// than the screen is centered.
func Camera(w *world.World) (float64, float64) {
	m := w.CurrentMap()
	if m == nil {
		return 0, 0
	}
	screenW := float64(config.C.Width)
	screenH := float64(config.C.Height)

	targetX, targetY := m.Width/2, m.Height/2
	if w.Player != nil && w.Player.Valid() {
		targetX, targetY = components.Actor.Get(w.Player).Combat.Center()
	}

	return cameraAxis(targetX, screenW, m.Width), cameraAxis(targetY, screenH, m.Height)
}

func cameraAxis(target, screen, size float64) float64 {
	if size <= screen {
		return (size - screen) / 2
	}
	return gamemath.Clamp(target-screen/2, 0, size-screen)
}

// ScreenToWorld converts a screen position, such as the mouse, to world
// coordinates.
func ScreenToWorld(w *world.World, sx, sy float64) (float64, float64) {
	cx, cy := Camera(w)
	return sx + cx, sy + cy
}
