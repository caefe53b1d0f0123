package world

import (
	"image/color"

	"github.com/automoto/openworld/config"
)

// Rect is a screen space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Renderer draws the world. Implementations own no simulation state.
type Renderer interface {
	DrawEntity(r Rect, sprite string, dir config.Direction, frame int, alpha float32)
	DrawRect(r Rect, c color.Color, filled bool)
	DrawText(x, y float64, text string)
}

// Sound plays audio by logical id.
type Sound interface {
	PlaySound(scene string, id config.SoundID, volume float64)
	PlayMusic(scene string)
}

// Input is polled once per tick by the player system.
type Input interface {
	IsKeyDown(a config.ActionID) bool
	// IsKeyPressed is true only on the tick the key went down.
	IsKeyPressed(a config.ActionID) bool
	// IsMousePressed is true only on the tick the button went down.
	IsMousePressed(b config.MouseButton) bool
	// MousePosition is in screen coordinates.
	MousePosition() (float64, float64)
}

type NopRenderer struct{}

func (NopRenderer) DrawEntity(Rect, string, config.Direction, int, float32) {}
func (NopRenderer) DrawRect(Rect, color.Color, bool)                         {}
func (NopRenderer) DrawText(float64, float64, string)                        {}

type NopSound struct{}

func (NopSound) PlaySound(string, config.SoundID, float64) {}
func (NopSound) PlayMusic(string)                          {}

type NopInput struct{}

func (NopInput) IsKeyDown(config.ActionID) bool         { return false }
func (NopInput) IsKeyPressed(config.ActionID) bool      { return false }
func (NopInput) IsMousePressed(config.MouseButton) bool { return false }
func (NopInput) MousePosition() (float64, float64)      { return 0, 0 }
