package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionDash
	ActionInteract
	ActionDrag
	ActionUseItem
	ActionDropItem
	ActionNextSlot
	ActionSave
	ActionCount // Must be last - used for array sizing
)

// MouseButton is a logical pointer button.
type MouseButton int

const (
	MousePrimary MouseButton = iota
	MouseSecondary
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings     map[ActionID]InputBinding
	MouseButtons map[MouseButton]ebiten.MouseButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionDash:      {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionInteract:  {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionDrag:      {Keys: []ebiten.Key{ebiten.KeyShiftLeft}},
			ActionUseItem:   {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionDropItem:  {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionNextSlot:  {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionSave:      {Keys: []ebiten.Key{ebiten.KeyF5}},
		},
		MouseButtons: map[MouseButton]ebiten.MouseButton{
			MousePrimary:   ebiten.MouseButtonLeft,
			MouseSecondary: ebiten.MouseButtonRight,
		},
	}
}
