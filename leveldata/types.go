// Package leveldata parses TMX maps into plain data. It has no dependency
// on ebitengine, donburi or resolv.
package leveldata

// MapData holds everything the simulation needs from one TMX file.
type MapData struct {
	ID        string
	MapWidth  int
	MapHeight int

	SpawnX, SpawnY float64
	HasSpawn       bool

	Walls         []Rect
	Mobs          []MobSpawn
	Interactables []InteractableArea
	Transitions   []TransitionArea
}

type Rect struct {
	X, Y, W, H float64
}

// MobSpawn places one mob of a catalogue type.
type MobSpawn struct {
	Type string
	X, Y float64
	// UI, when set, makes the mob talkable.
	UI string
}

// InteractableArea opens UI when the player interacts inside it.
type InteractableArea struct {
	Rect
	UI string
}

// TransitionArea sends the player to Target at (ExitX, ExitY).
type TransitionArea struct {
	Rect
	Target string
	ExitX  float64
	ExitY  float64
	Facing string
}
