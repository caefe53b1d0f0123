package config

// StateID is the animation/behavior state of an actor.
type StateID int

const (
	Idle StateID = iota
	Walk
	Attack
	Drag
)

var stateNames = map[StateID]string{
	Idle:   "idle",
	Walk:   "walk",
	Attack: "attack",
	Drag:   "drag",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Direction is the facing of an actor. The order matches sprite sheet rows.
type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "down"
	}
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() (float64, float64) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	default:
		return 0, 1
	}
}

// ParseDirection reads a direction name. Unknown names face down.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return Up
	case "right":
		return Right
	case "left":
		return Left
	default:
		return Down
	}
}
