// Package leveldata provides TMX playfield parsing.
// It holds plain data and does not import the game packages.
package leveldata

// Box is an axis-aligned box in field coordinates: centre origin, +Y up.
type Box struct {
	X, Y         float64 // centre
	HalfW, HalfH float64
}

// Layout is the static geometry of a playfield.
type Layout struct {
	HalfWidth  float64
	HalfHeight float64
	Walls      []Box
	Obstacles  []Box
	GoalLeft   Box
	GoalRight  Box
	Paddles    [2]Box // left, right
}

// Object group and object names recognised in a TMX playfield.
const (
	GroupWalls     = "Walls"
	GroupObstacles = "Obstacles"
	GroupGoals     = "Goals"
	GroupPaddles   = "Paddles"

	NameLeft  = "left"
	NameRight = "right"
)
