// Package sokoban defines the board primitives for the pull-formulation
// engine: positions, tile kinds, directions, the level digit tables, and
// sentinel errors.
package sokoban

import (
	"errors"
	"fmt"
)

// Sentinel errors for level decoding and geometry.
var (
	// ErrBadHeader indicates the level string is missing or has non-numeric
	// height/width fields.
	ErrBadHeader = errors.New("sokoban: level header must be two 2-digit decimal fields")

	// ErrLevelTooShort indicates the level body holds fewer digits than
	// height*width requires.
	ErrLevelTooShort = errors.New("sokoban: level body shorter than declared grid")

	// ErrBadDigit indicates a level digit outside the 0-6 tile range.
	ErrBadDigit = errors.New("sokoban: level digit outside tile range")

	// ErrOutOfBounds indicates a hypothetical move would shift a coordinate
	// below zero.
	ErrOutOfBounds = errors.New("sokoban: move would leave the grid")
)

// Position identifies a grid cell by its (x, y) coordinates.
// It is an immutable value and totally ordered in row-major order.
type Position struct {
	X, Y int
}

// Less reports whether p precedes o in row-major order.
func (p Position) Less(o Position) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// String renders the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Tile is the kind of a cell. The numeric values double as the level
// encoding digits.
type Tile int

const (
	Empty Tile = iota
	Wall
	Goal
	Box
	Player
	BoxOnGoal
	PlayerOnGoal
)

// IsPlayer reports whether the tile carries the player.
func (t Tile) IsPlayer() bool {
	return t == Player || t == PlayerOnGoal
}

// IsBox reports whether the tile carries a box.
func (t Tile) IsBox() bool {
	return t == Box || t == BoxOnGoal
}

// IsGoal reports whether the tile sits on a goal cell.
func (t Tile) IsGoal() bool {
	return t == Goal || t == BoxOnGoal || t == PlayerOnGoal
}

// CanMove reports whether a player or a box may occupy or cross the cell.
func (t Tile) CanMove() bool {
	return t != Wall && t != Box && t != BoxOnGoal
}

// String renders the tile as its diagnostic glyph.
func (t Tile) String() string {
	switch t {
	case Empty:
		return " "
	case Wall:
		return "#"
	case Goal:
		return "."
	case Box:
		return "$"
	case Player:
		return "@"
	case BoxOnGoal:
		return "*"
	case PlayerOnGoal:
		return "+"
	}
	return "?"
}

// tileFromDigit maps a forward-table level digit to its tile kind.
func tileFromDigit(d int) (Tile, error) {
	if d < 0 || d > int(PlayerOnGoal) {
		return Empty, fmt.Errorf("%w: %d", ErrBadDigit, d)
	}
	return Tile(d), nil
}

// reverseTileFromDigit maps a level digit to its pull-formulation tile kind:
// the goal and box digits swap roles, and player-on-goal folds into a box.
// Decoding a level through this table yields a board where the boxes start
// on the original goals and must be pulled back to the original box cells.
func reverseTileFromDigit(d int) (Tile, error) {
	switch d {
	case 0:
		return Empty, nil
	case 1:
		return Wall, nil
	case 2:
		return Box, nil
	case 3:
		return Goal, nil
	case 4:
		return Player, nil
	case 5:
		return BoxOnGoal, nil
	case 6:
		return Box, nil
	}
	return Empty, fmt.Errorf("%w: %d", ErrBadDigit, d)
}

// Direction is one of the four orthogonal pull directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Next returns the following direction in the fixed ring
// Up → Down → Left → Right → Up.
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// Directions lists all four directions in ring order.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// String renders the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "?"
}
