package sokoban

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Board is the mutable puzzle state. The static map stores floor kinds only
// (Empty, Wall, Goal); box and player presence is layered on top by TileAt
// and never written back after construction. Boxes is index-stable: an index
// identifies the same box across a whole search branch.
type Board struct {
	Width, Height int
	static        map[Position]Tile
	player        Position
	hasPlayer     bool
	Boxes         []Position
	Goals         []Position

	// reachable caches the byte matrix built by the last Hash call,
	// indexed [x][y]. It is invalidated by any box or player move.
	reachable [][]byte
}

// New decodes a level string with the forward digit table.
// Complexity: O(W×H) time and memory.
func New(level string) (*Board, error) {
	return build(level, tileFromDigit)
}

// NewReverse decodes a level string with the reversed digit table, producing
// the pull-formulation board the search actually runs on.
func NewReverse(level string) (*Board, error) {
	return build(level, reverseTileFromDigit)
}

// parseLevel splits a level string into its height and width header fields
// and the digit body.
func parseLevel(level string) (height, width int, body string, err error) {
	if len(level) < 4 {
		return 0, 0, "", fmt.Errorf("%w: %q", ErrBadHeader, level)
	}
	if height, err = strconv.Atoi(level[0:2]); err != nil {
		return 0, 0, "", fmt.Errorf("%w: height %q", ErrBadHeader, level[0:2])
	}
	if width, err = strconv.Atoi(level[2:4]); err != nil {
		return 0, 0, "", fmt.Errorf("%w: width %q", ErrBadHeader, level[2:4])
	}
	return height, width, level[4:], nil
}

func build(level string, fromDigit func(int) (Tile, error)) (*Board, error) {
	height, width, body, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if len(body) < height*width {
		return nil, fmt.Errorf("%w: have %d digits, want %d", ErrLevelTooShort, len(body), height*width)
	}

	b := &Board{
		Width:  width,
		Height: height,
		static: make(map[Position]Tile, height*width),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile, err := fromDigit(int(body[y*width+x] - '0'))
			if err != nil {
				return nil, err
			}
			pos := Position{X: x, Y: y}
			if tile.IsPlayer() {
				b.player, b.hasPlayer = pos, true
				if tile == Player {
					tile = Empty
				} else {
					tile = Goal
				}
			}
			if tile.IsBox() {
				b.Boxes = append(b.Boxes, pos)
				if tile == Box {
					tile = Empty
				} else {
					tile = Goal
				}
			}
			if tile.IsGoal() {
				b.Goals = append(b.Goals, pos)
			}
			b.static[pos] = tile
		}
	}
	return b, nil
}

// Player returns the current player cell, if one has been placed.
func (b *Board) Player() (Position, bool) {
	return b.player, b.hasPlayer
}

// SetPlayer moves the player to pos, invalidating the reachability cache.
func (b *Board) SetPlayer(pos Position) {
	b.player, b.hasPlayer = pos, true
	b.reachable = nil
}

// TileAt returns the composite tile kind at pos: the static floor kind with
// box and player occupancy layered on top. Positions outside the stored map
// read as Wall; callers rely on that for high-boundary neighbor probes.
// Recomputed on every call. Complexity: O(len(Boxes)).
func (b *Board) TileAt(pos Position) Tile {
	tile, ok := b.static[pos]
	if !ok {
		return Wall
	}
	for _, box := range b.Boxes {
		if box == pos {
			if tile == Goal {
				tile = BoxOnGoal
			} else {
				tile = Box
			}
			break
		}
	}
	if b.hasPlayer && pos == b.player {
		if tile == Goal {
			tile = PlayerOnGoal
		} else {
			tile = Player
		}
	}
	return tile
}

// Neighbors returns the orthogonal neighbor candidates of pos. Only the low
// boundary is guarded; high-boundary candidates resolve to Wall via TileAt.
func (b *Board) Neighbors(pos Position) []Position {
	adj := make([]Position, 0, 4)
	if pos.X > 0 {
		adj = append(adj, Position{X: pos.X - 1, Y: pos.Y})
	}
	adj = append(adj, Position{X: pos.X + 1, Y: pos.Y})
	if pos.Y > 0 {
		adj = append(adj, Position{X: pos.X, Y: pos.Y - 1})
	}
	adj = append(adj, Position{X: pos.X, Y: pos.Y + 1})
	return adj
}

// Encode re-derives the level string from the current composite state.
// For any board built by New, Encode returns the original string.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(4 + b.Width*b.Height)
	fmt.Fprintf(&sb, "%02d%02d", b.Height, b.Width)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteByte(byte('0') + byte(b.TileAt(Position{X: x, Y: y})))
		}
	}
	return sb.String()
}

// FuturePositions computes, without mutating the board, the cells a pull in
// dir would send the box (one step) and the player (two steps) to, starting
// from the box cell from. Returns ErrOutOfBounds when the shift would move a
// coordinate below zero.
func FuturePositions(from Position, dir Direction) (boxTo, playerTo Position, err error) {
	boxTo, playerTo = from, from
	switch dir {
	case Up:
		if from.Y < 2 {
			return from, from, ErrOutOfBounds
		}
		boxTo.Y--
		playerTo.Y -= 2
	case Down:
		boxTo.Y++
		playerTo.Y += 2
	case Left:
		if from.X < 2 {
			return from, from, ErrOutOfBounds
		}
		boxTo.X--
		playerTo.X -= 2
	case Right:
		boxTo.X++
		playerTo.X += 2
	}
	return boxTo, playerTo, nil
}

// MoveBox pulls box i one cell in dir: the box advances one step and the
// player ends two steps out, having stepped backward through the box's
// destination. The pull applies only if both destination cells are movable
// and the player can currently walk to the box's destination without
// displacing any box. Reports whether the move was applied; on failure the
// board is unchanged.
func (b *Board) MoveBox(i int, dir Direction) bool {
	boxTo, playerTo, err := FuturePositions(b.Boxes[i], dir)
	if err != nil {
		return false
	}
	if !b.TileAt(boxTo).CanMove() || !b.TileAt(playerTo).CanMove() || !b.CanReach(boxTo) {
		return false
	}
	b.Boxes[i] = boxTo
	b.SetPlayer(playerTo)
	log.Debugf("moved box=%s player=%s %s%s %v", boxTo, playerTo, dir, b, b.Boxes)
	return true
}

// UndoMoveBox is the exact O(1) inverse of a successful MoveBox(i, dir):
// the player lands on the box's current cell and the box steps back one
// cell against dir. The prior player cell is not restored; any cell in the
// same reachable region is pull-equivalent.
func (b *Board) UndoMoveBox(i int, dir Direction) {
	b.SetPlayer(b.Boxes[i])
	box := b.Boxes[i]
	switch dir {
	case Up:
		box.Y++
	case Down:
		box.Y--
	case Left:
		box.X++
	case Right:
		box.X--
	}
	b.Boxes[i] = box
}

// IsResolved reports whether the set of box cells equals the set of goal
// cells. Which box occupies which goal is irrelevant.
func (b *Board) IsResolved() bool {
	if len(b.Boxes) != len(b.Goals) {
		return false
	}
	goals := make(map[Position]struct{}, len(b.Goals))
	for _, g := range b.Goals {
		goals[g] = struct{}{}
	}
	for _, box := range b.Boxes {
		if _, ok := goals[box]; !ok {
			return false
		}
	}
	return true
}

// String renders the board as one glyph row per grid row, each prefixed with
// its row index mod 10. Diagnostic only; Encode is the authoritative form.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		sb.WriteByte('\n')
		sb.WriteByte(byte('0') + byte(y%10))
		for x := 0; x < b.Width; x++ {
			sb.WriteString(b.TileAt(Position{X: x, Y: y}).String())
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
