package solver

import (
	"github.com/hassek/SokobanSolver/sokoban"
)

// Solver decides whether a Sokoban level is satisfiable. It seeds heuristics
// from the forward board, then runs a depth-first search over box pulls on
// the reversed board, memoized on the canonical state hash.
//
// A Solver is single-use and single-threaded: the memo map and the board's
// reachability cache belong to one puzzle instance and must never be shared.
type Solver struct {
	heuristics map[int]map[sokoban.Position]int
	memo       map[uint64]int
	board      *sokoban.Board

	// originalPlayer is the forward board's player cell. A pull sequence
	// only counts as a solution if the player can still reach it, so that
	// the sequence read backwards starts from the true player position.
	originalPlayer sokoban.Position

	// Steps counts successful box pulls attempted across the whole search.
	Steps int

	opts Options
}

// New builds a Solver for one level: a forward board to seed the heuristics
// and record the original player cell, and a reversed board to search.
func New(level string, opts ...Option) (*Solver, error) {
	options := DefaultOptions()
	for _, fn := range opts {
		fn(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	forward, err := sokoban.New(level)
	if err != nil {
		return nil, err
	}
	player, ok := forward.Player()
	if !ok {
		return nil, ErrNoPlayer
	}
	reversed, err := sokoban.NewReverse(level)
	if err != nil {
		return nil, err
	}

	return &Solver{
		heuristics:     buildHeuristics(forward),
		memo:           make(map[uint64]int),
		board:          reversed,
		originalPlayer: player,
		opts:           options,
	}, nil
}

// Board exposes the searched (reversed) board for diagnostics.
func (s *Solver) Board() *sokoban.Board {
	return s.board
}

// Solve tries every zone candidate as the player start and runs the pull
// search from it. First success wins; the memo map carries over between
// candidates.
func (s *Solver) Solve() bool {
	for _, start := range s.PlayerZones() {
		s.opts.Logger.Debugf("trying player start %s", start)
		s.board.SetPlayer(start)
		if s.solveDFS(0, 0, 0, sokoban.Up, 0) {
			return true
		}
	}
	return false
}

// solved reports the terminal condition: every box sits on a goal and the
// player can walk to the original forward-board player cell.
func (s *Solver) solved() bool {
	return s.board.IsResolved() && s.board.CanReach(s.originalPlayer)
}

// beenHere reports whether the current canonical state was already expanded
// at this depth or shallower; otherwise it records the depth and lets the
// search proceed.
func (s *Solver) beenHere(depth int) bool {
	hash := s.board.Hash()
	if prev, ok := s.memo[hash]; ok && depth >= prev {
		return true
	}
	s.memo[hash] = depth
	return false
}

// solveDFS is the heuristic-pruned depth-first search over box pulls. The
// box and goal cursors rotate so successive depths vary which pairing is
// tried first, and directions cycle from the previous pull's direction.
// Every applied pull is reverted unconditionally after the recursion.
func (s *Solver) solveDFS(cost, goalCursor, boxCursor int, prevDir sokoban.Direction, depth int) bool {
	if s.solved() {
		return true
	}
	if s.beenHere(depth) {
		return false
	}

	// Boxes and goals have equal counts, one cursor modulus serves both.
	n := len(s.board.Boxes)
	for j := 0; j < n; j++ {
		box := (boxCursor + j) % n
		for i := 0; i < n; i++ {
			goal := (goalCursor + i) % n

			blocked := true
			dir := prevDir
			for k := 0; k < 4; k, dir = k+1, dir.Next() {
				bound, ok := s.Heuristic(goal, box)
				if !ok {
					continue
				}
				if s.opts.CostLimit > 0 && cost+bound > s.opts.CostLimit {
					break
				}

				if !s.board.MoveBox(box, dir) {
					continue
				}
				blocked = false
				s.Steps++
				solved := s.solveDFS(cost+1, goal, box, dir, depth+1)
				s.board.UndoMoveBox(box, dir)
				if solved {
					return true
				}
			}

			if blocked {
				if s.shouldCutTree(box) {
					return false
				}
				break
			}
		}
	}
	return false
}

// shouldCutTree classifies a box that no direction could move. A box on a
// goal never cuts: it may still need to move through for a better
// arrangement. Otherwise the branch is abandoned only when every viable
// direction is blocked by a Wall specifically; blockage by another box can
// resolve itself later.
func (s *Solver) shouldCutTree(boxIndex int) bool {
	pos := s.board.Boxes[boxIndex]
	if s.board.TileAt(pos) == sokoban.BoxOnGoal {
		return false
	}

	for _, dir := range sokoban.Directions() {
		boxTo, playerTo, err := sokoban.FuturePositions(pos, dir)
		if err != nil {
			continue
		}
		if s.board.TileAt(boxTo) == sokoban.Wall || s.board.TileAt(playerTo) == sokoban.Wall {
			continue
		}
		return false
	}
	return true
}
