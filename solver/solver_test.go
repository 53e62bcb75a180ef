package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hassek/SokobanSolver/sokoban"
	"github.com/hassek/SokobanSolver/solver"
)

// TestNew_Errors covers construction failures: malformed levels, missing
// player, and invalid options.
func TestNew_Errors(t *testing.T) {
	if _, err := solver.New("xx"); !errors.Is(err, sokoban.ErrBadHeader) {
		t.Errorf("malformed level: err = %v; want ErrBadHeader", err)
	}
	// valid grid, no player digit anywhere
	if _, err := solver.New("0303111101111"); !errors.Is(err, solver.ErrNoPlayer) {
		t.Errorf("no player: err = %v; want ErrNoPlayer", err)
	}
	if _, err := solver.New("0303111141111", solver.WithCostLimit(-1)); !errors.Is(err, solver.ErrOptionViolation) {
		t.Errorf("negative cost limit: err = %v; want ErrOptionViolation", err)
	}
}

// TestSolve_Solvable: the end-to-end fixture must be reported solvable and
// the step counter must reflect the pulls attempted.
func TestSolve_Solvable(t *testing.T) {
	s, err := solver.New("0706111100102100100111154001100301100111111100")
	require.NoError(t, err)
	require.True(t, s.Solve())
	require.Greater(t, s.Steps, 0)
}

// TestSolve_Unsolvable: a box wedged in a corner away from its goal makes
// the search cut the tree and report failure quickly.
func TestSolve_Unsolvable(t *testing.T) {
	// ####
	// #$ #   (reversed view: the box must reach the top-left goal
	// #@X#    but sits wall-wedged in the lower-right corner)
	// ####
	s, err := solver.New("04041111130114211111")
	require.NoError(t, err)
	require.False(t, s.Solve())
}

// TestSolve_AlreadyResolved: every box starts on a goal, so the search
// succeeds without a single pull.
func TestSolve_AlreadyResolved(t *testing.T) {
	s, err := solver.New("0506111111155101100101140001111111")
	require.NoError(t, err)
	require.True(t, s.Solve())
	require.Equal(t, 0, s.Steps)
}

// TestShouldCutTree_OnGoalNeverCuts: a wall-cornered box that already sits
// on a goal must never cut the branch.
func TestShouldCutTree_OnGoalNeverCuts(t *testing.T) {
	s, err := solver.New("04041111150114011111")
	require.NoError(t, err)
	require.Equal(t, sokoban.BoxOnGoal, s.Board().TileAt(s.Board().Boxes[0]))
	require.False(t, solver.ShouldCutTree(s, 0))
}

// TestShouldCutTree_WallWedged: off-goal and wall-blocked in every viable
// direction means the branch is hopeless.
func TestShouldCutTree_WallWedged(t *testing.T) {
	s, err := solver.New("04041111130114211111")
	require.NoError(t, err)
	require.Equal(t, sokoban.Box, s.Board().TileAt(s.Board().Boxes[0]))
	require.True(t, solver.ShouldCutTree(s, 0))
}

// TestShouldCutTree_BoxBlocked: a box blocked only by another box keeps the
// branch open, since the blocker may move away later.
func TestShouldCutTree_BoxBlocked(t *testing.T) {
	// ######
	// #    #   (reversed view: two boxes side by side mid-floor;
	// # $$ #    each blocks the other but nothing is wall-wedged)
	// #@  .#
	// ######
	s, err := solver.New("0506111111100001102201140031111111")
	require.NoError(t, err)
	require.Len(t, s.Board().Boxes, 2)
	require.False(t, solver.ShouldCutTree(s, 0))
	require.False(t, solver.ShouldCutTree(s, 1))
}

// TestSolve_CostLimit: a bound of 1 caps the search at two pulls, far short
// of what the fixture needs, so it comes back unsolved.
func TestSolve_CostLimit(t *testing.T) {
	s, err := solver.New("0706111100102100100111154001100301100111111100", solver.WithCostLimit(1))
	require.NoError(t, err)
	require.False(t, s.Solve())
}
