package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hassek/SokobanSolver/sokoban"
	"github.com/hassek/SokobanSolver/solver"
)

// TestHeuristicBFS verifies the relaxed wall-only distance table for a
// single-box level; the box cell itself is distance zero.
func TestHeuristicBFS(t *testing.T) {
	// ######
	// #. # #
	// #$ # #  (right column is open through the bottom corridor)
	// #@   #
	// ######
	b, err := sokoban.New("0506111111120101130101140001111111")
	require.NoError(t, err)

	dist := solver.HeuristicBFS(b, b.Boxes[0])
	want := map[sokoban.Position]int{
		{X: 1, Y: 2}: 0,
		{X: 1, Y: 1}: 1,
		{X: 2, Y: 2}: 1,
		{X: 1, Y: 3}: 1,
		{X: 2, Y: 1}: 2,
		{X: 2, Y: 3}: 2,
		{X: 3, Y: 3}: 3,
		{X: 4, Y: 3}: 4,
		{X: 4, Y: 2}: 5,
		{X: 4, Y: 1}: 6,
	}
	require.Equal(t, want, dist)
}

// TestHeuristic_Unavailable: a box sealed in its own pocket yields no bound
// for cells it can never reach, and those pairings report unavailable.
func TestHeuristic_Unavailable(t *testing.T) {
	// #####
	// #$# #   (left box sealed in a one-cell pocket;
	// ###$#    right box lives in the short right corridor)
	// #@# #
	// #####
	level := "05051111113101111311410111111"
	b, err := sokoban.New(level)
	require.NoError(t, err)
	require.Equal(t, []sokoban.Position{{X: 1, Y: 1}, {X: 3, Y: 2}}, b.Boxes)

	sealed := solver.HeuristicBFS(b, b.Boxes[0])
	require.Equal(t, map[sokoban.Position]int{{X: 1, Y: 1}: 0}, sealed)

	s, err := solver.New(level)
	require.NoError(t, err)

	// goal 1 sits in the right corridor, box 0 in the sealed pocket
	if _, ok := s.Heuristic(1, 0); ok {
		t.Error("Heuristic(1, 0) = available; want unavailable")
	}
	if _, ok := s.Heuristic(0, 1); ok {
		t.Error("Heuristic(0, 1) = available; want unavailable")
	}
	d, ok := s.Heuristic(0, 0)
	require.True(t, ok)
	require.Equal(t, 0, d)
}
