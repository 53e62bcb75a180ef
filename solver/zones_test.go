package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hassek/SokobanSolver/solver"
)

// TestPlayerZones_Split covers boards whose reversed floor falls apart into
// several regions; each box-touching region yields exactly one candidate.
func TestPlayerZones_Split(t *testing.T) {
	cases := []struct {
		name  string
		level string
		zones int
	}{
		{"EightBySeven", "080711111111200601110020101011011001101113230101020100111110", 2},
		{"SevenBySix", "0706111110104010122210133311100001100001111111", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := solver.New(tc.level)
			require.NoError(t, err)
			require.Len(t, s.PlayerZones(), tc.zones)
		})
	}
}

// TestPlayerZones_SingleRegion: one open room with a box gives one candidate.
func TestPlayerZones_SingleRegion(t *testing.T) {
	s, err := solver.New("05051111112001134011000111111")
	require.NoError(t, err)
	require.Len(t, s.PlayerZones(), 1)
}

// TestPlayerZones_BoxlessRegion: a walkable region with no box in reach
// contributes no candidate since the player could never act from it.
func TestPlayerZones_BoxlessRegion(t *testing.T) {
	// ######
	// #$#  #   (reversed view; the right room holds no box)
	// #@#  #
	// # #  #
	// ######
	s, err := solver.New("0506111111121001141001101001111111")
	require.NoError(t, err)

	zones := s.PlayerZones()
	require.Len(t, zones, 1)
	// the candidate must lie in the left corridor
	for _, z := range zones {
		require.Less(t, z.X, 2, "candidate %s should sit left of the dividing wall", z)
	}
}

// TestPlayerZones_CandidatesAreWalkable: every candidate is a movable cell
// of the searched board.
func TestPlayerZones_CandidatesAreWalkable(t *testing.T) {
	s, err := solver.New("080711111111200601110020101011011001101113230101020100111110")
	require.NoError(t, err)
	for _, z := range s.PlayerZones() {
		require.True(t, s.Board().TileAt(z).CanMove(), "zone candidate %s is not walkable", z)
	}
}
