package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayGameStopsAtMoveLimit(t *testing.T) {
	a := PlayerConfig{Name: "a", Depth: 1}
	b := PlayerConfig{Name: "b", Depth: 1}
	res, err := playGame(a, b, 6)
	require.NoError(t, err)
	require.Equal(t, "move limit", res.reason)
	require.Equal(t, 6, res.plies)
	require.Len(t, res.moves, 6)

	again, err := playGame(a, b, 6)
	require.NoError(t, err)
	require.Equal(t, res.moves, again.moves)
}
