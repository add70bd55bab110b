package chess

var knightOffsets = [][2]int{
	{2, 1}, {2, -1},
	{-2, 1}, {-2, -1},
	{1, 2}, {1, -2},
	{-1, 2}, {-1, -2},
}

func genKnightMoves(b *Board, from Coord, moves *[]Move) {
	genStepMoves(b, from, knightOffsets, moves)
}
