package chess

import "github.com/pkg/errors"

type moveRule func(b *Board, from Coord, moves *[]Move)

var moveRules = [...]moveRule{
	Pawn:   genPawnMoves,
	Knight: genKnightMoves,
	Bishop: genBishopMoves,
	Rook:   genRookMoves,
	Queen:  genQueenMoves,
	King:   genKingMoves,
}

// genRawMoves appends the moves of the piece on from, ignoring check.
func (b *Board) genRawMoves(from Coord, moves *[]Move) {
	p := b.at(from)
	if p == nil || p.Kind <= KindNone || int(p.Kind) >= len(moveRules) {
		return
	}
	moveRules[p.Kind](b, from, moves)
}

// RawMoves returns the moves of the piece on from that satisfy its movement
// shape, without filtering moves that expose its own king.
func (b *Board) RawMoves(from Coord) []Move {
	if !from.Valid() {
		return nil
	}
	var moves []Move
	b.genRawMoves(from, &moves)
	return moves
}

// calcMoves fills p.moves with its legal moves from the given square.
func (b *Board) calcMoves(p *Piece, from Coord) {
	var raw []Move
	b.genRawMoves(from, &raw)
	p.clearMoves()
	for _, m := range raw {
		if !b.leavesKingAttacked(m) {
			p.moves = append(p.moves, m)
		}
	}
}

// LegalMoves returns every legal move of color in board scan order.
func (b *Board) LegalMoves(color Color) []Move {
	var out []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.squares[r][c].Piece
			if p == nil || p.Color != color {
				continue
			}
			b.calcMoves(p, Coord{Row: r, Col: c})
			out = append(out, p.moves...)
			p.clearMoves()
		}
	}
	return out
}

// PieceMoves returns the legal moves of the piece standing on c.
func (b *Board) PieceMoves(c Coord) ([]Move, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrOutOfBounds, "%+v", c)
	}
	p := b.at(c)
	if p == nil {
		return nil, nil
	}
	b.calcMoves(p, c)
	out := p.moves
	p.clearMoves()
	return out, nil
}

// Perft counts leaf nodes of the legal move tree, alternating sides from color.
func (b *Board) Perft(color Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(color)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.apply(m)
		nodes += b.Perft(color.Opponent(), depth-1)
		b.UndoMove()
	}
	return nodes
}
