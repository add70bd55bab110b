package chess

import "github.com/pkg/errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrInvalidFEN  = errors.New("invalid FEN")
)
