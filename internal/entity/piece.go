package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

// Piece is the value held by a board cell.
type Piece int

const (
	Empty Piece = iota
	PlayerOne
	PlayerTwo
)

const (
	MarkX     = "X"
	MarkO     = "O"
	MarkEmpty = " "
)

func (that Piece) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent - returns the other player's piece. Empty stays Empty.
func (that Piece) Opponent() Piece {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Piece) String() string {
	switch that {
	case PlayerOne:
		return MarkX
	case PlayerTwo:
		return MarkO
	default:
		return MarkEmpty
	}
}

// PieceFromMark - parses a player mark. X plays first; "0" is accepted for O.
func PieceFromMark(mark string) (Piece, error) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case MarkX, "1":
		return PlayerOne, nil
	case MarkO, "0", "2":
		return PlayerTwo, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidPiece, mark)
	}
}
