package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Position addresses a cell as (column, row), zero indexed from the top left corner.
// Cells are stored row-major, so the flat index is Row*BoardSize+Col.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// NoPosition is returned when no cell was chosen.
var NoPosition = Position{Col: -1, Row: -1}

func (that Position) Valid() bool {
	return that.Col >= 0 && that.Col < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

func (that Position) Index() int {
	return that.Row*BoardSize + that.Col
}

// Number - returns the 1..9 cell number shown to humans.
func (that Position) Number() int {
	return that.Index() + 1
}

func PositionFromIndex(index int) (Position, error) {
	if index < 0 || index >= CellCount {
		return NoPosition, fmt.Errorf("%w: index %d", apperror.ErrInvalidPosition, index)
	}

	return Position{Col: index % BoardSize, Row: index / BoardSize}, nil
}

// PositionFromNumber - converts a human cell number (1..9, row-major) to a position.
func PositionFromNumber(number int) (Position, error) {
	if number < 1 || number > CellCount {
		return NoPosition, fmt.Errorf("%w: cell number %d", apperror.ErrInvalidPosition, number)
	}

	return PositionFromIndex(number - 1)
}
