// Package perspective relabels flat board encodings so that the knowledge graph
// only ever has to learn one player's point of view.
//
// A flat encoding is the 9 character row-major string produced by entity.Board.Encode.
// In a first person encoding the player of interest is always '1'.
package perspective

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

var swapper = strings.NewReplacer("1", "2", "2", "1")

// Invert - swaps every '1' with '2' and back, leaving '0' untouched.
func Invert(flat string) string {
	return swapper.Replace(flat)
}

// FirstPerson - frames flat so that piece is '1'. Applied to the board after a move.
func FirstPerson(flat string, piece entity.Piece) string {
	if piece == entity.PlayerOne {
		return flat
	}

	return Invert(flat)
}

// SecondPerson - the complement of FirstPerson. Applied to the board before a move,
// it produces the knowledge graph lookup key.
func SecondPerson(flat string, piece entity.Piece) string {
	if piece == entity.PlayerTwo {
		return flat
	}

	return Invert(flat)
}

// Diff - returns the (col, row) of the first cell, in row-major order, that is
// empty in prev and filled in cur. ok is false when there is no such cell.
func Diff(prev, cur string) (entity.Position, bool) {
	n := min(len(prev), len(cur), entity.CellCount)

	for i := 0; i < n; i++ {
		if prev[i] == '0' && cur[i] != '0' {
			return entity.Position{Col: i % entity.BoardSize, Row: i / entity.BoardSize}, true
		}
	}

	return entity.NoPosition, false
}
