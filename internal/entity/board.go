package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

// Random is the source of randomness used for move selection.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Snapshot is a read-only copy of the board for renderers, indexed [row][col].
type Snapshot [BoardSize][BoardSize]Piece

// WinLines lists the lines in the order they are scanned:
// both diagonals, then the rows, then the columns.
var WinLines = [8][3]int{
	{0, 4, 8},
	{2, 4, 6},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
}

type Board struct {
	cells  [CellCount]Piece
	over   bool
	winner Piece

	lastPiece    Piece
	lastPosition Position
}

func NewBoard() *Board {
	return &Board{lastPosition: NoPosition}
}

// BoardFromEncoding - rebuilds a board from its flat encoding and evaluates its terminal state.
func BoardFromEncoding(flat string) (*Board, error) {
	if !ValidEncoding(flat) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidEncoding, flat)
	}

	board := NewBoard()
	for i := 0; i < CellCount; i++ {
		board.cells[i] = Piece(flat[i] - '0')
	}

	board.winner = board.evaluateTerminal()

	return board, nil
}

// ValidEncoding - reports whether flat is 9 characters of '0', '1' or '2'.
func ValidEncoding(flat string) bool {
	if len(flat) != CellCount {
		return false
	}

	for i := 0; i < len(flat); i++ {
		if flat[i] < '0' || flat[i] > '2' {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{lastPosition: NoPosition}
}

// Place - puts piece at pos and re-evaluates the terminal state.
// A rejected move leaves the board untouched.
func (that *Board) Place(piece Piece, pos Position) error {
	if that.over {
		return apperror.ErrGameOver
	}

	if !pos.Valid() {
		return fmt.Errorf("%w: col %d row %d", apperror.ErrInvalidPosition, pos.Col, pos.Row)
	}

	if !piece.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPiece, piece)
	}

	if that.cells[pos.Index()] != Empty {
		return fmt.Errorf("%w: col %d row %d", apperror.ErrCellOccupied, pos.Col, pos.Row)
	}

	that.cells[pos.Index()] = piece
	that.lastPiece = piece
	that.lastPosition = pos

	that.winner = that.evaluateTerminal()

	return nil
}

// PlaceRandom - places piece on a uniformly chosen empty cell.
// With no empty cell left the game is marked over as a tie and NoPosition is returned.
func (that *Board) PlaceRandom(rnd Random, piece Piece) (Position, error) {
	if that.over {
		return NoPosition, apperror.ErrGameOver
	}

	open := that.EmptyPositions()
	if len(open) == 0 {
		that.over = true
		that.winner = Empty

		return NoPosition, nil
	}

	pos := open[rnd.Intn(len(open))]
	if err := that.Place(piece, pos); err != nil {
		return NoPosition, err
	}

	return pos, nil
}

// evaluateTerminal - returns the owner of the first complete line, marking the game over.
// A full board without a line is a tie: the game is over and Empty is returned.
func (that *Board) evaluateTerminal() Piece {
	for _, line := range WinLines {
		a, b, c := that.cells[line[0]], that.cells[line[1]], that.cells[line[2]]
		if a != Empty && a == b && b == c {
			that.over = true
			return a
		}
	}

	for _, cell := range that.cells {
		if cell == Empty {
			return Empty
		}
	}

	that.over = true

	return Empty
}

func (that *Board) IsOver() bool {
	return that.over
}

// Winner - returns the winning piece, or Empty while the game runs or after a tie.
func (that *Board) Winner() Piece {
	return that.winner
}

func (that *Board) IsTie() bool {
	return that.over && that.winner == Empty
}

// LastPlayed - returns the last placed piece and where it went.
func (that *Board) LastPlayed() (Piece, Position, bool) {
	if that.lastPiece == Empty {
		return Empty, NoPosition, false
	}

	return that.lastPiece, that.lastPosition, true
}

func (that *Board) At(pos Position) Piece {
	if !pos.Valid() {
		return Empty
	}

	return that.cells[pos.Index()]
}

func (that *Board) EmptyPositions() []Position {
	open := make([]Position, 0, CellCount)
	for i, cell := range that.cells {
		if cell == Empty {
			open = append(open, Position{Col: i % BoardSize, Row: i / BoardSize})
		}
	}

	return open
}

// Encode - returns the flat row-major encoding, e.g. "120000000".
func (that *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range that.cells {
		sb.WriteByte(byte('0' + cell))
	}

	return sb.String()
}

func (that *Board) Snapshot() Snapshot {
	var snapshot Snapshot
	for i, cell := range that.cells {
		snapshot[i/BoardSize][i%BoardSize] = cell
	}

	return snapshot
}
