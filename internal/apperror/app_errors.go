package apperror

import "errors"

var (
	ErrGameOver          = errors.New("game is already over")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidPosition   = errors.New("invalid board position")
	ErrInvalidPiece      = errors.New("invalid piece value")
	ErrInvalidEncoding   = errors.New("invalid board encoding")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameCanceled      = errors.New("game canceled")
	ErrLookupMiss        = errors.New("board state is not in knowledge")
	ErrConflictPolicy    = errors.New("invalid edge conflict policy")
	ErrKnowledgeNotFound = errors.New("knowledge not found")
)
