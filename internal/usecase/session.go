package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
)

// Session is one human versus CPU game. X always moves first.
type Session struct {
	board *entity.Board
	cpu   *tictactoe.CPU

	human      entity.Piece
	difficulty int
	turn       entity.Piece
}

func NewSession(cpu *tictactoe.CPU, human entity.Piece, difficulty int) (*Session, error) {
	if !human.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPiece, human)
	}

	return &Session{
		board:      entity.NewBoard(),
		cpu:        cpu,
		human:      human,
		difficulty: tictactoe.ClampDifficulty(difficulty),
		turn:       entity.PlayerOne,
	}, nil
}

// Start - lets the CPU open when it plays X. The returned move is nil when the human opens.
func (that *Session) Start() (*tictactoe.Move, error) {
	if that.turn != that.CPUPiece() {
		return nil, nil
	}

	return that.cpuTurn()
}

// HumanTurn - plays the human's move and, unless that ended the game, the CPU's answer.
// A rejected human move leaves the session unchanged.
func (that *Session) HumanTurn(pos entity.Position) (*tictactoe.Move, error) {
	if that.board.IsOver() {
		return nil, apperror.ErrGameOver
	}

	if that.turn != that.human {
		return nil, apperror.ErrNotYourTurn
	}

	if err := that.board.Place(that.human, pos); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	that.turn = that.CPUPiece()

	if that.board.IsOver() {
		return nil, nil
	}

	return that.cpuTurn()
}

func (that *Session) cpuTurn() (*tictactoe.Move, error) {
	move, err := that.cpu.PlacePiece(that.board, that.CPUPiece(), that.difficulty)
	if err != nil {
		return nil, fmt.Errorf("cpu failed to make turn: %w", err)
	}

	that.turn = that.human

	return &move, nil
}

func (that *Session) HumanPiece() entity.Piece {
	return that.human
}

func (that *Session) CPUPiece() entity.Piece {
	return that.human.Opponent()
}

// Turn - the piece to move next, or Empty once the game is over.
func (that *Session) Turn() entity.Piece {
	if that.board.IsOver() {
		return entity.Empty
	}

	return that.turn
}

func (that *Session) IsOver() bool {
	return that.board.IsOver()
}

func (that *Session) Winner() entity.Piece {
	return that.board.Winner()
}

func (that *Session) Snapshot() entity.Snapshot {
	return that.board.Snapshot()
}

func (that *Session) Encode() string {
	return that.board.Encode()
}

// SessionFactory starts sessions that all share one CPU.
type SessionFactory struct {
	cpu *tictactoe.CPU
}

func NewSessionFactory(cpu *tictactoe.CPU) *SessionFactory {
	return &SessionFactory{
		cpu: cpu,
	}
}

func (that *SessionFactory) NewSession(human entity.Piece, difficulty int) (*Session, error) {
	return NewSession(that.cpu, human, difficulty)
}
