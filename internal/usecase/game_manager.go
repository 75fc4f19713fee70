package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
)

// prompter asks the human for a move. It returns apperror.ErrGameCanceled when the human quits.
type prompter interface {
	PromptPosition(ctx context.Context, snapshot entity.Snapshot) (entity.Position, error)
}

type renderer interface {
	RenderMove(piece entity.Piece, snapshot entity.Snapshot)
	RenderError(err error)
	RenderResult(winner entity.Piece)
}

type GameManager struct {
	logger *slog.Logger
	cpu    *tictactoe.CPU

	prompter prompter
	renderer renderer
}

func NewGameManager(logger *slog.Logger, cpu *tictactoe.CPU, prompter prompter, renderer renderer) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		cpu:      cpu,
		prompter: prompter,
		renderer: renderer,
	}
}

func (that *GameManager) NewSession(human entity.Piece, difficulty int) (*Session, error) {
	return NewSession(that.cpu, human, difficulty)
}

// PlayGame - plays one game against the human and returns the winner (Empty for a tie).
// Illegal human moves are shown to the human and asked again. Cancelling aborts the game;
// the CPU's knowledge is never written during play.
func (that *GameManager) PlayGame(ctx context.Context, human entity.Piece, difficulty int) (entity.Piece, error) {
	log := that.logger.With("method", "PlayGame", "human", human.String(), "difficulty", difficulty)

	session, err := that.NewSession(human, difficulty)
	if err != nil {
		return entity.Empty, fmt.Errorf("failed to create session: %w", err)
	}

	cpuMove, err := session.Start()
	if err != nil {
		return entity.Empty, fmt.Errorf("failed to start game: %w", err)
	}

	if cpuMove != nil {
		that.renderer.RenderMove(cpuMove.Piece, session.Snapshot())
	}

	for !session.IsOver() {
		pos, err := that.prompter.PromptPosition(ctx, session.Snapshot())
		if err != nil {
			log.Info("game aborted", "error", err)
			return entity.Empty, fmt.Errorf("failed to get human move: %w", err)
		}

		cpuMove, err = session.HumanTurn(pos)
		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidPosition) {
			that.renderer.RenderError(err)
			continue
		}

		if err != nil {
			return entity.Empty, fmt.Errorf("failed to make turn: %w", err)
		}

		that.renderer.RenderMove(session.HumanPiece(), that.snapshotBefore(session, cpuMove))

		if cpuMove != nil {
			log.Debug("cpu moved", "cell", cpuMove.Position.Number(), "source", cpuMove.Source.String())
			that.renderer.RenderMove(cpuMove.Piece, session.Snapshot())
		}
	}

	winner := session.Winner()
	that.renderer.RenderResult(winner)

	log.Info("game finished", "winner", winner.String(), "board", session.Encode())

	return winner, nil
}

// snapshotBefore - the board as it was right after the human's move.
func (that *GameManager) snapshotBefore(session *Session, cpuMove *tictactoe.Move) entity.Snapshot {
	snapshot := session.Snapshot()
	if cpuMove != nil && cpuMove.Position.Valid() {
		snapshot[cpuMove.Position.Row][cpuMove.Position.Col] = entity.Empty
	}

	return snapshot
}
