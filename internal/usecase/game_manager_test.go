package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-cpu/mocks/usecase"
)

// scripted answers the prompts with the given cell indexes in order.
func scripted(t *testing.T, cells ...int) func(context.Context, entity.Snapshot) (entity.Position, error) {
	next := 0

	return func(context.Context, entity.Snapshot) (entity.Position, error) {
		require.Less(t, next, len(cells), "unexpected prompt")

		pos := position(t, cells[next])
		next++

		return pos, nil
	}
}

func newTestGameManager(t *testing.T, knowledge *graph.Graph) (*GameManager, *mockedUseCase.Mockprompter, *mockedUseCase.Mockrenderer) {
	t.Helper()

	mockPrompter := mockedUseCase.NewMockprompter(t)
	mockRenderer := mockedUseCase.NewMockrenderer(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameManager(logger, newTestCPU(knowledge), mockPrompter, mockRenderer), mockPrompter, mockRenderer
}

func TestGameManager_PlayGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Human wins as X", func(t *testing.T) {
		// Given: a CPU that always takes the first empty cell
		manager, mockPrompter, mockRenderer := newTestGameManager(t, graph.New())

		mockPrompter.EXPECT().
			PromptPosition(mock.Anything, mock.Anything).
			RunAndReturn(scripted(t, 0, 4, 8)).
			Times(3)

		var rendered []entity.Snapshot
		mockRenderer.EXPECT().
			RenderMove(mock.Anything, mock.Anything).
			Run(func(_ entity.Piece, snapshot entity.Snapshot) {
				rendered = append(rendered, snapshot)
			}).
			Times(5)
		mockRenderer.EXPECT().RenderResult(entity.PlayerOne).Once()

		// When: playing the game
		winner, err := manager.PlayGame(ctx, entity.PlayerOne, 100)

		// Then: X wins and every move was shown one at a time
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOne, winner)

		require.Len(t, rendered, 5)
		assert.Equal(t, entity.PlayerOne, rendered[0][0][0])
		assert.Equal(t, entity.Empty, rendered[0][0][1])
		assert.Equal(t, entity.PlayerTwo, rendered[1][0][1])
	})

	t.Run("CPU wins as X", func(t *testing.T) {
		manager, mockPrompter, mockRenderer := newTestGameManager(t, graph.New())

		// Given: the CPU opens on 0 and keeps filling the top row
		mockPrompter.EXPECT().
			PromptPosition(mock.Anything, mock.Anything).
			RunAndReturn(scripted(t, 4, 8)).
			Times(2)
		mockRenderer.EXPECT().RenderMove(entity.PlayerOne, mock.Anything).Times(3)
		mockRenderer.EXPECT().RenderMove(entity.PlayerTwo, mock.Anything).Times(2)
		mockRenderer.EXPECT().RenderResult(entity.PlayerOne).Once()

		// When: the human plays O
		winner, err := manager.PlayGame(ctx, entity.PlayerTwo, 100)

		// Then: the CPU wins
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOne, winner)
	})

	t.Run("Occupied cell is shown and asked again", func(t *testing.T) {
		manager, mockPrompter, mockRenderer := newTestGameManager(t, graph.New())

		// Given: the human first picks the cell the CPU opened on
		mockPrompter.EXPECT().
			PromptPosition(mock.Anything, mock.Anything).
			RunAndReturn(scripted(t, 0, 4, 8)).
			Times(3)
		mockRenderer.EXPECT().
			RenderError(mock.MatchedBy(func(err error) bool {
				return errors.Is(err, apperror.ErrCellOccupied)
			})).
			Once()
		mockRenderer.EXPECT().RenderMove(mock.Anything, mock.Anything).Maybe()
		mockRenderer.EXPECT().RenderResult(entity.PlayerOne).Once()

		// When: playing as O
		winner, err := manager.PlayGame(ctx, entity.PlayerTwo, 100)

		// Then: the game still finishes
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOne, winner)
	})

	t.Run("Cancel aborts without touching knowledge", func(t *testing.T) {
		// Given: some knowledge
		knowledge := graph.New()
		knowledge.AddNode("000000000", graph.Edge{To: "000010000", Weight: 5})
		before, err := json.Marshal(knowledge)
		require.NoError(t, err)

		manager, mockPrompter, _ := newTestGameManager(t, knowledge)

		mockPrompter.EXPECT().
			PromptPosition(mock.Anything, mock.Anything).
			Return(entity.NoPosition, apperror.ErrGameCanceled).
			Once()

		// When: the human quits at the first prompt
		winner, err := manager.PlayGame(ctx, entity.PlayerOne, 100)

		// Then: the game is canceled and knowledge is untouched
		require.ErrorIs(t, err, apperror.ErrGameCanceled)
		assert.Equal(t, entity.Empty, winner)

		after, err := json.Marshal(knowledge)
		require.NoError(t, err)
		assert.JSONEq(t, string(before), string(after))
	})

	t.Run("Invalid piece", func(t *testing.T) {
		manager, _, _ := newTestGameManager(t, graph.New())

		// When: playing with no piece
		_, err := manager.PlayGame(ctx, entity.Empty, 100)

		// Then: ErrInvalidPiece is returned
		require.ErrorIs(t, err, apperror.ErrInvalidPiece)
	})
}
