package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
)

// fixedRandom always draws the same float and the same index.
type fixedRandom struct {
	float float64
	index int
}

func (that fixedRandom) Float64() float64 {
	return that.float
}

func (that fixedRandom) Intn(n int) int {
	return that.index % n
}

func TestCPU_PlacePiece(t *testing.T) {
	t.Run("Plays the heaviest known move", func(t *testing.T) {
		// Given: knowledge preferring the top left corner from the empty board
		knowledge := graph.New()
		knowledge.AddNode("000000000",
			graph.Edge{To: "000010000", Weight: 5},
			graph.Edge{To: "100000000", Weight: 10},
		)
		cpu := NewCPU(knowledge, fixedRandom{float: 0.5})
		board := entity.NewBoard()

		// When: player one moves at full difficulty
		move, err := cpu.PlacePiece(board, entity.PlayerOne, MaxDifficulty)

		// Then: the corner is played from knowledge
		require.NoError(t, err)
		assert.Equal(t, SourceKnowledge, move.Source)
		assert.Equal(t, entity.Position{Col: 0, Row: 0}, move.Position)
		assert.Equal(t, "100000000", board.Encode())
	})

	t.Run("Equal weights keep insertion order", func(t *testing.T) {
		knowledge := graph.New()
		knowledge.AddNode("000000000",
			graph.Edge{To: "000000001", Weight: 5},
			graph.Edge{To: "100000000", Weight: 5},
		)
		cpu := NewCPU(knowledge, fixedRandom{float: 0.5})
		board := entity.NewBoard()

		move, err := cpu.PlacePiece(board, entity.PlayerOne, MaxDifficulty)

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Col: 2, Row: 2}, move.Position)
	})

	t.Run("Player two reads the board from its own perspective", func(t *testing.T) {
		// Given: X in the corner; O's knowledge is keyed by the board as is
		// and its candidates are framed with O as '1'
		knowledge := graph.New()
		knowledge.AddNode("100000000", graph.Edge{To: "210000000", Weight: 5})
		cpu := NewCPU(knowledge, fixedRandom{float: 0.5})
		board, err := entity.BoardFromEncoding("100000000")
		require.NoError(t, err)

		// When: player two moves
		move, err := cpu.PlacePiece(board, entity.PlayerTwo, MaxDifficulty)

		// Then: O is placed next to X
		require.NoError(t, err)
		assert.Equal(t, SourceKnowledge, move.Source)
		assert.Equal(t, "120000000", board.Encode())
	})

	t.Run("Candidates without a playable difference are skipped", func(t *testing.T) {
		knowledge := graph.New()
		knowledge.AddNode("000000000",
			graph.Edge{To: "000000000", Weight: 10},
			graph.Edge{To: "000000001", Weight: 1},
		)
		cpu := NewCPU(knowledge, fixedRandom{float: 0.5})
		board := entity.NewBoard()

		move, err := cpu.PlacePiece(board, entity.PlayerOne, MaxDifficulty)

		require.NoError(t, err)
		assert.Equal(t, SourceKnowledge, move.Source)
		assert.Equal(t, entity.Position{Col: 2, Row: 2}, move.Position)
	})

	t.Run("Unknown board falls back to a random move", func(t *testing.T) {
		cpu := NewCPU(graph.New(), fixedRandom{float: 0.5, index: 4})
		board := entity.NewBoard()

		move, err := cpu.PlacePiece(board, entity.PlayerOne, MaxDifficulty)

		require.NoError(t, err)
		assert.Equal(t, SourceRandom, move.Source)
		assert.Equal(t, entity.Position{Col: 1, Row: 1}, move.Position)
	})

	t.Run("Only non-positive weights fall back to a random move", func(t *testing.T) {
		knowledge := graph.New()
		knowledge.AddNode("000000000",
			graph.Edge{To: "100000000", Weight: 0},
			graph.Edge{To: "010000000", Weight: -5},
		)
		cpu := NewCPU(knowledge, fixedRandom{float: 0.5, index: 8})
		board := entity.NewBoard()

		move, err := cpu.PlacePiece(board, entity.PlayerOne, MaxDifficulty)

		require.NoError(t, err)
		assert.Equal(t, SourceRandom, move.Source)
		assert.Equal(t, entity.Position{Col: 2, Row: 2}, move.Position)
	})

	t.Run("Difficulty zero never consults knowledge", func(t *testing.T) {
		// Given: knowledge for every first move and a seeded generator
		knowledge := graph.New()
		knowledge.AddNode("000000000", graph.Edge{To: "000010000", Weight: 100})
		cpu := NewCPU(knowledge, rand.New(rand.NewSource(1)))

		// When: playing many first moves at difficulty 0
		for i := 0; i < 1000; i++ {
			board := entity.NewBoard()
			move, err := cpu.PlacePiece(board, entity.PlayerOne, MinDifficulty)

			// Then: every move is random
			require.NoError(t, err)
			require.Equal(t, SourceRandom, move.Source)
		}
	})

	t.Run("Difficulty above range is clamped", func(t *testing.T) {
		knowledge := graph.New()
		knowledge.AddNode("000000000", graph.Edge{To: "000010000", Weight: 1})
		cpu := NewCPU(knowledge, fixedRandom{float: 0.01})

		move, err := cpu.PlacePiece(entity.NewBoard(), entity.PlayerOne, 250)

		require.NoError(t, err)
		assert.Equal(t, SourceKnowledge, move.Source)
	})

	t.Run("Error on move after game over", func(t *testing.T) {
		cpu := NewCPU(graph.New(), fixedRandom{})
		board, err := entity.BoardFromEncoding("111220000")
		require.NoError(t, err)

		_, err = cpu.PlacePiece(board, entity.PlayerTwo, MaxDifficulty)

		assert.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestBestMoves(t *testing.T) {
	node := graph.NewNode("a",
		graph.Edge{To: "b", Weight: 1},
		graph.Edge{To: "c", Weight: -5},
		graph.Edge{To: "d", Weight: 10},
		graph.Edge{To: "e", Weight: 1},
		graph.Edge{To: "f", Weight: 0},
	)

	moves := BestMoves(node)

	assert.Equal(t, []graph.Edge{{To: "d", Weight: 10}, {To: "b", Weight: 1}, {To: "e", Weight: 1}}, moves)
	assert.Equal(t, 5, node.Len())
}
