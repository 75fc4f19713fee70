package tictactoe

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/perspective"
)

const (
	MinDifficulty = 0
	MaxDifficulty = 100
)

// MoveSource tells how a CPU move was chosen.
type MoveSource int

const (
	SourceRandom MoveSource = iota
	SourceKnowledge
)

func (that MoveSource) String() string {
	if that == SourceKnowledge {
		return "knowledge"
	}
	return "random"
}

type Move struct {
	Piece    entity.Piece
	Position entity.Position
	Source   MoveSource
}

// CPU picks moves from the knowledge graph. It only reads the graph.
type CPU struct {
	knowledge *graph.Graph
	rnd       entity.Random
}

func NewCPU(knowledge *graph.Graph, rnd entity.Random) *CPU {
	return &CPU{
		knowledge: knowledge,
		rnd:       rnd,
	}
}

func (that *CPU) Knowledge() *graph.Graph {
	return that.knowledge
}

// ClampDifficulty - forces difficulty into [0, 100].
func ClampDifficulty(difficulty int) int {
	return min(max(difficulty, MinDifficulty), MaxDifficulty)
}

// PlacePiece - places piece on board. With probability 1 - difficulty/100 the move is random;
// otherwise the best known follow-up state with a positive weight is played.
// Unknown states and exhausted candidates fall back to a random move.
func (that *CPU) PlacePiece(board *entity.Board, piece entity.Piece, difficulty int) (Move, error) {
	if board.IsOver() {
		return Move{}, apperror.ErrGameOver
	}

	randomMovePercent := 1 - float64(ClampDifficulty(difficulty))/MaxDifficulty
	if that.rnd.Float64() <= randomMovePercent {
		return that.placeRandom(board, piece)
	}

	current := board.Encode()
	firstPerson := perspective.FirstPerson(current, piece)
	secondPerson := perspective.SecondPerson(current, piece)

	node, err := that.knowledge.Lookup(secondPerson)
	if errors.Is(err, apperror.ErrLookupMiss) {
		return that.placeRandom(board, piece)
	}

	for _, candidate := range BestMoves(node) {
		pos, ok := perspective.Diff(firstPerson, candidate.To)
		if !ok {
			continue
		}

		err = board.Place(piece, pos)
		if errors.Is(err, apperror.ErrCellOccupied) {
			continue
		}

		if err != nil {
			return Move{}, fmt.Errorf("failed to play known move: %w", err)
		}

		return Move{Piece: piece, Position: pos, Source: SourceKnowledge}, nil
	}

	return that.placeRandom(board, piece)
}

func (that *CPU) placeRandom(board *entity.Board, piece entity.Piece) (Move, error) {
	pos, err := board.PlaceRandom(that.rnd, piece)
	if err != nil {
		return Move{}, fmt.Errorf("failed to play random move: %w", err)
	}

	return Move{Piece: piece, Position: pos, Source: SourceRandom}, nil
}

// BestMoves - edges with a strictly positive weight, heaviest first.
// Equal weights keep the order the edges were first learned in.
func BestMoves(node *graph.Node) []graph.Edge {
	moves := slices.DeleteFunc(node.Edges(), func(edge graph.Edge) bool {
		return edge.Weight <= 0
	})

	slices.SortStableFunc(moves, func(a, b graph.Edge) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	return moves
}
