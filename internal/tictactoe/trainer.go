package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/perspective"
)

// Every move of a game gets the same reward, chosen by the game's outcome.
const (
	WinReward  = 5
	LossReward = -5
	TieReward  = 0
)

type TrainingStats struct {
	Episodes int `json:"episodes"`
	WinsOne  int `json:"wins_one"`
	WinsTwo  int `json:"wins_two"`
	Ties     int `json:"ties"`
}

func (that *TrainingStats) record(winner entity.Piece) {
	that.Episodes++

	switch winner {
	case entity.PlayerOne:
		that.WinsOne++
	case entity.PlayerTwo:
		that.WinsTwo++
	default:
		that.Ties++
	}
}

// Trainer plays the CPU against itself and folds every game into the CPU's knowledge.
type Trainer struct {
	logger *slog.Logger

	cpu         *CPU
	mergePolicy graph.ConflictPolicy
	logEvery    int
}

func NewTrainer(logger *slog.Logger, cpu *CPU, mergePolicy graph.ConflictPolicy, logEvery int) *Trainer {
	return &Trainer{
		logger:      logger.With("component", "trainer"),
		cpu:         cpu,
		mergePolicy: mergePolicy,
		logEvery:    logEvery,
	}
}

// Train - plays rounds self-play games. Each move is random with probability
// randomMovePercent, otherwise the CPU trusts its knowledge fully.
// Cancelling ctx stops between games; a game in progress is not merged.
func (that *Trainer) Train(ctx context.Context, rounds int, randomMovePercent float64) (TrainingStats, error) {
	log := that.logger.With("method", "Train")

	var stats TrainingStats
	board := entity.NewBoard()

	for stats.Episodes < rounds {
		if err := ctx.Err(); err != nil {
			log.Warn("training interrupted", "episodes", stats.Episodes)
			return stats, fmt.Errorf("training stopped: %w", err)
		}

		winner, err := that.playEpisode(board, randomMovePercent)
		if err != nil {
			return stats, fmt.Errorf("failed to play episode %d: %w", stats.Episodes+1, err)
		}

		stats.record(winner)

		if that.logEvery > 0 && stats.Episodes%that.logEvery == 0 {
			log.Info("training progress",
				"episodes", stats.Episodes,
				"rounds", rounds,
				"nodes", that.cpu.knowledge.Len(),
			)
		}
	}

	log.Info("training finished",
		"episodes", stats.Episodes,
		"wins_one", stats.WinsOne,
		"wins_two", stats.WinsTwo,
		"ties", stats.Ties,
		"nodes", that.cpu.knowledge.Len(),
	)

	return stats, nil
}

// playEpisode - plays one game from an empty board, then reinforces and merges
// both players' moves into the knowledge graph.
func (that *Trainer) playEpisode(board *entity.Board, randomMovePercent float64) (entity.Piece, error) {
	board.Reset()

	// index 0 holds player one's moves, index 1 player two's
	scratch := [2]*graph.Graph{graph.New(), graph.New()}
	player := entity.PlayerOne

	for !board.IsOver() {
		prev := board.Encode()

		if err := that.move(board, player, randomMovePercent); err != nil {
			return entity.Empty, err
		}

		cur := board.Encode()
		if cur != prev {
			scratch[player-1].AddNode(
				perspective.SecondPerson(prev, player),
				graph.Edge{To: perspective.FirstPerson(cur, player), Weight: 0},
			)
		}

		player = player.Opponent()
	}

	winner := board.Winner()
	if err := that.reinforce(winner, scratch); err != nil {
		return entity.Empty, err
	}

	return winner, nil
}

func (that *Trainer) move(board *entity.Board, player entity.Piece, randomMovePercent float64) error {
	if that.cpu.rnd.Float64() <= randomMovePercent {
		if _, err := board.PlaceRandom(that.cpu.rnd, player); err != nil {
			return fmt.Errorf("failed to place random piece: %w", err)
		}

		return nil
	}

	if _, err := that.cpu.PlacePiece(board, player, MaxDifficulty); err != nil {
		return fmt.Errorf("failed to place cpu piece: %w", err)
	}

	return nil
}

// reinforce - stamps each scratch graph with its reward and merges it. The scratch graphs are drained.
func (that *Trainer) reinforce(winner entity.Piece, scratch [2]*graph.Graph) error {
	order := []entity.Piece{entity.PlayerOne, entity.PlayerTwo}
	rewards := map[entity.Piece]float64{entity.PlayerOne: TieReward, entity.PlayerTwo: TieReward}

	if winner.IsPlayer() {
		order = []entity.Piece{winner, winner.Opponent()}
		rewards[winner] = WinReward
		rewards[winner.Opponent()] = LossReward
	}

	for _, piece := range order {
		moves := scratch[piece-1]
		moves.SetAllWeights(rewards[piece])

		if err := that.cpu.knowledge.Merge(moves, that.mergePolicy); err != nil {
			return fmt.Errorf("failed to merge %s moves: %w", piece, err)
		}
	}

	return nil
}
