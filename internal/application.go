package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/config"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cpu/transport/rest"
	"github.com/rocketscienceinc/tictactoe-cpu/transport/websocket"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownStorage  = errors.New("unknown knowledge storage")
	ErrUnknownPlayMode = errors.New("unknown play mode")
)

// RunApp - loads the CPU's knowledge, trains it, saves it and lets a human play against it.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	mergePolicy, err := graph.ParseConflictPolicy(conf.Knowledge.MergeAggregate)
	if err != nil {
		return fmt.Errorf("invalid merge aggregate: %w", err)
	}

	knowledgeRepo, closeRepo, err := newKnowledgeRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close knowledge storage", "error", closeErr)
		}
	}()

	knowledge, err := loadKnowledge(ctx, log, knowledgeRepo)
	if err != nil {
		return err
	}

	seed := conf.Training.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cpu := tictactoe.NewCPU(knowledge, tictactoe.NewSyncRandom(seed))

	if conf.Training.Rounds > 0 {
		trainer := tictactoe.NewTrainer(logger, cpu, mergePolicy, conf.Training.LogEvery)

		_, trainErr := trainer.Train(ctx, conf.Training.Rounds, conf.Training.RandomMovePercent)

		// whatever was learned before a cancel is kept
		if err = saveKnowledge(context.WithoutCancel(ctx), log, knowledgeRepo, knowledge); err != nil {
			return err
		}

		if errors.Is(trainErr, context.Canceled) {
			log.Info("training interrupted")
			return nil
		}

		if trainErr != nil {
			return fmt.Errorf("training failed: %w", trainErr)
		}
	}

	return play(ctx, logger, conf.Play, cpu)
}

// newKnowledgeRepository - the configured storage and a func releasing it. No repository is returned for StorageNone.
func newKnowledgeRepository(ctx context.Context, conf *config.Config) (repository.KnowledgeRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Knowledge.Storage {
	case config.StorageNone:
		return nil, noop, nil
	case config.StorageFile:
		return repository.NewFileKnowledgeRepository(conf.Knowledge.FilePath), noop, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisKnowledgeRepository(redisStorage, conf.Knowledge.Name), redisStorage.Close, nil
	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Knowledge.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, noop, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteKnowledgeRepository(sqliteStorage.Connection, conf.Knowledge.Name), sqliteStorage.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Knowledge.Storage)
	}
}

func loadKnowledge(ctx context.Context, log *slog.Logger, knowledgeRepo repository.KnowledgeRepository) (*graph.Graph, error) {
	if knowledgeRepo == nil {
		return graph.New(), nil
	}

	knowledge, err := knowledgeRepo.Load(ctx)
	if errors.Is(err, apperror.ErrKnowledgeNotFound) {
		log.Info("no saved knowledge, starting from scratch")
		return graph.New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("could not load knowledge: %w", err)
	}

	log.Info("knowledge loaded", "nodes", knowledge.Len(), "edges", knowledge.EdgeCount())

	return knowledge, nil
}

func saveKnowledge(ctx context.Context, log *slog.Logger, knowledgeRepo repository.KnowledgeRepository, knowledge *graph.Graph) error {
	if knowledgeRepo == nil {
		return nil
	}

	if err := knowledgeRepo.Save(ctx, knowledge); err != nil {
		return fmt.Errorf("could not save knowledge: %w", err)
	}

	log.Info("knowledge saved", "nodes", knowledge.Len(), "edges", knowledge.EdgeCount())

	return nil
}

func play(ctx context.Context, logger *slog.Logger, conf config.Play, cpu *tictactoe.CPU) error {
	switch conf.Mode {
	case config.PlayModeNone:
		return nil
	case config.PlayModeCLI:
		terminal := cli.NewTerminal(logger, os.Stdin, os.Stdout)
		manager := usecase.NewGameManager(logger, cpu, terminal, terminal)

		return terminal.Play(ctx, manager, conf.Difficulty)
	case config.PlayModeWebSocket:
		return serve(ctx, logger, conf, cpu)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlayMode, conf.Mode)
	}
}

// serve - runs the move API and the websocket game server until ctx is canceled or one of them fails.
func serve(ctx context.Context, logger *slog.Logger, conf config.Play, cpu *tictactoe.CPU) error {
	log := logger.With("component", "app", "method", "serve")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, cpu, cpu.Knowledge(), conf.Difficulty)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, usecase.NewSessionFactory(cpu), cpu.Knowledge(), conf.Difficulty)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
