package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cpu/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type mover interface {
	PlacePiece(board *entity.Board, piece entity.Piece, difficulty int) (tictactoe.Move, error)
}

// Server answers single move requests: any board in, the CPU's move out. It keeps no game state.
type Server struct {
	logger     *slog.Logger
	cpu        mover
	knowledge  handlers.KnowledgeSizer
	difficulty int
}

func New(logger *slog.Logger, cpu mover, knowledge handlers.KnowledgeSizer, difficulty int) *Server {
	return &Server{
		logger:     logger.With("component", "rest"),
		cpu:        cpu,
		knowledge:  knowledge,
		difficulty: difficulty,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.Handle("GET /knowledge", handlers.KnowledgeHandler(that.knowledge))
	mux.HandleFunc("POST /move", that.moveHandler)

	return mux
}

// Start - serves until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	log.Info("HTTP server started", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
