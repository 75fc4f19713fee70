package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cpu/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type sessionFactory interface {
	NewSession(human entity.Piece, difficulty int) (*usecase.Session, error)
}

type handlerFunc func(client *client, msg *Message) error

// client is one websocket connection with at most one running game.
type client struct {
	conn    *websocket.Conn
	session *usecase.Session
}

type Server struct {
	logger     *slog.Logger
	sessions   sessionFactory
	knowledge  handlers.KnowledgeSizer
	difficulty int

	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions sessionFactory, knowledge handlers.KnowledgeSizer, difficulty int) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		sessions:   sessions,
		knowledge:  knowledge,
		difficulty: difficulty,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionPing] = server.handlePing
	server.handlers[ActionNewGame] = server.handleNewGame
	server.handlers[ActionTurn] = server.handleGameTurn

	return server
}

// Handler - routes /ws to the game socket, plus /ping and /knowledge.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)
	mux.HandleFunc("/ping", handlers.PingHandler)
	mux.Handle("/knowledge", handlers.KnowledgeHandler(that.knowledge))

	return mux
}

// Start - serves until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	log.Info("websocket server started", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves its messages until it closes.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(&client{conn: conn}); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(client *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := client.conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err := that.sendErrorResponse(client, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err := handler(client, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
