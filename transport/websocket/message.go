package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/usecase"
)

const (
	ActionPing    = "ping"
	ActionPong    = "pong"
	ActionNewGame = "game:new"
	ActionTurn    = "game:turn"

	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	WinnerTie = "-"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload - game:new reads Piece and Difficulty, game:turn reads Cell (0-8, row-major).
type RequestPayload struct {
	Piece      string `json:"piece,omitempty"`
	Difficulty *int   `json:"difficulty,omitempty"`
	Cell       *int   `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game    *GameState `json:"game,omitempty"`
	CPUMove *MoveState `json:"cpu_move,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type GameState struct {
	Board  [entity.CellCount]string `json:"board"`
	Human  string                   `json:"human"`
	CPU    string                   `json:"cpu"`
	Turn   string                   `json:"player_turn,omitempty"`
	Status string                   `json:"status"`
	Winner string                   `json:"winner,omitempty"`
}

type MoveState struct {
	Mark   string `json:"mark"`
	Cell   int    `json:"cell"`
	Source string `json:"source"`
}

func newGameState(session *usecase.Session) *GameState {
	state := &GameState{
		Human:  session.HumanPiece().String(),
		CPU:    session.CPUPiece().String(),
		Status: StatusOngoing,
	}

	snapshot := session.Snapshot()
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if piece := snapshot[row][col]; piece.IsPlayer() {
				state.Board[entity.Position{Col: col, Row: row}.Index()] = piece.String()
			}
		}
	}

	if !session.IsOver() {
		state.Turn = session.Turn().String()
		return state
	}

	state.Status = StatusFinished
	state.Winner = WinnerTie

	if winner := session.Winner(); winner.IsPlayer() {
		state.Winner = winner.String()
	}

	return state
}

func newMoveState(move *tictactoe.Move) *MoveState {
	if move == nil || !move.Position.Valid() {
		return nil
	}

	return &MoveState{
		Mark:   move.Piece.String(),
		Cell:   move.Position.Index(),
		Source: move.Source.String(),
	}
}

func (that *Server) sendMessage(client *client, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = client.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(client *client, action, message string) error {
	return that.sendMessage(client, action, ResponsePayload{Error: message})
}
