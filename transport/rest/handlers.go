package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

const winnerTie = "-"

// MoveRequest - Board is a flat encoding such as "120000000"; Piece is the mark the CPU plays.
type MoveRequest struct {
	Board      string `json:"board"`
	Piece      string `json:"piece"`
	Difficulty *int   `json:"difficulty,omitempty"`
}

type MoveResponse struct {
	Cell   int    `json:"cell"`
	Source string `json:"source"`
	Board  string `json:"board"`
	Over   bool   `json:"over"`
	Winner string `json:"winner,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) moveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "moveHandler")

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	board, err := entity.BoardFromEncoding(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	piece, err := entity.PieceFromMark(req.Piece)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	difficulty := that.difficulty
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}

	move, err := that.cpu.PlacePiece(board, piece, difficulty)
	if errors.Is(err, apperror.ErrGameOver) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to place piece", "board", req.Board, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to place piece"})
		return
	}

	resp := MoveResponse{
		Cell:   move.Position.Index(),
		Source: move.Source.String(),
		Board:  board.Encode(),
		Over:   board.IsOver(),
	}

	if resp.Over {
		resp.Winner = winnerTie
		if winner := board.Winner(); winner.IsPlayer() {
			resp.Winner = winner.String()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
