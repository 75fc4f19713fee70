package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

func (that *Server) handlePing(client *client, _ *Message) error {
	return that.sendMessage(client, ActionPong, ResponsePayload{})
}

func (that *Server) handleNewGame(client *client, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(client, msg.Action, "invalid payload")
	}

	human, err := entity.PieceFromMark(payloadReq.Piece)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, "piece must be X or O")
	}

	difficulty := that.difficulty
	if payloadReq.Difficulty != nil {
		difficulty = *payloadReq.Difficulty
	}

	session, err := that.sessions.NewSession(human, difficulty)
	if err != nil {
		log.Error("failed to create session", "error", err)
		return that.sendErrorResponse(client, msg.Action, "failed to create a new game")
	}

	cpuMove, err := session.Start()
	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.sendErrorResponse(client, msg.Action, "failed to start the game")
	}

	client.session = session

	log.Info("game started", "human", human.String(), "difficulty", difficulty)

	return that.sendMessage(client, msg.Action, ResponsePayload{
		Game:    newGameState(session),
		CPUMove: newMoveState(cpuMove),
	})
}

func (that *Server) handleGameTurn(client *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	if client.session == nil {
		return that.sendErrorResponse(client, msg.Action, "no game in progress")
	}

	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		return that.sendErrorResponse(client, msg.Action, "cell is required")
	}

	pos, err := entity.PositionFromIndex(*payloadReq.Cell)
	if err != nil {
		return that.sendErrorResponse(client, msg.Action, err.Error())
	}

	cpuMove, err := client.session.HumanTurn(pos)
	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidPosition),
		errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrNotYourTurn):
		return that.sendMessage(client, msg.Action, ResponsePayload{
			Game:  newGameState(client.session),
			Error: err.Error(),
		})
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(client, msg.Action, "failed to make turn")
	}

	state := newGameState(client.session)
	if state.Status == StatusFinished {
		log.Info("game finished", "winner", state.Winner)
	}

	return that.sendMessage(client, msg.Action, ResponsePayload{
		Game:    state,
		CPUMove: newMoveState(cpuMove),
	})
}
