package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/graph"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/usecase"
)

// firstEmpty makes the CPU fall back to the first empty cell.
type firstEmpty struct{}

func (firstEmpty) Float64() float64 {
	return 0.5
}

func (firstEmpty) Intn(int) int {
	return 0
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	knowledge := graph.New()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := New(logger, usecase.NewSessionFactory(tictactoe.NewCPU(knowledge, firstEmpty{})), knowledge, 100)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	wsURL := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) (string, ResponsePayload) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: body}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	var response ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &response))

	return message.Action, response
}

func cell(index int) RequestPayload {
	return RequestPayload{Cell: &index}
}

func TestServer_Ping(t *testing.T) {
	conn := dial(t)

	action, response := send(t, conn, ActionPing, RequestPayload{})

	assert.Equal(t, ActionPong, action)
	assert.Empty(t, response.Error)
}

func TestServer_Game(t *testing.T) {
	t.Run("Human wins as X", func(t *testing.T) {
		conn := dial(t)

		// Given: a new game as X
		action, response := send(t, conn, ActionNewGame, RequestPayload{Piece: "X"})
		require.Equal(t, ActionNewGame, action)
		require.Empty(t, response.Error)
		require.NotNil(t, response.Game)
		assert.Nil(t, response.CPUMove)
		assert.Equal(t, StatusOngoing, response.Game.Status)
		assert.Equal(t, "X", response.Game.Turn)
		assert.Equal(t, "O", response.Game.CPU)

		// When: X takes 0 then 4, the CPU answers with the first empty cells
		_, response = send(t, conn, ActionTurn, cell(0))
		require.NotNil(t, response.CPUMove)
		assert.Equal(t, MoveState{Mark: "O", Cell: 1, Source: "random"}, *response.CPUMove)

		_, response = send(t, conn, ActionTurn, cell(4))
		require.NotNil(t, response.CPUMove)
		assert.Equal(t, 2, response.CPUMove.Cell)

		// Then: X completes the diagonal
		_, response = send(t, conn, ActionTurn, cell(8))
		require.NotNil(t, response.Game)
		assert.Nil(t, response.CPUMove)
		assert.Equal(t, StatusFinished, response.Game.Status)
		assert.Equal(t, "X", response.Game.Winner)
		assert.Empty(t, response.Game.Turn)
		assert.Equal(t, [entity.CellCount]string{"X", "O", "O", "", "X", "", "", "", "X"}, response.Game.Board)

		_, response = send(t, conn, ActionTurn, cell(5))
		assert.NotEmpty(t, response.Error)
	})

	t.Run("CPU opens as X", func(t *testing.T) {
		conn := dial(t)

		_, response := send(t, conn, ActionNewGame, RequestPayload{Piece: "O"})

		require.NotNil(t, response.CPUMove)
		assert.Equal(t, MoveState{Mark: "X", Cell: 0, Source: "random"}, *response.CPUMove)
		assert.Equal(t, "X", response.Game.Board[0])
		assert.Equal(t, "O", response.Game.Turn)
	})

	t.Run("Occupied cell is refused", func(t *testing.T) {
		conn := dial(t)

		send(t, conn, ActionNewGame, RequestPayload{Piece: "X"})
		_, before := send(t, conn, ActionTurn, cell(4))

		// When: playing on the CPU's cell
		_, response := send(t, conn, ActionTurn, cell(0))

		// Then: an error is returned and the board did not change
		assert.Contains(t, response.Error, "occupied")
		require.NotNil(t, response.Game)
		assert.Equal(t, before.Game.Board, response.Game.Board)
	})

	t.Run("Turn without a game", func(t *testing.T) {
		conn := dial(t)

		_, response := send(t, conn, ActionTurn, cell(0))

		assert.Equal(t, "no game in progress", response.Error)
	})

	t.Run("Out of range cell", func(t *testing.T) {
		conn := dial(t)

		send(t, conn, ActionNewGame, RequestPayload{Piece: "X"})
		_, response := send(t, conn, ActionTurn, cell(9))

		assert.NotEmpty(t, response.Error)
	})

	t.Run("Invalid piece", func(t *testing.T) {
		conn := dial(t)

		_, response := send(t, conn, ActionNewGame, RequestPayload{Piece: "Z"})

		assert.Equal(t, "piece must be X or O", response.Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		conn := dial(t)

		action, response := send(t, conn, "game:leave", RequestPayload{})

		assert.Equal(t, "game:leave", action)
		assert.Equal(t, "unknown action", response.Error)
	})
}
