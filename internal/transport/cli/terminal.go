package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

const rowSeparator = "---|---|---"

type gamePlayer interface {
	PlayGame(ctx context.Context, human entity.Piece, difficulty int) (entity.Piece, error)
}

// Terminal plays games over a line based terminal: it renders boards and reads the human's choices.
type Terminal struct {
	logger *slog.Logger
	in     *bufio.Reader
	out    *termenv.Output

	// pending holds a read left running by a canceled prompt; the next prompt picks it up.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewTerminal(logger *slog.Logger, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		logger: logger.With("component", "terminal"),
		in:     bufio.NewReader(in),
		out:    termenv.NewOutput(out, opts...),
	}
}

// Play - asks for a piece, plays a game and offers another one until the human declines or quits.
func (that *Terminal) Play(ctx context.Context, player gamePlayer, difficulty int) error {
	log := that.logger.With("method", "Play")

	for games := 1; ; games++ {
		human, err := that.PromptPiece(ctx)
		if errors.Is(err, apperror.ErrGameCanceled) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to choose piece: %w", err)
		}

		winner, err := player.PlayGame(ctx, human, difficulty)
		if errors.Is(err, apperror.ErrGameCanceled) {
			log.Info("human left the game", "games", games)
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		log.Debug("game over", "games", games, "human", human.String(), "winner", winner.String())

		again, err := that.PromptPlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for another game: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// PromptPiece - asks which piece the human plays until a valid answer is given.
func (that *Terminal) PromptPiece(ctx context.Context) (entity.Piece, error) {
	for {
		that.printf("\nWhich piece would you like to be?\n(X or O; X plays first, q to quit): ")

		line, err := that.readLine(ctx)
		if err != nil {
			return entity.Empty, err
		}

		piece, err := entity.PieceFromMark(line)
		if err != nil {
			that.RenderError(err)
			continue
		}

		return piece, nil
	}
}

// PromptPosition - asks for a cell number 1-9 until one parses. Whether the cell is free is up to the caller.
func (that *Terminal) PromptPosition(ctx context.Context, snapshot entity.Snapshot) (entity.Position, error) {
	for {
		that.printf("\nWhere to place piece?\n(choose number 1-9, q to quit):")

		if snapshot == (entity.Snapshot{}) {
			that.printf("\n\n%s\n", that.FormatBoard(snapshot, true))
		}

		that.printf("\nSelection: ")

		line, err := that.readLine(ctx)
		if err != nil {
			return entity.NoPosition, err
		}

		number, err := strconv.Atoi(line)
		if err != nil {
			that.RenderError(fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidPosition, line))
			continue
		}

		pos, err := entity.PositionFromNumber(number)
		if err != nil {
			that.RenderError(err)
			continue
		}

		return pos, nil
	}
}

// PromptPlayAgain - only an explicit "y" starts another game.
func (that *Terminal) PromptPlayAgain(ctx context.Context) (bool, error) {
	that.printf("\nPlay again? (y or n): ")

	line, err := that.readLine(ctx)
	if errors.Is(err, apperror.ErrGameCanceled) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return strings.EqualFold(line, "y"), nil
}

func (that *Terminal) RenderMove(piece entity.Piece, snapshot entity.Snapshot) {
	that.printf("\n%s played:\n%s\n", that.mark(piece), that.FormatBoard(snapshot, false))
}

func (that *Terminal) RenderError(err error) {
	that.printf("%s\n", that.out.String("error: "+err.Error()).Foreground(termenv.ANSIRed).String())
}

func (that *Terminal) RenderResult(winner entity.Piece) {
	display := "No one"
	if winner.IsPlayer() {
		display = that.mark(winner)
	}

	that.printf("\n%s\n", that.out.String(fmt.Sprintf("Game Over. %s wins.", display)).Bold().String())
}

// FormatBoard - draws the grid. With hints, empty cells show the number that selects them.
func (that *Terminal) FormatBoard(snapshot entity.Snapshot, hints bool) string {
	rows := make([]string, 0, 2*entity.BoardSize-1)

	for row := range entity.BoardSize {
		cells := make([]string, entity.BoardSize)
		for col := range entity.BoardSize {
			piece := snapshot[row][col]

			switch {
			case piece.IsPlayer():
				cells[col] = that.mark(piece)
			case hints:
				number := entity.Position{Col: col, Row: row}.Number()
				cells[col] = that.out.String(strconv.Itoa(number)).Faint().String()
			default:
				cells[col] = " "
			}
		}

		if row > 0 {
			rows = append(rows, rowSeparator)
		}

		rows = append(rows, " "+strings.Join(cells, " | ")+" ")
	}

	return strings.Join(rows, "\n")
}

func (that *Terminal) mark(piece entity.Piece) string {
	switch piece {
	case entity.PlayerOne:
		return that.out.String(piece.String()).Foreground(termenv.ANSIBrightRed).Bold().String()
	case entity.PlayerTwo:
		return that.out.String(piece.String()).Foreground(termenv.ANSIBrightBlue).Bold().String()
	default:
		return piece.String()
	}
}

// readLine - the next trimmed line. "q", "exit", closed input and a canceled ctx cancel the game.
func (that *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrGameCanceled, err)
	}

	if that.pending == nil {
		that.pending = make(chan readResult, 1)

		go func(result chan<- readResult) {
			line, err := that.in.ReadString('\n')
			result <- readResult{line: line, err: err}
		}(that.pending)
	}

	var result readResult
	select {
	case result = <-that.pending:
		that.pending = nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", apperror.ErrGameCanceled, ctx.Err())
	}

	line := strings.TrimSpace(result.line)

	if errors.Is(result.err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: input closed", apperror.ErrGameCanceled)
	}

	if result.err != nil && !errors.Is(result.err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", result.err)
	}

	if strings.EqualFold(line, "q") || strings.EqualFold(line, "exit") {
		return "", apperror.ErrGameCanceled
	}

	return line, nil
}

func (that *Terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
