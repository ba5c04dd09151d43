package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), out, false), out
}

func TestConsole_ChooseDifficulty(t *testing.T) {
	ctx := context.Background()

	t.Run("Menu number", func(t *testing.T) {
		console, out := newTestConsole("3\n")

		difficulty, err := console.ChooseDifficulty(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.HardDifficulty, difficulty)
		assert.Contains(t, out.String(), "1. Easy (Random Moves)")
	})

	t.Run("Re-prompts on unknown level", func(t *testing.T) {
		// Given: an unknown level followed by a valid one
		console, out := newTestConsole("7 medium")

		// When: choosing the difficulty
		difficulty, err := console.ChooseDifficulty(ctx)

		// Then: the error is shown and the valid level is used
		require.NoError(t, err)
		assert.Equal(t, entity.MediumDifficulty, difficulty)
		assert.Contains(t, out.String(), "unknown difficulty")
	})

	t.Run("Closed input", func(t *testing.T) {
		console, _ := newTestConsole("")

		_, err := console.ChooseDifficulty(ctx)

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_ChooseOpener(t *testing.T) {
	ctx := context.Background()

	cases := map[string]entity.Mark{
		"x":  entity.PlayerX,
		"X":  entity.PlayerX,
		"o":  entity.PlayerO,
		"zz": entity.PlayerO,
	}

	for input, expected := range cases {
		console, _ := newTestConsole(input)

		mark, err := console.ChooseOpener(ctx)

		require.NoError(t, err, input)
		assert.Equal(t, expected, mark, input)
	}
}

func TestConsole_PlayAgain(t *testing.T) {
	ctx := context.Background()

	cases := map[string]bool{
		"y":   true,
		"YES": true,
		"n":   false,
		"no":  false,
		"1":   false,
	}

	for input, expected := range cases {
		console, out := newTestConsole(input)

		again, err := console.PlayAgain(ctx)

		require.NoError(t, err, input)
		assert.Equal(t, expected, again, input)
		assert.Contains(t, out.String(), "Play again?", input)
	}

	t.Run("Closed input", func(t *testing.T) {
		console, _ := newTestConsole("")

		_, err := console.PlayAgain(ctx)

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_ReadMove(t *testing.T) {
	ctx := context.Background()

	t.Run("One-based coordinates", func(t *testing.T) {
		var board entity.Board
		console, _ := newTestConsole("2 3\n")

		move, err := console.ReadMove(ctx, &board, entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
	})

	t.Run("Re-prompts until the cell is valid and free", func(t *testing.T) {
		// Given: a board with the centre taken
		board := entity.Board{}
		board.Place(entity.Move{Row: 1, Col: 1}, entity.PlayerO)

		// And: input that is out of range, not a number, then occupied, then free
		console, out := newTestConsole("0 4\nab 2 2\n1 1\n")

		// When: reading a move
		move, err := console.ReadMove(ctx, &board, entity.PlayerX)

		// Then: the first free cell entered is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Contains(t, out.String(), apperror.ErrInvalidCell.Error())
		assert.Contains(t, out.String(), apperror.ErrCellOccupied.Error())
	})

	t.Run("Closed input", func(t *testing.T) {
		var board entity.Board
		console, _ := newTestConsole("1")

		_, err := console.ReadMove(ctx, &board, entity.PlayerX)

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_ShowBoard(t *testing.T) {
	// Given: a board with two marks
	board := entity.Board{}
	board.Place(entity.Move{Row: 0, Col: 0}, entity.PlayerX)
	board.Place(entity.Move{Row: 1, Col: 2}, entity.PlayerO)

	console, out := newTestConsole("")

	// When: the board is printed without colors
	console.ShowBoard(&board)

	// Then: it matches the grid layout
	expected := "-------------\n" +
		"| X |   |   | \n" +
		"-------------\n" +
		"|   |   | O | \n" +
		"-------------\n" +
		"|   |   |   | \n" +
		"-------------\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_ShowResult(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		console, out := newTestConsole("")

		console.ShowResult(&entity.Game{Status: entity.StatusWon, Winner: entity.PlayerO})

		assert.Equal(t, "Player O wins!\n", out.String())
	})

	t.Run("Draw", func(t *testing.T) {
		console, out := newTestConsole("")

		console.ShowResult(&entity.Game{Status: entity.StatusDraw})

		assert.Equal(t, "It's a draw!\n", out.String())
	})
}
