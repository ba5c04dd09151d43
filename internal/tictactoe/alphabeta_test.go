package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBeta_ChooseMove(t *testing.T) {
	t.Run("Takes the immediate win", func(t *testing.T) {
		cases := map[string]struct {
			board    entity.Board
			expected entity.Move
		}{
			"row":    {board: winOrLoseBoard(), expected: entity.Move{Row: 1, Col: 2}},
			"column": {board: winOrLoseColumnBoard(), expected: entity.Move{Row: 2, Col: 0}},
		}

		for name, tc := range cases {
			// Given: O can complete a line while X threatens another
			board := tc.board
			alphaBeta := NewAlphaBeta()

			// When: alpha-beta plays O
			move := alphaBeta.ChooseMove(&board, entity.PlayerO)

			// Then: it completes the line
			assert.Equal(t, tc.expected, move, name)
			assert.Equal(t, tc.board, board, name)
		}
	})

	t.Run("X maximizes at the root", func(t *testing.T) {
		// Given: X can complete the bottom row
		board := winOrLoseBoard()
		alphaBeta := NewAlphaBeta()

		// When: alpha-beta plays X
		move := alphaBeta.ChooseMove(&board, entity.PlayerX)

		// Then: it completes the row
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Empty board", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board
		alphaBeta := NewAlphaBeta()

		// When: alpha-beta opens as O
		move := alphaBeta.ChooseMove(&board, entity.PlayerO)

		// Then: with no depth discount every opening scores a draw, the centre
		// included, so row-major order hands the tie to (0,0)
		assert.Contains(t, []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, move)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Full board returns no move", func(t *testing.T) {
		board := entity.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		assert.Equal(t, entity.NoMove, NewAlphaBeta().ChooseMove(&board, entity.PlayerX))
	})
}

func TestAlphaBeta_Search(t *testing.T) {
	t.Run("Closed window prunes after the first move", func(t *testing.T) {
		// Given: a window that is already closed once alpha reaches the draw score
		var board entity.Board
		alphaBeta := NewAlphaBeta()

		// When: searching with beta at the draw score
		move := alphaBeta.Search(&board, entity.PlayerO, minusInfinity, scoreDraw, true)

		// Then: the first move closes the window and is returned at once
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("No improvement keeps no move", func(t *testing.T) {
		// Given: alpha already at the win score
		board := winOrLoseBoard()
		alphaBeta := NewAlphaBeta()

		// When: no move can beat alpha
		move := alphaBeta.Search(&board, entity.PlayerO, scoreWin, plusInfinity, true)

		// Then: the sentinel comes back and the board is restored
		assert.Equal(t, entity.NoMove, move)
		assert.Equal(t, winOrLoseBoard(), board)
	})
}

func TestAlphaBeta_MatchesMinimax(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive comparison")
	}

	minimax := NewMinimax()
	alphaBeta := NewAlphaBeta()

	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		if !CanPlay(minimax, mark) {
			continue
		}

		for _, board := range reachablePositions() {
			before := board

			// When: both searches pick a move for the same mark on the same position
			expected := minimax.ChooseMove(&board, mark)
			actual := alphaBeta.ChooseMove(&board, mark)

			// Then: pruning changes the work, not the move
			require.Equal(t, expected, actual, "%s on board %s", mark, board.Key())
			require.LessOrEqual(t, alphaBeta.Nodes(), minimax.Nodes(), "%s on board %s", mark, board.Key())
			require.Equal(t, before, board)
		}
	}
}

func TestAlphaBeta_SelfPlayDraws(t *testing.T) {
	// Given: a fresh game with alpha-beta on both sides
	game := entity.NewGame("self-play")
	alphaBeta := NewAlphaBeta()

	// When: the game is played out
	for !game.IsFinished() {
		move := alphaBeta.ChooseMove(&game.Board, game.Turn)
		require.NoError(t, game.MakeTurn(game.Turn, move))
	}

	// Then: perfect play ends in a draw
	assert.Equal(t, entity.StatusDraw, game.Status)
	assert.Equal(t, entity.EmptyCell, game.Winner)
}
