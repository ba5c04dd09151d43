package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner,omitempty"`
	Status string `json:"status"`
}

// NewGame returns an empty board with X to move.
func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerX,
		Status: StatusInProgress,
	}
}

func (that *Game) MakeTurn(mark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !move.InRange() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.At(move) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board.Place(move, mark)
	that.UpdateGameState(mark)

	return nil
}

// UpdateGameState moves the game to won or draw after a ply by mark,
// otherwise hands the turn to the opponent.
func (that *Game) UpdateGameState(mark Mark) {
	switch {
	case that.Board.HasWon(mark):
		that.Winner = mark
		that.Status = StatusWon
		that.Turn = EmptyCell
	case that.Board.IsFull():
		that.Status = StatusDraw
		that.Turn = EmptyCell
	default:
		that.Status = StatusInProgress
		that.Turn = mark.Opponent()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// Reset clears the board for a new round under the same ID with first to move.
func (that *Game) Reset(first Mark) {
	that.Board.Reset()
	that.Turn = first
	that.Winner = EmptyCell
	that.Status = StatusInProgress
}
