// Package tictactoe holds the move-selection strategies the bot plays with.
package tictactoe

import (
	"fmt"
	"math"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1

	minusInfinity = math.MinInt
	plusInfinity  = math.MaxInt
)

// Strategy picks a move for mark. Callers must not ask for a move once the
// game is won or drawn.
type Strategy interface {
	ChooseMove(board *entity.Board, mark entity.Mark) entity.Move
}

// markBound is implemented by strategies that only play well for some marks.
type markBound interface {
	Plays(mark entity.Mark) bool
}

// CanPlay reports whether strategy may be asked for a move as mark.
func CanPlay(strategy Strategy, mark entity.Mark) bool {
	bound, ok := strategy.(markBound)
	return !ok || bound.Plays(mark)
}

// NewStrategies returns one strategy per difficulty tier.
func NewStrategies(rnd Source) map[entity.Difficulty]Strategy {
	return map[entity.Difficulty]Strategy{
		entity.EasyDifficulty:   NewRandomStrategy(rnd),
		entity.MediumDifficulty: NewMinimax(),
		entity.HardDifficulty:   NewAlphaBeta(),
	}
}

// ParseDifficulty accepts a tier name or its menu number.
func ParseDifficulty(value string) (entity.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", string(entity.EasyDifficulty):
		return entity.EasyDifficulty, nil
	case "2", string(entity.MediumDifficulty):
		return entity.MediumDifficulty, nil
	case "3", string(entity.HardDifficulty):
		return entity.HardDifficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// terminalScore scores a finished position from mark's point of view.
// The checks run in a fixed order: mark's win, the opponent's win, a full board.
func terminalScore(board *entity.Board, mark entity.Mark) (int, bool) {
	switch {
	case board.HasWon(mark):
		return scoreWin, true
	case board.HasWon(mark.Opponent()):
		return scoreLoss, true
	case board.IsFull():
		return scoreDraw, true
	default:
		return 0, false
	}
}

// trial places mark on move for the duration of score and clears the cell on
// every exit path.
func trial(board *entity.Board, move entity.Move, mark entity.Mark, score func() int) int {
	board.Place(move, mark)
	defer board.Clear(move)

	return score()
}
