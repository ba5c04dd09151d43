package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Minimax searches the full game tree without pruning.
type Minimax struct {
	nodes int
}

func NewMinimax() *Minimax {
	return &Minimax{}
}

// Nodes is the number of positions evaluated by the last ChooseMove.
func (that *Minimax) Nodes() int {
	return that.nodes
}

// Plays is true only for O: X's root keeps the lowest score for itself.
func (that *Minimax) Plays(mark entity.Mark) bool {
	return mark == entity.PlayerO
}

// ChooseMove scores every empty cell for mark and keeps the first best one.
// O keeps the highest score, X the lowest; the role follows the mark, not
// the side to move.
func (that *Minimax) ChooseMove(board *entity.Board, mark entity.Mark) entity.Move {
	that.nodes = 0

	maximizing := mark == entity.PlayerO

	bestMove := entity.NoMove
	bestScore := plusInfinity
	if maximizing {
		bestScore = minusInfinity
	}

	for _, move := range board.EmptyCells() {
		score := trial(board, move, mark, func() int {
			return that.evaluate(board, 0, false, mark)
		})

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove
}

// evaluate returns +1, 0 or -1 for mark. depth only counts plies.
func (that *Minimax) evaluate(board *entity.Board, depth int, maximizing bool, mark entity.Mark) int {
	that.nodes++

	if score, ok := terminalScore(board, mark); ok {
		return score
	}

	if maximizing {
		best := minusInfinity
		for _, move := range board.EmptyCells() {
			best = max(best, trial(board, move, mark, func() int {
				return that.evaluate(board, depth+1, false, mark)
			}))
		}

		return best
	}

	opponent := mark.Opponent()
	best := plusInfinity
	for _, move := range board.EmptyCells() {
		best = min(best, trial(board, move, opponent, func() int {
			return that.evaluate(board, depth+1, true, mark)
		}))
	}

	return best
}
