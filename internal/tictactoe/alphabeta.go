package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// AlphaBeta is minimax with alpha-beta pruning. It picks the same move as an
// unpruned search with the same root role while visiting fewer positions.
type AlphaBeta struct {
	nodes int
}

func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

// Nodes is the number of positions evaluated by the last search.
func (that *AlphaBeta) Nodes() int {
	return that.nodes
}

// ChooseMove runs a fresh top-level search with mark maximizing.
func (that *AlphaBeta) ChooseMove(board *entity.Board, mark entity.Mark) entity.Move {
	return that.Search(board, mark, minusInfinity, plusInfinity, true)
}

// Search tries every empty cell for mark inside the (alpha, beta) window.
// The move changes only when a score strictly tightens alpha (maximizing root)
// or beta (minimizing root), and the loop stops as soon as alpha >= beta.
func (that *AlphaBeta) Search(board *entity.Board, mark entity.Mark, alpha, beta int, maximizingRoot bool) entity.Move {
	that.nodes = 0

	bestMove := entity.NoMove
	for _, move := range board.EmptyCells() {
		score := trial(board, move, mark, func() int {
			return that.evaluate(board, 0, alpha, beta, !maximizingRoot, mark)
		})

		if maximizingRoot {
			if score > alpha {
				alpha = score
				bestMove = move
			}
		} else if score < beta {
			beta = score
			bestMove = move
		}

		if alpha >= beta {
			return bestMove
		}
	}

	return bestMove
}

func (that *AlphaBeta) evaluate(board *entity.Board, depth, alpha, beta int, maximizing bool, mark entity.Mark) int {
	that.nodes++

	if score, ok := terminalScore(board, mark); ok {
		return score
	}

	if maximizing {
		best := minusInfinity
		for _, move := range board.EmptyCells() {
			best = max(best, trial(board, move, mark, func() int {
				return that.evaluate(board, depth+1, alpha, beta, false, mark)
			}))

			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}

		return best
	}

	opponent := mark.Opponent()
	best := plusInfinity
	for _, move := range board.EmptyCells() {
		best = min(best, trial(board, move, opponent, func() int {
			return that.evaluate(board, depth+1, alpha, beta, true, mark)
		}))

		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
