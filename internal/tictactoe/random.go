package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Source is the part of *rand.Rand the random strategy needs.
type Source interface {
	Intn(n int) int
}

type RandomStrategy struct {
	rnd Source
}

func NewRandomStrategy(rnd Source) *RandomStrategy {
	return &RandomStrategy{rnd: rnd}
}

// ChooseMove samples cells until it hits an empty one. It never returns on a
// full board.
func (that *RandomStrategy) ChooseMove(board *entity.Board, _ entity.Mark) entity.Move {
	for {
		move := entity.Move{
			Row: that.rnd.Intn(entity.Size),
			Col: that.rnd.Intn(entity.Size),
		}

		if board.At(move) == entity.EmptyCell {
			return move
		}
	}
}
