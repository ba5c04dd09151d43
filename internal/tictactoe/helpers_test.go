package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

// immediateWin returns the first cell that completes a line for mark.
func immediateWin(board entity.Board, mark entity.Mark) (entity.Move, bool) {
	for _, move := range board.EmptyCells() {
		next := board
		next.Place(move, mark)
		if next.HasWon(mark) {
			return move, true
		}
	}

	return entity.NoMove, false
}

// scriptedSource replays fixed values and then repeats the last one.
type scriptedSource struct {
	values []int
	calls  int
}

func (that *scriptedSource) Intn(n int) int {
	idx := min(that.calls, len(that.values)-1)
	that.calls++

	return that.values[idx] % n
}

// reachablePositions walks every legal game from the empty board, with
// either mark opening, and returns the positions that are not yet decided.
func reachablePositions() []entity.Board {
	seen := make(map[entity.Board]bool)
	positions := make([]entity.Board, 0, 4600)

	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		if seen[board] || board.HasWon(entity.PlayerX) || board.HasWon(entity.PlayerO) || board.IsFull() {
			return
		}

		seen[board] = true
		positions = append(positions, board)

		for _, move := range board.EmptyCells() {
			next := board
			next.Place(move, turn)
			walk(next, turn.Opponent())
		}
	}

	walk(entity.Board{}, entity.PlayerX)

	// the empty board is already seen, so O's openings start one ply in
	for _, move := range (&entity.Board{}).EmptyCells() {
		var board entity.Board
		board.Place(move, entity.PlayerO)
		walk(board, entity.PlayerX)
	}

	return positions
}
