package entity

import "strings"

// Size is the side length of the board.
const Size = 3

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned by a search when the board has no empty cell.
var NoMove = Move{Row: -1, Col: -1}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

var WinCombos = [][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]Mark

func (that *Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

func (that *Board) Place(move Move, mark Mark) {
	that[move.Row][move.Col] = mark
}

func (that *Board) Clear(move Move) {
	that[move.Row][move.Col] = EmptyCell
}

func (that *Board) Reset() {
	*that = Board{}
}

// HasWon reports whether mark fills any row, column or diagonal.
func (that *Board) HasWon(mark Mark) bool {
	for _, combo := range WinCombos {
		if that.At(combo[0]) == mark && that.At(combo[1]) == mark && that.At(combo[2]) == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the free cells in row-major order. Searches rely on this
// order to break ties in favour of the first move found.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Key encodes the board row by row, "-" standing for an empty cell.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := range that {
		for col := range that[row] {
			if that[row][col] == EmptyCell {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(string(that[row][col]))
		}
	}

	return sb.String()
}
