package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

const separator = "-------------"

// Console plays the human side of a game over a text stream.
type Console struct {
	logger *slog.Logger

	scanner *bufio.Scanner
	out     io.Writer
	au      aurora.Aurora
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, colors bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		logger:  logger.With("component", "console"),
		scanner: scanner,
		out:     out,
		au:      aurora.NewAurora(colors),
	}
}

func (that *Console) ChooseDifficulty(_ context.Context) (entity.Difficulty, error) {
	for {
		that.printf("Select the AI difficulty level:\n")
		that.printf("1. Easy (Random Moves)\n")
		that.printf("2. Medium (Basic Minimax)\n")
		that.printf("3. Difficult (Alpha-Beta Pruning)\n")
		that.printf("Enter the corresponding number: ")

		token, err := that.next()
		if err != nil {
			return "", err
		}

		difficulty, err := tictactoe.ParseDifficulty(token)
		if err != nil {
			that.ShowError(err)
			continue
		}

		return difficulty, nil
	}
}

// ChooseOpener returns X for "x" in any case and O for anything else. The
// player always holds X; choosing O lets the AI open.
func (that *Console) ChooseOpener(_ context.Context) (entity.Mark, error) {
	that.printf("Choose 'X' to move first or 'O' to let the AI open: ")

	token, err := that.next()
	if err != nil {
		return entity.EmptyCell, err
	}

	if strings.EqualFold(token, string(entity.PlayerX)) {
		return entity.PlayerX, nil
	}

	return entity.PlayerO, nil
}

// ReadMove reads a 1-based "row col" pair until it names a free cell.
func (that *Console) ReadMove(_ context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error) {
	for {
		that.printf("Player %s, enter your move (row and column, e.g., 1 2): ", that.colorize(mark))

		row, err := that.nextInt()
		if err != nil {
			return entity.NoMove, err
		}

		col, err := that.nextInt()
		if err != nil {
			return entity.NoMove, err
		}

		move := entity.Move{Row: row - 1, Col: col - 1}
		if !move.InRange() {
			that.ShowError(apperror.ErrInvalidCell)
			continue
		}

		if board.At(move) != entity.EmptyCell {
			that.ShowError(apperror.ErrCellOccupied)
			continue
		}

		return move, nil
	}
}

// PlayAgain is true for "y" or "yes" in any case.
func (that *Console) PlayAgain(_ context.Context) (bool, error) {
	that.printf("Play again? (y/n): ")

	token, err := that.next()
	if err != nil {
		return false, err
	}

	return strings.EqualFold(token, "y") || strings.EqualFold(token, "yes"), nil
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.printf("%s\n", separator)
	for row := range board {
		that.printf("| ")
		for col := range board[row] {
			that.printf("%s | ", that.colorize(board[row][col]))
		}
		that.printf("\n%s\n", separator)
	}
}

func (that *Console) ShowError(err error) {
	that.printf("%s\n", that.au.Red(err.Error()))
}

func (that *Console) ShowResult(game *entity.Game) {
	if game.IsDraw() {
		that.printf("%s\n", that.au.Bold("It's a draw!"))
		return
	}

	that.printf("%s\n", that.au.Bold(fmt.Sprintf("Player %s wins!", game.Winner)))
}

func (that *Console) colorize(mark entity.Mark) aurora.Value {
	switch mark {
	case entity.PlayerX:
		return that.au.Cyan(string(mark))
	case entity.PlayerO:
		return that.au.Yellow(string(mark))
	default:
		return that.au.Reset(" ")
	}
}

func (that *Console) next() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return that.scanner.Text(), nil
}

// nextInt skips tokens that are not numbers.
func (that *Console) nextInt() (int, error) {
	for {
		token, err := that.next()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			that.logger.Debug("skipping non-numeric input", "token", token)
			that.ShowError(fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCell, token))
			continue
		}

		return value, nil
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
