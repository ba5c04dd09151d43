package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/pkg"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

// playerIO is the human side of a game: prompts, moves and board output.
type playerIO interface {
	ChooseDifficulty(ctx context.Context) (entity.Difficulty, error)
	ChooseOpener(ctx context.Context) (entity.Mark, error)
	ReadMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error)
	PlayAgain(ctx context.Context) (bool, error)

	ShowBoard(board *entity.Board)
	ShowError(err error)
	ShowResult(game *entity.Game)
}

// The human always holds X and the bot O, whoever opens.
const (
	humanMark = entity.PlayerX
	botMark   = entity.PlayerO
)

type GameManager struct {
	logger *slog.Logger

	bot    botService
	player playerIO
}

func NewGameManager(logger *slog.Logger, bot botService, player playerIO) *GameManager {
	return &GameManager{
		logger: logger,
		bot:    bot,
		player: player,
	}
}

// PlayGame runs human versus bot rounds on one game until the player stops
// and returns the game as the last round left it.
func (that *GameManager) PlayGame(ctx context.Context) (*entity.Game, error) {
	difficulty, err := that.player.ChooseDifficulty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to choose difficulty: %w", err)
	}

	opener, err := that.player.ChooseOpener(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to choose opener: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(gameID)

	log := that.logger.With("method", "PlayGame", "gameID", game.ID)

	for round := 1; ; round++ {
		game.Reset(opener)
		log.Info("round started", "round", round, "opener", opener, "difficulty", difficulty)

		if err = that.playRound(ctx, game, difficulty); err != nil {
			return game, err
		}

		that.player.ShowResult(game)
		log.Info("round finished", "round", round, "status", game.Status, "winner", game.Winner)

		again, askErr := that.player.PlayAgain(ctx)
		if errors.Is(askErr, apperror.ErrInputClosed) {
			return game, nil
		}

		if askErr != nil {
			return game, fmt.Errorf("failed to ask for another round: %w", askErr)
		}

		if !again {
			return game, nil
		}
	}
}

func (that *GameManager) playRound(ctx context.Context, game *entity.Game, difficulty entity.Difficulty) error {
	that.player.ShowBoard(&game.Board)

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		var err error
		if game.Turn == humanMark {
			err = that.humanTurn(ctx, game, humanMark)
		} else {
			_, err = that.bot.MakeTurn(ctx, game, botMark, difficulty)
		}

		if err != nil {
			return fmt.Errorf("failed make turn: %w", err)
		}

		that.player.ShowBoard(&game.Board)
	}

	return nil
}

// humanTurn keeps asking until the player makes a legal move.
func (that *GameManager) humanTurn(ctx context.Context, game *entity.Game, mark entity.Mark) error {
	for {
		move, err := that.player.ReadMove(ctx, &game.Board, mark)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = game.MakeTurn(mark, move)
		if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
			that.player.ShowError(err)
			continue
		}

		return err
	}
}

// SelfPlay lets two bots play a full game against each other.
func (that *GameManager) SelfPlay(ctx context.Context, xDifficulty, oDifficulty entity.Difficulty) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(gameID)

	log := that.logger.With("method", "SelfPlay", "gameID", game.ID)

	difficulties := map[entity.Mark]entity.Difficulty{
		entity.PlayerX: xDifficulty,
		entity.PlayerO: oDifficulty,
	}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		if _, err := that.bot.MakeTurn(ctx, game, game.Turn, difficulties[game.Turn]); err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}
	}

	log.Info("self-play finished", "status", game.Status, "winner", game.Winner)

	return game, nil
}
