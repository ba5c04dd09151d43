package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type moveRepo interface {
	Save(ctx context.Context, key string, move entity.Move) error
	GetByKey(ctx context.Context, key string) (entity.Move, error)
	DeleteByKey(ctx context.Context, key string) error
}

type botService struct {
	logger *slog.Logger

	strategies map[entity.Difficulty]tictactoe.Strategy
	moveRepo   moveRepo
}

// NewBotService builds a bot over strategies. moveRepo may be nil, in which
// case every move is searched.
func NewBotService(logger *slog.Logger, strategies map[entity.Difficulty]tictactoe.Strategy, moveRepo moveRepo) BotService {
	return &botService{
		logger:     logger.With("component", "bot"),
		strategies: strategies,
		moveRepo:   moveRepo,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID, "mark", mark, "difficulty", difficulty)

	if game.IsFinished() {
		return entity.NoMove, apperror.ErrGameFinished
	}

	if game.Board.IsFull() {
		return entity.NoMove, apperror.ErrNoAvailableMoves
	}

	strategy, ok := that.strategies[difficulty]
	if !ok {
		return entity.NoMove, fmt.Errorf("%w: %s", apperror.ErrUnknownDifficulty, difficulty)
	}

	if !tictactoe.CanPlay(strategy, mark) {
		return entity.NoMove, fmt.Errorf("%w: %s as %s", apperror.ErrMarkNotSupported, difficulty, mark)
	}

	move, cached := that.lookup(ctx, log, game, mark, difficulty)
	if !cached {
		move = strategy.ChooseMove(&game.Board, mark)
		that.store(ctx, log, game, mark, difficulty, move)
	}

	if err := game.MakeTurn(mark, move); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "row", move.Row, "col", move.Col, "cached", cached)

	return move, nil
}

func (that *botService) lookup(ctx context.Context, log *slog.Logger, game *entity.Game, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, bool) {
	if that.moveRepo == nil || !difficulty.IsDeterministic() {
		return entity.NoMove, false
	}

	key := moveKey(game, mark, difficulty)

	move, err := that.moveRepo.GetByKey(ctx, key)
	if errors.Is(err, repository.ErrMoveNotFound) {
		return entity.NoMove, false
	}

	if err != nil {
		log.Warn("failed to read cached move", "error", err)
		return entity.NoMove, false
	}

	// a stale entry for a cell that is no longer free is dropped and searched again
	if !move.InRange() || game.Board.At(move) != entity.EmptyCell {
		log.Warn("dropping unusable cached move", "row", move.Row, "col", move.Col)

		if err = that.moveRepo.DeleteByKey(ctx, key); err != nil && !errors.Is(err, repository.ErrMoveNotFound) {
			log.Warn("failed to drop cached move", "error", err)
		}

		return entity.NoMove, false
	}

	return move, true
}

func (that *botService) store(ctx context.Context, log *slog.Logger, game *entity.Game, mark entity.Mark, difficulty entity.Difficulty, move entity.Move) {
	if that.moveRepo == nil || !difficulty.IsDeterministic() {
		return
	}

	if err := that.moveRepo.Save(ctx, moveKey(game, mark, difficulty), move); err != nil {
		log.Warn("failed to cache move", "error", err)
	}
}

func moveKey(game *entity.Game, mark entity.Mark, difficulty entity.Difficulty) string {
	return fmt.Sprintf("%s:%s:%s", difficulty, mark, game.Board.Key())
}
