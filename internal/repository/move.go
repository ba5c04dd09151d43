package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

var ErrMoveNotFound = errors.New("move not found")

const moveKeyPrefix = "move:"

type MoveRepository interface {
	Save(ctx context.Context, key string, move entity.Move) error
	GetByKey(ctx context.Context, key string) (entity.Move, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores searched moves for ttl; zero keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, key string, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, moveKeyPrefix+key, moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (entity.Move, error) {
	response, err := that.client.Get(ctx, moveKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return entity.NoMove, ErrMoveNotFound
	}

	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to get move by key: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.NoMove, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *dbMove) DeleteByKey(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, moveKeyPrefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move by key: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
