package repository

import (
	"context"
	"encoding/json"
	"time"

	"game_catalog/internal/domain/model"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const gameCacheKeyPrefix = "game:id:"

// cachedGameRepository is a cache-aside decorator over a GameRepository.
// Only the hot get-by-id path is cached; lists go straight to the database.
// Cache failures degrade to the underlying repository, never to the caller.
type cachedGameRepository struct {
	next GameRepository
	rdb  *redis.Client
	ttl  time.Duration
	log  *logrus.Logger
}

func NewCachedGameRepository(next GameRepository, rdb *redis.Client, ttl time.Duration, log *logrus.Logger) GameRepository {
	return &cachedGameRepository{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (r *cachedGameRepository) FindByID(ctx context.Context, id string) (*model.Game, error) {
	key := gameCacheKeyPrefix + id

	if data, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		game := &model.Game{}
		if err := json.Unmarshal(data, game); err == nil {
			return game, nil
		}
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		r.log.WithError(err).Warn("game cache read failed")
	}

	game, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(game); err == nil {
		if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.log.WithError(err).Warn("game cache write failed")
		}
	}
	return game, nil
}

func (r *cachedGameRepository) Update(ctx context.Context, game *model.Game) error {
	if err := r.next.Update(ctx, game); err != nil {
		return err
	}
	r.invalidate(ctx, game.ID)
	return nil
}

func (r *cachedGameRepository) SoftDelete(ctx context.Context, id string) error {
	if err := r.next.SoftDelete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedGameRepository) invalidate(ctx context.Context, id string) {
	if err := r.rdb.Del(ctx, gameCacheKeyPrefix+id).Err(); err != nil {
		r.log.WithError(err).Warn("game cache invalidation failed")
	}
}

func (r *cachedGameRepository) Create(ctx context.Context, game *model.Game) error {
	return r.next.Create(ctx, game)
}

func (r *cachedGameRepository) FindBySlug(ctx context.Context, slug string) (*model.Game, error) {
	return r.next.FindBySlug(ctx, slug)
}

func (r *cachedGameRepository) List(ctx context.Context, limit, offset int, category, searchTerm string) ([]model.Game, int, error) {
	return r.next.List(ctx, limit, offset, category, searchTerm)
}
