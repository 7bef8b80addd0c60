package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	"github.com/ikaro-souza/recipe-app-api/internal/pkg/redistools"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/redis/go-redis/v9"
)

// AttrCache keeps per-owner attribute lists in redis. Keys look like
// "tags:user:42"; a create for that owner drops the key so the next list
// reads through to postgres.
type AttrCache struct {
	rdb     *redis.Client
	expTime time.Duration
}

func New(ctx context.Context, cfg config.RedisCache) (AttrCache, error) {
	rdb, err := redistools.Connect(ctx, cfg)
	if err != nil {
		return AttrCache{}, fmt.Errorf("connect error: %w", err)
	}

	return AttrCache{
		rdb:     rdb,
		expTime: cfg.ExpTime,
	}, nil
}

func (ac AttrCache) GetList(ctx context.Context, table string, ownerID int) ([]models.Attribute, error) {
	res, err := ac.rdb.Get(ctx, listKey(table, ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get error: %w", err)
	}

	var attrs []models.Attribute
	if err := json.Unmarshal([]byte(res), &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return attrs, nil
}

func (ac AttrCache) SetList(ctx context.Context, table string, ownerID int, attrs []models.Attribute) error {
	attrsJSON, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if _, err := ac.rdb.Set(ctx, listKey(table, ownerID), attrsJSON, ac.expTime).Result(); err != nil {
		return fmt.Errorf("set error: %w", err)
	}

	return nil
}

func (ac AttrCache) Invalidate(ctx context.Context, table string, ownerID int) error {
	if _, err := ac.rdb.Del(ctx, listKey(table, ownerID)).Result(); err != nil {
		return fmt.Errorf("del error: %w", err)
	}

	return nil
}

func listKey(table string, ownerID int) string {
	return fmt.Sprintf("%s:user:%d", table, ownerID)
}
