package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/models"
)

const (
	categoriesKey = "service_categories"
	categoriesTTL = 1 * time.Hour
)

// CategoryCache é um read-through cache sobre o diretório de categorias.
// O conjunto é fechado e raramente muda; qualquer erro do redis cai
// direto para a fonte.
type CategoryCache struct {
	rdb  *redis.Client
	next domain.CategoryDirectory
	log  zerolog.Logger
}

func NewCategoryCache(
	rdb *redis.Client,
	next domain.CategoryDirectory,
	log zerolog.Logger,
) *CategoryCache {
	return &CategoryCache{
		rdb:  rdb,
		next: next,
		log:  log,
	}
}

func (c *CategoryCache) ListServiceCategories(
	ctx context.Context,
) ([]models.ServiceCategory, error) {

	if b, err := c.rdb.Get(ctx, categoriesKey).Bytes(); err == nil {
		var categories []models.ServiceCategory
		if err := json.Unmarshal(b, &categories); err == nil {
			return categories, nil
		}
		// entrada corrompida: ignora e repovoa
		c.rdb.Del(ctx, categoriesKey)
	}

	categories, err := c.next.ListServiceCategories(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(categories); err == nil {
		if err := c.rdb.Set(ctx, categoriesKey, b, categoriesTTL).Err(); err != nil {
			c.log.Warn().Err(err).Msg("failed to cache categories")
		}
	}

	return categories, nil
}
