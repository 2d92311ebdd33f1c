package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cupoapp/cupo/internal/pkg/constants"
	"github.com/cupoapp/cupo/internal/pkg/database"
	"github.com/cupoapp/cupo/internal/pkg/logger"
	"github.com/cupoapp/cupo/internal/pkg/models"
	"github.com/cupoapp/cupo/services/pricing"
	"github.com/jmoiron/sqlx"
)

// AssumptionsRepo persists the pricing assumptions row and keeps a short
// lived cached copy in Redis.
type AssumptionsRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewAssumptionsRepo creates a new assumptions repository
func NewAssumptionsRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *AssumptionsRepo {
	return &AssumptionsRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

func (r *AssumptionsRepo) cacheTTL() time.Duration {
	ttl := r.cfg.Pricing.CacheTTLSeconds
	if ttl <= 0 {
		ttl = 60
	}
	return time.Duration(ttl) * time.Second
}

// GetAssumptions returns the single assumptions row, served from cache when
// a fresh copy exists.
func (r *AssumptionsRepo) GetAssumptions(ctx context.Context) (*models.Assumptions, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, constants.KeyAssumptions); err == nil && cached != "" {
			var assumptions models.Assumptions
			if err := json.Unmarshal([]byte(cached), &assumptions); err == nil {
				return &assumptions, nil
			}
			logger.WarnCtx(ctx, "Discarding unreadable cached assumptions")
		}
	}

	query := `
		SELECT id, urban_price_per_km, interurban_price_per_km, urban_threshold_km,
		       price_limit_percentage, fee_percentage, fixed_rate, updated_at
		FROM assumptions
		ORDER BY id
		LIMIT 1
	`

	var assumptions models.Assumptions
	err := r.db.GetContext(ctx, &assumptions, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pricing.ErrAssumptionsNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assumptions: %w", err)
	}

	r.storeInCache(ctx, &assumptions)
	return &assumptions, nil
}

// UpdateAssumptions writes the assumptions row and refreshes the cache
func (r *AssumptionsRepo) UpdateAssumptions(ctx context.Context, assumptions *models.Assumptions) (*models.Assumptions, error) {
	query := `
		UPDATE assumptions SET
			urban_price_per_km = $1,
			interurban_price_per_km = $2,
			urban_threshold_km = $3,
			price_limit_percentage = $4,
			fee_percentage = $5,
			fixed_rate = $6,
			updated_at = NOW()
		WHERE id = (SELECT id FROM assumptions ORDER BY id LIMIT 1)
		RETURNING id, urban_price_per_km, interurban_price_per_km, urban_threshold_km,
		          price_limit_percentage, fee_percentage, fixed_rate, updated_at
	`

	var updated models.Assumptions
	err := r.db.GetContext(ctx, &updated, query,
		assumptions.UrbanPricePerKm,
		assumptions.InterurbanPricePerKm,
		assumptions.UrbanThresholdKm,
		assumptions.PriceLimitPercentage,
		assumptions.FeePercentage,
		assumptions.FixedRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pricing.ErrAssumptionsNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update assumptions: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, constants.KeyAssumptions); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate assumptions cache", logger.Err(err))
		}
	}
	r.storeInCache(ctx, &updated)

	return &updated, nil
}

func (r *AssumptionsRepo) storeInCache(ctx context.Context, assumptions *models.Assumptions) {
	if r.cache == nil {
		return
	}

	payload, err := json.Marshal(assumptions)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, constants.KeyAssumptions, string(payload), r.cacheTTL()); err != nil {
		logger.WarnCtx(ctx, "Failed to cache assumptions", logger.Err(err))
	}
}
