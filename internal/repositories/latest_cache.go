package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

const latestRatesCacheKey = "latest_rates:all"

// LatestRateCacheRepository caches the all-codes latest-rates result in
// Redis. Mutations invalidate the key so deleted rows never outlive the TTL.
type LatestRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewLatestRateCacheRepository creates a new cache repository with the given TTL.
func NewLatestRateCacheRepository(client *redis.Client, expiration time.Duration) *LatestRateCacheRepository {
	return &LatestRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached latest rates. A cache miss returns redis.Nil.
func (r *LatestRateCacheRepository) Get(ctx context.Context) ([]models.LatestRate, error) {
	val, err := r.client.Get(ctx, latestRatesCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", latestRatesCacheKey,
			"result", "",
			"error", err,
		)
		return nil, err
	}

	var rates []models.LatestRate
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		logger.Log.Infow(
			"key", latestRatesCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", latestRatesCacheKey,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// Set caches the latest rates with the configured expiration.
func (r *LatestRateCacheRepository) Set(ctx context.Context, rates []models.LatestRate) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, latestRatesCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", latestRatesCacheKey,
		"rates", len(rates),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached result after a dataset mutation.
func (r *LatestRateCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, latestRatesCacheKey).Err()

	logger.Log.Infow(
		"key", latestRatesCacheKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
