package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
)

// PriceCacheRepository keeps the last good token price in Redis so the
// conversion path can fall back to it when the live snapshot is empty.
type PriceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached prices
}

// NewPriceCacheRepository creates a new repository instance with a TTL.
func NewPriceCacheRepository(client *redis.Client, expiration time.Duration) *PriceCacheRepository {
	return &PriceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetTokenPrice fetches the cached price of asset quoted in quote units.
func (r *PriceCacheRepository) GetTokenPrice(ctx context.Context, asset, quote string) (decimal.Decimal, error) {
	key := fmt.Sprintf("token_price:%s:%s", asset, quote)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("price cache read",
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("token price not found in cache for %s/%s", asset, quote)
		}
		return decimal.Zero, err
	}

	price, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow("price cache read",
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow("price cache read",
		"key", key,
		"value", val,
		"result", price,
		"error", nil,
	)

	return price, nil
}

// SetTokenPrice caches a new price with expiration.
func (r *PriceCacheRepository) SetTokenPrice(ctx context.Context, asset, quote string, price decimal.Decimal) error {
	key := fmt.Sprintf("token_price:%s:%s", asset, quote)
	err := r.client.Set(ctx, key, price.String(), r.exp).Err()

	logger.Log.Infow("price cache write",
		"key", key,
		"price", price,
		"result", "ok",
		"error", err,
	)

	return err
}
