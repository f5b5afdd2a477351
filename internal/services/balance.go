package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// BalanceReader fetches current holdings and prices from the swap engine.
type BalanceReader interface {
	GetBalances(ctx context.Context) (map[string]models.AssetBalance, error)
}

// PriceCache caches the last good token price.
type PriceCache interface {
	GetTokenPrice(ctx context.Context, asset, quote string) (decimal.Decimal, error)
	SetTokenPrice(ctx context.Context, asset, quote string, price decimal.Decimal) error
}

// BalancePoller refreshes the balance/price snapshot on a fixed interval
// for as long as its context lives. Consumers read the latest snapshot;
// ticks follow last-write-wins, a refresh arriving mid-edit only affects
// subsequent derivations.
type BalancePoller struct {
	reader   BalanceReader
	cache    PriceCache
	interval time.Duration

	mu       sync.RWMutex
	snapshot map[string]models.AssetBalance
}

// NewBalancePoller creates a poller over the given reader. The cache is
// optional; when present, each refresh writes the pair price through.
func NewBalancePoller(reader BalanceReader, cache PriceCache, interval time.Duration) *BalancePoller {
	return &BalancePoller{
		reader:   reader,
		cache:    cache,
		interval: interval,
	}
}

// Run refreshes immediately, then on every tick until ctx is cancelled.
// The ticker is stopped on return so no refresh outlives the caller.
func (p *BalancePoller) Run(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		logger.Log.Errorw("initial balance refresh failed", "error", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("balance poller stopped")
			return
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				logger.Log.Errorw("balance refresh failed", "error", err)
			}
		}
	}
}

// Refresh fetches balances once and swaps in the new snapshot. A failed
// fetch keeps the previous snapshot; stale data is preferable to none.
func (p *BalancePoller) Refresh(ctx context.Context) error {
	balances, err := p.reader.GetBalances(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.snapshot = balances
	p.mu.Unlock()

	if p.cache != nil {
		if rate := rateFromBalances(balances); rate.IsPositive() {
			if err := p.cache.SetTokenPrice(ctx, models.SOL, models.USDT, rate); err != nil {
				logger.Log.Errorw("failed to cache token price", "error", err)
			}
		}
	}

	return nil
}

// Snapshot returns a copy of the latest balances keyed by asset.
func (p *BalancePoller) Snapshot() map[string]models.AssetBalance {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]models.AssetBalance, len(p.snapshot))
	for k, v := range p.snapshot {
		out[k] = v
	}
	return out
}

// Available returns the available balance of the given asset, zero when
// unknown.
func (p *BalancePoller) Available(asset string) decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot[asset].Balance
}

// Price returns the current price of the base asset in quote units,
// falling back to the cache when the snapshot has no usable rate yet.
func (p *BalancePoller) Price(ctx context.Context) decimal.Decimal {
	p.mu.RLock()
	rate := rateFromBalances(p.snapshot)
	p.mu.RUnlock()

	if rate.IsPositive() {
		return rate
	}

	if p.cache != nil {
		cached, err := p.cache.GetTokenPrice(ctx, models.SOL, models.USDT)
		if err == nil && cached.IsPositive() {
			return cached
		}
	}

	return decimal.Zero
}

// rateFromBalances derives the SOL/USDT exchange rate from USD prices.
// Both assets are priced in USD, so the pair rate is their quotient.
func rateFromBalances(balances map[string]models.AssetBalance) decimal.Decimal {
	sol, ok := balances[models.SOL]
	if !ok || !sol.PriceUSD.IsPositive() {
		return decimal.Zero
	}

	usdt, ok := balances[models.USDT]
	if !ok || !usdt.PriceUSD.IsPositive() {
		return sol.PriceUSD
	}

	return sol.PriceUSD.DivRound(usdt.PriceUSD, 8)
}
