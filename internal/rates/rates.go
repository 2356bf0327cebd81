package rates

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
)

// Table defines the interface for the exchange rate table to enable mocking.
// Rates are satoshis per whole unit of fiat, refreshed by an external
// process; a currency absent from the table is unavailable
//
//go:generate mockgen -source=rates.go -destination=../mocks/rates.go -package=mocks -mock_names=Table=MockTable
type Table interface {
	// Rate returns the satoshis-per-unit rate for a currency code, with a
	// found flag
	Rate(ctx context.Context, currency string) (float64, bool, error)

	// Currencies returns the currency codes currently priced, sorted
	Currencies(ctx context.Context) ([]string, error)

	// Snapshot returns the full rate table keyed by currency code
	Snapshot(ctx context.Context) (map[string]float64, error)
}

type redisTable struct {
	redis adapter.RedisClient
	key   string
}

// NewRedisTable creates a rate table backed by a Redis hash. Fields are
// upper-case currency codes, values are satoshis-per-unit
func NewRedisTable(redis adapter.RedisClient, key string) Table {
	return &redisTable{redis: redis, key: key}
}

// Rate returns the satoshis-per-unit rate for a currency code
func (t *redisTable) Rate(ctx context.Context, currency string) (float64, bool, error) {
	val, found, err := t.redis.HGet(ctx, t.key, strings.ToUpper(currency))
	if err != nil {
		return 0, false, fmt.Errorf("failed to read rate: %w", err)
	}
	if !found {
		return 0, false, nil
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse rate for %s: %w", currency, err)
	}
	if rate <= 0 {
		return 0, false, nil
	}

	return rate, true, nil
}

// Currencies returns the currency codes currently priced, sorted
func (t *redisTable) Currencies(ctx context.Context) ([]string, error) {
	fields, err := t.redis.HGetAll(ctx, t.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table: %w", err)
	}

	currencies := make([]string, 0, len(fields))
	for code, val := range fields {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil || rate <= 0 {
			continue
		}
		currencies = append(currencies, strings.ToUpper(code))
	}
	sort.Strings(currencies)

	return currencies, nil
}

// Snapshot returns the full rate table keyed by currency code
func (t *redisTable) Snapshot(ctx context.Context) (map[string]float64, error) {
	fields, err := t.redis.HGetAll(ctx, t.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate table: %w", err)
	}

	snapshot := make(map[string]float64, len(fields))
	for code, val := range fields {
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil || rate <= 0 {
			continue
		}
		snapshot[strings.ToUpper(code)] = rate
	}

	return snapshot, nil
}

// ToSatoshis converts a fiat amount to satoshis at the given rate
func ToSatoshis(amount, rate float64) int64 {
	return int64(math.Round(amount * rate))
}
