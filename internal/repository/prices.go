package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bennettdavid04/simply-invest/internal/store"
)

const pricesKey = "stockPrices"

// Prices persists the symbol → price table as one JSON blob under the
// "stockPrices" key.
type Prices struct {
	store store.Store
}

func NewPrices(s store.Store) *Prices {
	return &Prices{store: s}
}

func (r *Prices) all() (map[string]decimal.Decimal, error) {
	raw, ok, err := r.store.Get(pricesKey)
	if err != nil {
		return nil, fmt.Errorf("error fetching prices: %w", err)
	}
	if !ok {
		return map[string]decimal.Decimal{}, nil
	}

	var prices map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, fmt.Errorf("error decoding prices: %w", err)
	}

	return prices, nil
}

// Price returns the stored price for symbol, and whether one is stored.
func (r *Prices) Price(symbol string) (decimal.Decimal, bool, error) {
	prices, err := r.all()
	if err != nil {
		return decimal.Zero, false, err
	}

	price, ok := prices[symbol]

	return price, ok, nil
}

// SetPrice stores price for symbol, keeping the rest of the table.
func (r *Prices) SetPrice(symbol string, price decimal.Decimal) error {
	prices, err := r.all()
	if err != nil {
		return err
	}

	prices[symbol] = price

	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("error encoding prices: %w", err)
	}

	if err := r.store.Set(pricesKey, raw); err != nil {
		return fmt.Errorf("error storing prices: %w", err)
	}

	return nil
}
