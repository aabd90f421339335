package service

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/bennettdavid04/simply-invest/internal/catalog"
)

// maxVariation bounds one random walk step to [-5%, +5%).
const maxVariation = 0.05

var minPrice = decimal.NewFromInt(1)

type priceRepository interface {
	Price(symbol string) (decimal.Decimal, bool, error)
	SetPrice(symbol string, price decimal.Decimal) error
}

// PriceService owns the shared price table. Prices are seeded lazily from the
// catalog's base table and move by a bounded multiplicative random walk.
type PriceService struct {
	repo priceRepository

	// variation returns a uniform draw in [0, 1); tests replace it.
	variation func() float64
}

func NewPriceService(repo priceRepository) *PriceService {
	return &PriceService{
		repo:      repo,
		variation: rand.Float64,
	}
}

// Price returns the current price for symbol, seeding and persisting it from
// the base table on first access. Unknown symbols seed at the fallback base
// price instead of failing.
func (s *PriceService) Price(symbol string) (decimal.Decimal, error) {
	price, ok, err := s.repo.Price(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if ok {
		return price, nil
	}

	price = catalog.BasePrice(symbol)
	if err := s.repo.SetPrice(symbol, price); err != nil {
		return decimal.Zero, err
	}

	return price, nil
}

// UpdatePrice applies one random walk step to symbol's price: a uniform
// variation in [-5%, +5%) applied multiplicatively, clamped to a floor of 1,
// rounded to 2 decimal places and persisted.
func (s *PriceService) UpdatePrice(symbol string) (decimal.Decimal, error) {
	price, err := s.Price(symbol)
	if err != nil {
		return decimal.Zero, err
	}

	step := s.variation()*2*maxVariation - maxVariation
	next := price.Mul(decimal.NewFromFloat(1 + step))
	if next.LessThan(minPrice) {
		next = minPrice
	}
	next = next.Round(2)

	if err := s.repo.SetPrice(symbol, next); err != nil {
		return decimal.Zero, err
	}

	return next, nil
}
