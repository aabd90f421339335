package catalog

import "github.com/shopspring/decimal"

// Stock is one entry of the fixed tradable catalog.
type Stock struct {
	Symbol string
	Name   string
}

// Stocks is the full catalog, in display order.
var Stocks = []Stock{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
	{Symbol: "META", Name: "Meta Platforms Inc."},
	{Symbol: "NFLX", Name: "Netflix Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
}

var basePrices = map[string]decimal.Decimal{
	"AAPL":  decimal.NewFromInt(150),
	"GOOGL": decimal.NewFromInt(2800),
	"MSFT":  decimal.NewFromInt(300),
	"AMZN":  decimal.NewFromInt(3400),
	"TSLA":  decimal.NewFromInt(700),
	"META":  decimal.NewFromInt(350),
	"NFLX":  decimal.NewFromInt(500),
	"NVDA":  decimal.NewFromInt(220),
}

// fallbackBasePrice seeds symbols missing from the base table.
var fallbackBasePrice = decimal.NewFromInt(100)

// Contains reports whether symbol is part of the catalog.
func Contains(symbol string) bool {
	_, ok := basePrices[symbol]
	return ok
}

// BasePrice returns the seed price for symbol, falling back to 100 for
// symbols outside the catalog.
func BasePrice(symbol string) decimal.Decimal {
	if price, ok := basePrices[symbol]; ok {
		return price
	}
	return fallbackBasePrice
}
