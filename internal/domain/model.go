package domain

import "github.com/shopspring/decimal"

// StartingBalance is credited to every new user at registration.
var StartingBalance = decimal.NewFromInt(100000)

// MinimumAge is the youngest age accepted at registration.
const MinimumAge = 13

type User struct {
	Login        string          `json:"login"`
	Age          int             `json:"age"`
	PasswordHash string          `json:"passwordHash"`
	Balance      decimal.Decimal `json:"balance"`
	Holdings     []Holding       `json:"holdings"`
}

// Holding is a user's stake in one stock. ReferencePrice is the basis for the
// next revaluation pass, not the original purchase price: every pass rebases
// both ReferencePrice and InvestedAmount to the latest price.
type Holding struct {
	Symbol         string          `json:"symbol"`
	Quantity       decimal.Decimal `json:"quantity"`
	ReferencePrice decimal.Decimal `json:"referencePrice"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
}

type Lesson struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
}
