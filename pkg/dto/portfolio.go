package dto

/**
  {
      "symbol": "AAPL",
      "amount": 1000
  }
*/

type BuyRequest struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

type BuyResponse struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type Holding struct {
	Symbol         string  `json:"symbol"`
	Quantity       float64 `json:"quantity"`
	ReferencePrice float64 `json:"reference_price"`
	InvestedAmount float64 `json:"invested_amount"`
}

type Portfolio struct {
	Balance  float64   `json:"balance"`
	Holdings []Holding `json:"holdings"`
}

type SellResponse struct {
	Proceeds float64 `json:"proceeds"`
}
