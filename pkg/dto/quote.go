package dto

/**
  {
      "symbol": "AAPL",
      "name": "Apple Inc.",
      "price": 150
  }
*/

type Quote struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}
