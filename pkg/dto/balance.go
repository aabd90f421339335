package dto

/**
  {
      "current": 99000.00
  }
*/

type Balance struct {
	Current float64 `json:"current"`
}
