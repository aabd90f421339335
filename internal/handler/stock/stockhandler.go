package stockhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bennettdavid04/simply-invest/internal/catalog"
	"github.com/bennettdavid04/simply-invest/pkg/dto"
	"github.com/bennettdavid04/simply-invest/pkg/logger"
)

type priceService interface {
	Price(symbol string) (decimal.Decimal, error)
}

type StockHandler struct {
	prices priceService
}

func New(prices priceService) *StockHandler {
	return &StockHandler{
		prices: prices,
	}
}

// Stocks lists the catalog with current prices, seeding any price not yet in
// the table.
func (h StockHandler) Stocks(w http.ResponseWriter, r *http.Request) {
	quotes := make([]dto.Quote, len(catalog.Stocks))
	for i, stock := range catalog.Stocks {
		price, err := h.prices.Price(stock.Symbol)
		if err != nil {
			logger.Log.Error("error while fetching price", logger.String("symbol", stock.Symbol), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		quotes[i] = dto.Quote{
			Symbol: stock.Symbol,
			Name:   stock.Name,
			Price:  price.InexactFloat64(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(quotes); err != nil {
		logger.Log.Error("error while encoding quotes to JSON", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h StockHandler) Stock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	var name string
	for _, stock := range catalog.Stocks {
		if stock.Symbol == symbol {
			name = stock.Name
			break
		}
	}
	if name == "" {
		logger.Log.Warn("unknown symbol", logger.String("symbol", symbol))
		http.Error(w, "unknown stock symbol", http.StatusNotFound)
		return
	}

	price, err := h.prices.Price(symbol)
	if err != nil {
		logger.Log.Error("error while fetching price", logger.String("symbol", symbol), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Quote{
		Symbol: symbol,
		Name:   name,
		Price:  price.InexactFloat64(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding quote to JSON", logger.String("symbol", symbol), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
