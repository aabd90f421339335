package portfoliohandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/bennettdavid04/simply-invest/internal/domain"
	"github.com/bennettdavid04/simply-invest/internal/handler/middleware"
	"github.com/bennettdavid04/simply-invest/pkg/dto"
	"github.com/bennettdavid04/simply-invest/pkg/logger"
)

type portfolioService interface {
	Balance(login string) (decimal.Decimal, error)
	Holdings(login string) ([]domain.Holding, error)
	Buy(login, symbol string, amount decimal.Decimal) (*domain.Holding, error)
	RevalueAll(login string) (*domain.User, error)
	Sell(login string, index int) (decimal.Decimal, error)
}

type PortfolioHandler struct {
	srv portfolioService
}

func New(srv portfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		srv: srv,
	}
}

func (h PortfolioHandler) Balance(w http.ResponseWriter, r *http.Request) {
	login := r.Header.Get(middleware.UserLoginHeader)
	if login == "" {
		logger.Log.Error("missing user login header", logger.String("url", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	balance, err := h.srv.Balance(login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		logger.Log.Error("error while fetching balance", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.Balance{
		Current: balance.InexactFloat64(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		logger.Log.Error("error while encoding balance to JSON", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	login := r.Header.Get(middleware.UserLoginHeader)
	if login == "" {
		logger.Log.Error("missing user login header", logger.String("url", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	balance, err := h.srv.Balance(login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		logger.Log.Error("error while fetching portfolio", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	holdings, err := h.srv.Holdings(login)
	if err != nil {
		logger.Log.Error("error while fetching holdings", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writePortfolio(w, login, balance, holdings)
}

func (h PortfolioHandler) Buy(w http.ResponseWriter, r *http.Request) {
	login := r.Header.Get(middleware.UserLoginHeader)
	if login == "" {
		logger.Log.Error("missing user login header", logger.String("url", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buyRequest dto.BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&buyRequest); err != nil {
		logger.Log.Warn("error while decoding a buy request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	holding, err := h.srv.Buy(login, buyRequest.Symbol, decimal.NewFromFloat(buyRequest.Amount))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			logger.Log.Warn("invalid buy amount", logger.String("login", login), logger.Float64("amount", buyRequest.Amount))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUnknownSymbol) {
			logger.Log.Warn("unknown symbol", logger.String("login", login), logger.String("symbol", buyRequest.Symbol))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			logger.Log.Warn("insufficient funds", logger.String("login", login), logger.Float64("amount", buyRequest.Amount))
			http.Error(w, "insufficient funds", http.StatusPaymentRequired)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		logger.Log.Error("error while buying stock", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.BuyResponse{
		Symbol:   holding.Symbol,
		Price:    holding.ReferencePrice.InexactFloat64(),
		Quantity: holding.Quantity.InexactFloat64(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding buy response to JSON", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func (h PortfolioHandler) Revalue(w http.ResponseWriter, r *http.Request) {
	login := r.Header.Get(middleware.UserLoginHeader)
	if login == "" {
		logger.Log.Error("missing user login header", logger.String("url", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.srv.RevalueAll(login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		logger.Log.Error("error while revaluing portfolio", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writePortfolio(w, login, user.Balance, user.Holdings)
}

func (h PortfolioHandler) Sell(w http.ResponseWriter, r *http.Request) {
	login := r.Header.Get(middleware.UserLoginHeader)
	if login == "" {
		logger.Log.Error("missing user login header", logger.String("url", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		logger.Log.Warn("invalid holding index", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	proceeds, err := h.srv.Sell(login, index)
	if err != nil {
		if errors.Is(err, domain.ErrNoSuchHolding) {
			logger.Log.Warn("no holding at index", logger.String("login", login), logger.Int("index", index))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		logger.Log.Error("error while selling holding", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := dto.SellResponse{
		Proceeds: proceeds.InexactFloat64(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding sell response to JSON", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

func writePortfolio(w http.ResponseWriter, login string, balance decimal.Decimal, holdings []domain.Holding) {
	dtos := make([]dto.Holding, len(holdings))
	for i, holding := range holdings {
		dtos[i] = dto.Holding{
			Symbol:         holding.Symbol,
			Quantity:       holding.Quantity.InexactFloat64(),
			ReferencePrice: holding.ReferencePrice.InexactFloat64(),
			InvestedAmount: holding.InvestedAmount.InexactFloat64(),
		}
	}

	resp := dto.Portfolio{
		Balance:  balance.InexactFloat64(),
		Holdings: dtos,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("error while encoding portfolio to JSON", logger.String("login", login), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
