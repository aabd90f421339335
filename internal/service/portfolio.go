package service

import (
	"github.com/shopspring/decimal"

	"github.com/bennettdavid04/simply-invest/internal/catalog"
	"github.com/bennettdavid04/simply-invest/internal/domain"
)

type portfolioUserRepository interface {
	User(login string) (*domain.User, error)
	Save(user domain.User) error
}

type priceOracle interface {
	Price(symbol string) (decimal.Decimal, error)
	UpdatePrice(symbol string) (decimal.Decimal, error)
}

type PortfolioService struct {
	users  portfolioUserRepository
	oracle priceOracle
}

func NewPortfolioService(users portfolioUserRepository, oracle priceOracle) *PortfolioService {
	return &PortfolioService{
		users:  users,
		oracle: oracle,
	}
}

func (s *PortfolioService) Balance(login string) (decimal.Decimal, error) {
	user, err := s.users.User(login)
	if err != nil {
		return decimal.Zero, err
	}

	return user.Balance, nil
}

func (s *PortfolioService) Holdings(login string) ([]domain.Holding, error) {
	user, err := s.users.User(login)
	if err != nil {
		return nil, err
	}

	return user.Holdings, nil
}

// Buy invests amount into symbol at the current price. Validation happens
// before any state is touched: a rejected buy leaves the record unchanged.
func (s *PortfolioService) Buy(login, symbol string, amount decimal.Decimal) (*domain.Holding, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if !catalog.Contains(symbol) {
		return nil, domain.ErrUnknownSymbol
	}

	user, err := s.users.User(login)
	if err != nil {
		return nil, err
	}

	if amount.GreaterThan(user.Balance) {
		return nil, domain.ErrInsufficientFunds
	}

	price, err := s.oracle.Price(symbol)
	if err != nil {
		return nil, err
	}

	holding := domain.Holding{
		Symbol:         symbol,
		Quantity:       amount.Div(price),
		ReferencePrice: price,
		InvestedAmount: amount,
	}

	user.Holdings = append(user.Holdings, holding)
	user.Balance = user.Balance.Sub(amount).Round(2)

	if err := s.users.Save(*user); err != nil {
		return nil, err
	}

	return &holding, nil
}

// RevalueAll walks the holdings in order, moves each symbol's price one step
// and realizes the profit or loss against the holding's reference price into
// the balance. Each holding is then rebased: its reference price becomes the
// new price and its invested amount becomes quantity × new price, so the next
// pass measures change from here, not from the original purchase.
func (s *PortfolioService) RevalueAll(login string) (*domain.User, error) {
	user, err := s.users.User(login)
	if err != nil {
		return nil, err
	}

	for i := range user.Holdings {
		holding := &user.Holdings[i]

		price, err := s.oracle.UpdatePrice(holding.Symbol)
		if err != nil {
			return nil, err
		}

		pctChange := price.Sub(holding.ReferencePrice).Div(holding.ReferencePrice)
		profit := holding.InvestedAmount.Mul(pctChange)
		user.Balance = user.Balance.Add(profit).Round(2)

		holding.ReferencePrice = price
		holding.InvestedAmount = holding.Quantity.Mul(price)
	}

	if err := s.users.Save(*user); err != nil {
		return nil, err
	}

	return user, nil
}

// Sell liquidates the holding at index at a freshly updated price and credits
// the proceeds. Later holdings shift down one position.
func (s *PortfolioService) Sell(login string, index int) (decimal.Decimal, error) {
	user, err := s.users.User(login)
	if err != nil {
		return decimal.Zero, err
	}

	if index < 0 || index >= len(user.Holdings) {
		return decimal.Zero, domain.ErrNoSuchHolding
	}

	holding := user.Holdings[index]

	price, err := s.oracle.UpdatePrice(holding.Symbol)
	if err != nil {
		return decimal.Zero, err
	}

	proceeds := holding.Quantity.Mul(price).Round(2)
	user.Balance = user.Balance.Add(proceeds).Round(2)
	user.Holdings = append(user.Holdings[:index], user.Holdings[index+1:]...)

	if err := s.users.Save(*user); err != nil {
		return decimal.Zero, err
	}

	return proceeds, nil
}
