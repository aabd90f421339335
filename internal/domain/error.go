package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrLoginRequired        = errors.New("login is required")
	ErrUnderage             = errors.New("you must be at least 13 years old")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrUnknownSymbol        = errors.New("unknown stock symbol")
	ErrNoSuchHolding        = errors.New("no holding at this position")
	ErrLessonNotFound       = errors.New("lesson not found")
)
