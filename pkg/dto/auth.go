package dto

import (
	"errors"
	"fmt"
	"strings"
)

type Register struct {
	Login    string `json:"login"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

func (r Register) IsValid() error {
	var loginErr, passwordErr error

	if strings.TrimSpace(r.Login) == "" {
		loginErr = fmt.Errorf("login is required")
	}

	if strings.TrimSpace(r.Password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(loginErr, passwordErr)
}

type Auth struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (a Auth) IsValid() error {
	var loginErr, passwordErr error

	if strings.TrimSpace(a.Login) == "" {
		loginErr = fmt.Errorf("login is required")
	}

	if strings.TrimSpace(a.Password) == "" {
		passwordErr = fmt.Errorf("password is required")
	}

	return errors.Join(loginErr, passwordErr)
}
