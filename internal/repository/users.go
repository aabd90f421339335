package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bennettdavid04/simply-invest/internal/domain"
	"github.com/bennettdavid04/simply-invest/internal/store"
)

const usersKey = "users"

// Users persists the full user list as one JSON blob under the "users" key.
// Every mutation is a whole-blob read-modify-write; concurrent writers get
// last-writer-wins semantics.
type Users struct {
	store store.Store
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

func (r *Users) all() ([]domain.User, error) {
	raw, ok, err := r.store.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return users, nil
}

func (r *Users) write(users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("error encoding users: %w", err)
	}

	if err := r.store.Set(usersKey, raw); err != nil {
		return fmt.Errorf("error storing users: %w", err)
	}

	return nil
}

// User returns the record whose login matches case-insensitively.
func (r *Users) User(login string) (*domain.User, error) {
	users, err := r.all()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Login, login) {
			return &users[i], nil
		}
	}

	return nil, domain.ErrUserNotFound
}

// CreateUser appends user, rejecting case-insensitive duplicate logins.
func (r *Users) CreateUser(user domain.User) error {
	users, err := r.all()
	if err != nil {
		return err
	}

	for i := range users {
		if strings.EqualFold(users[i].Login, user.Login) {
			return domain.ErrUserExists
		}
	}

	return r.write(append(users, user))
}

// Save overwrites the stored record with a matching login in place. Saving a
// user that was never created is a no-op.
func (r *Users) Save(user domain.User) error {
	users, err := r.all()
	if err != nil {
		return err
	}

	for i := range users {
		if strings.EqualFold(users[i].Login, user.Login) {
			users[i] = user
			return r.write(users)
		}
	}

	return nil
}
