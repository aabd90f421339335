package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/bennettdavid04/simply-invest/internal/config"
	"github.com/bennettdavid04/simply-invest/internal/domain"
	"github.com/bennettdavid04/simply-invest/pkg/logger"
)

type UserRepository interface {
	CreateUser(user domain.User) error
	User(login string) (*domain.User, error)
}

type UserService struct {
	config *config.Config
	repo   UserRepository
}

func NewUserService(repo UserRepository, config *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		config: config,
	}
}

func (s *UserService) Register(login string, age int, password string) (string, error) {
	if strings.TrimSpace(login) == "" {
		return "", domain.ErrLoginRequired
	}

	if age < domain.MinimumAge {
		logger.Log.Warn("registration rejected, underage", logger.Int("age", age))
		return "", domain.ErrUnderage
	}

	user := domain.User{
		Login:        login,
		Age:          age,
		PasswordHash: hashPassword(password),
		Balance:      domain.StartingBalance,
		Holdings:     []domain.Holding{},
	}

	if err := s.repo.CreateUser(user); err != nil {
		return "", err
	}

	return generateJWTToken(login, s.config.PrivateKey)
}

func (s *UserService) Login(login, password string) (string, error) {
	user, err := s.repo.User(login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Log.Warn("unknown login", logger.String("login", login))
		}
		return "", err
	}

	if user.PasswordHash != hashPassword(password) {
		logger.Log.Warn("incorrect password", logger.String("login", login))
		return "", domain.ErrIncorrectCredentials
	}

	return generateJWTToken(user.Login, s.config.PrivateKey)
}

// hashPassword returns the hex-encoded SHA-256 digest used as the stored
// credential hash.
func hashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func generateJWTToken(login, privateKey string) (string, error) {
	claims := jwt.MapClaims{
		"sub": login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(privateKey))
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return signedToken, nil
}
