package app

import (
	"github.com/bennettdavid04/simply-invest/internal/config"
	"github.com/bennettdavid04/simply-invest/internal/store"
)

type App struct {
	Config *config.Config
	Store  store.Store
}

func New(cfg *config.Config) (*App, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		Store:  s,
	}, nil
}

// openStore picks the backend: PostgreSQL when a database URL is configured,
// otherwise the local file store.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		return store.OpenPostgres(cfg.DatabaseURL)
	}

	return store.OpenSQLite(cfg.StorePath)
}
