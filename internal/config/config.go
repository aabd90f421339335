package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr             string   `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	DatabaseURL      string   `env:"DATABASE_URI"`
	StorePath        string   `env:"STORE_PATH" env-default:"simply-invest.db"`
	PrivateKey       string   `env:"PRIVATE_KEY" env-default:"privatekey"`
	AuthDisabledURLs []string `env:"AUTH_DISABLED_URLS" env-default:"/login,/register" env-separator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.Addr, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURL, "d", "", "database URL (uses the local file store when empty)")
	flag.StringVar(&cfg.StorePath, "f", "simply-invest.db", "path of the local file store")

	flag.Parse()

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}
