package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"superd"`
		Port      int    `envconfig:"PORT" default:"8080"`
		StaticDir string `envconfig:"STATIC_DIR" default:""`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"superd"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Cache struct {
		// Empty Addr falls back to the in-process session store.
		Addr     string `envconfig:"CACHE_ADDR" default:""`
		Password string `envconfig:"CACHE_PASSWORD" default:""`
		DB       int    `envconfig:"CACHE_DB" default:"0"`
	}

	Auth struct {
		PasswordSalt string        `envconfig:"PASSWORD_SALT" required:"true"`
		SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
