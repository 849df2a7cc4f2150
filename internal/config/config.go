package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/padaria-criativa/catalog/internal/catalog/model"
	"github.com/padaria-criativa/catalog/internal/core"
	logx "github.com/padaria-criativa/catalog/pkg/logger"
	"github.com/rs/zerolog"
)

// AppConfig holds everything the tool reads from the environment.
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`

	Catalog model.CatalogConfig
}

func (c AppConfig) Env() core.Environment {
	return core.ParseEnvironment(c.Environment)
}

func (c AppConfig) Level() zerolog.Level {
	return logx.ParseLevel(c.LogLevel)
}

// Load reads the optional .env files, then the process environment.
// A missing .env is fine; a malformed one is an error.
func Load(envFiles ...string) (AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("process environment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) validate() error {
	if c.Catalog.DataFile == "" {
		return errors.New("CATALOG_DATA_FILE must not be empty")
	}
	if c.Catalog.ExportFile == "" {
		return errors.New("CATALOG_EXPORT_FILE must not be empty")
	}
	if c.Catalog.DefaultDiscount < 0 || c.Catalog.DefaultDiscount > 100 {
		return fmt.Errorf("CATALOG_DEFAULT_DISCOUNT must be within [0,100], got %v", c.Catalog.DefaultDiscount)
	}
	return nil
}
