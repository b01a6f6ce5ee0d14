package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config holds all application configuration
type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Locale     string     `yaml:"locale" env:"LOCALE" env-default:"ko"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Dataset    Dataset    `yaml:"dataset"`
	Auth       Auth       `yaml:"auth"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Dataset controls how the in-memory snapshot is generated.
// Seed 0 asks for a fresh random seed on every start.
type Dataset struct {
	Seed int64 `yaml:"seed" env:"DATASET_SEED" env-default:"20250101"`
}

type Auth struct {
	// DevHeaders lets X-Test-User-ID / X-Test-Role stand in for a bearer token.
	DevHeaders bool `yaml:"dev_headers" env:"AUTH_DEV_HEADERS" env-default:"false"`
}

// MustLoad loads configuration or terminates the process.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// Load reads .env (optional), then the YAML file named by CONFIG_PATH
// (optional), then environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: ENV must be one of local, dev, prod (got %q)", c.Env)
	}
	if c.Locale == "" {
		return errors.New("config: LOCALE must not be empty")
	}
	if c.Auth.DevHeaders && c.Env == EnvProd {
		return errors.New("config: AUTH_DEV_HEADERS cannot be enabled in prod")
	}
	return nil
}
