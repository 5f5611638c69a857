package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

type Config struct {
	HHAPI   HHAPIConfig   `yaml:"hh_api"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Logging LoggingConfig `yaml:"logging"`
}

type HHAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	PerPage int           `yaml:"per_page"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// RedisConfig is optional. An empty Addr turns caching off.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		HHAPI: HHAPIConfig{
			BaseURL: "https://api.hh.ru",
			Timeout: 30 * time.Second,
			PerPage: 20,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    "data/vacancies.json",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "logs/hhsearch.log",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty), a .env file in the working directory (if present) and
// finally the process environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Variables already set in the environment win over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if baseURL := os.Getenv("HHAPI_BASE_URL"); baseURL != "" {
		c.HHAPI.BaseURL = baseURL
	}

	if timeout := os.Getenv("HHAPI_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid HHAPI_TIMEOUT: %w", err)
		}
		c.HHAPI.Timeout = d
	}

	if perPage := os.Getenv("HHAPI_PER_PAGE"); perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil {
			return fmt.Errorf("invalid HHAPI_PER_PAGE: %w", err)
		}
		c.HHAPI.PerPage = n
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if path := os.Getenv("STORAGE_PATH"); path != "" {
		c.Storage.Path = path
	}

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		c.Storage.PostgresDSN = dsn
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}

	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFile, ok := os.LookupEnv("LOG_FILE"); ok {
		c.Logging.File = logFile
	}

	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON:
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is empty")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	if c.HHAPI.BaseURL == "" {
		return fmt.Errorf("hh api base url is empty")
	}

	if c.HHAPI.Timeout <= 0 {
		return fmt.Errorf("hh api timeout must be positive: %v", c.HHAPI.Timeout)
	}

	if c.HHAPI.PerPage < 1 || c.HHAPI.PerPage > 100 {
		return fmt.Errorf("per page must be between 1 and 100")
	}

	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis db: %d", c.Redis.DB)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}
