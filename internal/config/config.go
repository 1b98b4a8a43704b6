package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Fuentes posibles del catálogo de películas.
const (
	SourceCSV   = "csv"
	SourceMongo = "mongo"
)

// LogLevels son los valores aceptados en LOG_LEVEL ("" = info).
var LogLevels = []string{"", "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled"}

// ConfigPathEnvVar apunta a un YAML opcional con la configuración.
const ConfigPathEnvVar = "CONFIG_PATH"

type Config struct {
	HTTPHost string `koanf:"http_host"`
	HTTPPort int    `koanf:"http_port"`

	// catálogo + índice KNN entrenado offline (cmd/indexer)
	CatalogSource string `koanf:"catalog_source"`
	CatalogPath   string `koanf:"catalog_path"`
	IndexPath     string `koanf:"index_path"`

	MongoURI      string `koanf:"mongo_uri"`
	MongoDB       string `koanf:"mongo_db"`
	RecordHistory bool   `koanf:"record_history"`

	RedisAddr string        `koanf:"redis_addr"`
	RedisPass string        `koanf:"redis_password"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`

	// si está vacío, /admin/* queda abierto
	JWTSecret string `koanf:"jwt_secret"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Defaults devuelve la configuración por defecto (equivale a correr sin .env).
func Defaults() *Config {
	return &Config{
		HTTPHost:          "127.0.0.1",
		HTTPPort:          8000,
		CatalogSource:     SourceCSV,
		CatalogPath:       "movies.csv",
		IndexPath:         "genres.knn.json",
		MongoDB:           "movielens",
		CacheTTL:          time.Hour,
		LogLevel:          "info",
		LogFormat:         "console",
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CORSOrigins:       []string{"*"},
	}
}

// Load arma la config: defaults -> YAML (CONFIG_PATH) -> variables de entorno.
// Un .env en el directorio actual se carga antes, igual que antes con getEnv.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// variable vacía = no definida, igual que getEnv: queda el default
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr es host:port para el listener HTTP.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func (c *Config) Validate() error {
	var errs []error

	switch c.CatalogSource {
	case SourceCSV:
		if c.CatalogPath == "" {
			errs = append(errs, errors.New("CATALOG_PATH is required for the csv catalog source"))
		}
	case SourceMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is required for the mongo catalog source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q (csv|mongo)", c.CatalogSource))
	}

	if c.IndexPath == "" {
		errs = append(errs, errors.New("INDEX_PATH is required"))
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort))
	}
	if c.RecordHistory && c.MongoURI == "" {
		errs = append(errs, errors.New("RECORD_HISTORY needs MONGO_URI"))
	}

	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// splitList normaliza listas que llegan como "a, b" desde el entorno.
func splitList(in []string) []string {
	var out []string
	for _, v := range in {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
