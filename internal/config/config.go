package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SlotEngine/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Search         SearchConfig         `toml:"search"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки кэша настроек салонов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// TTLDuration время жизни записи кэша
func (c RedisConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// CatalogServiceConfig настройки клиента каталога услуг
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SearchConfig ограничения и значения по умолчанию для поиска слотов
type SearchConfig struct {
	Timezone               string `toml:"timezone"`
	DefaultMaxDaysAhead    int    `toml:"default_max_days_ahead"`
	MaxDaysAhead           int    `toml:"max_days_ahead"`
	DefaultLimit           int    `toml:"default_limit"`
	MaxLimit               int    `toml:"max_limit"`
	HighlightThreshold     int    `toml:"highlight_threshold"`
	DefaultMaxAlternatives int    `toml:"default_max_alternatives"`
}

// Location часовой пояс салонов
func (c SearchConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и проверяет её
// Пароли можно переопределить переменными окружения DB_PASSWORD и REDIS_PASSWORD
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 10)
	setDefault(&cfg.Server.WriteTimeout, 10)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 10)

	setDefault(&cfg.Database.Port, 5432)
	setDefault(&cfg.Database.MaxOpenConns, 25)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	setDefault(&cfg.Redis.TTL, 300)
	setDefault(&cfg.CatalogService.Timeout, 5)

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "slot_engine"
	}

	if cfg.Search.Timezone == "" {
		cfg.Search.Timezone = "UTC"
	}
	setDefault(&cfg.Search.DefaultMaxDaysAhead, domain.DefaultMaxDaysAhead)
	setDefault(&cfg.Search.MaxDaysAhead, domain.MaxDaysAheadCeiling)
	setDefault(&cfg.Search.DefaultLimit, domain.DefaultLimit)
	setDefault(&cfg.Search.MaxLimit, domain.MaxLimitCeiling)
	setDefault(&cfg.Search.HighlightThreshold, domain.DefaultHighlightThreshold)
	setDefault(&cfg.Search.DefaultMaxAlternatives, domain.DefaultMaxAlternatives)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

func setDefault(field *int, value int) {
	if *field == 0 {
		*field = value
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be a valid TCP port (got %d)", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.CatalogService.URL == "" {
		errs = append(errs, errors.New("catalog_service.url is required"))
	}
	if _, err := c.Search.Location(); err != nil {
		errs = append(errs, fmt.Errorf("search.timezone: %w", err))
	}
	if c.Search.MaxDaysAhead < 1 || c.Search.MaxDaysAhead > domain.MaxDaysAheadCeiling {
		errs = append(errs, fmt.Errorf("search.max_days_ahead must be in [1, %d]", domain.MaxDaysAheadCeiling))
	}
	if c.Search.DefaultMaxDaysAhead < 1 || c.Search.DefaultMaxDaysAhead > c.Search.MaxDaysAhead {
		errs = append(errs, errors.New("search.default_max_days_ahead must be in [1, max_days_ahead]"))
	}
	if c.Search.MaxLimit < 1 || c.Search.MaxLimit > domain.MaxLimitCeiling {
		errs = append(errs, fmt.Errorf("search.max_limit must be in [1, %d]", domain.MaxLimitCeiling))
	}
	if c.Search.DefaultLimit < 1 || c.Search.DefaultLimit > c.Search.MaxLimit {
		errs = append(errs, errors.New("search.default_limit must be in [1, max_limit]"))
	}
	if c.Search.DefaultMaxAlternatives < 1 || c.Search.DefaultMaxAlternatives > c.Search.MaxLimit {
		errs = append(errs, errors.New("search.default_max_alternatives must be in [1, max_limit]"))
	}

	return errors.Join(errs...)
}
