package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Sentry     SentryConfig     `toml:"sentry"`
	RateLimit  RateLimitConfig  `toml:"ratelimit"`
	Pricing    PricingConfig    `toml:"pricing"`
	Simulation SimulationConfig `toml:"simulation"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig выбор драйвера хранилища
type StorageConfig struct {
	Driver string `toml:"driver"` // "memory" | "postgres"
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

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SentryConfig настройки отправки ошибок в Sentry
type SentryConfig struct {
	Enabled     bool   `toml:"enabled"`
	DSN         string `toml:"dsn"`
	Environment string `toml:"environment"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// PricingConfig параметры расчета стоимости
type PricingConfig struct {
	GSTRate    float64 `toml:"gst_rate"`
	ServiceFee float64 `toml:"service_fee"`
}

// SimulationConfig настройки фоновой симуляции доступности парковок
type SimulationConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalSeconds int  `toml:"interval_seconds"`
}

// Поддерживаемые драйверы хранилища
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

const (
	defaultHTTPPort = 8080
	defaultLogLevel = "info"
	defaultDriver   = DriverMemory
)

// Load читает конфигурацию из TOML файла.
// Перед чтением подгружает .env (если присутствует), после чего применяет
// переопределения секретов из переменных окружения:
//   - PARKING_DB_PASSWORD - пароль базы данных
//   - SENTRY_DSN          - DSN для Sentry
func Load(path string) (*Config, error) {
	// .env не обязателен, отсутствие файла не является ошибкой
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if v := os.Getenv("PARKING_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Logs.Level == "" {
		c.Logs.Level = defaultLogLevel
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaultDriver
	}
	if c.Pricing.GSTRate == 0 {
		c.Pricing.GSTRate = 18.0
	}
	if c.Pricing.ServiceFee == 0 {
		c.Pricing.ServiceFee = 5.0
	}
	if c.Simulation.IntervalSeconds == 0 {
		c.Simulation.IntervalSeconds = 5
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.Driver == DriverPostgres && c.Database.Host == "" {
		return fmt.Errorf("config: database host is required for postgres driver")
	}

	if c.Sentry.Enabled && c.Sentry.DSN == "" {
		return fmt.Errorf("config: sentry is enabled but dsn is empty")
	}

	return nil
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
