package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	LockBackendLocal = "local"
	LockBackendRedis = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Booking   BookingConfig   `toml:"booking"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Driver string `toml:"driver"` // postgres | memory
	// SeedFile TOML со справочниками для драйвера memory
	SeedFile string `toml:"seed_file"`
	// CatalogCacheTTL время жизни кэша справочников в секундах, 0 отключает кэш
	CatalogCacheTTL int `toml:"catalog_cache_ttl"`
}

// BookingConfig настройки бронирования
type BookingConfig struct {
	DefaultTimezone      string `toml:"default_timezone"`
	LockBackend          string `toml:"lock_backend"` // local | redis
	LockTTLSeconds       int    `toml:"lock_ttl_seconds"`
	SerializationRetries int    `toml:"serialization_retries"`
}

// RedisConfig подключение к Redis для распределенной блокировки
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение запросов по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	TrustProxy        bool    `toml:"trust_proxy"` // Брать IP из X-Forwarded-For
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения, затем проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Storage: StorageConfig{
			Driver:          StorageDriverPostgres,
			CatalogCacheTTL: 60,
		},
		Booking: BookingConfig{
			DefaultTimezone:      "UTC",
			LockBackend:          LockBackendLocal,
			LockTTLSeconds:       10,
			SerializationRetries: 3,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

func (c *Config) applyEnv() {
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case StorageDriverMemory:
		if c.Storage.SeedFile == "" {
			return fmt.Errorf("%w: storage.seed_file is required for memory driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Storage.CatalogCacheTTL < 0 {
		return fmt.Errorf("%w: storage.catalog_cache_ttl must not be negative", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Booking.DefaultTimezone); err != nil {
		return fmt.Errorf("%w: booking.default_timezone: %v", ErrInvalidConfig, err)
	}

	switch c.Booking.LockBackend {
	case LockBackendLocal:
	case LockBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis lock backend", ErrInvalidConfig)
		}
		if c.Booking.LockTTLSeconds <= 0 {
			return fmt.Errorf("%w: booking.lock_ttl_seconds must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown booking.lock_backend %q", ErrInvalidConfig, c.Booking.LockBackend)
	}

	if c.Booking.SerializationRetries < 0 {
		return fmt.Errorf("%w: booking.serialization_retries must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_second and rate_limit.burst must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс по умолчанию для точек без своего
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LockTTL время жизни блокировки мастера в Redis
func (b BookingConfig) LockTTL() time.Duration {
	return time.Duration(b.LockTTLSeconds) * time.Second
}

// CacheTTL время жизни кэша справочников
func (s StorageConfig) CacheTTL() time.Duration {
	return time.Duration(s.CatalogCacheTTL) * time.Second
}
