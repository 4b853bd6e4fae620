package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
	"github.com/m04kA/SMC-ArtistCalendar/pkg/logger"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Selection SelectionConfig `toml:"selection"`
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SelectionConfig настройки выбора диапазона дат
type SelectionConfig struct {
	Timezone     string `toml:"timezone"`       // часовой пояс для вычисления "сегодня"
	DisallowPast bool   `toml:"disallow_past"`  // нижняя граница выбора = начало сегодняшнего дня
	SessionTTL   int    `toml:"session_ttl"`    // секунды бездействия до удаления сессии
	MaxRangeDays int    `toml:"max_range_days"` // максимальная длина применяемого диапазона
}

// Location часовой пояс выбора (валидируется в Validate)
func (s SelectionConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TTL время жизни сессии выбора
func (s SelectionConfig) TTL() time.Duration {
	return time.Duration(s.SessionTTL) * time.Second
}

// Default конфигурация по умолчанию
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
			User:            "postgres",
			DBName:          "artist_calendar",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "artist_calendar",
		},
		Selection: SelectionConfig{
			Timezone:     domain.DefaultTimezone,
			DisallowPast: true,
			SessionTTL:   int(domain.DefaultSessionTTL / time.Second),
			MaxRangeDays: domain.DefaultMaxRangeDays,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// и применяет переопределения из окружения (DB_PASSWORD, HTTP_PORT)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Selection.Timezone); err != nil {
		return fmt.Errorf("%w: selection.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Selection.SessionTTL <= 0 {
		return fmt.Errorf("%w: selection.session_ttl must be positive", ErrInvalidConfig)
	}

	if c.Selection.MaxRangeDays < domain.MinMaxRangeDays || c.Selection.MaxRangeDays > domain.MaxMaxRangeDays {
		return fmt.Errorf("%w: selection.max_range_days must be in %d..%d, got %d",
			ErrInvalidConfig, domain.MinMaxRangeDays, domain.MaxMaxRangeDays, c.Selection.MaxRangeDays)
	}

	return nil
}
