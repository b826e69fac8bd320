package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	BookingAPI    IntegrationConfig   `toml:"booking_api"`
	PrivateTours  IntegrationConfig   `toml:"private_tours"`
	Venue         VenueConfig         `toml:"venue"`
	Sessions      SessionsConfig      `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
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

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL (хранилище сессий визарда)
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

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки подключения к Redis (кеш каталога туров)
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	CatalogTTL int    `toml:"catalog_ttl"` // TTL кеша каталога туров в секундах
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// VenueConfig параметры площадки проведения туров
type VenueConfig struct {
	Timezone         string `toml:"timezone"`           // например "Europe/Amsterdam"
	CutoffMinutes    int    `toml:"cutoff_minutes"`     // минимум минут до старта тура "сегодня"
	DefaultTourTitle string `toml:"default_tour_title"` // подставляется, если слот не найден в каталоге
}

// SessionsConfig параметры жизненного цикла сессий визарда
type SessionsConfig struct {
	TTLHours               int `toml:"ttl_hours"`                // сколько часов живет заброшенная сессия
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"` // период фоновой чистки
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Venue.Timezone == "" {
		cfg.Venue.Timezone = "Europe/Amsterdam"
	}
	if cfg.Venue.CutoffMinutes == 0 {
		cfg.Venue.CutoffMinutes = 30
	}
	if cfg.Sessions.TTLHours == 0 {
		cfg.Sessions.TTLHours = 24
	}
	if cfg.Sessions.CleanupIntervalMinutes == 0 {
		cfg.Sessions.CleanupIntervalMinutes = 60
	}

	return &cfg, nil
}
