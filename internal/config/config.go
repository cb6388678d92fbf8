package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Admin     AdminConfig     `toml:"admin"`
	Mailer    MailerConfig    `toml:"mailer"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Retention RetentionConfig `toml:"retention"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры хранилища
// Driver: postgres (production) или sqlite (локальный запуск, Path - файл БД)
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	Timezone             string `toml:"timezone"`
	ReservationListLimit int    `toml:"reservation_list_limit"`
}

// AdminConfig параметры административного доступа
type AdminConfig struct {
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"`
	JWTSecret    string `toml:"jwt_secret"`
	SessionTTL   int    `toml:"session_ttl"` // секунды
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
	LoginPath    string `toml:"login_path"`
}

// MailerConfig параметры почтового API
type MailerConfig struct {
	Enabled       bool   `toml:"enabled"`
	URL           string `toml:"url"`
	APIKey        string `toml:"api_key"`
	From          string `toml:"from"`
	PublicBaseURL string `toml:"public_base_url"`
	Timeout       int    `toml:"timeout"` // секунды
}

// DashboardConfig параметры административной сводки
type DashboardConfig struct {
	ReadTimeout int `toml:"read_timeout"` // миллисекунды
}

// RetentionConfig параметры удаления старых присутствий
type RetentionConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron выражение
	KeepDays int    `toml:"keep_days"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружает .env (если есть); секреты из окружения
// перекрывают значения из файла
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"ADMIN_PASSWORD":      &c.Admin.Password,
		"ADMIN_PASSWORD_HASH": &c.Admin.PasswordHash,
		"ADMIN_JWT_SECRET":    &c.Admin.JWTSecret,
		"DATABASE_PASSWORD":   &c.Database.Password,
		"MAILER_API_KEY":      &c.Mailer.APIKey,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "presence-booking"
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
	if c.Booking.ReservationListLimit == 0 {
		c.Booking.ReservationListLimit = 100
	}
	if c.Admin.SessionTTL == 0 {
		c.Admin.SessionTTL = 12 * 60 * 60
	}
	if c.Admin.CookieName == "" {
		c.Admin.CookieName = "admin_session"
	}
	if c.Admin.LoginPath == "" {
		c.Admin.LoginPath = "/admin/login"
	}
	if c.Mailer.Timeout == 0 {
		c.Mailer.Timeout = 5
	}
	if c.Dashboard.ReadTimeout == 0 {
		c.Dashboard.ReadTimeout = 3000
	}
	if c.Retention.Schedule == "" {
		c.Retention.Schedule = "0 3 * * *"
	}
	if c.Retention.KeepDays == 0 {
		c.Retention.KeepDays = 30
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("%w: database.path is required for sqlite", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.ReservationListLimit < 0 {
		return fmt.Errorf("%w: booking.reservation_list_limit must be positive", ErrInvalidConfig)
	}

	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password or admin.password_hash is required", ErrInvalidConfig)
	}
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.jwt_secret is required", ErrInvalidConfig)
	}

	if c.Mailer.Enabled {
		if _, err := url.ParseRequestURI(c.Mailer.URL); err != nil {
			return fmt.Errorf("%w: mailer.url: %v", ErrInvalidConfig, err)
		}
		if c.Mailer.From == "" || c.Mailer.PublicBaseURL == "" {
			return fmt.Errorf("%w: mailer.from and mailer.public_base_url are required", ErrInvalidConfig)
		}
	}

	if c.Retention.KeepDays < 0 {
		return fmt.Errorf("%w: retention.keep_days must not be negative", ErrInvalidConfig)
	}

	return nil
}

// DSN возвращает строку подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", d.Path)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SQLDriverName возвращает имя драйвера database/sql
func (d DatabaseConfig) SQLDriverName() string {
	return d.Driver
}

// Location возвращает часовой пояс мероприятия
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SessionDuration возвращает время жизни сессии администратора
func (a AdminConfig) SessionDuration() time.Duration {
	return time.Duration(a.SessionTTL) * time.Second
}

// ReadTimeoutDuration возвращает таймаут чтения сводки
func (d DashboardConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(d.ReadTimeout) * time.Millisecond
}
