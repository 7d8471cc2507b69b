package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from a yaml file; every value can be overridden by its environment variable.
type Config struct {
	// Environment is "development" or "production". Development enables pprof and console logs.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address the web server listens on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout bounds reading the whole request, body included
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout bounds reading the request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds writing the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout bounds keep-alive waits
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request, backend calls included
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes limits the request header size, zero keeps the net/http default
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Backend is the external news REST API.
	Backend struct {
		// BaseURL is the absolute root of the backend, e.g. https://api.example.com
		BaseURL string `env:"BACKEND_BASE_URL" env-required:"true" yaml:"baseURL"`
		// Timeout bounds every backend call
		Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"backend"`

	Session struct {
		// CookieName is the name of the cookie carrying the session id
		CookieName string `env:"SESSION_COOKIE_NAME" env-default:"newsroom_session" yaml:"cookieName"`
		// TTL caps a session's lifetime, the token's own expiry may end it earlier
		TTL time.Duration `env:"SESSION_TTL" env-default:"168h" yaml:"ttl"`
		// Secure marks the session and flash cookies HTTPS only
		Secure bool `env:"SESSION_SECURE" env-default:"false" yaml:"secure"`
		// FlashKey signs the flash cookie, at least 32 bytes; empty uses a random key per process
		FlashKey string `env:"SESSION_FLASH_KEY" yaml:"flashKey"`
		// PurgeInterval is how often expired sessions are deleted
		PurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL" env-default:"1h" yaml:"purgeInterval"`
	} `yaml:"session"`

	Upload struct {
		// MaxBytes limits a single uploaded image
		MaxBytes int64 `env:"UPLOAD_MAX_BYTES" env-default:"10485760" yaml:"maxBytes"`
		// AllowedExtensions lists accepted image file extensions, lower case without dot
		AllowedExtensions []string `env:"UPLOAD_ALLOWED_EXTENSIONS" env-default:"jpg,jpeg,png,gif,webp" env-separator:"," yaml:"allowedExtensions"` //nolint: lll
		// Timeout bounds presign plus transfer of one upload
		Timeout time.Duration `env:"UPLOAD_TIMEOUT" env-default:"2m" yaml:"timeout"`
		// TrackerTTL is how long finished uploads stay queryable
		TrackerTTL time.Duration `env:"UPLOAD_TRACKER_TTL" env-default:"30m" yaml:"trackerTTL"`
	} `yaml:"upload"`

	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"newsroom" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"newsroom" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode is passed to the driver as sslmode
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"newsroom" yaml:"name"`
		// MaxOpenConnections caps the pgx pool
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the pool's minimum size
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"30m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"5m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout bounds draining in-flight requests and jobs on shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment reports whether development-only tooling should be mounted.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
