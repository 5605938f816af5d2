// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// The event stream is exempt; it manages its own deadlines.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists origins allowed by CORS. Empty or "*" allows any.
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"exposure" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. Only the public key is needed to serve requests.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Redis backs the event channel. An empty Addr disables event publishing.
	Redis struct {
		Addr          string        `env:"REDIS_ADDR" yaml:"addr"`
		Password      string        `env:"REDIS_PASSWORD" yaml:"password"`
		DB            int           `env:"REDIS_DB" env-default:"0" yaml:"db"`
		ChannelPrefix string        `env:"REDIS_CHANNEL_PREFIX" env-default:"exposure:events" yaml:"channelPrefix"`
		DialTimeout   time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
	} `yaml:"redis"`

	// Prober tunes outbound probing.
	Prober struct {
		// Timeout bounds each probe, measured from its dispatch.
		Timeout time.Duration `env:"PROBER_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// MaxConcurrency caps in-flight probes per scan; 0 probes every candidate at once.
		MaxConcurrency int `env:"PROBER_MAX_CONCURRENCY" env-default:"0" yaml:"maxConcurrency"`
		// RatePerSecond caps probe starts per process; 0 disables the limit.
		RatePerSecond float64 `env:"PROBER_RATE_PER_SECOND" env-default:"0" yaml:"ratePerSecond"`
		// MaxConnsPerHost caps pooled connections to a single probed host.
		MaxConnsPerHost int `env:"PROBER_MAX_CONNS_PER_HOST" env-default:"16" yaml:"maxConnsPerHost"`
		// ReadBufferSize limits response header size; larger headers fail the probe.
		ReadBufferSize int `env:"PROBER_READ_BUFFER_SIZE" env-default:"65536" yaml:"readBufferSize"`
		// UserAgent is sent with every probe.
		UserAgent string `env:"PROBER_USER_AGENT" env-default:"exposure-probe/1.0" yaml:"userAgent"`
	} `yaml:"prober"`

	// Worker tunes the background job runtime.
	Worker struct {
		// MaxWorkers is the number of scans run concurrently by one process.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"50" yaml:"maxWorkers"`
		// JobTimeout bounds a single scan run.
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"2m" yaml:"jobTimeout"`
	} `yaml:"worker"`

	// Scanner tunes the scan lifecycle.
	Scanner struct {
		// StaleAfter is how long a scan may stay running before the reaper fails it.
		StaleAfter time.Duration `env:"SCANNER_STALE_AFTER" env-default:"10m" yaml:"staleAfter"`
		// ReapInterval is how often stale scans are looked for.
		ReapInterval time.Duration `env:"SCANNER_REAP_INTERVAL" env-default:"1m" yaml:"reapInterval"`
	} `yaml:"scanner"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
