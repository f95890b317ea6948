package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime configuration for the storefront API.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"prod"`
	Port      string `envconfig:"PORT" default:"4000"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	AdminUser     string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPass     string `envconfig:"ADMIN_PASS"`
	AdminPassHash string `envconfig:"ADMIN_PASS_HASH"`
	AdminToken    string `envconfig:"ADMIN_TOKEN" default:"admin-auth"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath     string `envconfig:"DB_PATH" default:"data.db"`
	DBURL      string `envconfig:"DATABASE_URL"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// ProxyHeader names the header carrying the client IP behind a reverse
	// proxy, e.g. X-Forwarded-For. With TrustedProxies set, only those peers
	// may supply it.
	ProxyHeader    string   `envconfig:"PROXY_HEADER"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	BodyLimit         int `envconfig:"BODY_LIMIT" default:"2097152"`
	PublicRateLimit   int `envconfig:"PUBLIC_RATE_LIMIT" default:"60"`
	LowStockThreshold int `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"storefront.events"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have no usable default.
func (c *Config) Validate() error {
	if c.AdminPass == "" && c.AdminPassHash == "" {
		return errors.New("ADMIN_PASS or ADMIN_PASS_HASH must be provided")
	}
	if strings.TrimSpace(c.AdminToken) == "" {
		return errors.New("ADMIN_TOKEN must not be empty")
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.New("DB_DRIVER must be sqlite or postgres")
	}
	if c.BodyLimit <= 0 {
		return errors.New("BODY_LIMIT must be positive")
	}
	return nil
}

// KafkaEnabled reports whether events should also be written to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaBrokers[0] != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
