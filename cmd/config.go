package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"quickbite"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET,required"`

	AMQPURL            string `env:"AMQP_URL"`
	AMQPPaymentQueue   string `env:"AMQP_PAYMENT_QUEUE" envDefault:"quickbite.payments"`
	AMQPEventsExchange string `env:"AMQP_EVENTS_EXCHANGE" envDefault:"quickbite.events"`
	AMQPPrefetch       int    `env:"AMQP_PREFETCH" envDefault:"10"`

	BacklogSchedule  string        `env:"DISPATCH_BACKLOG_SCHEDULE" envDefault:"0 */1 * * * *"`
	BacklogThreshold time.Duration `env:"DISPATCH_BACKLOG_THRESHOLD" envDefault:"10m"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadConfig reads .env files when present, then the process environment.
// Variables already set in the environment win over .env values.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string used by both GORM and migrations.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, net.JoinHostPort(c.DBHost, c.DBPort), c.DBName, c.DBSslMode)
}

func (c Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}
