package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string     `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"checkout"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// CheckoutConfigPath points at the YAML checkout flow; empty means the default flow.
	CheckoutConfigPath string `env:"CHECKOUT_CONFIG_PATH"`

	AssignmentSchedule  string `env:"DELIVERY_MODE_ASSIGNMENT_SCHEDULE" envDefault:"*/5 * * * * *"`
	AssignmentBatchSize int    `env:"DELIVERY_MODE_ASSIGNMENT_BATCH_SIZE" envDefault:"100"`
}

// LoadConfig loads dotenvFiles into the environment, when they exist, and
// parses the environment into a Config. Variables already set win over the
// files.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}

// DSN is the connection string of the service database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN connects to the postgres database, used to create DBName.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}
