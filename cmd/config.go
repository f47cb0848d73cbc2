package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"supplychain/internal/jobs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8082" validate:"required,numeric"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	DBPort     string `envconfig:"DB_PORT" default:"5432" validate:"required,numeric"`
	DBUser     string `envconfig:"DB_USER" validate:"required"`
	DBPassword string `envconfig:"DB_PASSWORD" validate:"required"`
	DBName     string `envconfig:"DB_NAME" validate:"required"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	PaymentReportSchedule    string        `envconfig:"PAYMENT_REPORT_SCHEDULE" default:"0 0 6 * * *" validate:"required"`
	StaleOrderReportSchedule string        `envconfig:"STALE_ORDER_REPORT_SCHEDULE" default:"0 0 * * * *" validate:"required"`
	StaleOrderAge            time.Duration `envconfig:"STALE_ORDER_AGE" default:"168h" validate:"gt=0"`
}

// LoadConfig reads an optional .env file from dotenvPath and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Jobs() jobs.Config {
	return jobs.Config{
		PaymentReportSchedule:    c.PaymentReportSchedule,
		StaleOrderReportSchedule: c.StaleOrderReportSchedule,
		StaleOrderAge:            c.StaleOrderAge,
	}
}
