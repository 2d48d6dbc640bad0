package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN string
}

// QuotesConfig holds the presentation settings stamped onto exported
// quotation documents.
type QuotesConfig struct {
	CompanyName       string
	Currency          string
	ValidityDays      int
	DepositPercent    int
	PaymentDaysBefore int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Quotes      QuotesConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN: v.GetString("DB_DSN"),
		},
		Quotes: QuotesConfig{
			CompanyName:       v.GetString("QUOTES_COMPANY_NAME"),
			Currency:          v.GetString("QUOTES_CURRENCY"),
			ValidityDays:      v.GetInt("QUOTES_VALIDITY_DAYS"),
			DepositPercent:    v.GetInt("QUOTES_DEPOSIT_PERCENT"),
			PaymentDaysBefore: v.GetInt("QUOTES_PAYMENT_DAYS_BEFORE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Quotes.CompanyName == "" {
		cfg.Quotes.CompanyName = "TravelPro Agency"
	}
	if cfg.Quotes.Currency == "" {
		cfg.Quotes.Currency = "USD"
	}
	if cfg.Quotes.ValidityDays == 0 {
		cfg.Quotes.ValidityDays = 14
	}
	if cfg.Quotes.DepositPercent == 0 {
		cfg.Quotes.DepositPercent = 25
	}
	if cfg.Quotes.PaymentDaysBefore == 0 {
		cfg.Quotes.PaymentDaysBefore = 30
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DB_DSN stays optional: with no database configured the service keeps the
// saved collection in memory only.
func validate(cfg *Config) error {
	if cfg.Quotes.DepositPercent < 0 || cfg.Quotes.DepositPercent > 100 {
		return fmt.Errorf("QUOTES_DEPOSIT_PERCENT must be between 0 and 100")
	}
	if cfg.Quotes.ValidityDays < 0 {
		return fmt.Errorf("QUOTES_VALIDITY_DAYS must not be negative")
	}
	if cfg.Quotes.PaymentDaysBefore < 0 {
		return fmt.Errorf("QUOTES_PAYMENT_DAYS_BEFORE must not be negative")
	}
	return nil
}
