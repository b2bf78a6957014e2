package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv                string
	CurrencyCode          string
	TaxRate               decimal.Decimal
	ShippingFlatRate      decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	SplashTicks           int
	CarouselTickInterval  time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		CurrencyCode:          getEnv("CURRENCY_CODE", "USD"),
		TaxRate:               getDecimal("TAX_RATE", "0.0825"),
		ShippingFlatRate:      getDecimal("SHIPPING_FLAT_RATE", "9.99"),
		FreeShippingThreshold: getDecimal("FREE_SHIPPING_THRESHOLD", "99.00"),
		SplashTicks:           getInt("SPLASH_TICKS", 3),
		CarouselTickInterval:  getDuration("CAROUSEL_TICK_INTERVAL", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("Invalid decimal value for %s: %q", key, raw)
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %q", key, raw)
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration value for %s: %q", key, raw)
	}
	return d
}
