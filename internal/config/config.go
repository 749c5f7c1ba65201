package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Gateway-wide defaults. The fee rate is expressed in basis points out of
// 10000; MaxFeeRateBps caps operator updates at 10%.
const (
	DefaultFeeRateBps          = 250
	MaxFeeRateBps              = 1000
	DefaultMaxCustomerPayments = 1000
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetUint64Env returns a uint64 environment variable or a default value.
func GetUint64Env(key string, defaultVal uint64) uint64 {
	if val, ok := os.LookupEnv(key); ok {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

// FeeRateSeed returns the FEE_RATE_BPS value used to seed a fresh store.
// Values above MaxFeeRateBps are capped; the fee calculator's contract only
// covers rates within the basis-point denominator.
func FeeRateSeed() uint64 {
	rate := GetUint64Env("FEE_RATE_BPS", DefaultFeeRateBps)
	if rate > MaxFeeRateBps {
		log.Printf("FEE_RATE_BPS %d exceeds maximum %d, capping", rate, MaxFeeRateBps)
		return MaxFeeRateBps
	}
	return rate
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
