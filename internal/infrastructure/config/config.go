package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// FeeConfig is the raw platform fee policy as read from the environment.
// It is parsed and validated into a model.FeePolicy before use.
type FeeConfig struct {
	Enabled     bool
	Type        string
	Percentage  decimal.Decimal
	FixedAmount decimal.Decimal
	MinFee      decimal.Decimal
	MaxFee      decimal.Decimal
}

type Config struct {
	GRPCPort         int
	HTTPPort         int
	DB               DatabaseConfig
	Kafka            KafkaConfig
	Redis            RedisConfig
	Fee              FeeConfig
	ServiceName      string
	EnableReflection bool
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9091),
		HTTPPort: getEnvInt("HTTP_PORT", 8091),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "lendcircle"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "lendcircle_repayment"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "repayment.events"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("SUGGESTION_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Fee: FeeConfig{
			Enabled:     getEnvBool("FEE_ENABLED", false),
			Type:        getEnv("FEE_TYPE", "percentage"),
			Percentage:  getEnvDecimal("FEE_PERCENTAGE", "0"),
			FixedAmount: getEnvDecimal("FEE_FIXED_AMOUNT", "0"),
			MinFee:      getEnvDecimal("FEE_MIN", "0"),
			MaxFee:      getEnvDecimal("FEE_MAX", "0"),
		},
		ServiceName:      "repayment-service",
		EnableReflection: getEnvBool("GRPC_REFLECTION", false),
	}
}

// FeePolicy parses and validates the raw fee configuration. A misconfigured
// policy is rejected here, at load time, so the calculator never sees one.
func (c Config) FeePolicy() (model.FeePolicy, error) {
	policy := model.FeePolicy{
		Enabled:     c.Fee.Enabled,
		Percentage:  c.Fee.Percentage,
		FixedAmount: c.Fee.FixedAmount,
		MinFee:      c.Fee.MinFee,
		MaxFee:      c.Fee.MaxFee,
	}

	if c.Fee.Enabled {
		feeType, err := valueobject.NewFeeType(c.Fee.Type)
		if err != nil {
			return model.FeePolicy{}, fmt.Errorf("parse FEE_TYPE: %w", err)
		}
		policy.Type = feeType
	}

	if err := policy.Validate(); err != nil {
		return model.FeePolicy{}, err
	}
	return policy, nil
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}
