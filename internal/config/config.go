package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port string

	IdentityAuthorityURL string
	AuthTimeout          time.Duration
	GatewaySecret        string

	StorageBackend string
	DatabaseURL    string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	FeesTable          string
	StudentsTable      string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:                   fallback(os.Getenv("PORT"), "8080"),
		IdentityAuthorityURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("IDENTITY_AUTHORITY_URL")), "/"),
		GatewaySecret:          strings.TrimSpace(os.Getenv("GATEWAY_SECRET")),
		StorageBackend:         strings.ToLower(fallback(os.Getenv("STORAGE_BACKEND"), StorageDynamoDB)),
		DatabaseURL:            strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AWSRegion:              fallback(os.Getenv("AWS_REGION"), "us-east-1"),
		AWSAccessKeyID:         fallback(os.Getenv("AWS_ACCESS_KEY_ID"), "local"),
		AWSSecretAccessKey:     fallback(os.Getenv("AWS_SECRET_ACCESS_KEY"), "local"),
		DynamoDBEndpoint:       strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		FeesTable:              fallback(os.Getenv("FEES_TABLE"), "inscription_fees"),
		StudentsTable:          fallback(os.Getenv("STUDENTS_TABLE"), "students"),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isEnabled(os.Getenv("MERCADOPAGO_MOCK")),
	}

	seconds := fallback(os.Getenv("AUTH_TIMEOUT_SECONDS"), "10")
	if n, err := strconv.Atoi(seconds); err == nil && n > 0 {
		cfg.AuthTimeout = time.Duration(n) * time.Second
	} else {
		cfg.AuthTimeout = 10 * time.Second
	}

	if cfg.IdentityAuthorityURL == "" {
		return Config{}, errors.New("IDENTITY_AUTHORITY_URL is required")
	}
	if cfg.GatewaySecret == "" {
		return Config{}, errors.New("GATEWAY_SECRET is required")
	}
	switch cfg.StorageBackend {
	case StorageDynamoDB:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
