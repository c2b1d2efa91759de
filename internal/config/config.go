package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Mongo   MongoConfig   `koanf:"mongo"`
	Auth    AuthConfig    `koanf:"auth"`
	Gateway GatewayConfig `koanf:"gateway"`
	Logger  LoggerConfig  `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type MongoConfig struct {
	URI            string        `koanf:"uri" validate:"required"`
	Database       string        `koanf:"database" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"required"`
}

type AuthConfig struct {
	JWTKey   string        `koanf:"jwt_key" validate:"required"`
	Issuer   string        `koanf:"issuer" validate:"required"`
	Audience string        `koanf:"audience" validate:"required"`
	TokenTTL time.Duration `koanf:"token_ttl" validate:"required"`

	// Credentials of the API client allowed to request tokens. The secret
	// is configured as a bcrypt hash, never in clear text.
	ClientID         string `koanf:"client_id" validate:"required"`
	ClientSecretHash string `koanf:"client_secret_hash" validate:"required"`
}

// GatewayConfig controls the settlement gateway simulator.
type GatewayConfig struct {
	InitialBalance string `koanf:"initial_balance" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaults keep the service bootable with nothing but the JWT key and
// client credentials set in the environment.
var defaults = map[string]interface{}{
	"primary.env":             "development",
	"server.port":             "8080",
	"server.read_timeout":     "15s",
	"server.write_timeout":    "15s",
	"server.idle_timeout":     "60s",
	"mongo.uri":               "mongodb://localhost:27017",
	"mongo.database":          "payments",
	"mongo.connect_timeout":   "10s",
	"auth.issuer":             "payment-gateway",
	"auth.audience":           "payment-gateway-clients",
	"auth.token_ttl":          "5h",
	"gateway.initial_balance": "100",
	"logger.level":            "info",
	"logger.format":           "text",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
