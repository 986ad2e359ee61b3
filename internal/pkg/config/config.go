package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Database DatabaseEnvironmentConfig
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL, default=240h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=medilog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DatabaseEnvironmentConfig drives environment-based storage separation.
// The environment must be one of dev, prod, test; validation happens at
// startup via the naming resolver.
type DatabaseEnvironmentConfig struct {
	Environment       string   `env:"DB_ENVIRONMENT,        default=dev"`
	Separator         string   `env:"DB_ENV_SEPARATOR,      default=_"`
	EnableSeparation  bool     `env:"DB_ENV_SEPARATION,     default=true"`
	ValidateOnStartup bool     `env:"DB_ENV_VALIDATE,       default=true"`
	ActiveProfiles    []string `env:"ACTIVE_PROFILES"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
