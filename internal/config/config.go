package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type LoginThrottleConfig struct {
	MaxAttempts int64  `yaml:"max_attempts"`
	Window      string `yaml:"window"`
}

type ConfigFile struct {
	App      AppConfig           `yaml:"app"`
	Database DatabaseConfig      `yaml:"database"`
	Redis    RedisConfig         `yaml:"redis"`
	JWT      JWTConfig           `yaml:"jwt"`
	Throttle LoginThrottleConfig `yaml:"login_throttle"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	MaxAttempts   int64
	AttemptWindow time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from a yaml file with environment overrides for
// deployment-sensitive values. The JWT secret is mandatory: there is no
// built-in default, and startup fails when it is unset.
func Load(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(configFile.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token TTL: %w", err)
	}

	attemptWindow, err := time.ParseDuration(configFile.Throttle.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid login throttle window: %w", err)
	}

	secret := env("JWT_SECRET", configFile.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured: set jwt.secret or JWT_SECRET")
	}

	return &Config{
		Port:          env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:       configFile.App.GinMode,
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,
		JWTSecret:     secret,
		JWTIssuer:     configFile.JWT.Issuer,
		TokenTTL:      tokenTTL,
		MaxAttempts:   configFile.Throttle.MaxAttempts,
		AttemptWindow: attemptWindow,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
