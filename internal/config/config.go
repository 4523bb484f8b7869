package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress      = ":8080"
	defaultMigrationsDir   = "internal/db/migrations"
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 24 * time.Hour
)

var (
	ErrEmptyDSN       = errors.New("database dsn is empty")
	ErrEmptyJWTSecret = errors.New("jwt secret is empty")
)

type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseDSN     string        `env:"DATABASE_URI"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR"`
	JWTSecret       string        `env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`
	AdminUsername   string        `env:"ADMIN_USERNAME"`
	AdminPassword   string        `env:"ADMIN_PASSWORD"`
}

// HasAdminCredentials сообщает, заданы ли учетные данные суперадмина для первичного создания.
func (c *Config) HasAdminCredentials() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// LoadConfig собирает конфигурацию. Приоритет: переменные окружения (в том числе из .env), затем флаги,
// затем значения по умолчанию.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flagsConfig, flagsErr := loadFlags(args)
	if flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, ErrEmptyDSN
	}
	if conf.JWTSecret == "" {
		return nil, ErrEmptyJWTSecret
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return conf
}

func loadFlags(args []string) (*Config, error) {
	var conf Config
	fset := flag.NewFlagSet("bankoffice", flag.ContinueOnError)

	fset.StringVar(&conf.RunAddress, "a", defaultRunAddress, "Run address")
	fset.StringVar(&conf.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&conf.MigrationsDir, "m", defaultMigrationsDir, "Migrations directory")
	fset.StringVar(&conf.JWTSecret, "s", "", "JWT signing secret")
	fset.DurationVar(&conf.AccessTokenTTL, "access-ttl", defaultAccessTokenTTL, "Access token TTL")
	fset.DurationVar(&conf.RefreshTokenTTL, "refresh-ttl", defaultRefreshTokenTTL, "Refresh token TTL")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return &conf, nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:       defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AccessTokenTTL:  defaultIfBlank(envConfig.AccessTokenTTL, flagsConfig.AccessTokenTTL),
		RefreshTokenTTL: defaultIfBlank(envConfig.RefreshTokenTTL, flagsConfig.RefreshTokenTTL),
		AdminUsername:   envConfig.AdminUsername,
		AdminPassword:   envConfig.AdminPassword,
	}
}

func defaultIfBlank[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
