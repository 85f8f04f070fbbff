package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	baseconfig "learninghub/internal/config"
)

const (
	EnvLocal = baseconfig.EnvLocal
	EnvDev   = baseconfig.EnvDev
	EnvProd  = baseconfig.EnvProd

	defaultRunAddress      = ":8080"
	defaultMigrations      = "migrations"
	defaultToken           = "learninghub-local-token"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Env       string
	DB        DB
	Server    Server
	Logger    Logger
	Auth      Auth
	Allowlist Allowlist
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Auth struct {
	Token string `env:"API_TOKEN"`
}

type Allowlist struct {
	Path string `env:"ALLOWLIST_PATH"`
}

// MustLoad загружает конфигурацию сервера из .env и переменных окружения
func MustLoad() *Config {
	loaded, err := baseconfig.LoadDotEnv(".env", "../../.env")
	if err != nil {
		log.Fatalf("load .env: %v", err)
	}
	if loaded == "" {
		log.Println("No .env file found, relying on environment variables")
	}

	return Load()
}

// Load читает конфигурацию из переменных окружения
func Load() *Config {
	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("api_token", defaultToken)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("shutdown_timeout", defaultShutdownTimeout)

	return &Config{
		Env: baseconfig.NormalizeEnv(viper.GetString("app_env")),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      viper.GetString("run_address"),
			ShutdownTimeout: viper.GetDuration("shutdown_timeout"),
		},
		Logger:    Logger{LogLevel: viper.GetString("log_level")},
		Auth:      Auth{Token: viper.GetString("api_token")},
		Allowlist: Allowlist{Path: viper.GetString("allowlist_path")},
	}
}

// UsesDatabase true, если задан DATABASE_URI; иначе данные хранятся в памяти
func (c *Config) UsesDatabase() bool {
	return c.DB.DatabaseURI != ""
}
