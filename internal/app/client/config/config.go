package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	baseconfig "learninghub/internal/config"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultConfigDir     = ".learninghub"
	defaultToken         = "learninghub-local-token"
	defaultHTTPTimeout   = 30 * time.Second
	defaultTrackInterval = 5 * time.Second
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	EnableTLS     bool          `mapstructure:"enable_tls"`
	APIToken      string        `mapstructure:"api_token"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFile       string        `mapstructure:"log_file"`
	ConfigDir     string        `mapstructure:"config_dir"`
	DataPath      string        `mapstructure:"data_path"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	TrackInterval time.Duration `mapstructure:"track_interval"`
	// ForcedAttendanceDates даты YYYY-MM-DD, которые всегда считаются отмеченными
	ForcedAttendanceDates []string `mapstructure:"forced_attendance_dates"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad(configFile string) *Config {
	cfg, err := Load(configFile)
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, необязательный YAML файл и переменные окружения
func Load(configFile string) (*Config, error) {
	if _, err := baseconfig.LoadDotEnv(".env", "../.env"); err != nil {
		fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", baseconfig.EnvLocal)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("API_TOKEN", defaultToken)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("HTTP_TIMEOUT", defaultHTTPTimeout)
	v.SetDefault("TRACK_INTERVAL", defaultTrackInterval)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", configFile, err)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "learninghub.db")
	}

	cfg := &Config{
		Env:                   baseconfig.NormalizeEnv(v.GetString("APP_ENV")),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		EnableTLS:             v.GetBool("ENABLE_TLS"),
		APIToken:              v.GetString("API_TOKEN"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		LogFile:               v.GetString("LOG_FILE"),
		ConfigDir:             configDir,
		DataPath:              dataPath,
		HTTPTimeout:           v.GetDuration("HTTP_TIMEOUT"),
		TrackInterval:         v.GetDuration("TRACK_INTERVAL"),
		ForcedAttendanceDates: splitList(v.GetString("FORCED_ATTENDANCE_DATES")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureDirs создает каталог конфигурации
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("ошибка создания каталога конфигурации: %w", err)
	}
	return nil
}

// BaseURL адрес сервера со схемой
func (c *Config) BaseURL() string {
	if strings.HasPrefix(c.ServerAddress, "http://") || strings.HasPrefix(c.ServerAddress, "https://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}

	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimRight(c.ServerAddress, "/")
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout должен быть положительным")
	}
	if c.TrackInterval <= 0 {
		return fmt.Errorf("track_interval должен быть положительным")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == baseconfig.EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == baseconfig.EnvLocal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
