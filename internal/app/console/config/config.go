package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultLogLevel       = "info"
	defaultEnv            = EnvLocal
	defaultConfigDir      = ".osupdater"
	defaultSessionDB      = "session.db"
	defaultWebAddress     = "localhost:5173"
	defaultWebBasePath    = "/os-updater-dashboard"
	defaultAppName        = "HidupBanjaran"
	defaultRequestTimeout = 30 * time.Second

	// DefaultSessionMaxDuration - максимальное время жизни сессии консоли.
	DefaultSessionMaxDuration = 15 * time.Minute
)

type Config struct {
	Env                string        `mapstructure:"app_env"`
	ServerAddress      string        `mapstructure:"server_address"`
	EnableTLS          bool          `mapstructure:"enable_tls"`
	LogLevel           string        `mapstructure:"log_level"`
	ConfigDir          string        `mapstructure:"config_dir"`
	SessionDBPath      string        `mapstructure:"session_db_path"`
	SessionMaxDuration time.Duration `mapstructure:"session_max_duration"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	WebAddress         string        `mapstructure:"web_address"`
	WebBasePath        string        `mapstructure:"web_base_path"`
	DefaultAppName     string        `mapstructure:"default_app_name"`
}

// MustLoad загружает конфигурацию консоли и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load загружает конфигурацию из .env, переменных окружения и конфиг-файла viper
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("ENABLE_TLS", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("SESSION_MAX_DURATION", DefaultSessionMaxDuration)
	viper.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	viper.SetDefault("WEB_ADDRESS", defaultWebAddress)
	viper.SetDefault("WEB_BASE_PATH", defaultWebBasePath)
	viper.SetDefault("DEFAULT_APP_NAME", defaultAppName)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	sessionDBPath := viper.GetString("SESSION_DB_PATH")
	if sessionDBPath == "" {
		sessionDBPath = filepath.Join(configDir, defaultSessionDB)
	}

	config := &Config{
		Env:                viper.GetString("APP_ENV"),
		ServerAddress:      viper.GetString("SERVER_ADDRESS"),
		EnableTLS:          viper.GetBool("ENABLE_TLS"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		ConfigDir:          configDir,
		SessionDBPath:      sessionDBPath,
		SessionMaxDuration: viper.GetDuration("SESSION_MAX_DURATION"),
		RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		WebAddress:         viper.GetString("WEB_ADDRESS"),
		WebBasePath:        normalizeBasePath(viper.GetString("WEB_BASE_PATH")),
		DefaultAppName:     viper.GetString("DEFAULT_APP_NAME"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	if c.SessionMaxDuration <= 0 {
		return fmt.Errorf("session_max_duration должен быть больше нуля")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout должен быть больше нуля")
	}
	if c.DefaultAppName == "" {
		return fmt.Errorf("default_app_name не может быть пустым")
	}
	return nil
}

// BaseURL возвращает адрес бэкенда со схемой
func (c *Config) BaseURL() string {
	addr := strings.TrimRight(c.ServerAddress, "/")
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}

	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + addr
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
