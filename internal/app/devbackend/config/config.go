package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"
)

type Config struct {
	Env      string
	LogLevel string
	Server   server
	Auth     auth
	Seed     seed
}

type server struct {
	Address string `env:"DEV_ADDRESS" envDefault:"localhost:8080"`
}

type auth struct {
	Secret   string        `env:"DEV_JWT_SECRET"`
	TokenTTL time.Duration `env:"DEV_TOKEN_TTL" envDefault:"24h"`
}

// seed - учетная запись администратора, создаваемая при старте
type seed struct {
	AdminUsername string `env:"DEV_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"DEV_ADMIN_PASSWORD" envDefault:"admin"`
	AppName       string `env:"DEFAULT_APP_NAME" envDefault:"HidupBanjaran"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DEV_ADDRESS", "localhost:8080")
	viper.SetDefault("DEV_TOKEN_TTL", 24*time.Hour)
	viper.SetDefault("DEV_ADMIN_USERNAME", "admin")
	viper.SetDefault("DEV_ADMIN_PASSWORD", "admin")
	viper.SetDefault("DEFAULT_APP_NAME", "HidupBanjaran")
	viper.SetDefault("APP_ENV", EnvLocal)

	secret := viper.GetString("DEV_JWT_SECRET")
	if secret == "" {
		secret = SecretKey
	}

	return &Config{
		Env:      viper.GetString("APP_ENV"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		Server:   server{Address: viper.GetString("DEV_ADDRESS")},
		Auth: auth{
			Secret:   secret,
			TokenTTL: viper.GetDuration("DEV_TOKEN_TTL"),
		},
		Seed: seed{
			AdminUsername: viper.GetString("DEV_ADMIN_USERNAME"),
			AdminPassword: viper.GetString("DEV_ADMIN_PASSWORD"),
			AppName:       viper.GetString("DEFAULT_APP_NAME"),
		},
	}
}
