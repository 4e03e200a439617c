package initializers

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	DbDriver    string   `mapstructure:"DB_DRIVER"`
	DatabaseURI string   `mapstructure:"DATABASE_URI"`
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	LogPretty   bool     `mapstructure:"LOG_PRETTY"`
	GinMode     string   `mapstructure:"GIN_MODE"`
	CorsOrigins []string `mapstructure:"-"`
}

var AppConfig *Config

// LoadEnv reads .env into the process environment when present and builds
// AppConfig from the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	cfg, err := ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read configuration")
	}
	AppConfig = cfg
}

// ReadConfig resolves every setting from the environment, falling back to
// the defaults below.
func ReadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URI", "shopcarts.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CORS_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.DbDriver = strings.ToLower(strings.TrimSpace(cfg.DbDriver))
	cfg.CorsOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
