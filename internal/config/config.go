package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	MongoURI         string   `mapstructure:"MONGODB_URI"`
	MongoDB          string   `mapstructure:"MONGODB_DB"`
	StoreBackend     string   `mapstructure:"STORE_BACKEND"`
	JWTSecret        string   `mapstructure:"JWT_SECRET"`
	JWTRefreshSecret string   `mapstructure:"JWT_REFRESH_SECRET"`
	SendgridAPIKey   string   `mapstructure:"SENDGRID_API_KEY"`
	MailFrom         string   `mapstructure:"MAIL_FROM"`
	MailFromName     string   `mapstructure:"MAIL_FROM_NAME"`
	GeminiAPIKey     string   `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string   `mapstructure:"GEMINI_MODEL"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGODB_DB", "smartcare")
	v.SetDefault("STORE_BACKEND", "mongo")
	v.SetDefault("JWT_SECRET", "supersecret")
	v.SetDefault("JWT_REFRESH_SECRET", "refresh_supersecret")
	v.SetDefault("MAIL_FROM_NAME", "Smart Care")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("MONGODB_URI")
	v.BindEnv("MONGODB_DB")
	v.BindEnv("STORE_BACKEND")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("JWT_REFRESH_SECRET")
	v.BindEnv("SENDGRID_API_KEY")
	v.BindEnv("MAIL_FROM")
	v.BindEnv("MAIL_FROM_NAME")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("GEMINI_MODEL")
	v.BindEnv("CORS_ORIGINS")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	switch cfg.StoreBackend {
	case "mongo", "memory":
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be \"mongo\" or \"memory\", got %q", cfg.StoreBackend)
	}

	if cfg.StoreBackend == "mongo" && cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required when STORE_BACKEND=mongo")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
