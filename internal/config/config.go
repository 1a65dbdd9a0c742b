package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		Port          string `env:"PORT" envDefault:"3000"`
		SessionSecret string `env:"SESSION_SECRET,required"`
		DSN           string `env:"DSN,required"`
		Prod          bool   `env:"PROD" envDefault:"false"`

		Storage StorageConfig `envPrefix:"STORAGE_"`
		OAuth   OAuthConfig   `envPrefix:"OAUTH_"`
	}

	StorageConfig struct {
		AccountID       string `env:"ACCOUNT_ID"`
		AccessKeyID     string `env:"ACCESS_KEY_ID"`
		AccessKeySecret string `env:"ACCESS_KEY_SECRET"`
		Bucket          string `env:"BUCKET,required"`
		// PublicURL is a format string with a single %s verb for the object key.
		PublicURL string `env:"PUBLIC_URL,required"`
	}

	OAuthConfig struct {
		GoogleKey    string `env:"GOOGLE_KEY"`
		GoogleSecret string `env:"GOOGLE_SECRET"`
		CallbackURL  string `env:"CALLBACK_URL" envDefault:"http://localhost:3000/auth/google/callback"`
	}
)

// Load reads .env if present, then parses the environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine in production; the environment is already set.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
