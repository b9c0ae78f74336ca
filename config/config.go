package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Service  Service
	Firebase Firebase
	Log      Log
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"traveloracle"`
	Port string `env:"PORT" env-default:"8080"`
}

type Firebase struct {
	ProjectID       string `env:"GOOGLE_CLOUD_PROJECT"`
	StorageBucket   string `env:"FIREBASE_STORAGE_BUCKET"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Log configures logging. ID is the Cloud Logging log name, Cloud sends
// entries through the Cloud Logging client instead of stdout.
type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
	ID    string `env:"LOG_ID" env-default:"traveloracle"`
	Cloud bool   `env:"LOG_CLOUD" env-default:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
