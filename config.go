package main

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is populated from the environment (a local .env file is honored).
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	DBPath            string `envconfig:"DB_PATH" default:"database.db"`
	BackupDir         string `envconfig:"BACKUP_DIR" default:"backups"`
	MaxBackups        int    `envconfig:"MAX_BACKUPS" default:"30"`
	JWTSecret         string `envconfig:"JWT_SECRET" default:"dev-insecure-secret-change-me"`
	AdminUsername     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

func loadConfig() (Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
