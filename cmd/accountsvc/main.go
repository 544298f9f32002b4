package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AmitChauhan63390/auth-app/internal/app"
	"github.com/AmitChauhan63390/auth-app/internal/config"
)

func main() {
	// Best-effort: local development keeps secrets in .env
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
