package main

import (
	"github.com/joho/godotenv"

	"bookstore/internal/config"
	"bookstore/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
