package main

import (
	"log"

	"ispbilling/config"
	"ispbilling/internal/ingest"
)

func main() {
	cfg, err := config.NewIngestConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	if err := ingest.Run(cfg); err != nil {
		log.Fatalf("Run error: %s", err)
	}
}
