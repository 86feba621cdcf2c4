package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"repairshop/internal/config"
	"repairshop/internal/database"
	"repairshop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(db)
	deleted, err := sessionRepo.DeleteStale(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("session cleanup completed: deleted=%d", deleted)
}
