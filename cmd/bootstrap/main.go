package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"repairshop/internal/config"
	"repairshop/internal/database"
	"repairshop/internal/modules/auth"
	"repairshop/internal/repository"
)

// Placeholder credentials for first login. Rotate immediately via
// PUT /api/v1/users/me/password; this is not an acceptable running state.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	initDB := flag.Bool("init-db", false, "create or update the database schema")
	createAdmin := flag.Bool("create-admin", false, "create the default admin account")
	flag.Parse()

	if !*initDB && !*createAdmin {
		log.Fatal("nothing to do: pass -init-db and/or -create-admin")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	if *initDB {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("schema migration failed: %v", err)
		}
		log.Println("database initialized")
	}

	if *createAdmin {
		userRepo := repository.NewUserRepository(db)
		sessionRepo := repository.NewSessionRepository(db)
		authService := auth.NewService(userRepo, sessionRepo, cfg.SessionPepper, cfg.SessionTTL)

		_, err := authService.CreateUser(context.Background(), auth.CreateUserRequest{
			Username: defaultAdminUsername,
			Password: defaultAdminPassword,
			Role:     "admin",
		})
		if err != nil {
			if errors.Is(err, auth.ErrUsernameTaken) {
				log.Fatal("admin user already exists")
			}
			log.Fatalf("create admin failed: %v", err)
		}

		log.Printf("admin user created: username=%s password=%s", defaultAdminUsername, defaultAdminPassword)
		log.Println("WARNING: change this password immediately after first login")
	}
}
