package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"

	"github.com/charterpoint/transport-leads-api/internal/config"
	"github.com/charterpoint/transport-leads-api/internal/database"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: create-admin -email <email> -password <password> [-name <name>]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	users := repository.NewPGXAdminUsersRepository(pool)

	if _, err := users.FindByEmail(ctx, *email); err == nil {
		fmt.Println("admin user already exists")
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Fatalf("failed to check existing user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user, err := users.Create(ctx, *email, string(hash), *name, "admin")
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("admin user %s created (%s)\n", user.Email, user.ID)
}
