package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/recellhq/recell-backend/internal/admins"
	"github.com/recellhq/recell-backend/pkg/config"
	"github.com/recellhq/recell-backend/pkg/db"
	"github.com/recellhq/recell-backend/pkg/db/models"
	"github.com/recellhq/recell-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed-admin"})

	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	name := flag.String("name", "", "admin display name")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-admin -email <email> -name <name> -password <password>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	hash, err := admins.HashPassword(*password, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to hash password", err)
		os.Exit(1)
	}

	admin := &models.AdminUser{
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		Name:         strings.TrimSpace(*name),
		PasswordHash: hash,
		IsActive:     true,
	}

	repo := admins.NewRepository(dbClient.DB())
	if err := repo.Create(context.Background(), admin); err != nil {
		if db.IsUniqueViolation(err, "") {
			fmt.Fprintf(os.Stderr, "admin %s already exists\n", admin.Email)
			os.Exit(1)
		}
		logg.Error(context.Background(), "failed to create admin", err)
		os.Exit(1)
	}

	fmt.Printf("created admin %s (%s)\n", admin.Email, admin.ID)
}
