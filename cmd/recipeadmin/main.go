// Command recipeadmin creates a superuser account. It connects to the same
// database as the API server, so it can be run before or while the server
// is up.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/config"
	ur "github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/userrepo/postgres"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/authservice"
)

func main() {
	var (
		configPath string
		email      string
		password   string
	)

	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&email, "email", "", "superuser email")
	flag.StringVar(&password, "password", "", "superuser password")
	flag.Parse()

	if email == "" || password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.New(configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30) //nolint:gomnd
	defer cancel()

	userRepo, err := ur.New(ctx, cfg.PostgresDB)
	if err != nil {
		log.Fatalf("postgres user repo initializing error: %v", err)
	}

	defer func() {
		if err := userRepo.Shutdown(ctx); err != nil {
			log.Printf("user repo shutdown error: %v", err)
		}
	}()

	authService := authservice.New(userRepo)

	u, err := authService.CreateSuperuser(ctx, email, password)
	if err != nil {
		log.Fatalf("create superuser error: %v", err)
	}

	fmt.Printf("superuser %s created\n", u.Email)
}
