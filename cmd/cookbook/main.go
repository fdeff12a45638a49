package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	adapthttp "cookbook/internal/adapter/http"
	"cookbook/internal/adapter/memory"
	"cookbook/internal/adapter/postgres"
	"cookbook/internal/app"
	"cookbook/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	addr := env("ADDR", ":8080")

	var (
		users    domain.UserRepository
		recipes  domain.RecipeRepository
		sessions domain.SessionRepository
	)

	if env("STORE", "postgres") == "memory" {
		db := memory.New()
		users = db
		recipes = db.NewRecipeRepo()
		sessions = db.NewSessionRepo()
		log.Print("using in-memory store; data will not survive a restart")
	} else {
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			log.Fatal("DATABASE_URL is required")
		}
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		recipes = postgres.NewRecipeRepo(db)
		sessions = postgres.NewSessionRepo(db)
	}

	go reapSessions(sessions)

	authSvc := app.NewAuthService(users, sessions)
	recipeSvc := app.NewRecipeService(recipes)

	var oidcCfg *adapthttp.OIDCConfig
	if issuer := os.Getenv("OIDC_ISSUER"); issuer != "" {
		cfg, err := adapthttp.NewOIDC(context.Background(), issuer,
			os.Getenv("OIDC_CLIENT_ID"),
			os.Getenv("OIDC_CLIENT_SECRET"),
			os.Getenv("OIDC_REDIRECT_URL"))
		if err != nil {
			log.Fatalf("oidc setup: %v", err)
		}
		oidcCfg = cfg
	}

	h := adapthttp.New(authSvc, recipeSvc, oidcCfg).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func reapSessions(sessions domain.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if err := sessions.DeleteExpired(context.Background()); err != nil {
			log.Printf("session cleanup: %v", err)
		}
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
