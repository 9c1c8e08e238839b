package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/globalsync/globalsync-backend/internal/middleware"
	"github.com/globalsync/globalsync-backend/internal/modules/auth"
	"github.com/globalsync/globalsync-backend/internal/modules/availability"
	"github.com/globalsync/globalsync-backend/internal/modules/dashboard"
	"github.com/globalsync/globalsync-backend/internal/modules/followup"
	"github.com/globalsync/globalsync-backend/internal/modules/meeting"
	"github.com/globalsync/globalsync-backend/internal/modules/prep"
	"github.com/globalsync/globalsync-backend/internal/modules/sales"
	"github.com/globalsync/globalsync-backend/internal/modules/user"
	"github.com/globalsync/globalsync-backend/internal/seed"
)

const migrationFile = "db/migrations/001_init.sql"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	if err := applyMigrations(db); err != nil {
		log.Fatal(err)
	}

	// ── Repositories & Services ─────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	authService := auth.NewService(userService, userRepo, []byte(secret))
	authHandler := auth.NewHandler(authService)

	meetingRepo := meeting.NewPostgresRepository(db)
	meetingService := meeting.NewService(meetingRepo)

	availabilityRepo := availability.NewPostgresRepository(db)
	availabilityService := availability.NewService(availabilityRepo)

	followupRepo := followup.NewPostgresRepository(db)
	followupService := followup.NewService(followupRepo)

	prepRepo := prep.NewPostgresRepository(db)
	prepService := prep.NewService(prepRepo)

	salesRepo := sales.NewPostgresRepository(db)
	salesService := sales.NewService(salesRepo)

	dashboardService := dashboard.NewService(meetingService, followupService, salesService)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.RequestID)

	// Login, signup, and registration stay reachable without a token but are
	// rate limited to slow down credential guessing.
	limiter := middleware.NewRateLimiter(5, 10)
	router.Group(func(r chi.Router) {
		r.Use(limiter.Limit)
		authHandler.RegisterPublicRoutes(r)
		userHandler.RegisterPublicRoutes(r)
	})

	// Everything else requires a valid session token.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth([]byte(secret)))
		authHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)
		meeting.NewHandler(meetingService).RegisterRoutes(r)
		availability.NewHandler(availabilityService).RegisterRoutes(r)
		followup.NewHandler(followupService).RegisterRoutes(r)
		prep.NewHandler(prepService).RegisterRoutes(r)
		sales.NewHandler(salesService).RegisterRoutes(r)
		dashboard.NewHandler(dashboardService).RegisterRoutes(r)
	})

	// ── Demo data ───────────────────────────────────────────
	if os.Getenv("SEED_DEMO_DATA") == "true" {
		err := seed.Run(context.Background(), seed.Stores{
			Users:        userService,
			UserRepo:     userRepo,
			Meetings:     meetingRepo,
			Availability: availabilityRepo,
			FollowUps:    followupRepo,
			Sales:        salesRepo,
			Prep:         prepRepo,
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Global Sync API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// applyMigrations runs the schema file. Every statement is idempotent
// (CREATE TABLE IF NOT EXISTS), so this is safe on restart.
func applyMigrations(db *sql.DB) error {
	schema, err := os.ReadFile(migrationFile)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}
