// Package main is the entry point for the inkpress API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"inkpress/internal/access"
	"inkpress/internal/cache"
	"inkpress/internal/category"
	"inkpress/internal/config"
	"inkpress/internal/crypto"
	"inkpress/internal/database"
	"inkpress/internal/handlers"
	"inkpress/internal/router"
	"inkpress/internal/session"
	"inkpress/internal/store"
	"inkpress/internal/user"
)

func main() {
	// Structured logger — outputs text with debug level for development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load a local .env if one exists; real environment variables win.
	_ = godotenv.Load()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	roles := access.StaticRoles{}

	// Data stores and the Valkey-backed session store.
	userStore := store.NewUserStore(db, roles)
	categoryStore := store.NewCategoryStore(db)
	sessions := session.NewStore(valkeyClient, roles)

	// Crypto collaborators.
	bcryptService := crypto.NewBcryptService()
	randomService := crypto.NewRandomService()
	authorizer := crypto.NewAuthorizer(bcryptService)
	resolver := session.NewResolver(userStore)
	passwords := crypto.NewPasswordValidator(resolver, authorizer)
	totpService := crypto.NewTOTPService(cfg.TOTPIssuer)

	// Use-case services.
	userService := user.NewService(user.Deps{
		Repo:       userStore,
		Crypto:     bcryptService,
		Random:     randomService,
		Authorizer: authorizer,
		Passwords:  passwords,
		Resolver:   resolver,
		Revoker:    sessions,
		Roles:      roles,
		RoleNames:  roles,
		TwoFactor:  totpService,
	})
	categoryService := category.NewService(categoryStore, categoryStore, categoryStore, randomService)

	// Handler groups and the Chi router.
	authHandlers := handlers.NewAuth(userService, sessions)
	categoryHandlers := handlers.NewCategories(categoryService)
	userHandlers := handlers.NewUsers(userService)
	r := router.New(cfg, sessions, authHandlers, categoryHandlers, userHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
