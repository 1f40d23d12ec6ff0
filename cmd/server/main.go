// Package main initializes and starts the task service HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, session management, and handlers. TLS is terminated by the
// reverse proxy in front of this process, so the server speaks plain HTTP.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/taskward/taskward/internal/config"
	"github.com/taskward/taskward/internal/db"
	"github.com/taskward/taskward/internal/logger"
	"github.com/taskward/taskward/internal/repository"
	"github.com/taskward/taskward/internal/server/handler/http"
	"github.com/taskward/taskward/internal/service"
	"github.com/taskward/taskward/internal/session"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Periodically reclaim expired session rows.
	db.StartSessionCleaner(context.Background(), postgresDB,
		time.Hour, // interval
		zapLogger,
	)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)
	sessionRepo := repository.NewPostgresSessionRepository(postgresDB)

	// Initialize business-logic services and the session manager.
	authService := service.NewAuthService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	sessions := session.NewManager(sessionRepo, options.SessionTTL)

	// Create HTTP handlers for auth and task endpoints.
	authHandler := &http.AuthHandler{
		AuthService: authService,
		Sessions:    sessions,
		SessionTTL:  options.SessionTTL,
	}
	taskHandler := &http.TaskHandler{TaskService: taskService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, taskHandler, sessions, options.CORSOrigins, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:              options.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
