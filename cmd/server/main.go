// Package main initializes and starts the CREDKarma development backend,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/config"
	"github.com/credkarma/credkarma/internal/db"
	"github.com/credkarma/credkarma/internal/logger"
	"github.com/credkarma/credkarma/internal/repository"
	"github.com/credkarma/credkarma/internal/server/handler/http"
	"github.com/credkarma/credkarma/internal/service"
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
	addr := options.Addr
	dsn := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(dsn)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Periodically drop expired bearer tokens.
	db.StartTokenCleaner(context.Background(), postgresDB,
		time.Hour, // interval
		zapLogger,
	)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	tokenRepo := repository.NewPostgresTokenRepository(postgresDB)
	behaviorRepo := repository.NewPostgresBehaviorRepository(postgresDB)
	rewardRepo := repository.NewPostgresRewardRepository(postgresDB)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokenRepo, time.Duration(options.TokenTTLHours)*time.Hour)
	userService := service.NewUserService(userRepo)
	behaviorService := service.NewBehaviorService(behaviorRepo, userRepo, userRepo)
	rewardService := service.NewRewardService(rewardRepo, userRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, userRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	usersHandler := &http.UsersHandler{Profile: authService, Leaderboard: userService}
	behaviorsHandler := &http.BehaviorsHandler{BehaviorService: behaviorService}
	rewardsHandler := &http.RewardsHandler{RewardService: rewardService}
	dashboardHandler := &http.DashboardHandler{DashboardService: dashboardService}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		usersHandler,
		behaviorsHandler,
		rewardsHandler,
		dashboardHandler,
		authService,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
