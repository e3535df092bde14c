package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdeck/launchdeck/internal/application/trending"
	"github.com/launchdeck/launchdeck/internal/config"
	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/launchdeck/launchdeck/internal/infrastructure/dynamo"
	jwtinfra "github.com/launchdeck/launchdeck/internal/infrastructure/jwt"
	s3infra "github.com/launchdeck/launchdeck/internal/infrastructure/s3"
	"github.com/launchdeck/launchdeck/internal/infrastructure/sns"
	"github.com/launchdeck/launchdeck/internal/pkg/id"
	"github.com/launchdeck/launchdeck/internal/scheduler"
	transporthttp "github.com/launchdeck/launchdeck/internal/transport/http"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}
	initLogger()

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		slog.Warn("JWT provider not available", "err", err)
	}

	// S3 store for product logos.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SNS push publisher (optional — graceful fallback).
	var push sns.Publisher
	if cfg.SNSTopicARN != "" {
		if p, err := sns.NewPublisher(cfg); err == nil {
			push = p
		} else {
			slog.Warn("SNS publisher not available", "err", err)
		}
	}

	userRepo := dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
	seedAdmin(context.Background(), cfg, userRepo)

	deps := &transporthttp.Deps{
		ProductRepo:      dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products),
		UserRepo:         userRepo,
		NotificationRepo: dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		RankingRepo:      dynamo.NewRankingRepo(dynamoClient, cfg.DynamoTables.DailyRankings),
		S3Store:          s3Store,
		Push:             push,
		JWTProvider:      jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	// Daily trending build at 00:05 UTC.
	trendingSvc := trending.NewService(deps.ProductRepo, deps.RankingRepo)
	sched := scheduler.New(trendingSvc)
	if err := sched.Start(cfg.TrendingCron); err != nil {
		slog.Error("could not start trending scheduler", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// initLogger installs a JSON slog logger as the process default.
func initLogger() {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// seedAdmin creates the configured admin account if it does not exist yet.
// No-op when the seed credentials are unset.
func seedAdmin(ctx context.Context, cfg *config.Config, users *dynamo.UserRepo) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	if _, err := users.GetByUsername(ctx, cfg.AdminUsername); err == nil {
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("could not check seed admin", "err", err)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Warn("could not hash seed admin password", "err", err)
		return
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Enable:       1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Put(ctx, u); err != nil {
		slog.Warn("could not create seed admin", "err", err)
		return
	}
	slog.Info("seed admin created", "username", u.Username)
}
