package main

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/repository"
	"BalaghAPI/internal/scheduler"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	cfg.DBMigrate = false

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	s3Client := config.NewS3Client(context.Background(), cfg)
	if s3Client == nil {
		slog.Error("Failed to initialize S3 client")
		os.Exit(1)
	}

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Error("Failed to initialize Redis", "error", err)
		os.Exit(1)
	}
	defer redisAdapter.Close()

	storageAdapter := adapter.NewStorageAdapter(cfg, s3Client)
	reportRepository := repository.NewReportRepository(client)
	userRepository := repository.NewUserRepository(client)
	draftRepository := repository.NewDraftRepository(redisAdapter)

	srv := scheduler.New(cfg, storageAdapter, userRepository, reportRepository, draftRepository)

	srv.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down scheduler...")
	srv.Stop()
}
