package config

import (
	"BalaghAPI/ent"
	"context"
	_ "embed"
	"log/slog"
	"os"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
)

// Change-feed triggers and checks the ent schema cannot express.
//
//go:embed triggers.sql
var triggersSQL string

func InitEnt(cfg *AppConfig) *ent.Client {
	drv, err := entsql.Open(dialect.Postgres, cfg.DBConnectionString())
	if err != nil {
		slog.Error("Failed opening connection to postgres", "error", err)
		os.Exit(1)
	}

	db := drv.DB()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		slog.Error("Failed to reach postgres", "error", err)
		os.Exit(1)
	}

	client := ent.NewClient(ent.Driver(drv))

	if cfg.DBMigrate {
		if err := Migrate(ctx, client, drv); err != nil {
			slog.Error("Failed creating schema resources", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema migrated successfully (Ent)")
	} else {
		slog.Info("Database migration skipped (DB_MIGRATE=false)")
	}

	slog.Info("Database connected successfully")
	return client
}

// Migrate creates the ent schema, then applies the raw triggers on the same driver.
func Migrate(ctx context.Context, client *ent.Client, drv *entsql.Driver) error {
	if err := client.Schema.Create(ctx); err != nil {
		return err
	}
	_, err := drv.ExecContext(ctx, triggersSQL)
	return err
}
