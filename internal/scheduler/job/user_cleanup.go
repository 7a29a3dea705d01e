package job

import (
	"context"
	"log/slog"
	"time"
)

type UnconfirmedUsers interface {
	DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

func RunUnconfirmedUserCleanup(ctx context.Context, users UnconfirmedUsers, retentionDays int, now time.Time) (int64, error) {
	if retentionDays < 0 {
		retentionDays = 14
	}
	cutoff := now.UTC().AddDate(0, 0, -retentionDays)

	slog.Info("Running Unconfirmed User Cleanup", "cutoff", cutoff)

	n, err := users.DeleteUnconfirmedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to delete unconfirmed users", "error", err)
		return 0, err
	}

	slog.Info("Deleted unconfirmed users", "count", n)
	return n, nil
}
