package job

import (
	"BalaghAPI/internal/adapter"
	"context"
	"log/slog"
	"time"
)

type MediaStorage interface {
	List(ctx context.Context, prefix string) ([]adapter.StoredObject, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type MediaReferences interface {
	ReferencedMediaURLs(ctx context.Context) (map[string]struct{}, error)
}

// RunMediaCleanup deletes objects under prefix that are older than the
// retention window and that no report or saved draft references. It returns how many were deleted.
func RunMediaCleanup(ctx context.Context, storage MediaStorage, refs []MediaReferences, prefix string, retentionDays float64, now time.Time) (int, error) {
	if retentionDays < 0 {
		retentionDays = 7.0
	}

	duration := time.Duration(retentionDays * 24 * float64(time.Hour))
	cutoff := now.UTC().Add(-duration)

	slog.Info("Running Media Cleanup", "retentionDays", retentionDays, "cutoff", cutoff, "prefix", prefix)

	objects, err := storage.List(ctx, prefix+"/")
	if err != nil {
		slog.Error("Failed to list stored media", "error", err)
		return 0, err
	}

	referenced := make(map[string]struct{})
	for _, src := range refs {
		urls, err := src.ReferencedMediaURLs(ctx)
		if err != nil {
			slog.Error("Failed to query referenced media", "error", err)
			return 0, err
		}
		for u := range urls {
			referenced[u] = struct{}{}
		}
	}

	deleted := 0
	for _, obj := range objects {
		if !obj.LastModified.Before(cutoff) {
			continue
		}
		if _, ok := referenced[storage.PublicURL(obj.Key)]; ok {
			continue
		}

		if err := storage.Delete(ctx, obj.Key); err != nil {
			slog.Error("Failed to delete S3 file", "key", obj.Key, "error", err)
			continue
		}
		deleted++
		slog.Info("Deleted orphan media", "key", obj.Key)
	}

	slog.Info("Media Cleanup finished", "candidates", len(objects), "deleted", deleted)
	return deleted, nil
}
