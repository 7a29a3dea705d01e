package job

import (
	"BalaghAPI/internal/adapter"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	objects   []adapter.StoredObject
	deleted   []string
	failOnKey string
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]adapter.StoredObject, error) {
	return f.objects, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	if key == f.failOnKey {
		return errors.New("access denied")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeRefs map[string]struct{}

func (f fakeRefs) ReferencedMediaURLs(ctx context.Context) (map[string]struct{}, error) {
	return f, nil
}

type fakeUsers struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakeUsers) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

func TestRunMediaCleanup(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	old := now.Add(-10 * 24 * time.Hour)

	storage := &fakeStorage{
		objects: []adapter.StoredObject{
			{Key: "report-media/u1/old-orphan.jpg", LastModified: old},
			{Key: "report-media/u1/old-used.jpg", LastModified: old},
			{Key: "report-media/u1/fresh.jpg", LastModified: now.Add(-time.Hour)},
			{Key: "report-media/u2/locked.jpg", LastModified: old},
		},
		failOnKey: "report-media/u2/locked.jpg",
	}
	refs := fakeRefs{"https://cdn.example.com/report-media/u1/old-used.jpg": {}}

	deleted, err := RunMediaCleanup(context.Background(), storage, []MediaReferences{refs}, "report-media", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"report-media/u1/old-orphan.jpg"}, storage.deleted)
}

func TestRunMediaCleanupKeepsDraftMedia(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	old := now.Add(-30 * 24 * time.Hour)

	storage := &fakeStorage{
		objects: []adapter.StoredObject{
			{Key: "report-media/u1/submitted.jpg", LastModified: old},
			{Key: "report-media/u1/in-draft.jpg", LastModified: old},
			{Key: "report-media/u1/orphan.jpg", LastModified: old},
		},
	}
	reports := fakeRefs{"https://cdn.example.com/report-media/u1/submitted.jpg": {}}
	drafts := fakeRefs{"https://cdn.example.com/report-media/u1/in-draft.jpg": {}}

	deleted, err := RunMediaCleanup(context.Background(), storage, []MediaReferences{reports, drafts}, "report-media", 7, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"report-media/u1/orphan.jpg"}, storage.deleted)
}

func TestRunUnconfirmedUserCleanup(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Uses Retention Cutoff", func(t *testing.T) {
		users := &fakeUsers{n: 3}
		n, err := RunUnconfirmedUserCleanup(context.Background(), users, 14, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, now.AddDate(0, 0, -14), users.cutoff)
	})

	t.Run("Propagates Failure", func(t *testing.T) {
		users := &fakeUsers{err: errors.New("connection refused")}
		_, err := RunUnconfirmedUserCleanup(context.Background(), users, 14, now)
		assert.Error(t, err)
	})
}
