package upload

import (
	"BalaghAPI/internal/model"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

type fakeStorage struct {
	mu       sync.Mutex
	keys     []string
	contents []string
	failOn   string
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if f.failOn != "" && bytes.Contains(data, []byte(f.failOn)) {
		return errors.New("storage unavailable")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	f.contents = append(f.contents, string(data[len(pngHeader):]))
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (f *fakeStorage) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

func image(name, marker string, padding int) Candidate {
	body := append(append([]byte{}, pngHeader...), []byte(marker)...)
	body = append(body, bytes.Repeat([]byte{0}, padding)...)
	return Candidate{Name: name, ContentType: "image/png", Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func newSet(t *testing.T, limits Limits) (*Set, *PreviewStore) {
	t.Helper()
	previews, err := NewPreviewStore(16)
	require.NoError(t, err)
	set := NewSet("user-1", limits, previews, t.TempDir())
	t.Cleanup(set.Release)
	return set, previews
}

func newQueue(t *testing.T, storage Storage, limits Limits) *Queue {
	t.Helper()
	q := NewQueue(storage, "report-media", limits)
	t.Cleanup(q.Close)
	return q
}

func TestStage(t *testing.T) {
	t.Run("Accepts Valid Images With Previews", func(t *testing.T) {
		set, previews := newSet(t, DefaultLimits())
		result := set.Stage([]Candidate{image("a.png", "a", 0), image("b.png", "b", 0), image("c.png", "c", 0)})

		assert.Len(t, result.Accepted, 3)
		assert.Empty(t, result.Rejections)
		assert.False(t, result.LimitReached)
		assert.Equal(t, 3, previews.Len())
		for _, f := range result.Accepted {
			assert.Equal(t, model.UploadNotStarted, f.State)
			assert.Equal(t, "image/png", f.ContentType)
			assert.NotEmpty(t, f.PreviewToken)
		}
	})

	t.Run("Rejects Invalid Files Individually", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 5, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})
		text := Candidate{Name: "notes.txt", ContentType: "text/plain", Size: 5, Body: strings.NewReader("hello")}
		big := image("big.png", "big", 2*1024*1024)

		result := set.Stage([]Candidate{text, image("ok.png", "ok", 0), big})

		require.Len(t, result.Rejections, 2)
		assert.ErrorIs(t, result.Rejections[0].Err, ErrTypeNotAllowed)
		assert.ErrorIs(t, result.Rejections[1].Err, ErrFileTooLarge)
		assert.Len(t, result.Accepted, 1)
	})

	t.Run("Understated Size Is Still Caught", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 5, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})
		big := image("big.png", "big", 2*1024*1024)
		big.Size = 10

		result := set.Stage([]Candidate{big})
		require.Len(t, result.Rejections, 1)
		assert.ErrorIs(t, result.Rejections[0].Err, ErrFileTooLarge)
	})

	t.Run("Count Ceiling Gives One Summary", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 2, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})
		result := set.Stage([]Candidate{image("1.png", "1", 0), image("2.png", "2", 0), image("3.png", "3", 0), image("4.png", "4", 0)})

		assert.Len(t, result.Accepted, 2)
		assert.Empty(t, result.Rejections)
		assert.True(t, result.LimitReached)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("Transport Markers Are Honoured", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 5, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})
		broken := Candidate{Name: "cut.png", Err: errors.New("unexpected EOF")}
		skipped := Candidate{Name: "sixth.png", Err: ErrLimitReached}

		result := set.Stage([]Candidate{image("a.png", "a", 0), broken, skipped})
		assert.Len(t, result.Accepted, 1)
		require.Len(t, result.Rejections, 1)
		assert.Equal(t, "cut.png", result.Rejections[0].Name)
		assert.True(t, result.LimitReached)
	})

	t.Run("Buffered Source Is Staged Without Copy", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 5, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})
		pre := image("pre.png", "pre", 0)
		src, err := NewSource(t.TempDir(), pre.Body, set.Limits().MaxBytes())
		require.NoError(t, err)

		result := set.Stage([]Candidate{{Name: "pre.png", ContentType: "image/png", Size: src.Size(), Source: src}})
		require.Len(t, result.Accepted, 1)
		assert.Equal(t, src.Size(), result.Accepted[0].Size)
	})

	t.Run("Remove Releases Preview", func(t *testing.T) {
		set, previews := newSet(t, DefaultLimits())
		result := set.Stage([]Candidate{image("a.png", "a", 0)})
		id := result.Accepted[0].ID
		token := result.Accepted[0].PreviewToken

		f, contentType, err := previews.Open("user-1", token)
		require.NoError(t, err)
		f.Close()
		assert.Equal(t, "image/png", contentType)

		_, _, err = previews.Open("someone-else", token)
		assert.ErrorIs(t, err, ErrPreviewNotFound)

		require.NoError(t, set.Remove(id))
		assert.Equal(t, 0, previews.Len())
		assert.ErrorIs(t, set.Remove(id), ErrFileNotFound)
	})
}

func TestQueueUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Three Images Upload In Order", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		set.Stage([]Candidate{image("a.png", "first", 0), image("b.png", "second", 0), image("c.jpg", "third", 0)})
		storage := &fakeStorage{}
		q := newQueue(t, storage, DefaultLimits())

		urls, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)

		require.Len(t, urls, 3)
		assert.Equal(t, []string{"first", "second", "third"}, storage.contents)
		for i, key := range storage.keys {
			assert.True(t, strings.HasPrefix(key, "report-media/user-1/"))
			assert.Equal(t, storage.PublicURL(key), urls[i])
		}
		assert.Equal(t, urls, set.UploadedURLs())
	})

	t.Run("Oversize File Fails Alone", func(t *testing.T) {
		set, _ := newSet(t, Limits{MaxFiles: 5, MaxFileSizeMB: 10, AcceptedTypes: []string{"image/*"}})
		set.Stage([]Candidate{image("a.png", "first", 0), image("b.png", "second", 2*1024*1024), image("c.png", "third", 0)})
		storage := &fakeStorage{}
		q := newQueue(t, storage, Limits{MaxFiles: 5, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}})

		urls, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)

		assert.Len(t, urls, 2)
		files := set.Files()
		assert.Equal(t, model.UploadUploaded, files[0].State)
		assert.Equal(t, model.UploadFailed, files[1].State)
		assert.ErrorIs(t, files[1].Err, ErrFileTooLarge)
		assert.Equal(t, model.UploadUploaded, files[2].State)
	})

	t.Run("Storage Failure Does Not Abort Batch", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		set.Stage([]Candidate{image("a.png", "first", 0), image("b.png", "second", 0), image("c.png", "third", 0)})
		storage := &fakeStorage{failOn: "second"}
		q := newQueue(t, storage, DefaultLimits())

		urls, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Equal(t, model.UploadFailed, set.Files()[1].State)
	})

	t.Run("Resume Reuses Uploaded URLs", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		set.Stage([]Candidate{image("a.png", "first", 0)})
		storage := &fakeStorage{}
		q := newQueue(t, storage, DefaultLimits())

		first, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)
		set.Stage([]Candidate{image("b.png", "second", 0)})

		second, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)
		assert.Equal(t, 2, storage.calls())
		require.Len(t, second, 2)
		assert.Equal(t, first[0], second[0])
	})

	t.Run("Missing Owner Uploads Nothing", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		set.Stage([]Candidate{image("a.png", "first", 0)})
		storage := &fakeStorage{}
		q := newQueue(t, storage, DefaultLimits())

		urls, err := q.Upload(ctx, "", set)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, urls)
		assert.Equal(t, 0, storage.calls())
	})

	t.Run("Status Stream", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		set.Stage([]Candidate{image("a.png", "first", 0)})
		q := newQueue(t, &fakeStorage{}, DefaultLimits())
		statuses, cancel := q.Subscribe()
		defer cancel()

		_, err := q.Upload(ctx, "user-1", set)
		require.NoError(t, err)

		assert.Equal(t, model.UploadUploading, (<-statuses).State)
		done := <-statuses
		assert.Equal(t, model.UploadUploaded, done.State)
		assert.NotEmpty(t, done.URL)
	})

	t.Run("Closed Queue Rejects Work", func(t *testing.T) {
		set, _ := newSet(t, DefaultLimits())
		q := NewQueue(&fakeStorage{}, "", DefaultLimits())
		statuses, _ := q.Subscribe()
		q.Close()

		_, err := q.Upload(ctx, "user-1", set)
		assert.ErrorIs(t, err, ErrQueueClosed)
		_, open := <-statuses
		assert.False(t, open)
	})
}
