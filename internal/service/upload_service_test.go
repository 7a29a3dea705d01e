package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/upload"
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	mu     sync.Mutex
	keys   []string
	failOn string
}

func (m *memoryStorage) Upload(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if m.failOn != "" && bytes.Contains(data, []byte(m.failOn)) {
		return errBackendDown
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return nil
}

func (m *memoryStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func pngCandidate(name string) upload.Candidate {
	body := append([]byte("\x89PNG\r\n\x1a\n"), []byte(name)...)
	return upload.Candidate{Name: name, ContentType: "image/png", Size: int64(len(body)), Body: bytes.NewReader(body)}
}

func newUploadFixture(t *testing.T, limits upload.Limits) (*UploadService, *memoryStorage) {
	t.Helper()
	previews, err := upload.NewPreviewStore(16)
	require.NoError(t, err)
	storage := &memoryStorage{}
	svc := NewUploadService(limits, previews, upload.NewQueue(storage, "report-media", limits), t.TempDir(), time.Hour)
	t.Cleanup(svc.Close)
	return svc, storage
}

func TestUploadServiceStage(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Requires Owner", func(t *testing.T) {
		svc, _ := newUploadFixture(t, upload.DefaultLimits())
		_, err := svc.Stage(ctx, "", []upload.Candidate{pngCandidate("a.png")})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Rejections Become Notices", func(t *testing.T) {
		svc, _ := newUploadFixture(t, upload.DefaultLimits())
		text := []byte("plain text notes")
		resp, err := svc.Stage(ctx, "user-1", []upload.Candidate{
			pngCandidate("a.png"),
			{Name: "notes.txt", ContentType: "text/plain", Size: int64(len(text)), Body: bytes.NewReader(text)},
		})
		require.NoError(t, err)
		assert.Len(t, resp.Accepted, 1)
		require.Len(t, resp.Rejections, 1)
		assert.Equal(t, helper.Message("en", constant.MsgFileTypeUnsupported), resp.Rejections[0].Message)
		assert.True(t, strings.HasPrefix(resp.Accepted[0].PreviewURL, "/api/uploads/previews/"))
		assert.Nil(t, resp.Limit)
	})

	t.Run("Count Ceiling Yields One Notice", func(t *testing.T) {
		limits := upload.DefaultLimits()
		limits.MaxFiles = 2
		svc, _ := newUploadFixture(t, limits)

		resp, err := svc.Stage(ctx, "user-1", []upload.Candidate{pngCandidate("a.png"), pngCandidate("b.png"), pngCandidate("c.png")})
		require.NoError(t, err)
		assert.Len(t, resp.Files, 2)
		require.NotNil(t, resp.Limit)
		assert.Equal(t, "You can upload up to 2 files", resp.Limit.Message)
	})
}

func TestUploadServiceStartAndRelease(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, storage := newUploadFixture(t, upload.DefaultLimits())

	staged, err := svc.Stage(ctx, "user-1", []upload.Candidate{pngCandidate("a.png"), pngCandidate("b.png")})
	require.NoError(t, err)

	resp, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, resp.URLs, 2)
	assert.Zero(t, resp.Failed)
	assert.Equal(t, "2 file(s) uploaded successfully", resp.Notice.Message)
	for _, f := range resp.Files {
		assert.Equal(t, model.UploadUploaded, f.State)
	}
	assert.Equal(t, resp.URLs, svc.UploadedURLs("user-1"))
	assert.Len(t, storage.keys, 2)

	_, _, err = svc.Preview("user-2", strings.TrimPrefix(staged.Accepted[0].PreviewURL, "/api/uploads/previews/"))
	assert.Error(t, err)

	require.NoError(t, svc.Remove(ctx, "user-1", staged.Accepted[0].ID))
	assert.Error(t, svc.Remove(ctx, "user-1", staged.Accepted[0].ID))

	svc.Release("user-1")
	assert.Empty(t, svc.UploadedURLs("user-1"))
	assert.Empty(t, svc.Files(ctx, "user-1"))
}

func TestUploadServicePartialFailure(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, storage := newUploadFixture(t, upload.DefaultLimits())
	storage.failOn = "broken"

	_, err := svc.Stage(ctx, "user-1", []upload.Candidate{pngCandidate("ok.png"), pngCandidate("broken.png")})
	require.NoError(t, err)

	resp, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, resp.URLs, 1)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, string(helper.KindPartialUpload), resp.Kind)
	assert.Equal(t, model.NoticeError, resp.Notice.Variant)
	assert.NotEmpty(t, resp.Files[1].Error)
}

func TestUploadServiceIdleEviction(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	limits := upload.DefaultLimits()
	previews, err := upload.NewPreviewStore(16)
	require.NoError(t, err)
	tempDir := t.TempDir()
	svc := NewUploadService(limits, previews, upload.NewQueue(&memoryStorage{}, "report-media", limits), tempDir, 50*time.Millisecond)
	t.Cleanup(svc.Close)

	_, err = svc.Stage(ctx, "user-1", []upload.Candidate{pngCandidate("a.png"), pngCandidate("b.png")})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Staging())

	assert.Eventually(t, func() bool {
		entries, err := os.ReadDir(tempDir)
		return err == nil && len(entries) == 0 && svc.Staging() == 0
	}, 3*time.Second, 20*time.Millisecond)
	assert.Empty(t, svc.Files(ctx, "user-1"))
	assert.Zero(t, previews.Len())
}

func TestUploadServiceBuffer(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	limits := upload.Limits{MaxFiles: 3, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}}
	svc, _ := newUploadFixture(t, limits)

	small := svc.Buffer("a.png", "image/png", bytes.NewReader(append([]byte("\x89PNG\r\n\x1a\n"), "a"...)))
	require.NoError(t, small.Err)
	big := svc.Buffer("big.png", "image/png", bytes.NewReader(make([]byte, 3*1024*1024)))
	require.NoError(t, big.Err)
	assert.Equal(t, limits.MaxBytes()+1, big.Size)

	resp, err := svc.Stage(ctx, "user-1", []upload.Candidate{small, big})
	require.NoError(t, err)
	assert.Len(t, resp.Accepted, 1)
	require.Len(t, resp.Rejections, 1)
	assert.Equal(t, helper.Message("en", constant.MsgFileTooLarge, 1), resp.Rejections[0].Message)
}
