package controller

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/service"
	"BalaghAPI/internal/upload"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardStorage struct{}

func (discardStorage) Upload(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	return nil
}

func (discardStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newUploadRouter(t *testing.T, limits upload.Limits) http.Handler {
	t.Helper()
	previews, err := upload.NewPreviewStore(16)
	require.NoError(t, err)
	svc := service.NewUploadService(limits, previews, upload.NewQueue(discardStorage{}, "report-media", limits), t.TempDir(), time.Hour)
	t.Cleanup(svc.Close)

	mux := config.NewChi(&config.AppConfig{AppDefaultLocale: "en"})
	uploads := NewUploadController(svc, limits)
	auth := middleware.NewAuthMiddleware(stubVerifier{})
	mux.With(auth.VerifyToken).Post("/api/uploads", uploads.StageFiles)
	mux.With(auth.VerifyToken).Get("/api/uploads", uploads.ListFiles)
	return mux
}

type formFile struct {
	name        string
	contentType string
	body        []byte
}

func pngBytes(extra int) []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, extra)...)
}

func postFiles(t *testing.T, h http.Handler, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("note", "ignored"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStageFilesEndpoint(t *testing.T) {
	limits := upload.Limits{MaxFiles: 2, MaxFileSizeMB: 1, AcceptedTypes: []string{"image/*"}}

	t.Run("Oversized File Is Rejected Alone", func(t *testing.T) {
		h := newUploadRouter(t, limits)
		rec := postFiles(t, h,
			formFile{name: "ok.png", contentType: "image/png", body: pngBytes(16)},
			formFile{name: "huge.png", contentType: "image/png", body: pngBytes(2 * 1024 * 1024)},
		)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.StageResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data.Accepted, 1)
		assert.Equal(t, "ok.png", body.Data.Accepted[0].Name)
		require.Len(t, body.Data.Rejections, 1)
		assert.Equal(t, helper.Message("en", constant.MsgFileTooLarge, 1), body.Data.Rejections[0].Message)
		assert.Nil(t, body.Data.Limit)
	})

	t.Run("Extra Files Give Limit Notice", func(t *testing.T) {
		h := newUploadRouter(t, limits)
		rec := postFiles(t, h,
			formFile{name: "a.png", contentType: "image/png", body: pngBytes(8)},
			formFile{name: "b.png", contentType: "image/png", body: pngBytes(8)},
			formFile{name: "c.png", contentType: "image/png", body: pngBytes(8)},
		)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.StageResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data.Files, 2)
		assert.NotNil(t, body.Data.Limit)
	})

	t.Run("Non Multipart Body Is Bad Request", func(t *testing.T) {
		h := newUploadRouter(t, limits)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
