package controller

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReports struct {
	mu      sync.Mutex
	reports []model.Report
	likes   map[string]bool
}

func newStubReports(n int) *stubReports {
	s := &stubReports{likes: map[string]bool{}}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		status := constant.StatusPending
		if i%2 == 0 {
			status = constant.StatusResolved
		}
		s.reports = append(s.reports, model.Report{
			ID:          fmt.Sprintf("r%d", i),
			Title:       fmt.Sprintf("Broken streetlight %d", i),
			Description: "The streetlight has been out for a week",
			Category:    constant.CategoryInfrastructure,
			Status:      status,
			CreatedAt:   base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return s
}

func (s *stubReports) FindAll(ctx context.Context) ([]model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Report(nil), s.reports...), nil
}

func (s *stubReports) FindByID(ctx context.Context, id string) (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *stubReports) RecordView(ctx context.Context, reportID string, userID *string) error {
	return nil
}

func (s *stubReports) ToggleLike(ctx context.Context, reportID, userID string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := reportID + "/" + userID
	s.likes[key] = !s.likes[key]
	if s.likes[key] {
		return true, 1, nil
	}
	return false, 0, nil
}

func (s *stubReports) IsLikedBy(ctx context.Context, reportID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[reportID+"/"+userID], nil
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(ctx context.Context, token string) (*model.Session, error) {
	if token != "good-token" {
		return nil, errors.New("invalid token")
	}
	return &model.Session{AccessToken: token, User: model.UserDTO{ID: "user-1", Email: "amina@example.com"}}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.AppConfig{AppDefaultLocale: "en"}
	mux := config.NewChi(cfg)

	reports := NewReportController(service.NewReportService(newStubReports(8), config.NewValidator(), "https://balagh.example"))
	shell := NewShellController(service.NewShellService())
	auth := middleware.NewAuthMiddleware(stubVerifier{})

	mux.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional)
			r.Get("/shell", shell.Shell)
			r.Get("/home", reports.Home)
			r.Get("/reports", reports.ListReports)
			r.Get("/reports/{id}", reports.GetReport)
		})
		r.With(auth.VerifyToken).Post("/reports/{id}/like", reports.ToggleLike)
	})
	return mux
}

func do(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Accept-Language", "en")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestReportEndpoints(t *testing.T) {
	h := newTestRouter(t)

	t.Run("Lists Second Page", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports?page=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.ReportListResponse `json:"data"`
			Meta helper.PageMeta          `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data.Reports, 2)
		assert.Equal(t, 2, body.Meta.Page)
		assert.Equal(t, 2, body.Meta.TotalPages)
		assert.True(t, body.Meta.HasPrev)
		assert.False(t, body.Meta.HasNext)
	})

	t.Run("Previous View Change Resets Page", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports?page=2&sort_by=views&prev_sort_by=date", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Meta helper.PageMeta `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Meta.Page)
	})

	t.Run("Rejects Non Numeric Page", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports?page=two", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rejects Unknown Sort", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports?sort_by=color", "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body helper.ResponseError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, helper.KindValidation, body.Kind)
		assert.Contains(t, body.Fields, "sort_by")
	})

	t.Run("Missing Report Is Not Found", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body helper.ResponseError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, helper.KindNotFound, body.Kind)
	})

	t.Run("Detail Carries Share Link", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/reports/r3", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.ReportDetailResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "https://balagh.example/report/r3", body.Data.ShareURL)
		assert.Equal(t, 1, body.Data.Report.Views)
	})

	t.Run("Like Requires Sign In", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/reports/r1/like", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Like Toggles And Shows In Detail", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/reports/r1/like", "good-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var like struct {
			Data model.LikeResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &like))
		assert.True(t, like.Data.Liked)

		rec = do(t, h, http.MethodGet, "/api/reports/r1", "good-token")
		var detail struct {
			Data model.ReportDetailResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.True(t, detail.Data.LikedByMe)
	})

	t.Run("Home Counts Resolved", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/home", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.HomeResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 8, body.Data.TotalReports)
		assert.Equal(t, 4, body.Data.ResolvedReports)
		assert.Len(t, body.Data.RecentReports, constant.HomeRecentReports)
	})
}

func TestShellEndpoint(t *testing.T) {
	h := newTestRouter(t)

	t.Run("Anonymous Shell", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/shell", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.ShellResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Nil(t, body.Data.User)
		assert.NotEmpty(t, body.Data.EmergencyContacts)
	})

	t.Run("Signed In Shell", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/shell", "good-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data model.ShellResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Data.User)
		assert.Equal(t, "user-1", body.Data.User.ID)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/nowhere", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
