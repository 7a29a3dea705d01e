package service

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededReports(n int) []model.Report {
	reports := make([]model.Report, 0, n)
	for i := 0; i < n; i++ {
		status := constant.StatusPending
		if i%3 == 0 {
			status = constant.StatusResolved
		}
		reports = append(reports, model.Report{
			ID:          fmt.Sprintf("r%d", i),
			Title:       fmt.Sprintf("Street lamp %d is out", i),
			Description: "The lamp has been dark for a week",
			Category:    constant.CategoryInfrastructure,
			Status:      status,
			CreatedAt:   time.Date(2026, 3, 20-i, 0, 0, 0, 0, time.UTC),
		})
	}
	return reports
}

func TestReportList(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc := NewReportService(newFakeReports(seededReports(13)...), config.NewValidator(), "https://balagh.example")

	t.Run("Paginates By Six", func(t *testing.T) {
		resp, meta, err := svc.List(ctx, model.ListReportsRequest{Page: 3})
		require.NoError(t, err)
		assert.Len(t, resp.Reports, 1)
		assert.Equal(t, 3, meta.Page)
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 13, meta.Total)
		assert.False(t, resp.Empty)
	})

	t.Run("Empty Result Carries Message", func(t *testing.T) {
		resp, _, err := svc.List(ctx, model.ListReportsRequest{Search: "volcano"})
		require.NoError(t, err)
		assert.True(t, resp.Empty)
		assert.Empty(t, resp.Reports)
		assert.Equal(t, helper.Message("en", constant.MsgNoResults), resp.Message)
	})

	t.Run("Invalid Sort Key", func(t *testing.T) {
		_, _, err := svc.List(ctx, model.ListReportsRequest{SortBy: "color"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	})

	t.Run("Same View Keeps Requested Page", func(t *testing.T) {
		_, meta, err := svc.List(ctx, model.ListReportsRequest{
			Page:     2,
			Previous: &model.ListFilters{},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, meta.Page)
	})

	t.Run("Changed Filter Returns To First Page", func(t *testing.T) {
		resp, meta, err := svc.List(ctx, model.ListReportsRequest{
			Status:   string(constant.StatusPending),
			Page:     2,
			Previous: &model.ListFilters{Status: "all"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, meta.Page)
		assert.Len(t, resp.Reports, 6)
	})

	t.Run("Changed Sort Returns To First Page", func(t *testing.T) {
		_, meta, err := svc.List(ctx, model.ListReportsRequest{
			SortBy:   "likes",
			Page:     3,
			Previous: &model.ListFilters{SortBy: "date"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("Toggle Sort Flips Direction", func(t *testing.T) {
		resp, meta, err := svc.List(ctx, model.ListReportsRequest{Page: 2, ToggleSort: "date"})
		require.NoError(t, err)
		assert.Equal(t, 1, meta.Page)
		require.NotEmpty(t, resp.Reports)
		assert.Equal(t, "r12", resp.Reports[0].ID)
	})

	t.Run("Invalid Previous View", func(t *testing.T) {
		_, _, err := svc.List(ctx, model.ListReportsRequest{Previous: &model.ListFilters{Order: "sideways"}})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	})
}

func TestReportDetail(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Not Found", func(t *testing.T) {
		svc := NewReportService(newFakeReports(), config.NewValidator(), "https://balagh.example")
		_, err := svc.Detail(ctx, "missing", nil)
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Records View And Share URL", func(t *testing.T) {
		reports := newFakeReports(seededReports(2)...)
		svc := NewReportService(reports, config.NewValidator(), "https://balagh.example")

		resp, err := svc.Detail(ctx, "r1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Report.Views)
		assert.Equal(t, "https://balagh.example/report/r1", resp.ShareURL)
		assert.False(t, resp.LikedByMe)
		assert.Equal(t, 1, reports.views["r1"])
	})

	t.Run("Viewer Sees Own Like", func(t *testing.T) {
		reports := newFakeReports(seededReports(2)...)
		reports.likes["r0"] = map[string]bool{"user-1": true}
		svc := NewReportService(reports, config.NewValidator(), "https://balagh.example")

		viewer := &model.Session{User: model.UserDTO{ID: "user-1"}}
		resp, err := svc.Detail(ctx, "r0", viewer)
		require.NoError(t, err)
		assert.True(t, resp.LikedByMe)
		assert.Equal(t, 1, resp.Report.Likes)
	})
}

func TestReportToggleLike(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	reports := newFakeReports(seededReports(1)...)
	svc := NewReportService(reports, config.NewValidator(), "https://balagh.example")

	resp, err := svc.ToggleLike(ctx, "r0", "user-1")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.Likes)

	resp, err = svc.ToggleLike(ctx, "r0", "user-1")
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, 0, resp.Likes)

	_, err = svc.ToggleLike(ctx, "missing", "user-1")
	assert.Error(t, err)
}

func TestReportHome(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc := NewReportService(newFakeReports(seededReports(7)...), config.NewValidator(), "https://balagh.example")

	resp, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalReports)
	assert.Equal(t, 3, resp.ResolvedReports)
	require.Len(t, resp.RecentReports, constant.HomeRecentReports)
	assert.Equal(t, "r0", resp.RecentReports[0].ID)
}
