package service

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardReports() []model.Report {
	owner := "user-1"
	reports := make([]model.Report, 0, 7)
	statuses := []constant.Status{constant.StatusPending, constant.StatusResolved, constant.StatusVerified}
	for i := 0; i < 7; i++ {
		r := model.Report{
			ID:        fmt.Sprintf("r%d", i),
			Title:     fmt.Sprintf("Report number %d", i),
			Status:    statuses[i%len(statuses)],
			CreatedAt: time.Date(2026, 1, 7-i, 0, 0, 0, 0, time.UTC),
		}
		if i%2 == 0 {
			r.UserID = &owner
		}
		reports = append(reports, r)
	}
	return reports
}

func TestComputeStats(t *testing.T) {
	t.Run("Counts Statuses", func(t *testing.T) {
		stats := ComputeStats(dashboardReports(), 12, 4, nil)
		assert.Equal(t, 7, stats.TotalReports)
		assert.Equal(t, 3, stats.PendingReports)
		assert.Equal(t, 2, stats.ResolvedReports)
		assert.Equal(t, 12, stats.TotalViews)
		assert.Equal(t, 4, stats.TotalLikes)
		assert.Nil(t, stats.UserReports)
	})

	t.Run("Empty Collection", func(t *testing.T) {
		stats := ComputeStats(nil, 0, 0, nil)
		assert.Equal(t, model.DashboardStats{}, stats)
	})
}

func TestDashboardLoad(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Signed In User Gets Own Count", func(t *testing.T) {
		reports := newFakeReports(dashboardReports()...)
		reports.views["r0"] = 3
		reports.likes["r0"] = map[string]bool{"user-2": true}
		svc := NewDashboardService(reports, adapter.NewChangeFeed())

		data, err := svc.Load(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, data.Stats.UserReports)
		assert.Equal(t, 4, *data.Stats.UserReports)
		assert.Equal(t, 3, data.Stats.TotalViews)
		assert.Equal(t, 1, data.Stats.TotalLikes)
		assert.Len(t, data.RecentReports, constant.RecentReportsLimit)
	})

	t.Run("Anonymous Caller", func(t *testing.T) {
		svc := NewDashboardService(newFakeReports(dashboardReports()...), adapter.NewChangeFeed())

		data, err := svc.Load(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, data.Stats.UserReports)
	})

	t.Run("Backend Failure", func(t *testing.T) {
		reports := newFakeReports()
		reports.failRead = true
		svc := NewDashboardService(reports, adapter.NewChangeFeed())

		_, err := svc.Load(ctx, "user-1")
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindNetwork, appErr.Kind)
		assert.Equal(t, helper.Message("en", constant.MsgDashboardFailed), appErr.Message)
	})
}

func TestDashboardWatch(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Change Triggers Full Reload", func(t *testing.T) {
		feed := adapter.NewChangeFeed()
		reports := newFakeReports(dashboardReports()...)
		svc := NewDashboardService(reports, feed)

		updates := make(chan *model.DashboardData, 3)
		stop := svc.Watch(ctx, "user-1", func(data *model.DashboardData, err error) {
			assert.NoError(t, err)
			updates <- data
		})
		defer stop()

		for _, topic := range []string{constant.TopicReports, constant.TopicReportLikes, constant.TopicReportViews} {
			assert.Equal(t, 1, feed.Subscribers(topic))
		}

		_, err := reports.Create(ctx, model.CreateReportDTO{Title: "Another pothole on the main road"})
		require.NoError(t, err)
		feed.Publish(constant.TopicReports)

		select {
		case data := <-updates:
			assert.Equal(t, 8, data.Stats.TotalReports)
		case <-time.After(2 * time.Second):
			t.Fatal("dashboard was not reloaded")
		}
	})

	t.Run("Stop Releases Subscriptions", func(t *testing.T) {
		feed := adapter.NewChangeFeed()
		reports := newFakeReports(dashboardReports()...)
		svc := NewDashboardService(reports, feed)

		stop := svc.Watch(ctx, "", func(*model.DashboardData, error) {})
		stop()
		stop()

		for _, topic := range []string{constant.TopicReports, constant.TopicReportLikes, constant.TopicReportViews} {
			assert.Equal(t, 0, feed.Subscribers(topic))
		}

		feed.Publish(constant.TopicReportViews)
		time.Sleep(50 * time.Millisecond)
		reports.mu.Lock()
		defer reports.mu.Unlock()
		assert.Equal(t, 0, reports.loads)
	})
}
