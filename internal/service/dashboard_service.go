package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/model"
	"context"
	"log/slog"
	"sync"
	"time"
)

type DashboardStore interface {
	FindAll(ctx context.Context) ([]model.Report, error)
	FindRecent(ctx context.Context, limit int) ([]model.Report, error)
	CountViews(ctx context.Context) (int, error)
	CountLikes(ctx context.Context) (int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type ChangeFeed interface {
	Subscribe(topic string, callback func()) func()
}

var dashboardTopics = []string{constant.TopicReports, constant.TopicReportLikes, constant.TopicReportViews}

type DashboardService struct {
	reports       DashboardStore
	feed          ChangeFeed
	reloadTimeout time.Duration
}

func NewDashboardService(reports DashboardStore, feed ChangeFeed) *DashboardService {
	return &DashboardService{
		reports:       reports,
		feed:          feed,
		reloadTimeout: 15 * time.Second,
	}
}

// ComputeStats derives the dashboard figures from the full report list and event counts.
func ComputeStats(reports []model.Report, views, likes int, userReports *int) model.DashboardStats {
	stats := model.DashboardStats{
		TotalReports: len(reports),
		TotalViews:   views,
		TotalLikes:   likes,
		UserReports:  userReports,
	}
	for _, r := range reports {
		switch r.Status {
		case constant.StatusPending:
			stats.PendingReports++
		case constant.StatusResolved:
			stats.ResolvedReports++
		}
	}
	return stats
}

// Load recomputes everything from scratch. userID may be empty for anonymous callers.
func (s *DashboardService) Load(ctx context.Context, userID string) (*model.DashboardData, error) {
	locale := helper.LocaleFromContext(ctx)
	fail := func(err error) (*model.DashboardData, error) {
		slog.Error("Failed to load dashboard", "error", err)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgDashboardFailed))
	}

	reports, err := s.reports.FindAll(ctx)
	if err != nil {
		return fail(err)
	}
	views, err := s.reports.CountViews(ctx)
	if err != nil {
		return fail(err)
	}
	likes, err := s.reports.CountLikes(ctx)
	if err != nil {
		return fail(err)
	}

	var userReports *int
	if userID != "" {
		n, err := s.reports.CountByUser(ctx, userID)
		if err != nil {
			return fail(err)
		}
		userReports = &n
	}

	recent, err := s.reports.FindRecent(ctx, constant.RecentReportsLimit)
	if err != nil {
		return fail(err)
	}

	return &model.DashboardData{
		Stats:         ComputeStats(reports, views, likes, userReports),
		RecentReports: recent,
	}, nil
}

// Watch reloads the dashboard on every change to reports, likes or views and
// hands each result to onUpdate. Overlapping reloads are not serialised; the
// last one to finish wins. The returned stop releases all three subscriptions.
func (s *DashboardService) Watch(ctx context.Context, userID string, onUpdate func(*model.DashboardData, error)) func() {
	locale := helper.LocaleFromContext(ctx)
	done := make(chan struct{})

	reload := func(topic string) {
		select {
		case <-done:
			return
		default:
		}
		metrics.DashboardRecomputations.WithLabelValues(topic).Inc()

		go func() {
			reloadCtx, cancel := context.WithTimeout(helper.WithLocale(context.Background(), locale), s.reloadTimeout)
			defer cancel()

			data, err := s.Load(reloadCtx, userID)
			select {
			case <-done:
			default:
				onUpdate(data, err)
			}
		}()
	}

	unsubscribes := make([]func(), 0, len(dashboardTopics))
	for _, topic := range dashboardTopics {
		unsubscribes = append(unsubscribes, s.feed.Subscribe(topic, func() { reload(topic) }))
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			for _, unsubscribe := range unsubscribes {
				unsubscribe()
			}
		})
	}
}
