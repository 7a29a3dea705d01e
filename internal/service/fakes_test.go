package service

import (
	"BalaghAPI/internal/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var errBackendDown = errors.New("backend unavailable")

type fakeReports struct {
	mu        sync.Mutex
	reports   []model.Report
	created   []model.CreateReportDTO
	views     map[string]int
	likes     map[string]map[string]bool
	failRead  bool
	failWrite bool
	loads     int
}

func newFakeReports(reports ...model.Report) *fakeReports {
	return &fakeReports{
		reports: reports,
		views:   make(map[string]int),
		likes:   make(map[string]map[string]bool),
	}
}

func (f *fakeReports) FindAll(ctx context.Context) ([]model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.failRead {
		return nil, errBackendDown
	}
	return append([]model.Report{}, f.reports...), nil
}

func (f *fakeReports) FindByID(ctx context.Context, id string) (*model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRead {
		return nil, errBackendDown
	}
	for _, r := range f.reports {
		if r.ID == id {
			r.Views = f.views[id]
			r.Likes = len(f.likes[id])
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeReports) FindRecent(ctx context.Context, limit int) ([]model.Report, error) {
	all, err := f.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeReports) CountViews(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.views {
		total += n
	}
	return total, nil
}

func (f *fakeReports) CountLikes(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, users := range f.likes {
		total += len(users)
	}
	return total, nil
}

func (f *fakeReports) CountByUser(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.reports {
		if r.UserID != nil && *r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReports) RecordView(ctx context.Context, reportID string, userID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views[reportID]++
	return nil
}

func (f *fakeReports) ToggleLike(ctx context.Context, reportID, userID string) (bool, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likes[reportID] == nil {
		f.likes[reportID] = make(map[string]bool)
	}
	if f.likes[reportID][userID] {
		delete(f.likes[reportID], userID)
		return false, len(f.likes[reportID]), nil
	}
	f.likes[reportID][userID] = true
	return true, len(f.likes[reportID]), nil
}

func (f *fakeReports) IsLikedBy(ctx context.Context, reportID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[reportID][userID], nil
}

func (f *fakeReports) Create(ctx context.Context, dto model.CreateReportDTO) (*model.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite {
		return nil, errBackendDown
	}
	f.created = append(f.created, dto)
	report := model.Report{
		ID:          fmt.Sprintf("report-%d", len(f.created)),
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Location:    dto.Location,
		Priority:    dto.Priority,
		IsAnonymous: dto.IsAnonymous,
		UserID:      dto.UserID,
		MediaURLs:   dto.MediaURLs,
		CreatedAt:   time.Now(),
	}
	f.reports = append([]model.Report{report}, f.reports...)
	return &report, nil
}

type fakeMedia struct {
	urls     map[string][]string
	released []string
}

func (f *fakeMedia) UploadedURLs(ownerID string) []string {
	return f.urls[ownerID]
}

func (f *fakeMedia) Release(ownerID string) {
	f.released = append(f.released, ownerID)
}
