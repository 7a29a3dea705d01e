package service

import (
	"BalaghAPI/internal/browse"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type ReportReader interface {
	FindAll(ctx context.Context) ([]model.Report, error)
	FindByID(ctx context.Context, id string) (*model.Report, error)
}

type ReportEngagement interface {
	RecordView(ctx context.Context, reportID string, userID *string) error
	ToggleLike(ctx context.Context, reportID, userID string) (bool, int, error)
	IsLikedBy(ctx context.Context, reportID, userID string) (bool, error)
}

type ReportStore interface {
	ReportReader
	ReportEngagement
}

type ReportService struct {
	reports   ReportStore
	validator *validator.Validate
	appURL    string
}

func NewReportService(reports ReportStore, validator *validator.Validate, appURL string) *ReportService {
	return &ReportService{
		reports:   reports,
		validator: validator,
		appURL:    appURL,
	}
}

func (s *ReportService) ShareURL(id string) string {
	return s.appURL + fmt.Sprintf(constant.ReportDetailPathFmt, id)
}

// List runs the browse pipeline over the full collection.
func (s *ReportService) List(ctx context.Context, req model.ListReportsRequest) (*model.ReportListResponse, helper.PageMeta, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.PageMeta{}, helper.TranslateValidationErrors(locale, err).Error(locale)
	}

	reports, err := s.reports.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch reports", "error", err)
		return nil, helper.PageMeta{}, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}

	var state *browse.State
	if req.Previous != nil {
		prev := browse.FromFilters(*req.Previous)
		prev.Page = max(req.Page, 1)
		state = browse.Resume(reports, prev)
		state.Update(browse.FromRequest(req))
	} else {
		state = browse.Resume(reports, browse.FromRequest(req))
	}
	if req.ToggleSort != "" {
		state.ToggleSort(browse.SortKey(req.ToggleSort))
	}

	result := state.Result()
	resp := &model.ReportListResponse{
		Reports: result.Items,
		Empty:   result.Empty,
	}
	if result.Empty {
		resp.Message = helper.Message(locale, constant.MsgNoResults)
	}
	return resp, helper.NewPageMeta(result.Page, result.PageSize, result.Total), nil
}

// Detail returns a report and records one view. A failed view write is logged only.
func (s *ReportService) Detail(ctx context.Context, id string, viewer *model.Session) (*model.ReportDetailResponse, error) {
	locale := helper.LocaleFromContext(ctx)

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		slog.Error("Failed to fetch report", "error", err, "reportID", id)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}
	if report == nil {
		return nil, helper.NewNotFoundError(helper.Message(locale, constant.MsgReportNotFound))
	}

	var viewerID *string
	if viewer != nil {
		viewerID = &viewer.User.ID
	}
	if err := s.reports.RecordView(ctx, report.ID, viewerID); err != nil {
		slog.Warn("Failed to record report view", "error", err, "reportID", report.ID)
	} else {
		report.Views++
	}

	resp := &model.ReportDetailResponse{
		Report:   *report,
		ShareURL: s.ShareURL(report.ID),
	}
	if viewerID != nil {
		liked, err := s.reports.IsLikedBy(ctx, report.ID, *viewerID)
		if err != nil {
			slog.Warn("Failed to check like", "error", err, "reportID", report.ID)
		}
		resp.LikedByMe = liked
	}
	return resp, nil
}

func (s *ReportService) ToggleLike(ctx context.Context, id, userID string) (*model.LikeResponse, error) {
	locale := helper.LocaleFromContext(ctx)

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		slog.Error("Failed to fetch report", "error", err, "reportID", id)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}
	if report == nil {
		return nil, helper.NewNotFoundError(helper.Message(locale, constant.MsgReportNotFound))
	}

	liked, likes, err := s.reports.ToggleLike(ctx, report.ID, userID)
	if err != nil {
		slog.Error("Failed to toggle like", "error", err, "reportID", report.ID)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}

	notice := successNotice(locale, constant.MsgUnlikedTitle, constant.MsgUnliked)
	if liked {
		notice = successNotice(locale, constant.MsgLikedTitle, constant.MsgLiked)
	}
	return &model.LikeResponse{Liked: liked, Likes: likes, Notice: notice}, nil
}

// Home returns the landing page figures and the latest reports.
func (s *ReportService) Home(ctx context.Context) (*model.HomeResponse, error) {
	locale := helper.LocaleFromContext(ctx)

	reports, err := s.reports.FindAll(ctx)
	if err != nil {
		slog.Error("Failed to fetch reports", "error", err)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}

	resp := &model.HomeResponse{
		TotalReports:  len(reports),
		RecentReports: make([]model.Report, 0, constant.HomeRecentReports),
	}
	for _, r := range reports {
		if r.Status == constant.StatusResolved {
			resp.ResolvedReports++
		}
	}
	for i := 0; i < len(reports) && i < constant.HomeRecentReports; i++ {
		resp.RecentReports = append(resp.RecentReports, reports[i])
	}
	return resp, nil
}
