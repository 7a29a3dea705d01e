package repository

import (
	"BalaghAPI/ent"
	"BalaghAPI/ent/report"
	"BalaghAPI/ent/reportlike"
	"BalaghAPI/ent/reportview"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type ReportRepository struct {
	client *ent.Client
}

func NewReportRepository(client *ent.Client) *ReportRepository {
	return &ReportRepository{
		client: client,
	}
}

type reportCount struct {
	ReportID uuid.UUID `json:"report_id"`
	Count    int       `json:"count"`
}

func toReport(r *ent.Report, views, likes int) model.Report {
	rep := model.Report{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Category:    constant.Category(r.Category),
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Region:      r.Region,
		Priority:    constant.Priority(r.Priority),
		IsAnonymous: r.IsAnonymous,
		Status:      constant.Status(r.Status),
		MediaURLs:   r.Media,
		CreatedAt:   r.CreatedAt,
		Views:       views,
		Likes:       likes,
	}
	if r.UserID != nil {
		owner := r.UserID.String()
		rep.UserID = &owner
	}
	if rep.MediaURLs == nil {
		rep.MediaURLs = []string{}
	}
	return rep
}

// countsByReport groups view or like rows per report in one query.
func countsByReport(ctx context.Context, scan func(ctx context.Context, v any) error) (map[uuid.UUID]int, error) {
	var rows []reportCount
	if err := scan(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.ReportID] = row.Count
	}
	return counts, nil
}

func (r *ReportRepository) withCounts(ctx context.Context, reports []*ent.Report) ([]model.Report, error) {
	views, err := countsByReport(ctx, r.client.ReportView.Query().
		GroupBy(reportview.FieldReportID).
		Aggregate(ent.Count()).
		Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}
	likes, err := countsByReport(ctx, r.client.ReportLike.Query().
		GroupBy(reportlike.FieldReportID).
		Aggregate(ent.Count()).
		Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	out := make([]model.Report, 0, len(reports))
	for _, rep := range reports {
		out = append(out, toReport(rep, views[rep.ID], likes[rep.ID]))
	}
	return out, nil
}

// FindAll returns every report with its view and like counts, newest first.
func (r *ReportRepository) FindAll(ctx context.Context) ([]model.Report, error) {
	reports, err := r.client.Report.Query().
		Order(ent.Desc(report.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.withCounts(ctx, reports)
}

func (r *ReportRepository) FindRecent(ctx context.Context, limit int) ([]model.Report, error) {
	reports, err := r.client.Report.Query().
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.withCounts(ctx, reports)
}

// FindByID returns nil without error when the report does not exist.
func (r *ReportRepository) FindByID(ctx context.Context, id string) (*model.Report, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	rep, err := r.client.Report.Get(ctx, reportID)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	views, err := r.client.ReportView.Query().Where(reportview.ReportID(reportID)).Count(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := r.client.ReportLike.Query().Where(reportlike.ReportID(reportID)).Count(ctx)
	if err != nil {
		return nil, err
	}

	out := toReport(rep, views, likes)
	return &out, nil
}

func (r *ReportRepository) CountViews(ctx context.Context) (int, error) {
	return r.client.ReportView.Query().Count(ctx)
}

func (r *ReportRepository) CountLikes(ctx context.Context) (int, error) {
	return r.client.ReportLike.Query().Count(ctx)
}

func (r *ReportRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return 0, nil
	}
	return r.client.Report.Query().Where(report.UserID(owner)).Count(ctx)
}

func (r *ReportRepository) Create(ctx context.Context, dto model.CreateReportDTO) (*model.Report, error) {
	var owner *uuid.UUID
	if dto.UserID != nil && !dto.IsAnonymous {
		parsed, err := uuid.Parse(*dto.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid owner id: %w", err)
		}
		owner = &parsed
	}

	media := dto.MediaURLs
	if media == nil {
		media = []string{}
	}

	rep, err := r.client.Report.Create().
		SetTitle(dto.Title).
		SetDescription(dto.Description).
		SetCategory(report.Category(dto.Category)).
		SetLocation(dto.Location).
		SetNillableLatitude(dto.Latitude).
		SetNillableLongitude(dto.Longitude).
		SetNillableRegion(dto.Region).
		SetPriority(report.Priority(dto.Priority)).
		SetIsAnonymous(dto.IsAnonymous).
		SetNillableUserID(owner).
		SetMedia(media).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	out := toReport(rep, 0, 0)
	return &out, nil
}

func (r *ReportRepository) RecordView(ctx context.Context, reportID string, userID *string) error {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return err
	}

	create := r.client.ReportView.Create().SetReportID(id)
	if userID != nil {
		if viewer, err := uuid.Parse(*userID); err == nil {
			create.SetUserID(viewer)
		}
	}
	return create.Exec(ctx)
}

// ToggleLike removes the user's like when present and adds it otherwise.
// It returns whether the report is liked afterwards and its like count.
func (r *ReportRepository) ToggleLike(ctx context.Context, reportID, userID string) (bool, int, error) {
	rid, err := uuid.Parse(reportID)
	if err != nil {
		return false, 0, err
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, 0, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback()

	removed, err := tx.ReportLike.Delete().
		Where(reportlike.ReportID(rid), reportlike.UserID(uid)).
		Exec(ctx)
	if err != nil {
		return false, 0, err
	}

	liked := removed == 0
	if liked {
		if err := tx.ReportLike.Create().SetReportID(rid).SetUserID(uid).Exec(ctx); err != nil {
			return false, 0, err
		}
	}

	likes, err := tx.ReportLike.Query().Where(reportlike.ReportID(rid)).Count(ctx)
	if err != nil {
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

func (r *ReportRepository) IsLikedBy(ctx context.Context, reportID, userID string) (bool, error) {
	rid, err := uuid.Parse(reportID)
	if err != nil {
		return false, nil
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}
	return r.client.ReportLike.Query().
		Where(reportlike.ReportID(rid), reportlike.UserID(uid)).
		Exist(ctx)
}

// ReferencedMediaURLs returns every media URL still attached to a report.
func (r *ReportRepository) ReferencedMediaURLs(ctx context.Context) (map[string]struct{}, error) {
	reports, err := r.client.Report.Query().
		Where(report.MediaNotNil()).
		Select(report.FieldMedia).
		All(ctx)
	if err != nil {
		return nil, err
	}

	urls := make(map[string]struct{})
	for _, rep := range reports {
		for _, u := range rep.Media {
			urls[u] = struct{}{}
		}
	}
	return urls, nil
}
