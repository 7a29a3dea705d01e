package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/submission"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type DraftStore interface {
	Load(ctx context.Context, ownerKey string) (submission.Draft, error)
	Save(ctx context.Context, ownerKey string, draft submission.Draft) error
	Delete(ctx context.Context, ownerKey string) error
}

type ReportCreator interface {
	Create(ctx context.Context, dto model.CreateReportDTO) (*model.Report, error)
}

// MediaSet exposes the media a user uploaded during the current session.
type MediaSet interface {
	UploadedURLs(ownerID string) []string
	Release(ownerID string)
}

// MediaOrigin recognises URLs of objects in the report media bucket.
type MediaOrigin interface {
	KeyFromURL(url string) (string, bool)
}

type SubmissionService struct {
	drafts    DraftStore
	reports   ReportCreator
	media     MediaSet
	origin    MediaOrigin
	validator *validator.Validate
	now       func() time.Time
}

func NewSubmissionService(drafts DraftStore, reports ReportCreator, media MediaSet, origin MediaOrigin, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		drafts:    drafts,
		reports:   reports,
		media:     media,
		origin:    origin,
		validator: validator,
		now:       time.Now,
	}
}

func (s *SubmissionService) load(ctx context.Context, ownerID string) (submission.Draft, error) {
	draft, err := s.drafts.Load(ctx, ownerID)
	if err != nil {
		slog.Error("Failed to load draft", "error", err, "ownerID", ownerID)
		return submission.Draft{}, helper.NewNetworkError(helper.Message(helper.LocaleFromContext(ctx), constant.MsgNetworkError))
	}
	return draft, nil
}

func (s *SubmissionService) save(ctx context.Context, ownerID string, draft submission.Draft) (*submission.Draft, error) {
	if err := s.drafts.Save(ctx, ownerID, draft); err != nil {
		slog.Error("Failed to save draft", "error", err, "ownerID", ownerID)
		return nil, helper.NewNetworkError(helper.Message(helper.LocaleFromContext(ctx), constant.MsgNetworkError))
	}
	return &draft, nil
}

func (s *SubmissionService) GetDraft(ctx context.Context, ownerID string) (*submission.Draft, error) {
	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// UpdateDraft overwrites the current step's record and writes the draft through.
func (s *SubmissionService) UpdateDraft(ctx context.Context, ownerID string, patch submission.Patch) (*submission.Draft, error) {
	locale := helper.LocaleFromContext(ctx)

	if patch.Media != nil {
		for _, u := range patch.Media.URLs {
			if _, ok := s.origin.KeyFromURL(u); !ok {
				slog.Warn("Foreign media URL rejected", "ownerID", ownerID, "url", u)
				msg := helper.Message(locale, constant.MsgMediaForeign)
				return nil, helper.NewValidationError(msg, map[string]string{"media": msg})
			}
		}
	}

	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updated, err := submission.Apply(s.validator, draft, patch, s.now())
	if err != nil {
		slog.Warn("Draft patch rejected", "error", err, "step", patch.Step)
		if errors.Is(err, submission.ErrStepMismatch) {
			msg := helper.Message(locale, constant.MsgStepMismatch)
			return nil, helper.NewValidationError(msg, map[string]string{"step": msg})
		}
		return nil, helper.TranslateValidationErrors(locale, err).Error(locale)
	}

	return s.save(ctx, ownerID, updated)
}

func (s *SubmissionService) Next(ctx context.Context, ownerID string) (*submission.Draft, error) {
	locale := helper.LocaleFromContext(ctx)

	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	advanced, results := submission.Next(draft, locale)
	if !results.OK() {
		slog.Warn("Step guard failed", "step", draft.Step)
		return nil, results.Error(locale)
	}
	return s.save(ctx, ownerID, advanced)
}

func (s *SubmissionService) Previous(ctx context.Context, ownerID string) (*submission.Draft, error) {
	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, ownerID, submission.Previous(draft))
}

// Locate stores coordinates reported by the device.
func (s *SubmissionService) Locate(ctx context.Context, ownerID string, req model.LocateRequest) (*submission.Draft, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		msg := helper.Message(locale, constant.MsgCoordinatesInvalid)
		return nil, helper.NewValidationError(msg, map[string]string{"location": msg})
	}

	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, ownerID, submission.Locate(draft, req.Latitude, req.Longitude, s.now()))
}

// Discard deletes the draft and drops the owner's staged uploads.
func (s *SubmissionService) Discard(ctx context.Context, ownerID string) error {
	if err := s.drafts.Delete(ctx, ownerID); err != nil {
		slog.Error("Failed to delete draft", "error", err, "ownerID", ownerID)
		return helper.NewNetworkError(helper.Message(helper.LocaleFromContext(ctx), constant.MsgNetworkError))
	}
	s.media.Release(ownerID)
	return nil
}

// Submit inserts the draft once. A failed insert keeps the draft; success
// clears it and releases the owner's staged uploads.
func (s *SubmissionService) Submit(ctx context.Context, ownerID string) (*model.SubmitResponse, error) {
	locale := helper.LocaleFromContext(ctx)

	draft, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if draft.Step != submission.StepReview {
		msg := helper.Message(locale, constant.MsgStepMismatch)
		return nil, helper.NewValidationError(msg, map[string]string{"step": msg})
	}

	dto, results := submission.Build(draft, ownerID, s.media.UploadedURLs(ownerID), locale)
	if !results.OK() {
		slog.Warn("Submission validation failed", "ownerID", ownerID)
		return nil, results.Error(locale)
	}

	anonymous := strconv.FormatBool(dto.IsAnonymous)
	report, err := s.reports.Create(ctx, dto)
	if err != nil {
		slog.Error("Failed to insert report", "error", err, "ownerID", ownerID)
		metrics.SubmissionsTotal.WithLabelValues(anonymous, "failed").Inc()
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgSubmitFailed))
	}
	metrics.SubmissionsTotal.WithLabelValues(anonymous, "created").Inc()

	if err := s.drafts.Delete(ctx, ownerID); err != nil {
		slog.Error("Failed to clear draft after submit", "error", err, "ownerID", ownerID)
	}
	s.media.Release(ownerID)

	return &model.SubmitResponse{
		Report:   *report,
		Redirect: fmt.Sprintf(constant.ReportDetailPathFmt, report.ID),
		Notice:   successNotice(locale, constant.MsgSubmitSuccessTitle, constant.MsgSubmitSuccess),
	}, nil
}
