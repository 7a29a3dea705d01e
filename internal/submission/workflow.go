package submission

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrStepMismatch = errors.New("patch does not belong to the current step")

// Apply validates the patch record against its schema and overwrites the matching
// step record. Only the current step may be edited.
func Apply(v *validator.Validate, draft Draft, patch Patch, now time.Time) (Draft, error) {
	record, count := patch.record()
	if count != 1 || !patch.matchesStep() || patch.Step != draft.Step {
		return draft, ErrStepMismatch
	}

	if err := v.Struct(record); err != nil {
		return draft, err
	}

	switch patch.Step {
	case StepDetails:
		draft.Details = *patch.Details
	case StepPlace:
		draft.Place = *patch.Place
	case StepMedia:
		draft.Media = Media{URLs: append([]string{}, patch.Media.URLs...)}
	case StepReview:
		draft.Review = *patch.Review
	}
	draft.UpdatedAt = now
	return draft, nil
}

// Next advances one step when the current step's guard holds.
func Next(draft Draft, locale string) (Draft, helper.ValidationResults) {
	results := helper.ValidationResults{}

	switch draft.Step {
	case StepDetails:
		if helper.Sanitize(draft.Details.Title) == "" {
			results["title"] = helper.Message(locale, constant.MsgStepDetails)
		}
		if helper.Sanitize(draft.Details.Description) == "" {
			results["description"] = helper.Message(locale, constant.MsgStepDetails)
		}
	case StepPlace:
		if draft.Place.Category == "" {
			results["category"] = helper.Message(locale, constant.MsgStepPlace)
		}
		if helper.Sanitize(draft.Place.Location) == "" && draft.Place.Region == "" {
			results["location"] = helper.Message(locale, constant.MsgStepPlace)
		}
	case StepMedia:
	default:
		results["step"] = helper.Message(locale, constant.MsgStepLast)
	}

	if results.OK() {
		draft.Step++
	}
	return draft, results
}

func Previous(draft Draft) Draft {
	if draft.Step > StepDetails {
		draft.Step--
	}
	return draft
}

// Locate records device coordinates and fills the address text only when it is empty.
func Locate(draft Draft, latitude, longitude float64, now time.Time) Draft {
	draft.Place.Latitude = &latitude
	draft.Place.Longitude = &longitude
	if strings.TrimSpace(draft.Place.Location) == "" {
		draft.Place.Location = fmt.Sprintf("%.5f, %.5f", latitude, longitude)
	}
	draft.UpdatedAt = now
	return draft
}

// Build re-sanitizes and re-validates the draft into an insertable report.
// An anonymous report never carries an owner, whoever is signed in.
func Build(draft Draft, ownerID string, uploadedURLs []string, locale string) (model.CreateReportDTO, helper.ValidationResults) {
	title := helper.Sanitize(draft.Details.Title)
	description := helper.Sanitize(draft.Details.Description)
	location := helper.Sanitize(draft.Place.Location)

	priority := draft.Review.Priority
	if priority == "" {
		priority = string(constant.PriorityMedium)
	}

	results := helper.ValidateReport(locale, helper.ReportInput{
		Title:       title,
		Description: description,
		Category:    draft.Place.Category,
		Location:    location,
		Region:      draft.Place.Region,
		Priority:    priority,
	})
	if !results.OK() {
		return model.CreateReportDTO{}, results
	}

	dto := model.CreateReportDTO{
		Title:       title,
		Description: description,
		Category:    constant.Category(draft.Place.Category),
		Location:    location,
		Latitude:    draft.Place.Latitude,
		Longitude:   draft.Place.Longitude,
		Priority:    constant.Priority(priority),
		IsAnonymous: draft.Review.IsAnonymous,
		MediaURLs:   MergeMedia(draft.Media.URLs, uploadedURLs),
	}
	if draft.Place.Region != "" {
		region := draft.Place.Region
		dto.Region = &region
	}
	if !draft.Review.IsAnonymous && ownerID != "" {
		owner := ownerID
		dto.UserID = &owner
	}
	return dto, results
}

// MergeMedia concatenates URL lists, dropping duplicates and keeping first-seen order.
func MergeMedia(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, list := range lists {
		for _, u := range list {
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			merged = append(merged, u)
		}
	}
	return merged
}
