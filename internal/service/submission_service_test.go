package service

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/repository"
	"BalaghAPI/internal/submission"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bucketOrigin struct{}

func (bucketOrigin) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, "https://cdn.example.com/")
	return key, ok && key != ""
}

type submissionFixture struct {
	service *SubmissionService
	reports *fakeReports
	media   *fakeMedia
	drafts  *repository.DraftRepository
	redis   *miniredis.Miniredis
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	drafts := repository.NewDraftRepository(adapter.NewRedisAdapterFromClient(client))
	reports := newFakeReports()
	media := &fakeMedia{urls: map[string][]string{}}
	return &submissionFixture{
		service: NewSubmissionService(drafts, reports, media, bucketOrigin{}, config.NewValidator()),
		reports: reports,
		media:   media,
		drafts:  drafts,
		redis:   mr,
	}
}

func (f *submissionFixture) walkToReview(t *testing.T, ctx context.Context, owner string, anonymous bool) {
	t.Helper()
	s := f.service

	_, err := s.UpdateDraft(ctx, owner, submission.Patch{Step: submission.StepDetails, Details: &submission.Details{
		Title:       "Flooded underpass near the market",
		Description: "Water has been collecting under the bridge since yesterday",
	}})
	require.NoError(t, err)
	_, err = s.Next(ctx, owner)
	require.NoError(t, err)

	_, err = s.UpdateDraft(ctx, owner, submission.Patch{Step: submission.StepPlace, Place: &submission.Place{
		Category: string(constant.CategoryRoad),
		Location: "Rue Didouche Mourad",
	}})
	require.NoError(t, err)
	_, err = s.Next(ctx, owner)
	require.NoError(t, err)
	_, err = s.Next(ctx, owner)
	require.NoError(t, err)

	_, err = s.UpdateDraft(ctx, owner, submission.Patch{Step: submission.StepReview, Review: &submission.Review{
		Priority:    string(constant.PriorityHigh),
		IsAnonymous: anonymous,
	}})
	require.NoError(t, err)
}

func TestSubmissionDraftPersistence(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	f := newSubmissionFixture(t)

	details := submission.Details{Title: "Broken traffic light", Description: "The light at the crossing is dark"}
	_, err := f.service.UpdateDraft(ctx, "user-1", submission.Patch{Step: submission.StepDetails, Details: &details})
	require.NoError(t, err)

	restored, err := f.service.GetDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, details, restored.Details)
	assert.Equal(t, submission.StepDetails, restored.Step)
}

func TestSubmissionGuards(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	f := newSubmissionFixture(t)

	_, err := f.service.Next(ctx, "user-1")
	appErr, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, helper.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "title")

	_, err = f.service.UpdateDraft(ctx, "user-1", submission.Patch{Step: submission.StepPlace, Place: &submission.Place{}})
	appErr, ok = helper.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "step")

	_, err = f.service.Submit(ctx, "user-1")
	assert.Error(t, err)
	assert.Empty(t, f.reports.created)
}

func TestSubmissionSubmit(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Anonymous Report Has No Owner", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.walkToReview(t, ctx, "user-1", true)

		resp, err := f.service.Submit(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, f.reports.created, 1)
		assert.Nil(t, f.reports.created[0].UserID)
		assert.Nil(t, resp.Report.UserID)
	})

	t.Run("Success Clears Draft And Redirects", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.media.urls["user-1"] = []string{"https://cdn.example.com/1.jpg"}
		f.walkToReview(t, ctx, "user-1", false)

		resp, err := f.service.Submit(ctx, "user-1")
		require.NoError(t, err)

		assert.Equal(t, "/report/"+resp.Report.ID, resp.Redirect)
		assert.False(t, f.redis.Exists(constant.DraftKeyPrefix+"user-1"))
		assert.Equal(t, []string{"user-1"}, f.media.released)
		require.NotNil(t, f.reports.created[0].UserID)
		assert.Equal(t, "user-1", *f.reports.created[0].UserID)
		assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, f.reports.created[0].MediaURLs)
		assert.Equal(t, model.NoticeSuccess, resp.Notice.Variant)
	})

	t.Run("Failed Insert Keeps Draft", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.walkToReview(t, ctx, "user-1", true)
		f.reports.failWrite = true

		_, err := f.service.Submit(ctx, "user-1")
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindNetwork, appErr.Kind)
		assert.True(t, appErr.Retryable)
		assert.Equal(t, http.StatusBadGateway, appErr.Code)

		assert.True(t, f.redis.Exists(constant.DraftKeyPrefix+"user-1"))
		assert.Empty(t, f.media.released)

		f.reports.failWrite = false
		_, err = f.service.Submit(ctx, "user-1")
		assert.NoError(t, err)
	})
}

func TestSubmissionLocate(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	f := newSubmissionFixture(t)

	draft, err := f.service.Locate(ctx, "user-1", model.LocateRequest{Latitude: 35.69, Longitude: -0.63})
	require.NoError(t, err)
	assert.Equal(t, "35.69000, -0.63000", draft.Place.Location)

	_, err = f.service.Locate(ctx, "user-1", model.LocateRequest{Latitude: 200})
	assert.Error(t, err)
}

func TestSubmissionDiscard(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	f := newSubmissionFixture(t)

	_, err := f.service.UpdateDraft(ctx, "user-1", submission.Patch{Step: submission.StepDetails, Details: &submission.Details{
		Title:       "Overflowing bins on the corner",
		Description: "Nobody has collected the bins for several days",
	}})
	require.NoError(t, err)

	require.NoError(t, f.service.Discard(ctx, "user-1"))
	assert.False(t, f.redis.Exists(constant.DraftKeyPrefix+"user-1"))
	assert.Equal(t, []string{"user-1"}, f.media.released)
	assert.Empty(t, f.reports.created)
}

func TestSubmissionMediaOrigin(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	f := newSubmissionFixture(t)
	f.walkToReview(t, ctx, "user-1", false)
	_, err := f.service.Previous(ctx, "user-1")
	require.NoError(t, err)

	t.Run("Foreign URL Rejected", func(t *testing.T) {
		_, err := f.service.UpdateDraft(ctx, "user-1", submission.Patch{Step: submission.StepMedia, Media: &submission.Media{
			URLs: []string{"https://cdn.example.com/report-media/user-1/a.jpg", "https://evil.example.net/x.jpg"},
		}})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindValidation, appErr.Kind)
		assert.Equal(t, helper.Message("en", constant.MsgMediaForeign), appErr.Fields["media"])

		draft, err := f.drafts.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, draft.Media.URLs)
	})

	t.Run("Bucket URL Accepted", func(t *testing.T) {
		draft, err := f.service.UpdateDraft(ctx, "user-1", submission.Patch{Step: submission.StepMedia, Media: &submission.Media{
			URLs: []string{"https://cdn.example.com/report-media/user-1/a.jpg"},
		}})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/report-media/user-1/a.jpg"}, draft.Media.URLs)
	})
}
