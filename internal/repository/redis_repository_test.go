package repository

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/submission"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *adapter.RedisAdapter) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, adapter.NewRedisAdapterFromClient(client)
}

func TestDraftRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Load Returns Fresh Draft When Missing", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		draft, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, submission.NewDraft(), draft)
	})

	t.Run("Save Then Load Restores Identical Fields", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		draft := submission.NewDraft()
		draft.Details = submission.Details{Title: "حفرة كبيرة في الطريق", Description: "وصف المشكلة بالتفصيل هنا"}
		draft.UpdatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, repo.Save(ctx, "user-1", draft))

		assert.True(t, mr.Exists(constant.DraftKeyPrefix+"user-1"))

		restored, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, draft.Details, restored.Details)
		assert.Equal(t, draft.Step, restored.Step)
		assert.True(t, draft.UpdatedAt.Equal(restored.UpdatedAt))
	})

	t.Run("Saved Draft Never Expires", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		require.NoError(t, repo.Save(ctx, "user-1", submission.NewDraft()))
		assert.Zero(t, mr.TTL(constant.DraftKeyPrefix+"user-1"))

		mr.FastForward(30 * 24 * time.Hour)
		assert.True(t, mr.Exists(constant.DraftKeyPrefix+"user-1"))
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		first := submission.NewDraft()
		first.Details.Title = "first"
		second := submission.NewDraft()
		second.Details.Title = "second"
		require.NoError(t, repo.Save(ctx, "user-1", first))
		require.NoError(t, repo.Save(ctx, "user-1", second))

		restored, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "second", restored.Details.Title)
	})

	t.Run("Delete Removes Key", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		require.NoError(t, repo.Save(ctx, "user-1", submission.NewDraft()))
		require.NoError(t, repo.Delete(ctx, "user-1"))
		assert.False(t, mr.Exists(constant.DraftKeyPrefix+"user-1"))
	})

	t.Run("Referenced Media Spans All Drafts", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		first := submission.NewDraft()
		first.Media.URLs = []string{"https://cdn.example.com/report-media/u1/a.jpg"}
		second := submission.NewDraft()
		second.Media.URLs = []string{"https://cdn.example.com/report-media/u2/b.jpg"}
		require.NoError(t, repo.Save(ctx, "user-1", first))
		require.NoError(t, repo.Save(ctx, "user-2", second))
		require.NoError(t, mr.Set(constant.DraftKeyPrefix+"user-3", "{not json"))
		require.NoError(t, mr.Set("session:other", "ignored"))

		urls, err := repo.ReferencedMediaURLs(ctx)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, urls, "https://cdn.example.com/report-media/u1/a.jpg")
		assert.Contains(t, urls, "https://cdn.example.com/report-media/u2/b.jpg")
	})

	t.Run("Corrupt Payload Falls Back To Fresh Draft", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewDraftRepository(rdb)

		require.NoError(t, mr.Set(constant.DraftKeyPrefix+"user-1", "{not json"))
		draft, err := repo.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, submission.StepDetails, draft.Step)
	})
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Blacklist Expires With Token", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewSessionRepository(rdb)

		require.NoError(t, repo.BlacklistToken(ctx, "jti-1", time.Minute))
		assert.True(t, repo.IsTokenBlacklisted(ctx, "jti-1"))
		assert.False(t, repo.IsTokenBlacklisted(ctx, "jti-2"))

		mr.FastForward(2 * time.Minute)
		assert.False(t, repo.IsTokenBlacklisted(ctx, "jti-1"))
	})

	t.Run("Expired Token Is Not Stored", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewSessionRepository(rdb)

		require.NoError(t, repo.BlacklistToken(ctx, "jti-1", 0))
		assert.Empty(t, mr.Keys())
	})

	t.Run("Confirmation Is Single Use", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := NewSessionRepository(rdb)

		require.NoError(t, repo.SaveConfirmation(ctx, "hash", "user-1", time.Hour))

		userID, err := repo.ConsumeConfirmation(ctx, "hash")
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)

		userID, err = repo.ConsumeConfirmation(ctx, "hash")
		require.NoError(t, err)
		assert.Empty(t, userID)
	})
}

func TestRateLimitRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Blocks After Limit", func(t *testing.T) {
		_, rdb := setupRedis(t)
		repo := NewRateLimitRepository(rdb)
		anon := RateSubject{ClientIP: "198.51.100.7"}

		for i := 0; i < 3; i++ {
			decision, err := repo.Hit(ctx, "signin", anon, 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, decision.Allowed)
			assert.Equal(t, 2-i, decision.Remaining)
		}

		decision, err := repo.Hit(ctx, "signin", anon, 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Zero(t, decision.Remaining)
		assert.Greater(t, decision.Reset, time.Duration(0))
		assert.LessOrEqual(t, decision.Reset, time.Minute)
	})

	t.Run("Keys Separate Users From Addresses", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewRateLimitRepository(rdb)

		_, err := repo.Hit(ctx, "like", RateSubject{UserID: "user-1", ClientIP: "198.51.100.7"}, 1, time.Minute)
		require.NoError(t, err)
		decision, err := repo.Hit(ctx, "like", RateSubject{ClientIP: "198.51.100.7"}, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)

		assert.ElementsMatch(t, []string{
			constant.RateLimitKeyPrefix + "like:user:user-1",
			constant.RateLimitKeyPrefix + "like:ip:198.51.100.7",
		}, mr.Keys())
		assert.Equal(t, time.Minute, mr.TTL(constant.RateLimitKeyPrefix+"like:user:user-1"))
	})

	t.Run("Window Reopens", func(t *testing.T) {
		mr, rdb := setupRedis(t)
		repo := NewRateLimitRepository(rdb)
		user := RateSubject{UserID: "user-1"}

		_, err := repo.Hit(ctx, "submit", user, 1, time.Minute)
		require.NoError(t, err)
		decision, err := repo.Hit(ctx, "submit", user, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, decision.Allowed)

		mr.FastForward(time.Minute + time.Second)
		decision, err = repo.Hit(ctx, "submit", user, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}
