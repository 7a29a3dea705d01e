package repository

import (
	"BalaghAPI/ent"
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"context"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB connects to TEST_DATABASE_URL and skips the test when it is unset.
func setupDB(t *testing.T) *ent.Client {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	drv, err := entsql.Open(dialect.Postgres, dsn)
	require.NoError(t, err)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	require.NoError(t, config.Migrate(ctx, client, drv))
	clearDatabase(ctx, client)
	return client
}

func clearDatabase(ctx context.Context, client *ent.Client) {
	client.ReportLike.Delete().Exec(ctx)
	client.ReportView.Delete().Exec(ctx)
	client.Report.Delete().Exec(ctx)
	client.User.Delete().Exec(ctx)
}

func createUser(t *testing.T, repo *UserRepository, email string, confirmed bool) *model.UserRecord {
	t.Helper()
	user, err := repo.Create(context.Background(), model.CreateUserDTO{
		Email:        email,
		PasswordHash: "hash",
		Username:     "user",
		DisplayName:  "User",
		Confirmed:    confirmed,
	})
	require.NoError(t, err)
	return user
}

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	t.Run("Duplicate Email", func(t *testing.T) {
		createUser(t, repo, "dup@example.com", true)
		_, err := repo.Create(ctx, model.CreateUserDTO{Email: "dup@example.com"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("Find And Confirm", func(t *testing.T) {
		user := createUser(t, repo, "pending@example.com", false)
		assert.False(t, user.Confirmed)

		require.NoError(t, repo.MarkConfirmed(ctx, user.ID))
		found, err := repo.FindByEmail(ctx, "PENDING@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Confirmed)

		missing, err := repo.FindByID(ctx, "not-a-uuid")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Delete Unconfirmed", func(t *testing.T) {
		stale := createUser(t, repo, "stale@example.com", false)
		n, err := repo.DeleteUnconfirmedBefore(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1))

		found, err := repo.FindByID(ctx, stale.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestReportRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	reports := NewReportRepository(db)
	owner := createUser(t, users, "owner@example.com", true)

	lat := 36.75
	created, err := reports.Create(ctx, model.CreateReportDTO{
		Title:       "Broken street light",
		Description: "The street light has been off for two weeks now",
		Category:    constant.CategoryInfrastructure,
		Location:    "Oran centre",
		Latitude:    &lat,
		Priority:    constant.PriorityHigh,
		UserID:      &owner.ID,
		MediaURLs:   []string{"https://cdn.example.com/a.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, constant.StatusPending, created.Status)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, created.MediaURLs)

	t.Run("Anonymous Report With Owner Is Rejected", func(t *testing.T) {
		_, err := reports.Create(ctx, model.CreateReportDTO{
			Title: "x", Description: "y", Category: constant.CategoryOther,
			Priority: constant.PriorityLow, IsAnonymous: true, UserID: &owner.ID,
		})
		assert.Error(t, err)
	})

	t.Run("Views And Likes", func(t *testing.T) {
		require.NoError(t, reports.RecordView(ctx, created.ID, nil))
		require.NoError(t, reports.RecordView(ctx, created.ID, &owner.ID))

		liked, likes, err := reports.ToggleLike(ctx, created.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, 1, likes)

		found, err := reports.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.Views)
		assert.Equal(t, 1, found.Likes)

		liked, likes, err = reports.ToggleLike(ctx, created.ID, owner.ID)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, 0, likes)
	})

	t.Run("Referenced Media", func(t *testing.T) {
		urls, err := reports.ReferencedMediaURLs(ctx)
		require.NoError(t, err)
		assert.Contains(t, urls, "https://cdn.example.com/a.jpg")
	})
}
