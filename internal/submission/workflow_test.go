package submission

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func completeDraft() Draft {
	d := NewDraft()
	d.Step = StepReview
	d.Details = Details{
		Title:       "Large pothole on the main road",
		Description: "A deep pothole appeared near the school entrance after the rain",
	}
	d.Place = Place{Category: "road", Location: "Bab Ezzouar, Algiers"}
	d.Media = Media{URLs: []string{"https://cdn.example.com/a.jpg"}}
	d.Review = Review{Priority: "high", IsAnonymous: false}
	return d
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepDetails, d.Step)
	assert.Equal(t, string(constant.PriorityMedium), d.Review.Priority)
	assert.True(t, d.Review.IsAnonymous)
}

func TestApply(t *testing.T) {
	v := config.NewValidator()

	t.Run("Overwrites Current Step Record", func(t *testing.T) {
		d, err := Apply(v, NewDraft(), Patch{Step: StepDetails, Details: &Details{Title: "t", Description: "d"}}, now)
		require.NoError(t, err)
		assert.Equal(t, "t", d.Details.Title)
		assert.Equal(t, now, d.UpdatedAt)
	})

	t.Run("Rejects Record For Another Step", func(t *testing.T) {
		_, err := Apply(v, NewDraft(), Patch{Step: StepPlace, Place: &Place{Category: "road"}}, now)
		assert.ErrorIs(t, err, ErrStepMismatch)

		_, err = Apply(v, NewDraft(), Patch{Step: StepDetails, Place: &Place{Category: "road"}}, now)
		assert.ErrorIs(t, err, ErrStepMismatch)
	})

	t.Run("Rejects Two Records", func(t *testing.T) {
		_, err := Apply(v, NewDraft(), Patch{Step: StepDetails, Details: &Details{}, Review: &Review{}}, now)
		assert.ErrorIs(t, err, ErrStepMismatch)
	})

	t.Run("Schema Checked Before Write", func(t *testing.T) {
		d := NewDraft()
		d.Step = StepPlace
		out, err := Apply(v, d, Patch{Step: StepPlace, Place: &Place{Category: "weather"}}, now)
		assert.Error(t, err)
		assert.Equal(t, d, out)

		lat := 120.0
		_, err = Apply(v, d, Patch{Step: StepPlace, Place: &Place{Latitude: &lat}}, now)
		assert.Error(t, err)
	})
}

func TestNextGuards(t *testing.T) {
	t.Run("Details Requires Sanitized Title And Description", func(t *testing.T) {
		d := NewDraft()
		d.Details = Details{Title: "<b></b>  ", Description: "something"}
		out, results := Next(d, "en")
		assert.Equal(t, StepDetails, out.Step)
		assert.Contains(t, results, "title")
		assert.NotContains(t, results, "description")

		d.Details.Title = "ok"
		out, results = Next(d, "en")
		assert.True(t, results.OK())
		assert.Equal(t, StepPlace, out.Step)
	})

	t.Run("Place Requires Category And Location Or Region", func(t *testing.T) {
		d := NewDraft()
		d.Step = StepPlace
		_, results := Next(d, "en")
		assert.Contains(t, results, "category")
		assert.Contains(t, results, "location")

		d.Place = Place{Category: "crime", Region: "Oran"}
		out, results := Next(d, "en")
		assert.True(t, results.OK())
		assert.Equal(t, StepMedia, out.Step)

		d.Place = Place{Category: "crime", Location: "Hay El Badr"}
		out, _ = Next(d, "en")
		assert.Equal(t, StepMedia, out.Step)
	})

	t.Run("Media Is Optional", func(t *testing.T) {
		d := NewDraft()
		d.Step = StepMedia
		out, results := Next(d, "en")
		assert.True(t, results.OK())
		assert.Equal(t, StepReview, out.Step)
	})

	t.Run("Review Is Last", func(t *testing.T) {
		d := NewDraft()
		d.Step = StepReview
		out, results := Next(d, "en")
		assert.Contains(t, results, "step")
		assert.Equal(t, StepReview, out.Step)
	})
}

func TestPrevious(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepDetails, Previous(d).Step)
	d.Step = StepReview
	assert.Equal(t, StepMedia, Previous(d).Step)
}

func TestLocate(t *testing.T) {
	d := Locate(NewDraft(), 36.7538, 3.0588, now)
	require.NotNil(t, d.Place.Latitude)
	assert.Equal(t, 36.7538, *d.Place.Latitude)
	assert.Equal(t, "36.75380, 3.05880", d.Place.Location)

	d.Place.Location = "Algiers centre"
	d = Locate(d, 1, 2, now)
	assert.Equal(t, "Algiers centre", d.Place.Location)
}

func TestBuild(t *testing.T) {
	t.Run("Anonymous Drops Owner", func(t *testing.T) {
		d := completeDraft()
		d.Review.IsAnonymous = true
		dto, results := Build(d, "user-1", nil, "en")
		require.True(t, results.OK())
		assert.Nil(t, dto.UserID)
		assert.True(t, dto.IsAnonymous)
	})

	t.Run("Named Report Keeps Owner", func(t *testing.T) {
		dto, results := Build(completeDraft(), "user-1", nil, "en")
		require.True(t, results.OK())
		require.NotNil(t, dto.UserID)
		assert.Equal(t, "user-1", *dto.UserID)
	})

	t.Run("Sanitizes Text", func(t *testing.T) {
		d := completeDraft()
		d.Details.Title = "<script>alert(1)</script>Large pothole on the main road  "
		dto, results := Build(d, "", nil, "en")
		require.True(t, results.OK())
		assert.Equal(t, "Large pothole on the main road", dto.Title)
	})

	t.Run("Validates After Sanitizing", func(t *testing.T) {
		d := completeDraft()
		d.Details.Title = "<b>short</b>"
		_, results := Build(d, "", nil, "en")
		assert.Contains(t, results, "title")
	})

	t.Run("Merges Media And Defaults Priority", func(t *testing.T) {
		d := completeDraft()
		d.Review.Priority = ""
		dto, results := Build(d, "u", []string{"https://cdn.example.com/b.jpg", "https://cdn.example.com/a.jpg"}, "en")
		require.True(t, results.OK())
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, dto.MediaURLs)
		assert.Equal(t, constant.PriorityMedium, dto.Priority)
	})

	t.Run("Region Without Location", func(t *testing.T) {
		d := completeDraft()
		d.Place.Location = ""
		d.Place.Region = "Blida"
		dto, results := Build(d, "u", nil, "en")
		require.True(t, results.OK())
		require.NotNil(t, dto.Region)
		assert.Equal(t, "Blida", *dto.Region)
	})
}
