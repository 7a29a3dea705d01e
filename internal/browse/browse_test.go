package browse

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func makeReports(n int, category constant.Category) []model.Report {
	reports := make([]model.Report, n)
	for i := range reports {
		reports[i] = model.Report{
			ID:          fmt.Sprintf("%s-%d", category, i),
			Title:       fmt.Sprintf("Report %d about %s", i, category),
			Description: "Residents noticed the problem this morning",
			Category:    category,
			Status:      constant.StatusPending,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
	}
	return reports
}

func TestApplyPagination(t *testing.T) {
	reports := makeReports(13, constant.CategoryRoad)

	t.Run("Pages Of Six", func(t *testing.T) {
		q := DefaultQuery()
		assert.Len(t, Apply(reports, q).Items, 6)

		q.Page = 2
		assert.Len(t, Apply(reports, q).Items, 6)

		q.Page = 3
		result := Apply(reports, q)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 13, result.Total)
	})

	t.Run("Out Of Range Page Resets To First", func(t *testing.T) {
		q := DefaultQuery()
		q.Page = 9
		result := Apply(reports, q)
		assert.Equal(t, 1, result.Page)
		assert.Len(t, result.Items, 6)
	})

	t.Run("Input Left Untouched", func(t *testing.T) {
		q := DefaultQuery()
		q.Order = OrderAsc
		before := append([]model.Report{}, reports...)
		Apply(reports, q)
		assert.Equal(t, before, reports)
	})
}

func TestApplyFilters(t *testing.T) {
	reports := append(makeReports(4, constant.CategoryRoad), makeReports(3, constant.CategoryCrime)...)

	t.Run("Category Filter", func(t *testing.T) {
		q := DefaultQuery()
		q.Category = string(constant.CategoryRoad)
		result := Apply(reports, q)
		require.Len(t, result.Items, 4)
		for _, r := range result.Items {
			assert.Equal(t, constant.CategoryRoad, r.Category)
		}
	})

	t.Run("No Match Is Empty Not Error", func(t *testing.T) {
		q := DefaultQuery()
		q.Category = string(constant.CategoryRoad)
		q.Search = "earthquake"
		result := Apply(reports, q)
		assert.True(t, result.Empty)
		assert.Empty(t, result.Items)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("Search Is Case Insensitive On Title And Description", func(t *testing.T) {
		q := DefaultQuery()
		q.Search = "CRIME"
		assert.Len(t, Apply(reports, q).Items, 3)

		q.Search = "residents NOTICED"
		assert.Len(t, Apply(reports, q).Items, 6)
	})

	t.Run("Status Filter", func(t *testing.T) {
		withResolved := append([]model.Report{}, reports...)
		withResolved[0].Status = constant.StatusResolved
		q := DefaultQuery()
		q.Status = string(constant.StatusResolved)
		assert.Len(t, Apply(withResolved, q).Items, 1)
	})
}

func TestSort(t *testing.T) {
	reports := []model.Report{
		{ID: "a", Likes: 1, Views: 10, CreatedAt: base},
		{ID: "b", Likes: 5, Views: 1, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Likes: 5, Views: 3, CreatedAt: base.Add(2 * time.Hour)},
	}
	ids := func(rs []model.Report) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	cases := []struct {
		name  string
		key   SortKey
		order Order
		want  []string
	}{
		{"Date Desc", SortDate, OrderDesc, []string{"c", "b", "a"}},
		{"Date Asc", SortDate, OrderAsc, []string{"a", "b", "c"}},
		{"Likes Desc Stable", SortLikes, OrderDesc, []string{"b", "c", "a"}},
		{"Views Asc", SortViews, OrderAsc, []string{"b", "c", "a"}},
		{"Popularity Desc", SortPopularity, OrderDesc, []string{"a", "c", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sorted := append([]model.Report{}, reports...)
			Sort(sorted, tc.key, tc.order)
			assert.Equal(t, tc.want, ids(sorted))
		})
	}
}

func TestState(t *testing.T) {
	reports := append(makeReports(13, constant.CategoryRoad), makeReports(2, constant.CategoryCrime)...)

	t.Run("Filter Change Resets Page", func(t *testing.T) {
		s := NewState(reports)
		s.SetPage(3)
		assert.Equal(t, 3, s.Result().Page)

		s.SetCategory(string(constant.CategoryCrime))
		result := s.Result()
		assert.Equal(t, 1, result.Page)
		assert.Len(t, result.Items, 2)
	})

	t.Run("Sort Change Resets Page", func(t *testing.T) {
		s := NewState(reports)
		s.SetPage(2)
		s.ToggleSort(SortLikes)
		assert.Equal(t, 1, s.Query().Page)
		assert.Equal(t, OrderDesc, s.Query().Order)

		s.ToggleSort(SortLikes)
		assert.Equal(t, OrderAsc, s.Query().Order)
	})

	t.Run("Update Keeps Page Only When Unchanged", func(t *testing.T) {
		at := DefaultQuery()
		at.Page = 2

		s := Resume(reports, at)
		s.Update(at)
		assert.Equal(t, 2, s.Query().Page)

		next := at
		next.Page = 3
		s.Update(next)
		assert.Equal(t, 3, s.Query().Page)

		next.Order = OrderAsc
		s.Update(next)
		assert.Equal(t, 1, s.Query().Page)
		assert.Equal(t, OrderAsc, s.Query().Order)

		next = s.Query()
		next.Status = string(constant.StatusResolved)
		next.Page = 2
		s.Update(next)
		assert.Equal(t, 1, s.Query().Page)
		assert.Equal(t, string(constant.StatusResolved), s.Query().Status)
	})

	t.Run("Stale Page Falls Back", func(t *testing.T) {
		s := NewState(reports)
		s.SetPage(3)
		s.SetSearch("crime")
		s.SetPage(3)
		result := s.Result()
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 1, s.Query().Page)
	})
}
