package browse

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
	"sort"
	"strings"
)

const FilterAll = "all"

type SortKey string

const (
	SortDate       SortKey = "date"
	SortLikes      SortKey = "likes"
	SortViews      SortKey = "views"
	SortPopularity SortKey = "popularity"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Query struct {
	Search   string
	Category string
	Status   string
	SortBy   SortKey
	Order    Order
	Page     int
}

func DefaultQuery() Query {
	return Query{
		Category: FilterAll,
		Status:   FilterAll,
		SortBy:   SortDate,
		Order:    OrderDesc,
		Page:     1,
	}
}

// FromRequest fills unset request fields with defaults.
func FromRequest(req model.ListReportsRequest) Query {
	q := FromFilters(model.ListFilters{
		Search:   req.Search,
		Category: req.Category,
		Status:   req.Status,
		SortBy:   req.SortBy,
		Order:    req.Order,
	})
	if req.Page > 0 {
		q.Page = req.Page
	}
	return q
}

func FromFilters(f model.ListFilters) Query {
	q := DefaultQuery()
	q.Search = f.Search
	if f.Category != "" {
		q.Category = f.Category
	}
	if f.Status != "" {
		q.Status = f.Status
	}
	if f.SortBy != "" {
		q.SortBy = SortKey(f.SortBy)
	}
	if f.Order != "" {
		q.Order = Order(f.Order)
	}
	return q
}

type Result struct {
	Items      []model.Report
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Empty      bool
}

// Apply filters, sorts and paginates reports without modifying them.
// A page past the end falls back to page 1.
func Apply(reports []model.Report, q Query) Result {
	filtered := Filter(reports, q)
	Sort(filtered, q.SortBy, q.Order)

	pageSize := constant.ReportsPerPage
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	items := make([]model.Report, 0, end-start)
	if start < end {
		items = append(items, filtered[start:end]...)
	}

	return Result{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		Empty:      total == 0,
	}
}

func Filter(reports []model.Report, q Query) []model.Report {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		if !matchesFilter(q.Category, string(r.Category)) || !matchesFilter(q.Status, string(r.Status)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Title), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesFilter(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Sort orders reports in place. Ties keep their input order.
func Sort(reports []model.Report, key SortKey, order Order) {
	less := func(a, b model.Report) bool {
		switch key {
		case SortLikes:
			return a.Likes < b.Likes
		case SortViews:
			return a.Views < b.Views
		case SortPopularity:
			return a.Popularity() < b.Popularity()
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if order == OrderAsc {
			return less(reports[i], reports[j])
		}
		return less(reports[j], reports[i])
	})
}
