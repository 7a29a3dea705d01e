package browse

import "BalaghAPI/internal/model"

// State is a browsing session over a fixed collection. Every parameter change,
// sort included, returns to the first page.
type State struct {
	reports []model.Report
	query   Query
}

func NewState(reports []model.Report) *State {
	return &State{reports: reports, query: DefaultQuery()}
}

// Resume starts a session already positioned at q.
func Resume(reports []model.Report, q Query) *State {
	return &State{reports: reports, query: q}
}

func (s *State) Query() Query {
	return s.query
}

func (s *State) SetSearch(search string) {
	s.query.Search = search
	s.query.Page = 1
}

func (s *State) SetCategory(category string) {
	s.query.Category = category
	s.query.Page = 1
}

func (s *State) SetStatus(status string) {
	s.query.Status = status
	s.query.Page = 1
}

func (s *State) SetSort(key SortKey) {
	s.query.SortBy = key
	s.query.Page = 1
}

func (s *State) SetOrder(order Order) {
	s.query.Order = order
	s.query.Page = 1
}

// Update moves the session to next through the setters. Any changed parameter
// returns to the first page; next.Page applies only when nothing else changed.
func (s *State) Update(next Query) {
	current := s.query
	if next.Search != current.Search {
		s.SetSearch(next.Search)
	}
	if next.Category != current.Category {
		s.SetCategory(next.Category)
	}
	if next.Status != current.Status {
		s.SetStatus(next.Status)
	}
	if next.SortBy != current.SortBy {
		s.SetSort(next.SortBy)
	}
	if next.Order != current.Order {
		s.SetOrder(next.Order)
	}
	if s.query == current {
		s.SetPage(next.Page)
	}
}

// ToggleSort selects key, flipping the direction when key is already active.
func (s *State) ToggleSort(key SortKey) {
	if s.query.SortBy == key {
		if s.query.Order == OrderDesc {
			s.query.Order = OrderAsc
		} else {
			s.query.Order = OrderDesc
		}
	} else {
		s.query.SortBy = key
		s.query.Order = OrderDesc
	}
	s.query.Page = 1
}

func (s *State) SetPage(page int) {
	s.query.Page = page
}

func (s *State) Result() Result {
	result := Apply(s.reports, s.query)
	s.query.Page = result.Page
	return result
}
