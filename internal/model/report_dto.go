package model

import (
	"BalaghAPI/internal/constant"
	"time"
)

type Report struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    constant.Category `json:"category"`
	Location    string            `json:"location"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	Region      *string           `json:"region,omitempty"`
	Priority    constant.Priority `json:"priority"`
	IsAnonymous bool              `json:"is_anonymous"`
	UserID      *string           `json:"user_id,omitempty"`
	Status      constant.Status   `json:"status"`
	MediaURLs   []string          `json:"media_urls"`
	CreatedAt   time.Time         `json:"created_at"`
	Views       int               `json:"views"`
	Likes       int               `json:"likes"`
}

func (r Report) Popularity() int {
	return r.Likes + r.Views
}

type CreateReportDTO struct {
	Title       string
	Description string
	Category    constant.Category
	Location    string
	Latitude    *float64
	Longitude   *float64
	Region      *string
	Priority    constant.Priority
	IsAnonymous bool
	UserID      *string
	MediaURLs   []string
}

type ReportDetailResponse struct {
	Report    Report `json:"report"`
	ShareURL  string `json:"share_url"`
	LikedByMe bool   `json:"liked_by_me"`
}

type LikeResponse struct {
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
	Notice Notice `json:"notice"`
}

type ListReportsRequest struct {
	Search     string       `json:"search" validate:"max=200"`
	Category   string       `json:"category" validate:"omitempty,category_filter"`
	Status     string       `json:"status" validate:"omitempty,status_filter"`
	SortBy     string       `json:"sort_by" validate:"omitempty,oneof=date likes views popularity"`
	Order      string       `json:"order" validate:"omitempty,oneof=asc desc"`
	Page       int          `json:"page" validate:"min=0"`
	ToggleSort string       `json:"toggle_sort" validate:"omitempty,oneof=date likes views popularity"`
	Previous   *ListFilters `json:"previous,omitempty"`
}

// ListFilters is the view a client was on before this request. Page is kept
// only when the new request repeats it unchanged.
type ListFilters struct {
	Search   string `json:"search" validate:"max=200"`
	Category string `json:"category" validate:"omitempty,category_filter"`
	Status   string `json:"status" validate:"omitempty,status_filter"`
	SortBy   string `json:"sort_by" validate:"omitempty,oneof=date likes views popularity"`
	Order    string `json:"order" validate:"omitempty,oneof=asc desc"`
}

type ReportListResponse struct {
	Reports []Report `json:"reports"`
	Empty   bool     `json:"empty"`
	Message string   `json:"message,omitempty"`
}
