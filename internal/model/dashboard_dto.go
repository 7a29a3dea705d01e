package model

type DashboardStats struct {
	TotalReports    int  `json:"total_reports"`
	PendingReports  int  `json:"pending_reports"`
	ResolvedReports int  `json:"resolved_reports"`
	TotalViews      int  `json:"total_views"`
	TotalLikes      int  `json:"total_likes"`
	UserReports     *int `json:"user_reports,omitempty"`
}

type DashboardData struct {
	Stats         DashboardStats `json:"stats"`
	RecentReports []Report       `json:"recent_reports"`
}
