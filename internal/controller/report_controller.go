package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// ListReports godoc
// @Summary      Browse Reports
// @Description  Filter, sort and paginate all reports, six per page.
// @Tags         report
// @Produce      json
// @Param        search   query string false "Substring of title or description"
// @Param        category query string false "Category or all"
// @Param        status   query string false "Status or all"
// @Param        sort_by  query string false "date, likes, views or popularity"
// @Param        order    query string false "asc or desc"
// @Param        page     query int    false "Page number"
// @Param        toggle_sort   query string false "Select a sort key, flipping direction when already active"
// @Param        prev_search   query string false "Search of the previous view"
// @Param        prev_category query string false "Category of the previous view"
// @Param        prev_status   query string false "Status of the previous view"
// @Param        prev_sort_by  query string false "Sort key of the previous view"
// @Param        prev_order    query string false "Order of the previous view"
// @Success      200  {object}  helper.ResponseWithPage{data=model.ReportListResponse}
// @Failure      422  {object}  helper.ResponseError
// @Failure      502  {object}  helper.ResponseError
// @Router       /api/reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := model.ListReportsRequest{
		Search:     query.Get("search"),
		Category:   query.Get("category"),
		Status:     query.Get("status"),
		SortBy:     query.Get("sort_by"),
		Order:      query.Get("order"),
		ToggleSort: query.Get("toggle_sort"),
	}
	if query.Has("prev_search") || query.Has("prev_category") || query.Has("prev_status") ||
		query.Has("prev_sort_by") || query.Has("prev_order") {
		req.Previous = &model.ListFilters{
			Search:   query.Get("prev_search"),
			Category: query.Get("prev_category"),
			Status:   query.Get("prev_status"),
			SortBy:   query.Get("prev_sort_by"),
			Order:    query.Get("prev_order"),
		}
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError(""))
			return
		}
		req.Page = page
	}

	resp, meta, err := c.reportService.List(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPage(w, resp, meta)
}

// GetReport godoc
// @Summary      Report Detail
// @Description  Returns a report with its counts and share link, and records a view.
// @Tags         report
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportDetailResponse}
// @Failure      404  {object}  helper.ResponseError
// @Router       /api/reports/{id} [get]
func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())

	resp, err := c.reportService.Detail(r.Context(), chi.URLParam(r, "id"), sess)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// ToggleLike godoc
// @Summary      Like Or Unlike
// @Tags         report
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.LikeResponse}
// @Failure      401  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/reports/{id}/like [post]
func (c *ReportController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	resp, err := c.reportService.ToggleLike(r.Context(), chi.URLParam(r, "id"), sess.User.ID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// Home godoc
// @Summary      Home
// @Description  Landing page figures and the latest reports.
// @Tags         shell
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.HomeResponse}
// @Router       /api/home [get]
func (c *ReportController) Home(w http.ResponseWriter, r *http.Request) {
	resp, err := c.reportService.Home(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
