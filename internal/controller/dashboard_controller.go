package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/service"
	"net/http"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary      Dashboard
// @Description  Aggregate statistics and the five most recent reports. Live updates are pushed over /ws.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.DashboardData}
// @Failure      502  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/dashboard [get]
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	data, err := c.dashboardService.Load(r.Context(), sess.User.ID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, data)
}
