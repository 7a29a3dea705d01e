package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/service"
	"net/http"
)

type ShellController struct {
	shellService *service.ShellService
}

func NewShellController(shellService *service.ShellService) *ShellController {
	return &ShellController{
		shellService: shellService,
	}
}

// Shell godoc
// @Summary      Shell
// @Description  Navigation, emergency contacts, footer links and catalogs.
// @Tags         shell
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.ShellResponse}
// @Router       /api/shell [get]
func (c *ShellController) Shell(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())
	helper.WriteSuccess(w, c.shellService.Shell(sess))
}
