package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/service"
	"BalaghAPI/internal/submission"
	"net/http"
)

type SubmissionController struct {
	submissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

func sessionOrUnauthorized(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return nil, false
	}
	return sess, true
}

func writeDraft(w http.ResponseWriter, draft *submission.Draft, err error) {
	if err != nil {
		helper.WriteError(w, err)
		return
	}
	helper.WriteSuccess(w, draft)
}

// GetDraft godoc
// @Summary      Current Draft
// @Description  Restores the wizard state, or a fresh draft at step 1.
// @Tags         submission
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=submission.Draft}
// @Security     BearerAuth
// @Router       /api/submission/draft [get]
func (c *SubmissionController) GetDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	draft, err := c.submissionService.GetDraft(r.Context(), sess.User.ID)
	writeDraft(w, draft, err)
}

// UpdateDraft godoc
// @Summary      Update Draft
// @Description  Overwrites the record of the current step.
// @Tags         submission
// @Accept       json
// @Produce      json
// @Param        request body submission.Patch true "Step record"
// @Success      200  {object}  helper.ResponseSuccess{data=submission.Draft}
// @Failure      422  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/submission/draft [put]
func (c *SubmissionController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	var patch submission.Patch
	if !decodeJSON(w, r, &patch) {
		return
	}
	draft, err := c.submissionService.UpdateDraft(r.Context(), sess.User.ID, patch)
	writeDraft(w, draft, err)
}

// DiscardDraft godoc
// @Summary      Discard Draft
// @Tags         submission
// @Success      200  {object}  helper.ResponseSuccess
// @Security     BearerAuth
// @Router       /api/submission/draft [delete]
func (c *SubmissionController) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := c.submissionService.Discard(r.Context(), sess.User.ID); err != nil {
		helper.WriteError(w, err)
		return
	}
	helper.WriteSuccess(w, nil)
}

// Next godoc
// @Summary      Next Step
// @Tags         submission
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=submission.Draft}
// @Failure      422  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/submission/next [post]
func (c *SubmissionController) Next(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	draft, err := c.submissionService.Next(r.Context(), sess.User.ID)
	writeDraft(w, draft, err)
}

// Previous godoc
// @Summary      Previous Step
// @Tags         submission
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=submission.Draft}
// @Security     BearerAuth
// @Router       /api/submission/previous [post]
func (c *SubmissionController) Previous(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	draft, err := c.submissionService.Previous(r.Context(), sess.User.ID)
	writeDraft(w, draft, err)
}

// Locate godoc
// @Summary      Use Device Location
// @Tags         submission
// @Accept       json
// @Produce      json
// @Param        request body model.LocateRequest true "Coordinates"
// @Success      200  {object}  helper.ResponseSuccess{data=submission.Draft}
// @Failure      422  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/submission/locate [post]
func (c *SubmissionController) Locate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req model.LocateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	draft, err := c.submissionService.Locate(r.Context(), sess.User.ID, req)
	writeDraft(w, draft, err)
}

// Submit godoc
// @Summary      Submit Report
// @Description  Inserts the reviewed draft once and clears it.
// @Tags         submission
// @Produce      json
// @Success      201  {object}  helper.ResponseSuccess{data=model.SubmitResponse}
// @Failure      422  {object}  helper.ResponseError
// @Failure      502  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/submission/submit [post]
func (c *SubmissionController) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	resp, err := c.submissionService.Submit(r.Context(), sess.User.ID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}
	helper.WriteCreated(w, resp)
}
