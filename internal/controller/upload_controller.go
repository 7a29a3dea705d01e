package controller

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/service"
	"BalaghAPI/internal/upload"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const uploadFormField = "files"

type UploadController struct {
	uploadService *service.UploadService
	maxFiles      int
	maxBodyBytes  int64
}

func NewUploadController(uploadService *service.UploadService, limits upload.Limits) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		maxFiles:      limits.MaxFiles,
		maxBodyBytes:  int64(limits.MaxFiles+1) * (limits.MaxBytes() + 1),
	}
}

// StageFiles godoc
// @Summary      Stage Files
// @Description  Adds files to the caller's staging area. Invalid files are rejected one by one.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        files formData file true "Images or videos"
// @Success      200  {object}  helper.ResponseSuccess{data=model.StageResponse}
// @Failure      401  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/uploads [post]
func (c *UploadController) StageFiles(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, c.maxBodyBytes)
	reader, err := r.MultipartReader()
	if err != nil {
		slog.Warn("Error reading multipart form", "error", err)
		locale := helper.LocaleFromContext(r.Context())
		helper.WriteError(w, helper.NewBadRequestError(helper.Message(locale, constant.MsgFieldInvalid)))
		return
	}

	candidates := c.readCandidates(reader)
	resp, err := c.uploadService.Stage(r.Context(), sess.User.ID, candidates)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// readCandidates buffers file parts one at a time. An oversized part is cut one
// byte past the limit so it is rejected on its own. Reading stops after
// maxFiles parts; a further file part is passed on as a limit marker.
func (c *UploadController) readCandidates(reader *multipart.Reader) []upload.Candidate {
	candidates := make([]upload.Candidate, 0, c.maxFiles)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return candidates
		}
		if err != nil {
			slog.Warn("Stopped reading upload parts", "error", err, "read", len(candidates))
			return candidates
		}
		if part.FormName() != uploadFormField || part.FileName() == "" {
			part.Close()
			continue
		}

		if len(candidates) >= c.maxFiles {
			candidates = append(candidates, upload.Candidate{Name: part.FileName(), Err: upload.ErrLimitReached})
			part.Close()
			return candidates
		}

		candidate := c.uploadService.Buffer(part.FileName(), part.Header.Get("Content-Type"), part)
		part.Close()
		candidates = append(candidates, candidate)
		if candidate.Err != nil {
			slog.Warn("Error reading upload part", "error", candidate.Err, "name", candidate.Name)
			return candidates
		}
	}
}

// ListFiles godoc
// @Summary      Staged Files
// @Tags         upload
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.StagedFileDTO}
// @Security     BearerAuth
// @Router       /api/uploads [get]
func (c *UploadController) ListFiles(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	helper.WriteSuccess(w, c.uploadService.Files(r.Context(), sess.User.ID))
}

// RemoveFile godoc
// @Summary      Remove Staged File
// @Tags         upload
// @Param        id path string true "File ID"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      404  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/uploads/{id} [delete]
func (c *UploadController) RemoveFile(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	if err := c.uploadService.Remove(r.Context(), sess.User.ID, chi.URLParam(r, "id")); err != nil {
		helper.WriteError(w, err)
		return
	}
	helper.WriteSuccess(w, nil)
}

// ClearFiles godoc
// @Summary      Clear Staging Area
// @Tags         upload
// @Success      200  {object}  helper.ResponseSuccess
// @Security     BearerAuth
// @Router       /api/uploads [delete]
func (c *UploadController) ClearFiles(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}
	c.uploadService.Release(sess.User.ID)
	helper.WriteSuccess(w, nil)
}

// StartUpload godoc
// @Summary      Upload Staged Files
// @Description  Uploads pending files in order. Responds 207 when some files failed.
// @Tags         upload
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.UploadResponse}
// @Success      207  {object}  helper.ResponseSuccess{data=model.UploadResponse}
// @Failure      401  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/uploads/start [post]
func (c *UploadController) StartUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	resp, err := c.uploadService.Start(r.Context(), sess.User.ID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	if resp.Failed > 0 {
		helper.WriteJSON(w, http.StatusMultiStatus, helper.ResponseSuccess{Data: resp})
		return
	}
	helper.WriteSuccess(w, resp)
}

// Preview godoc
// @Summary      Staged Image Preview
// @Tags         upload
// @Param        token path string true "Preview token"
// @Success      200
// @Failure      404  {object}  helper.ResponseError
// @Security     BearerAuth
// @Router       /api/uploads/previews/{token} [get]
func (c *UploadController) Preview(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrUnauthorized(w, r)
	if !ok {
		return
	}

	file, contentType, err := c.uploadService.Preview(sess.User.ID, chi.URLParam(r, "token"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		helper.WriteError(w, helper.NewNotFoundError(""))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, no-store")
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
