package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/upload"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxStagingSets = 10000

// UploadService keeps one staging set per signed-in user and feeds the shared upload queue.
// Sets idle for longer than the idle TTL are evicted and their local copies released.
type UploadService struct {
	limits   upload.Limits
	previews *upload.PreviewStore
	queue    *upload.Queue
	tempDir  string
	timeout  time.Duration

	mu   sync.Mutex
	sets *expirable.LRU[string, *upload.Set]
}

func NewUploadService(limits upload.Limits, previews *upload.PreviewStore, queue *upload.Queue, tempDir string, idleTTL time.Duration) *UploadService {
	return &UploadService{
		limits:   limits,
		previews: previews,
		queue:    queue,
		tempDir:  tempDir,
		timeout:  5 * time.Minute,
		sets: expirable.NewLRU[string, *upload.Set](maxStagingSets, func(ownerID string, set *upload.Set) {
			slog.Debug("Releasing staging set", "ownerID", ownerID)
			set.Release()
		}, idleTTL),
	}
}

// set returns the owner's staging set, creating it when missing. Each call
// pushes the set's idle deadline forward.
func (s *UploadService) set(ownerID string) *upload.Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets.Get(ownerID)
	if !ok {
		// An expired entry may linger until the next sweep; removing it fires the release.
		s.sets.Remove(ownerID)
		set = upload.NewSet(ownerID, s.limits, s.previews, s.tempDir)
	}
	s.sets.Add(ownerID, set)
	return set
}

func (s *UploadService) existing(ownerID string) (*upload.Set, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets.Get(ownerID)
	if ok {
		s.sets.Add(ownerID, set)
	}
	return set, ok
}

// Buffer copies one incoming file to local storage so the transport can move
// on to the next one. Reading stops one byte past the size limit.
func (s *UploadService) Buffer(name, contentType string, r io.Reader) upload.Candidate {
	c := upload.Candidate{Name: name, ContentType: contentType}
	src, err := upload.NewSource(s.tempDir, r, s.limits.MaxBytes())
	if err != nil {
		c.Err = err
		return c
	}
	c.Source = src
	c.Size = src.Size()
	return c
}

func (s *UploadService) Stage(ctx context.Context, ownerID string, candidates []upload.Candidate) (*model.StageResponse, error) {
	locale := helper.LocaleFromContext(ctx)
	if ownerID == "" {
		for _, c := range candidates {
			if c.Source != nil {
				c.Source.Release()
			}
		}
		return nil, helper.NewUnauthorizedError(helper.Message(locale, constant.MsgUploadLogin))
	}

	set := s.set(ownerID)
	result := set.Stage(candidates)

	resp := &model.StageResponse{
		Accepted:   s.toDTOs(locale, result.Accepted),
		Rejections: make([]model.Notice, 0, len(result.Rejections)),
		Files:      s.toDTOs(locale, set.Files()),
	}
	for _, r := range result.Rejections {
		slog.Warn("Staged file rejected", "name", r.Name, "error", r.Err)
		resp.Rejections = append(resp.Rejections, model.Notice{
			Variant: model.NoticeError,
			Title:   helper.Message(locale, constant.MsgFileErrorTitle),
			Message: s.fileErrorMessage(locale, r.Err),
		})
	}
	if result.LimitReached {
		notice := errorNotice(locale, constant.MsgMaxFilesTitle, constant.MsgMaxFilesReached, s.limits.MaxFiles)
		resp.Limit = &notice
	}
	return resp, nil
}

func (s *UploadService) fileErrorMessage(locale string, err error) string {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return helper.Message(locale, constant.MsgFileTooLarge, s.limits.MaxFileSizeMB)
	case errors.Is(err, upload.ErrTypeNotAllowed):
		return helper.Message(locale, constant.MsgFileTypeUnsupported)
	default:
		return helper.Message(locale, constant.MsgUploadFailed)
	}
}

func (s *UploadService) Files(ctx context.Context, ownerID string) []model.StagedFileDTO {
	set, ok := s.existing(ownerID)
	if !ok {
		return []model.StagedFileDTO{}
	}
	return s.toDTOs(helper.LocaleFromContext(ctx), set.Files())
}

func (s *UploadService) Remove(ctx context.Context, ownerID, fileID string) error {
	locale := helper.LocaleFromContext(ctx)
	set, ok := s.existing(ownerID)
	if !ok {
		return helper.NewNotFoundError(helper.Message(locale, constant.MsgUploadNotFound))
	}
	if err := set.Remove(fileID); err != nil {
		return helper.NewNotFoundError(helper.Message(locale, constant.MsgUploadNotFound))
	}
	return nil
}

// Release drops the owner's staging set along with its previews and local copies.
func (s *UploadService) Release(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets.Remove(ownerID)
}

// Staging reports how many owners currently hold a staging set.
func (s *UploadService) Staging() int {
	return s.sets.Len()
}

func (s *UploadService) UploadedURLs(ownerID string) []string {
	set, ok := s.existing(ownerID)
	if !ok {
		return nil
	}
	return set.UploadedURLs()
}

// Start uploads every pending staged file in order. Failed files are reported
// in the response and do not stop the batch. The upload outlives the request.
func (s *UploadService) Start(ctx context.Context, ownerID string) (*model.UploadResponse, error) {
	locale := helper.LocaleFromContext(ctx)
	if ownerID == "" {
		return nil, helper.NewUnauthorizedError(helper.Message(locale, constant.MsgUploadLogin))
	}

	set := s.set(ownerID)
	uploadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	urls, err := s.queue.Upload(uploadCtx, ownerID, set)
	if err != nil {
		slog.Error("Upload batch failed", "error", err, "ownerID", ownerID)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgUploadFailed))
	}

	files := s.toDTOs(locale, set.Files())
	failed := 0
	for _, f := range files {
		if f.State == model.UploadFailed {
			failed++
		}
	}

	resp := &model.UploadResponse{
		URLs:   urls,
		Files:  files,
		Failed: failed,
		Notice: successNotice(locale, constant.MsgUploadSuccessTitle, constant.MsgUploadSuccess, len(urls)),
	}
	if failed > 0 {
		resp.Kind = string(helper.KindPartialUpload)
		resp.Notice = errorNotice(locale, constant.MsgFileErrorTitle, constant.MsgUploadFailed)
	}
	return resp, nil
}

func (s *UploadService) Preview(ownerID, token string) (*os.File, string, error) {
	f, contentType, err := s.previews.Open(ownerID, token)
	if err != nil {
		return nil, "", helper.NewNotFoundError("")
	}
	return f, contentType, nil
}

// Statuses streams per-file progress for every owner.
func (s *UploadService) Statuses() (<-chan upload.Status, func()) {
	return s.queue.Subscribe()
}

func (s *UploadService) Close() {
	s.queue.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets.Purge()
}

func (s *UploadService) toDTOs(locale string, files []upload.File) []model.StagedFileDTO {
	dtos := make([]model.StagedFileDTO, 0, len(files))
	for _, f := range files {
		dto := model.StagedFileDTO{
			ID:          f.ID,
			Name:        f.Name,
			ContentType: f.ContentType,
			Size:        f.Size,
			State:       f.State,
			URL:         f.URL,
		}
		if f.PreviewToken != "" {
			dto.PreviewURL = "/api/uploads/previews/" + f.PreviewToken
		}
		if f.Err != nil {
			dto.Error = s.fileErrorMessage(locale, f.Err)
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
