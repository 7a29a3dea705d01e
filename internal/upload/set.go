package upload

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/model"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Candidate is one file offered for staging. A candidate read ahead of time
// carries its Source and Body is ignored. Err marks a file the transport could
// not deliver; ErrLimitReached there means the file was never read.
type Candidate struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	Source      *Source
	Err         error
}

// File is a snapshot of a staged file.
type File struct {
	ID           string
	Name         string
	ContentType  string
	Size         int64
	State        model.UploadState
	URL          string
	Err          error
	PreviewToken string
}

type Rejection struct {
	Name string
	Err  error
}

type StageResult struct {
	Accepted     []File
	Rejections   []Rejection
	LimitReached bool
}

type stagedFile struct {
	File
	source *Source
}

// Set is one owner's staging area. Files keep their staging order.
type Set struct {
	mu       sync.Mutex
	ownerID  string
	limits   Limits
	previews *PreviewStore
	tempDir  string
	files    []*stagedFile
}

func NewSet(ownerID string, limits Limits, previews *PreviewStore, tempDir string) *Set {
	return &Set{
		ownerID:  ownerID,
		limits:   limits,
		previews: previews,
		tempDir:  tempDir,
	}
}

func (s *Set) OwnerID() string {
	return s.ownerID
}

func (s *Set) Limits() Limits {
	return s.limits
}

// Stage validates every candidate independently. Invalid files are rejected one
// by one; once the count ceiling is hit the remaining files are dropped and
// LimitReached is set once.
func (s *Set) Stage(candidates []Candidate) StageResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := StageResult{
		Accepted:   make([]File, 0, len(candidates)),
		Rejections: make([]Rejection, 0),
	}

	for _, c := range candidates {
		if len(s.files) >= s.limits.MaxFiles || errors.Is(c.Err, ErrLimitReached) {
			releaseCandidate(c)
			result.LimitReached = true
			metrics.UploadRejections.WithLabelValues("limit").Inc()
			continue
		}
		if c.Err != nil {
			releaseCandidate(c)
			result.Rejections = append(result.Rejections, Rejection{Name: c.Name, Err: c.Err})
			metrics.UploadRejections.WithLabelValues(rejectionReason(c.Err)).Inc()
			continue
		}

		staged, err := s.stage(c)
		if err != nil {
			result.Rejections = append(result.Rejections, Rejection{Name: c.Name, Err: err})
			metrics.UploadRejections.WithLabelValues(rejectionReason(err)).Inc()
			continue
		}

		s.files = append(s.files, staged)
		result.Accepted = append(result.Accepted, staged.File)
	}
	return result
}

func (s *Set) stage(c Candidate) (*stagedFile, error) {
	if c.Size > s.limits.MaxBytes() {
		releaseCandidate(c)
		return nil, ErrFileTooLarge
	}

	src := c.Source
	if src == nil {
		var err error
		if src, err = NewSource(s.tempDir, c.Body, s.limits.MaxBytes()); err != nil {
			return nil, err
		}
	}

	contentType, err := s.resolveContentType(src, c)
	if err == nil {
		err = s.limits.Check(contentType, src.Size())
	}
	if err != nil {
		if releaseErr := src.Release(); releaseErr != nil {
			slog.Warn("Failed to release rejected upload source", "error", releaseErr)
		}
		return nil, err
	}

	staged := &stagedFile{
		File: File{
			ID:          uuid.NewString(),
			Name:        c.Name,
			ContentType: contentType,
			Size:        src.Size(),
			State:       model.UploadNotStarted,
		},
		source: src,
	}
	if strings.HasPrefix(contentType, "image/") && s.previews != nil {
		staged.PreviewToken = s.previews.Register(s.ownerID, src, contentType)
	}
	return staged, nil
}

func releaseCandidate(c Candidate) {
	if c.Source == nil {
		return
	}
	if err := c.Source.Release(); err != nil {
		slog.Warn("Failed to release candidate source", "error", err, "name", c.Name)
	}
}

func (s *Set) resolveContentType(src *Source, c Candidate) (string, error) {
	f, err := src.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	sniffed, err := helper.DetectFileContentType(f)
	if err != nil {
		return helper.ResolveContentType("", c.ContentType, c.Name), nil
	}
	return helper.ResolveContentType(sniffed, c.ContentType, c.Name), nil
}

func rejectionReason(err error) string {
	switch err {
	case ErrFileTooLarge:
		return "size"
	case ErrTypeNotAllowed:
		return "type"
	default:
		return "io"
	}
}

// Remove drops a staged file and releases its preview and local copy.
func (s *Set) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.files {
		if f.ID != id {
			continue
		}
		s.release(f)
		s.files = append(s.files[:i], s.files[i+1:]...)
		return nil
	}
	return ErrFileNotFound
}

// Release drops every staged file.
func (s *Set) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		s.release(f)
	}
	s.files = nil
}

func (s *Set) release(f *stagedFile) {
	if s.previews != nil {
		s.previews.Release(f.PreviewToken)
	}
	if err := f.source.Release(); err != nil {
		slog.Warn("Failed to release upload source", "error", err, "fileID", f.ID)
	}
}

func (s *Set) Files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]File, len(s.files))
	for i, f := range s.files {
		files[i] = f.File
	}
	return files
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// UploadedURLs returns the URLs of uploaded files in staging order.
func (s *Set) UploadedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.files))
	for _, f := range s.files {
		if f.State == model.UploadUploaded && f.URL != "" {
			urls = append(urls, f.URL)
		}
	}
	return urls
}

func (s *Set) source(id string) (*Source, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.ID == id {
			return f.source, true
		}
	}
	return nil, false
}

func (s *Set) update(id string, state model.UploadState, url string, err error) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.ID == id {
			f.State = state
			f.URL = url
			f.Err = err
			return f.File, true
		}
	}
	return File{}, false
}
