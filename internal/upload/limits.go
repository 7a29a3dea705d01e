package upload

import (
	"BalaghAPI/internal/helper"
	"errors"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrTypeNotAllowed  = errors.New("file type is not accepted")
	ErrLimitReached    = errors.New("maximum number of files reached")
	ErrUnauthorized    = errors.New("uploader identity required")
	ErrFileNotFound    = errors.New("staged file not found")
	ErrQueueClosed     = errors.New("upload queue closed")
	ErrPreviewNotFound = errors.New("preview not found")
)

type Limits struct {
	MaxFiles      int
	MaxFileSizeMB int
	AcceptedTypes []string
}

func DefaultLimits() Limits {
	return Limits{
		MaxFiles:      5,
		MaxFileSizeMB: 10,
		AcceptedTypes: []string{"image/*", "video/*"},
	}
}

func (l Limits) MaxBytes() int64 {
	return int64(l.MaxFileSizeMB) * 1024 * 1024
}

// Check reports why a single file may not be staged, or nil.
func (l Limits) Check(contentType string, size int64) error {
	if size > l.MaxBytes() {
		return ErrFileTooLarge
	}
	if !helper.MatchContentType(l.AcceptedTypes, contentType) {
		return ErrTypeNotAllowed
	}
	return nil
}
