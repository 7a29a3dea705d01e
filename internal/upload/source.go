package upload

import (
	"errors"
	"io"
	"os"
	"sync"
)

// Source is the local copy of a staged file, kept in a temp file until released.
type Source struct {
	mu       sync.Mutex
	path     string
	size     int64
	released bool
}

// NewSource copies at most maxBytes+1 bytes of r into a temp file so oversize
// bodies are detected without reading them fully.
func NewSource(dir string, r io.Reader, maxBytes int64) (*Source, error) {
	tmp, err := os.CreateTemp(dir, "balagh-upload-*")
	if err != nil {
		return nil, err
	}

	n, copyErr := io.Copy(tmp, io.LimitReader(r, maxBytes+1))
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	return &Source{path: tmp.Name(), size: n}, nil
}

func (s *Source) Size() int64 {
	return s.size
}

func (s *Source) Open() (*os.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil, os.ErrNotExist
	}
	return os.Open(s.path)
}

// Release removes the temp file. It is safe to call more than once.
func (s *Source) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	s.released = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
