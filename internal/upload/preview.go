package upload

import (
	"os"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

type previewEntry struct {
	ownerID     string
	contentType string
	source      *Source
}

// PreviewStore maps opaque tokens to staged image sources. It is bounded; the
// oldest previews are dropped first, but the source itself stays with its Set.
type PreviewStore struct {
	cache *lru.Cache[string, previewEntry]
}

func NewPreviewStore(size int) (*PreviewStore, error) {
	if size <= 0 {
		size = 512
	}
	cache, err := lru.New[string, previewEntry](size)
	if err != nil {
		return nil, err
	}
	return &PreviewStore{cache: cache}, nil
}

func (p *PreviewStore) Register(ownerID string, src *Source, contentType string) string {
	token := uuid.NewString()
	p.cache.Add(token, previewEntry{ownerID: ownerID, contentType: contentType, source: src})
	return token
}

// Open returns the preview file for its owner only.
func (p *PreviewStore) Open(ownerID, token string) (*os.File, string, error) {
	entry, ok := p.cache.Get(token)
	if !ok || entry.ownerID != ownerID {
		return nil, "", ErrPreviewNotFound
	}
	f, err := entry.source.Open()
	if err != nil {
		return nil, "", ErrPreviewNotFound
	}
	return f, entry.contentType, nil
}

func (p *PreviewStore) Release(token string) {
	if token != "" {
		p.cache.Remove(token)
	}
}

func (p *PreviewStore) Len() int {
	return p.cache.Len()
}
