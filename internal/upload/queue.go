package upload

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/model"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Storage is the object store the queue writes to.
type Storage interface {
	Upload(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error
	PublicURL(key string) string
}

// Status reports a file's progress. Index is the file's position in its set.
type Status struct {
	OwnerID string            `json:"owner_id"`
	FileID  string            `json:"file_id"`
	Name    string            `json:"name"`
	Index   int               `json:"index"`
	Total   int               `json:"total"`
	State   model.UploadState `json:"state"`
	URL     string            `json:"url,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type task struct {
	ctx     context.Context
	ownerID string
	set     *Set
	result  chan []string
}

// Queue uploads staged files one at a time on a single worker goroutine.
type Queue struct {
	storage Storage
	prefix  string
	limits  Limits
	now     func() time.Time

	tasks chan task
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once

	mu     sync.RWMutex
	subs   map[uint64]chan Status
	nextID uint64
}

func NewQueue(storage Storage, prefix string, limits Limits) *Queue {
	q := &Queue{
		storage: storage,
		prefix:  prefix,
		limits:  limits,
		now:     time.Now,
		tasks:   make(chan task),
		done:    make(chan struct{}),
		subs:    make(map[uint64]chan Status),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

// Subscribe returns a buffered status channel. Slow readers miss updates
// rather than stall the worker.
func (q *Queue) Subscribe() (<-chan Status, func()) {
	ch := make(chan Status, 64)

	q.mu.Lock()
	id := q.nextID
	q.nextID++
	q.subs[id] = ch
	q.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			q.mu.Lock()
			if _, ok := q.subs[id]; ok {
				delete(q.subs, id)
				close(ch)
			}
			q.mu.Unlock()
		})
	}
}

func (q *Queue) publish(status Status) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, ch := range q.subs {
		select {
		case ch <- status:
		default:
			slog.Debug("Dropping upload status for slow subscriber", "fileID", status.FileID)
		}
	}
}

// Upload uploads every pending file of set and returns the URLs of all uploaded
// files, reused ones included, in staging order.
func (q *Queue) Upload(ctx context.Context, ownerID string, set *Set) ([]string, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	t := task{ctx: ctx, ownerID: ownerID, set: set, result: make(chan []string, 1)}
	select {
	case q.tasks <- t:
	case <-q.done:
		return nil, ErrQueueClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case urls := <-t.result:
		return urls, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *Queue) run() {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			return
		case t := <-q.tasks:
			t.result <- q.process(t)
		}
	}
}

func (q *Queue) process(t task) []string {
	files := t.set.Files()
	urls := make([]string, 0, len(files))

	for i, f := range files {
		if f.State == model.UploadUploaded && f.URL != "" {
			urls = append(urls, f.URL)
			continue
		}

		select {
		case <-q.done:
			return urls
		default:
		}

		status := Status{OwnerID: t.ownerID, FileID: f.ID, Name: f.Name, Index: i, Total: len(files)}

		if err := q.limits.Check(f.ContentType, f.Size); err != nil {
			q.fail(t, status, err)
			continue
		}

		t.set.update(f.ID, model.UploadUploading, "", nil)
		status.State = model.UploadUploading
		q.publish(status)

		url, err := q.uploadOne(t, f)
		if err != nil {
			q.fail(t, status, err)
			continue
		}

		t.set.update(f.ID, model.UploadUploaded, url, nil)
		status.State = model.UploadUploaded
		status.URL = url
		q.publish(status)
		metrics.UploadsTotal.WithLabelValues("uploaded").Inc()
		urls = append(urls, url)
	}
	return urls
}

func (q *Queue) uploadOne(t task, f File) (string, error) {
	src, ok := t.set.source(f.ID)
	if !ok {
		return "", ErrFileNotFound
	}
	body, err := src.Open()
	if err != nil {
		return "", err
	}
	defer body.Close()

	key := helper.GenerateObjectKey(q.prefix, t.ownerID, f.Name, q.now())
	err = q.storage.Upload(t.ctx, key, body, f.Size, f.ContentType)
	if errors.Is(err, adapter.ErrObjectExists) {
		key = helper.GenerateObjectKey(q.prefix, t.ownerID, f.Name, q.now())
		err = q.storage.Upload(t.ctx, key, body, f.Size, f.ContentType)
	}
	if err != nil {
		return "", err
	}
	return q.storage.PublicURL(key), nil
}

func (q *Queue) fail(t task, status Status, err error) {
	slog.Warn("Upload failed", "error", err, "fileID", status.FileID, "ownerID", t.ownerID)
	t.set.update(status.FileID, model.UploadFailed, "", err)
	status.State = model.UploadFailed
	status.Error = err.Error()
	q.publish(status)
	metrics.UploadsTotal.WithLabelValues("failed").Inc()
}

// Close stops the worker and closes every subscriber channel.
func (q *Queue) Close() {
	q.once.Do(func() {
		close(q.done)
		q.wg.Wait()

		q.mu.Lock()
		for id, ch := range q.subs {
			close(ch)
			delete(q.subs, id)
		}
		q.mu.Unlock()
	})
}
