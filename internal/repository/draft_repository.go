package repository

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/submission"
	"context"
	"encoding/json"
	"fmt"
)

const draftScanBatch = 100

// DraftRepository keeps one draft per owner until it is submitted or discarded.
// Keys carry no expiry.
type DraftRepository struct {
	redisAdapter *adapter.RedisAdapter
}

func NewDraftRepository(redisAdapter *adapter.RedisAdapter) *DraftRepository {
	return &DraftRepository{
		redisAdapter: redisAdapter,
	}
}

func draftKey(ownerKey string) string {
	return constant.DraftKeyPrefix + ownerKey
}

// Load returns the stored draft, or a fresh one when nothing is stored.
func (r *DraftRepository) Load(ctx context.Context, ownerKey string) (submission.Draft, error) {
	raw, err := r.redisAdapter.Get(ctx, draftKey(ownerKey))
	if adapter.IsNil(err) {
		return submission.NewDraft(), nil
	}
	if err != nil {
		return submission.Draft{}, err
	}

	var draft submission.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return submission.NewDraft(), nil
	}
	if !draft.Step.Valid() {
		draft.Step = submission.StepDetails
	}
	if draft.Media.URLs == nil {
		draft.Media.URLs = []string{}
	}
	return draft, nil
}

func (r *DraftRepository) Save(ctx context.Context, ownerKey string, draft submission.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return r.redisAdapter.Set(ctx, draftKey(ownerKey), payload, 0)
}

func (r *DraftRepository) Delete(ctx context.Context, ownerKey string) error {
	return r.redisAdapter.Del(ctx, draftKey(ownerKey))
}

// ReferencedMediaURLs returns the media URLs held by every stored draft.
func (r *DraftRepository) ReferencedMediaURLs(ctx context.Context) (map[string]struct{}, error) {
	urls := make(map[string]struct{})
	iter := r.redisAdapter.Client().Scan(ctx, 0, constant.DraftKeyPrefix+"*", draftScanBatch).Iterator()
	for iter.Next(ctx) {
		raw, err := r.redisAdapter.Get(ctx, iter.Val())
		if adapter.IsNil(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var draft submission.Draft
		if err := json.Unmarshal([]byte(raw), &draft); err != nil {
			continue
		}
		for _, u := range draft.Media.URLs {
			urls[u] = struct{}{}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan drafts: %w", err)
	}
	return urls, nil
}
