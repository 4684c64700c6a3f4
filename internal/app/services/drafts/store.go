package drafts

import (
	"context"
	"fmt"
	"labdash-service/internal/app/contracts"
	"labdash-service/internal/app/models"
	"labdash-service/internal/pkg/constvars"
	"labdash-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// Load fetches a stored draft by id. A missing or unreadable entry is a
// not-found error; drafts expire on their own.
func Load(ctx context.Context, repository contracts.RedisRepository, draftID string) (*models.Draft, error) {
	raw, err := repository.Get(ctx, constvars.DraftKeyPrefix+draftID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrDraftNotFound(fmt.Errorf("draft %s not found", draftID))
	}
	var draft models.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, exceptions.ErrDraftNotFound(err)
	}
	return &draft, nil
}

func Store(ctx context.Context, repository contracts.RedisRepository, draft *models.Draft, ttl time.Duration) error {
	return repository.Set(ctx, constvars.DraftKeyPrefix+draft.ID, draft, ttl)
}

func Discard(ctx context.Context, repository contracts.RedisRepository, draftID string) error {
	return repository.Delete(ctx, constvars.DraftKeyPrefix+draftID)
}
