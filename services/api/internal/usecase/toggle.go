package usecase

import (
	"context"
	"errors"

	"vidtube/pkg/apperr"
	"vidtube/services/api/internal/entity"
)

// relationStore holds a presence-only relation keyed by K.
type relationStore[K any] interface {
	Exists(ctx context.Context, key K) (bool, error)
	Create(ctx context.Context, key K) error
	Delete(ctx context.Context, key K) error
}

// toggleRelation flips the relation for key and reports whether it is now present.
// Two racing creates are settled by the store's unique index; the loser gets Conflict.
func toggleRelation[K any](ctx context.Context, store relationStore[K], key K, noun string) (bool, error) {
	exists, err := store.Exists(ctx, key)
	if err != nil {
		return false, apperr.Internal(err, "failed to check "+noun)
	}

	if exists {
		if err := store.Delete(ctx, key); err != nil {
			return false, apperr.Internal(err, "failed to remove "+noun)
		}
		return false, nil
	}

	if err := store.Create(ctx, key); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return false, apperr.Conflict("%s was changed by a concurrent request, please retry", capitalize(noun))
		}
		return false, apperr.Internal(err, "failed to create "+noun)
	}
	return true, nil
}
