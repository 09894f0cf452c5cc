package usecase

import (
	"context"
	"errors"

	"vidtube/pkg/apperr"
	"vidtube/services/api/internal/entity"
)

type owned interface {
	Owner() entity.UserID
}

// ownedResource describes how to load and store one kind of owned record.
type ownedResource[T owned] struct {
	kind   string // lower-case noun used in messages, e.g. "tweet"
	plural string
	get    func(ctx context.Context, id string) (T, error)
}

// load resolves id and checks that actor owns the record. verb names the
// attempted action in the Forbidden message.
func (r ownedResource[T]) load(ctx context.Context, id string, actor entity.UserID, verb string) (T, error) {
	var zero T
	id, err := validateID(r.kind, id)
	if err != nil {
		return zero, err
	}

	res, err := r.get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return zero, apperr.NotFound("%s not found", capitalize(r.kind))
		}
		return zero, apperr.Internal(err, "failed to fetch "+r.kind)
	}

	if !res.Owner().Equal(actor) {
		return zero, apperr.Forbidden("You can only %s your own %s", verb, r.plural)
	}
	return res, nil
}

// mutate is the ownership gate shared by every owned resource: load, authorize,
// apply the in-memory patch, then persist with a version check. A nil apply
// persists the record unchanged, which is how deletes go through.
func (r ownedResource[T]) mutate(
	ctx context.Context,
	id string,
	actor entity.UserID,
	verb string,
	apply func(T) error,
	persist func(context.Context, T) error,
) (T, error) {
	var zero T

	res, err := r.load(ctx, id, actor, verb)
	if err != nil {
		return zero, err
	}

	if apply != nil {
		if err := apply(res); err != nil {
			return zero, err
		}
	}

	if err := persist(ctx, res); err != nil {
		return zero, r.persistError(err)
	}
	return res, nil
}

func (r ownedResource[T]) persistError(err error) error {
	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, entity.ErrStaleVersion):
		return apperr.Conflict("%s was modified concurrently, please retry", capitalize(r.kind))
	case errors.Is(err, entity.ErrDuplicate):
		return apperr.Conflict("%s already exists", capitalize(r.kind))
	case errors.Is(err, entity.ErrNotFound):
		return apperr.NotFound("%s not found", capitalize(r.kind))
	default:
		return apperr.Internal(err, "failed to save "+r.kind)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
