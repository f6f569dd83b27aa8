package storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	apperrors "restaurant-admin/internal/errors"
	"restaurant-admin/internal/models"
)

// AttachFunc stores an uploaded logo for the given DID and returns its key
// together with a func that removes it again
type AttachFunc func(ctx context.Context, did int64) (key string, discard func(), err error)

// Resolver binds uploaded logos to customers by DID
type Resolver struct {
	store LogoStore
}

func NewResolver(store LogoStore) *Resolver {
	return &Resolver{store: store}
}

// Attacher returns nil when nothing was uploaded. Otherwise the returned func
// stores the upload as {did}.jpg whatever its original name, reporting failures
// as FileWriteFailure.
func (r *Resolver) Attacher(fh *multipart.FileHeader) AttachFunc {
	if fh == nil {
		return nil
	}

	return func(ctx context.Context, did int64) (string, func(), error) {
		key := models.LogoKeyFor(did)

		src, err := fh.Open()
		if err != nil {
			return "", nil, apperrors.New(apperrors.FileWriteFailure,
				apperrors.WithCause(fmt.Errorf("open upload %s: %w", fh.Filename, err)),
			)
		}
		defer src.Close()

		if err := r.store.Write(ctx, key, src); err != nil {
			return "", nil, apperrors.New(apperrors.FileWriteFailure, apperrors.WithCause(err))
		}

		return key, r.discarder(ctx, key), nil
	}
}

func (r *Resolver) discarder(ctx context.Context, key string) func() {
	return func() {
		if err := r.store.Remove(context.WithoutCancel(ctx), key); err != nil {
			slog.WarnContext(ctx, "failed to discard logo", "key", key, "error", err)
		}
	}
}
