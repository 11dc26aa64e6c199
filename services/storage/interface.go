package storage

import (
	"context"
	"errors"
	"io"

	"estatehub/models"
	"estatehub/utils"
)

// ImageStore persists listing images and hands back their public location.
type ImageStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (models.Image, error)
	Delete(ctx context.Context, publicID string) error
}

// ErrNotConfigured is returned by DisabledStore.
var ErrNotConfigured = errors.New("image storage is not configured")

// DisabledStore is used when no storage credentials are set. Every call
// fails with INTERNAL_ERROR.
type DisabledStore struct{}

func (DisabledStore) Upload(context.Context, string, io.Reader) (models.Image, error) {
	return models.Image{}, utils.Internal(ErrNotConfigured)
}

func (DisabledStore) Delete(context.Context, string) error {
	return utils.Internal(ErrNotConfigured)
}
