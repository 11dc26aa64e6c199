package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"estatehub/config"
	"estatehub/models"
	"estatehub/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// uploadAPI is the slice of the Cloudinary upload API used here.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStore implements ImageStore on Cloudinary.
type CloudinaryStore struct {
	api    uploadAPI
	folder string
}

// NewCloudinaryStore wraps an initialised Cloudinary client.
func NewCloudinaryStore(cld *cloudinary.Cloudinary, folder string) *CloudinaryStore {
	return &CloudinaryStore{api: &cld.Upload, folder: folder}
}

// NewImageStore builds the store from configuration, falling back to
// DisabledStore when credentials are missing.
func NewImageStore(cfg config.Config) ImageStore {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		utils.GetLogger().Warn("Cloudinary credentials not set, image uploads disabled")
		return DisabledStore{}
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		utils.GetLogger().Error("failed to initialize Cloudinary", zap.Error(err))
		return DisabledStore{}
	}
	cld.Config.URL.Secure = true
	return NewCloudinaryStore(cld, cfg.CloudinaryFolder)
}

// Upload streams r to the configured folder.
func (s *CloudinaryStore) Upload(ctx context.Context, name string, r io.Reader) (models.Image, error) {
	params := uploader.UploadParams{
		Folder:   s.folder,
		PublicID: publicIDFor(name),
	}
	result, err := s.api.Upload(ctx, r, params)
	if err != nil {
		return models.Image{}, fmt.Errorf("cloudinary: failed to upload %s: %w", name, err)
	}
	if result.Error.Message != "" {
		return models.Image{}, fmt.Errorf("cloudinary: failed to upload %s: %s", name, result.Error.Message)
	}
	if result.PublicID == "" {
		return models.Image{}, fmt.Errorf("cloudinary: no public ID returned for %s", name)
	}
	return models.Image{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Delete removes an uploaded image by its public ID.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	result, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary: failed to delete %s: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary: failed to delete %s: %s", publicID, result.Error.Message)
	}
	return nil
}

// publicIDFor derives a readable, unique public ID from an upload file name.
func publicIDFor(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, base)
	base = strings.Trim(base, "-")
	if base == "" {
		base = "image"
	}
	return base + "-" + utils.NewID()[:8]
}
