package property

import (
	"context"

	"estatehub/models"
	"estatehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UploadImages stores files and appends them to the listing. If any upload
// fails, the images already stored by this call are removed again.
func (s *DefaultPropertyService) UploadImages(ctx context.Context, id primitive.ObjectID, files []ImageUpload) (*models.Property, error) {
	if len(files) == 0 {
		return nil, utils.InvalidFileField("No images provided")
	}
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}

	uploaded := make([]models.Image, 0, len(files))
	for _, f := range files {
		img, err := s.Images.Upload(ctx, f.Name, f.Body)
		if err != nil {
			s.cleanupImages(ctx, uploaded)
			utils.GetLogger().Error("Image upload failed", zap.String("property", id.Hex()), zap.String("file", f.Name), zap.Error(err))
			return nil, utils.AsAppError(err)
		}
		uploaded = append(uploaded, img)
	}

	p, err := s.Repo.AddImages(ctx, id, uploaded)
	if err != nil {
		s.cleanupImages(ctx, uploaded)
		return nil, mapRepoError(err)
	}
	return p, nil
}
