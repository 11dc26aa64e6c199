package property

import (
	"errors"

	"estatehub/database"
	"estatehub/models"
	"estatehub/utils"
)

func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return utils.NotFound("Property")
	case errors.Is(err, database.ErrDuplicate):
		return utils.Duplicate("name")
	}
	return utils.AsAppError(err)
}

func kindError(err error) error {
	return utils.Validation("Validation failed").
		WithDetails([]utils.FieldError{{Field: "subcategory", Message: err.Error()}})
}

// validateKind rebuilds the PropertyKind from raw values.
func validateKind(category models.PropertyCategory, sub models.Subcategory) (models.PropertyKind, error) {
	kind, err := models.NewPropertyKind(category, sub)
	if err != nil {
		return models.PropertyKind{}, kindError(err)
	}
	return kind, nil
}
