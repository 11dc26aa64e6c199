package handlers

import (
	"strconv"
	"strings"

	"estatehub/database/query"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// optionalQuery returns nil when key is absent or blank.
func optionalQuery(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func invalidParam(field, message string) error {
	return utils.Validation("Invalid query parameter").
		WithDetails([]utils.FieldError{{Field: field, Message: message}})
}

// enumQuery parses an optional enum parameter, rejecting unknown values.
func enumQuery[T ~string](c *gin.Context, key string, valid func(T) bool) (*T, error) {
	raw := optionalQuery(c, key)
	if raw == nil {
		return nil, nil
	}
	v := T(*raw)
	if valid != nil && !valid(v) {
		return nil, invalidParam(key, "has an unsupported value")
	}
	return &v, nil
}

func floatQuery(c *gin.Context, key string) (*float64, error) {
	raw := optionalQuery(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil || v < 0 {
		return nil, invalidParam(key, "must be a non-negative number")
	}
	return &v, nil
}

func intQuery(c *gin.Context, key string) (int, error) {
	raw := optionalQuery(c, key)
	if raw == nil {
		return 0, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil || v < 0 {
		return 0, invalidParam(key, "must be a non-negative integer")
	}
	return v, nil
}

func objectIDQuery(c *gin.Context, key string) (*primitive.ObjectID, error) {
	raw := optionalQuery(c, key)
	if raw == nil {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*raw)
	if err != nil {
		return nil, invalidParam(key, "must be a valid id")
	}
	return &id, nil
}

func windowQuery(c *gin.Context) (query.Window, error) {
	return query.ParseWindow(c.Query("page"), c.Query("limit"))
}

// bindJSON responds with VALIDATION_ERROR and returns false on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return false
	}
	return true
}

func pathID(c *gin.Context, resource string) (primitive.ObjectID, bool) {
	id, err := utils.ParseObjectID(c.Param("id"), resource)
	if err != nil {
		utils.RespondError(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}
