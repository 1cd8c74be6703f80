package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/errors"
)

// ParseIDParam parses a positive numeric id from a URL path parameter.
// entityName is used in error messages (e.g., "ticket", "comment").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	return parseID(c.Param(paramName), entityName)
}

// ParseIDQuery parses a positive numeric id from the query string or, for
// POST forms, from the form body.
func ParseIDQuery(c *gin.Context, key, entityName string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		raw = c.PostForm(key)
	}
	return parseID(raw, entityName)
}

func parseID(raw, entityName string) (uint, error) {
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewNotFoundError(fmt.Sprintf("%s not found", entityName))
	}
	return uint(v), nil
}
