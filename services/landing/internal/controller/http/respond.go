package http

import (
	"errors"
	"net/http"
	"strconv"

	"abq-api/pkg/logger"
	"abq-api/pkg/middleware"
	"abq-api/services/landing/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto status codes. notFound is the message
// used for entity.ErrNotFound.
func respondError(c *gin.Context, log *logger.Logger, err error, notFound string) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data", "details": verr.Fields})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, entity.ErrInvalidAttachment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// activationAllowed rejects changes to is_active from anyone but an admin.
func activationAllowed(c *gin.Context, isActive *bool) bool {
	if isActive == nil || middleware.HasRole(c, "admin") {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	return false
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func optionalInt64Query(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}

func optionalBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}
