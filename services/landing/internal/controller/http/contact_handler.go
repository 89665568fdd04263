package http

import (
	"errors"
	"net/http"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         *logger.Logger
}

func NewContactHandler(contactUseCase usecase.ContactUseCase, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// Send godoc
// @Summary      Send contact message
// @Description  Validates the form and emails it to the sales inbox
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body  entity.ContactMessage  true  "Contact form"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]interface{}
// @Failure      405  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var msg entity.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	err := h.contactUseCase.Send(c.Request.Context(), msg)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"success": "Message sent successfully"})
		return
	}

	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data", "details": verr.Fields})
	default:
		h.logger.Error("Contact message not delivered: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
	}
}
