package http

import (
	"net/http"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VentureHandler struct {
	ventureUseCase usecase.VentureUseCase
	logger         *logger.Logger
}

func NewVentureHandler(ventureUseCase usecase.VentureUseCase, logger *logger.Logger) *VentureHandler {
	return &VentureHandler{
		ventureUseCase: ventureUseCase,
		logger:         logger,
	}
}

// Collection godoc
// @Summary      List ventures by category
// @Description  Active ventures grouped under the categories that have at least one of them
// @Tags         ventures
// @Produce      json
// @Success      200  {object}  projection.CollectionView
// @Failure      500  {object}  map[string]string
// @Router       /venture [get]
func (h *VentureHandler) Collection(c *gin.Context) {
	view, err := h.ventureUseCase.Collection(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Venture not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Detail godoc
// @Summary      Get venture page
// @Description  Full venture view with galleries, floor plans and amenities
// @Tags         ventures
// @Produce      json
// @Param        slug  path  string  true  "Venture slug"
// @Success      200  {object}  projection.DetailView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /venture/{slug} [get]
func (h *VentureHandler) Detail(c *gin.Context) {
	view, err := h.ventureUseCase.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Venture not found")
		return
	}
	c.JSON(http.StatusOK, view)
}
