package http

import (
	"net/http"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

// List godoc
// @Summary      List articles
// @Description  Active articles split into highlighted and regular, newest first
// @Tags         blog
// @Produce      json
// @Success      200  {object}  projection.ArticleListView
// @Failure      500  {object}  map[string]string
// @Router       /blog [get]
func (h *BlogHandler) List(c *gin.Context) {
	view, err := h.blogUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Detail godoc
// @Summary      Get article
// @Description  Article content plus up to three random suggestions
// @Tags         blog
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200  {object}  projection.ArticleDetailView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blog/{slug} [get]
func (h *BlogHandler) Detail(c *gin.Context) {
	view, err := h.blogUseCase.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "Article not found")
		return
	}
	c.JSON(http.StatusOK, view)
}
