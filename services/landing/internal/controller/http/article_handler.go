package http

import (
	"net/http"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/repo/persistent"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const articleNotFound = "Article not found"

// ArticleHandler serves the admin endpoints for articles and tags.
type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	urls           projection.URLResolver
	logger         *logger.Logger
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase, urls projection.URLResolver, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		urls:           urls,
		logger:         logger,
	}
}

// ListArticles godoc
// @Summary      List articles (admin)
// @Description  Includes inactive articles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        is_active     query  bool    false  "Filter by active flag"
// @Param        is_highlight  query  bool    false  "Filter by highlight flag"
// @Param        tag_id        query  int     false  "Filter by tag"
// @Param        search        query  string  false  "Search title, slug or content"
// @Success      200  {array}   ArticleResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var filter persistent.ArticleFilter
	var ok bool
	if filter.IsActive, ok = optionalBoolQuery(c, "is_active"); !ok {
		return
	}
	if filter.IsHighlight, ok = optionalBoolQuery(c, "is_highlight"); !ok {
		return
	}
	if filter.TagID, ok = optionalInt64Query(c, "tag_id"); !ok {
		return
	}
	filter.Search = c.Query("search")

	articles, err := h.articleUseCase.ListArticles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = toArticleResponse(&articles[i], h.urls)
		out[i].Content = ""
	}
	c.JSON(http.StatusOK, out)
}

// GetArticle godoc
// @Summary      Get article (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Article ID"
// @Success      200  {object}  ArticleResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	article, err := h.articleUseCase.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article, h.urls))
}

// CreateArticle godoc
// @Summary      Create article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.ArticleInput  true  "Article"
// @Success      201  {object}  ArticleResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /admin/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var in usecase.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	article, err := h.articleUseCase.CreateArticle(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(article, h.urls))
}

// UpdateArticle godoc
// @Summary      Update article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                   true  "Article ID"
// @Param        request  body  usecase.ArticleInput  true  "Article"
// @Success      200  {object}  ArticleResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in usecase.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if !activationAllowed(c, in.IsActive) {
		return
	}
	article, err := h.articleUseCase.UpdateArticle(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article, h.urls))
}

// DeactivateArticle godoc
// @Summary      Deactivate article
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Article ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [delete]
func (h *ArticleHandler) DeactivateArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.articleUseCase.SetArticleActive(c.Request.Context(), id, false); err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadCover godoc
// @Summary      Upload article cover
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int   true  "Article ID"
// @Param        image  formData  file  true  "Cover image (jpeg, png, webp, gif)"
// @Success      200  {object}  ArticleResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id}/cover [post]
func (h *ArticleHandler) UploadCover(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds 10MB"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	body, err := openUpload(file)
	if err != nil {
		h.logger.Error("Failed to open upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer body.Close()

	article, err := h.articleUseCase.UploadCover(c.Request.Context(), id, file.Filename, contentType, body)
	if err != nil {
		respondError(c, h.logger, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article, h.urls))
}

// ListTags godoc
// @Summary      List blog tags
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  NamedResponse
// @Router       /admin/tags [get]
func (h *ArticleHandler) ListTags(c *gin.Context) {
	tags, err := h.articleUseCase.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Tag not found")
		return
	}
	out := make([]NamedResponse, len(tags))
	for i, t := range tags {
		out[i] = NamedResponse{ID: t.ID, Name: t.Name}
	}
	c.JSON(http.StatusOK, out)
}

// SaveTag godoc
// @Summary      Create or update blog tag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                false  "Tag ID (update only)"
// @Param        request  body  usecase.NameInput  true   "Tag"
// @Success      200  {object}  NamedResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/tags [post]
// @Router       /admin/tags/{id} [put]
func (h *ArticleHandler) SaveTag(c *gin.Context) {
	id, in, ok := namedBody(c)
	if !ok {
		return
	}
	saved, err := h.articleUseCase.SaveTag(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, "Tag not found")
		return
	}
	c.JSON(savedStatus(id), NamedResponse{ID: saved.ID, Name: saved.Name})
}

// DeleteTag godoc
// @Summary      Delete blog tag
// @Description  Articles using the tag keep existing untagged
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Tag ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/tags/{id} [delete]
func (h *ArticleHandler) DeleteTag(c *gin.Context) {
	deleteByID(c, h.logger, "Tag not found", h.articleUseCase.DeleteTag)
}
