package http

import (
	"context"
	"net/http"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/repo/persistent"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ventureNotFound = "Venture not found"

// CatalogHandler serves the admin endpoints for ventures, their sections and
// the status and category lists.
type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	urls           projection.URLResolver
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, urls projection.URLResolver, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		urls:           urls,
		logger:         logger,
	}
}

type ActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ListVentures godoc
// @Summary      List ventures (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status_id      query  int     false  "Filter by status"
// @Param        category_id    query  int     false  "Filter by category"
// @Param        is_last_units  query  bool    false  "Filter by last units flag"
// @Param        search         query  string  false  "Search name, slug, description or location"
// @Success      200  {array}   VentureResponse
// @Failure      400  {object}  map[string]string
// @Router       /admin/ventures [get]
func (h *CatalogHandler) ListVentures(c *gin.Context) {
	var filter persistent.VentureFilter
	var ok bool
	if filter.StatusID, ok = optionalInt64Query(c, "status_id"); !ok {
		return
	}
	if filter.CategoryID, ok = optionalInt64Query(c, "category_id"); !ok {
		return
	}
	if filter.IsLastUnits, ok = optionalBoolQuery(c, "is_last_units"); !ok {
		return
	}
	filter.Search = c.Query("search")

	ventures, err := h.catalogUseCase.ListVentures(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusOK, toVentureList(ventures, h.urls))
}

// GetVenture godoc
// @Summary      Get venture (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Venture ID"
// @Success      200  {object}  VentureResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id} [get]
func (h *CatalogHandler) GetVenture(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	venture, err := h.catalogUseCase.GetVenture(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusOK, toVentureResponse(venture, h.urls))
}

// CreateVenture godoc
// @Summary      Create venture
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.VentureInput  true  "Venture"
// @Success      201  {object}  VentureResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /admin/ventures [post]
func (h *CatalogHandler) CreateVenture(c *gin.Context) {
	var in usecase.VentureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	venture, err := h.catalogUseCase.CreateVenture(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusCreated, toVentureResponse(venture, h.urls))
}

// UpdateVenture godoc
// @Summary      Update venture
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                   true  "Venture ID"
// @Param        request  body  usecase.VentureInput  true  "Venture"
// @Success      200  {object}  VentureResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id} [put]
func (h *CatalogHandler) UpdateVenture(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in usecase.VentureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if !activationAllowed(c, in.IsActive) {
		return
	}
	venture, err := h.catalogUseCase.UpdateVenture(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusOK, toVentureResponse(venture, h.urls))
}

// SetVentureActive godoc
// @Summary      Activate or deactivate venture
// @Description  Ventures are never deleted; inactive ones disappear from the public API
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int            true  "Venture ID"
// @Param        request  body  ActiveRequest  true  "Active flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/active [put]
func (h *CatalogHandler) SetVentureActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.catalogUseCase.SetVentureActive(c.Request.Context(), id, *req.IsActive); err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "is_active": *req.IsActive})
}

// DeactivateVenture godoc
// @Summary      Deactivate venture
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Venture ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id} [delete]
func (h *CatalogHandler) DeactivateVenture(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogUseCase.SetVentureActive(c.Request.Context(), id, false); err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveHighlight godoc
// @Summary      Create or update hero highlight
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                     true   "Venture ID"
// @Param        childId  path  int                     false  "Highlight ID (update only)"
// @Param        request  body  usecase.HighlightInput  true   "Highlight"
// @Success      200  {object}  HighlightResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/highlights [post]
// @Router       /admin/ventures/{id}/highlights/{childId} [put]
func (h *CatalogHandler) SaveHighlight(c *gin.Context) {
	ventureID, childID, ok := childParams(c)
	if !ok {
		return
	}
	var in usecase.HighlightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	saved, err := h.catalogUseCase.SaveHighlight(c.Request.Context(), ventureID, childID, in)
	if err != nil {
		respondError(c, h.logger, err, "Highlight not found")
		return
	}
	c.JSON(savedStatus(childID), HighlightResponse{ID: saved.ID, Label: saved.Label, Info: saved.Info})
}

// DeleteHighlight godoc
// @Summary      Delete hero highlight
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        childId  path  int  true  "Highlight ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/highlights/{childId} [delete]
func (h *CatalogHandler) DeleteHighlight(c *gin.Context) {
	h.deleteChild(c, "Highlight not found", h.catalogUseCase.DeleteHighlight)
}

// SaveAmenity godoc
// @Summary      Create or update amenity
// @Description  Span is the number of grid columns, 1 to 10 (defaults to 1)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                   true   "Venture ID"
// @Param        childId  path  int                   false  "Amenity ID (update only)"
// @Param        request  body  usecase.AmenityInput  true   "Amenity"
// @Success      200  {object}  AmenityResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/amenities [post]
// @Router       /admin/ventures/{id}/amenities/{childId} [put]
func (h *CatalogHandler) SaveAmenity(c *gin.Context) {
	ventureID, childID, ok := childParams(c)
	if !ok {
		return
	}
	var in usecase.AmenityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	saved, err := h.catalogUseCase.SaveAmenity(c.Request.Context(), ventureID, childID, in)
	if err != nil {
		respondError(c, h.logger, err, "Amenity not found")
		return
	}
	c.JSON(savedStatus(childID), AmenityResponse{ID: saved.ID, Icon: saved.Icon, Value: saved.Value, Span: saved.Span})
}

// DeleteAmenity godoc
// @Summary      Delete amenity
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        childId  path  int  true  "Amenity ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/amenities/{childId} [delete]
func (h *CatalogHandler) DeleteAmenity(c *gin.Context) {
	h.deleteChild(c, "Amenity not found", h.catalogUseCase.DeleteAmenity)
}

// SaveFloorPlan godoc
// @Summary      Create or update floor plan
// @Description  Up to 15 description items; blank items are dropped
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                     true   "Venture ID"
// @Param        childId  path  int                     false  "Floor plan ID (update only)"
// @Param        request  body  usecase.FloorPlanInput  true   "Floor plan"
// @Success      200  {object}  FloorPlanResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/floor-plans [post]
// @Router       /admin/ventures/{id}/floor-plans/{childId} [put]
func (h *CatalogHandler) SaveFloorPlan(c *gin.Context) {
	ventureID, childID, ok := childParams(c)
	if !ok {
		return
	}
	var in usecase.FloorPlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	saved, err := h.catalogUseCase.SaveFloorPlan(c.Request.Context(), ventureID, childID, in)
	if err != nil {
		respondError(c, h.logger, err, "Floor plan not found")
		return
	}
	c.JSON(savedStatus(childID), FloorPlanResponse{ID: saved.ID, Name: saved.Name, DescriptionList: saved.DescriptionList})
}

// DeleteFloorPlan godoc
// @Summary      Delete floor plan
// @Description  Images attached to the plan are detached, not deleted
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        childId  path  int  true  "Floor plan ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/floor-plans/{childId} [delete]
func (h *CatalogHandler) DeleteFloorPlan(c *gin.Context) {
	h.deleteChild(c, "Floor plan not found", h.catalogUseCase.DeleteFloorPlan)
}

// SaveArea godoc
// @Summary      Create or update area
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                true   "Venture ID"
// @Param        childId  path  int                false  "Area ID (update only)"
// @Param        request  body  usecase.AreaInput  true   "Area"
// @Success      200  {object}  NamedResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/areas [post]
// @Router       /admin/ventures/{id}/areas/{childId} [put]
func (h *CatalogHandler) SaveArea(c *gin.Context) {
	ventureID, childID, ok := childParams(c)
	if !ok {
		return
	}
	var in usecase.AreaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	saved, err := h.catalogUseCase.SaveArea(c.Request.Context(), ventureID, childID, in)
	if err != nil {
		respondError(c, h.logger, err, "Area not found")
		return
	}
	c.JSON(savedStatus(childID), NamedResponse{ID: saved.ID, Name: saved.Name})
}

// DeleteArea godoc
// @Summary      Delete area
// @Description  Images attached to the area are detached, not deleted
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        childId  path  int  true  "Area ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/areas/{childId} [delete]
func (h *CatalogHandler) DeleteArea(c *gin.Context) {
	h.deleteChild(c, "Area not found", h.catalogUseCase.DeleteArea)
}

// ListStatuses godoc
// @Summary      List venture statuses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  NamedResponse
// @Router       /admin/statuses [get]
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.catalogUseCase.ListStatuses(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Status not found")
		return
	}
	out := make([]NamedResponse, len(statuses))
	for i, s := range statuses {
		out[i] = NamedResponse{ID: s.ID, Name: s.Name}
	}
	c.JSON(http.StatusOK, out)
}

// SaveStatus godoc
// @Summary      Create or update venture status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                false  "Status ID (update only)"
// @Param        request  body  usecase.NameInput  true   "Status"
// @Success      200  {object}  NamedResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/statuses [post]
// @Router       /admin/statuses/{id} [put]
func (h *CatalogHandler) SaveStatus(c *gin.Context) {
	id, in, ok := namedBody(c)
	if !ok {
		return
	}
	saved, err := h.catalogUseCase.SaveStatus(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, "Status not found")
		return
	}
	c.JSON(savedStatus(id), NamedResponse{ID: saved.ID, Name: saved.Name})
}

// DeleteStatus godoc
// @Summary      Delete venture status
// @Description  Ventures using the status keep existing with no status
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Status ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/statuses/{id} [delete]
func (h *CatalogHandler) DeleteStatus(c *gin.Context) {
	deleteByID(c, h.logger, "Status not found", h.catalogUseCase.DeleteStatus)
}

// ListCategories godoc
// @Summary      List venture categories
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  NamedResponse
// @Router       /admin/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Category not found")
		return
	}
	out := make([]NamedResponse, len(categories))
	for i, cat := range categories {
		out[i] = NamedResponse{ID: cat.ID, Name: cat.Name}
	}
	c.JSON(http.StatusOK, out)
}

// SaveCategory godoc
// @Summary      Create or update venture category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                false  "Category ID (update only)"
// @Param        request  body  usecase.NameInput  true   "Category"
// @Success      200  {object}  NamedResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/categories [post]
// @Router       /admin/categories/{id} [put]
func (h *CatalogHandler) SaveCategory(c *gin.Context) {
	id, in, ok := namedBody(c)
	if !ok {
		return
	}
	saved, err := h.catalogUseCase.SaveCategory(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, "Category not found")
		return
	}
	c.JSON(savedStatus(id), NamedResponse{ID: saved.ID, Name: saved.Name})
}

// DeleteCategory godoc
// @Summary      Delete venture category
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	deleteByID(c, h.logger, "Category not found", h.catalogUseCase.DeleteCategory)
}

func (h *CatalogHandler) deleteChild(c *gin.Context, notFound string, del func(ctx context.Context, ventureID, id int64) error) {
	ventureID, ok := idParam(c, "id")
	if !ok {
		return
	}
	childID, ok := idParam(c, "childId")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), ventureID, childID); err != nil {
		respondError(c, h.logger, err, notFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// childParams reads :id and the optional :childId (zero on create).
func childParams(c *gin.Context) (ventureID, childID int64, ok bool) {
	if ventureID, ok = idParam(c, "id"); !ok {
		return 0, 0, false
	}
	if c.Param("childId") == "" {
		return ventureID, 0, true
	}
	if childID, ok = idParam(c, "childId"); !ok {
		return 0, 0, false
	}
	return ventureID, childID, true
}

func namedBody(c *gin.Context) (int64, usecase.NameInput, bool) {
	var id int64
	if c.Param("id") != "" {
		var ok bool
		if id, ok = idParam(c, "id"); !ok {
			return 0, usecase.NameInput{}, false
		}
	}
	var in usecase.NameInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return 0, usecase.NameInput{}, false
	}
	return id, in, true
}

func deleteByID(c *gin.Context, log *logger.Logger, notFound string, del func(ctx context.Context, id int64) error) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		respondError(c, log, err, notFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func savedStatus(id int64) int {
	if id == 0 {
		return http.StatusCreated
	}
	return http.StatusOK
}
