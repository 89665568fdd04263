package http

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	maxImageSize  = 10 << 20
	imageNotFound = "Image not found"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type ImageHandler struct {
	imageUseCase usecase.ImageUseCase
	urls         projection.URLResolver
	logger       *logger.Logger
}

func NewImageHandler(imageUseCase usecase.ImageUseCase, urls projection.URLResolver, logger *logger.Logger) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		urls:         urls,
		logger:       logger,
	}
}

// AttachmentRequest selects what an image illustrates. Kind is "none",
// "floor_plan" or "area".
type AttachmentRequest struct {
	Kind string `json:"kind" binding:"required,oneof=none floor_plan area"`
	ID   int64  `json:"id"`
}

type UpdateImageRequest struct {
	Caption     *string            `json:"caption"`
	IsCover     *bool              `json:"is_cover"`
	IsHighLight *bool              `json:"is_high_light"`
	IsActive    *bool              `json:"is_active"`
	Order       *int               `json:"order" binding:"omitempty,min=1"`
	Attachment  *AttachmentRequest `json:"attachment"`
}

type MoveImageRequest struct {
	Order int `json:"order" binding:"required,min=1"`
}

// Upload godoc
// @Summary      Upload venture image
// @Description  Stores the file and inserts it at the given order, shifting later images down. order 0 appends. Setting is_cover clears the previous cover.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      int     true   "Venture ID"
// @Param        image          formData  file    true   "Image file (jpeg, png, webp, gif)"
// @Param        caption        formData  string  false  "Caption"
// @Param        is_cover       formData  bool    false  "Use as cover"
// @Param        is_high_light  formData  bool    false  "Show in the highlighted gallery"
// @Param        order          formData  int     false  "Position, 1-based"
// @Param        floor_plan_id  formData  int     false  "Attach to floor plan"
// @Param        area_id        formData  int     false  "Attach to area"
// @Success      201  {object}  ImageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	ventureID, ok := idParam(c, "id")
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

	in := usecase.UploadImageInput{
		VentureID:   ventureID,
		Filename:    file.Filename,
		ContentType: contentType,
		Caption:     c.PostForm("caption"),
	}
	if in.IsCover, err = formBool(c, "is_cover"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_cover"})
		return
	}
	if in.IsHighLight, err = formBool(c, "is_high_light"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_high_light"})
		return
	}
	if raw := c.PostForm("order"); raw != "" {
		if in.Order, err = strconv.Atoi(raw); err != nil || in.Order < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
			return
		}
	}
	if in.Attachment, ok = formAttachment(c); !ok {
		return
	}

	body, err := openUpload(file)
	if err != nil {
		h.logger.Error("Failed to open upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer body.Close()
	in.Body = body

	img, err := h.imageUseCase.Upload(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err, ventureNotFound)
		return
	}
	c.JSON(http.StatusCreated, toImageResponse(img, h.urls))
}

// Update godoc
// @Summary      Update venture image
// @Description  Omitted fields stay unchanged
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                 true  "Venture ID"
// @Param        imageId  path  int                 true  "Image ID"
// @Param        request  body  UpdateImageRequest  true  "Changes"
// @Success      200  {object}  ImageResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/images/{imageId} [patch]
func (h *ImageHandler) Update(c *gin.Context) {
	ventureID, imageID, ok := imageParams(c)
	if !ok {
		return
	}

	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !activationAllowed(c, req.IsActive) {
		return
	}

	in := usecase.UpdateImageInput{
		Caption:     req.Caption,
		IsCover:     req.IsCover,
		IsHighLight: req.IsHighLight,
		IsActive:    req.IsActive,
		Order:       req.Order,
	}
	if req.Attachment != nil {
		a := req.Attachment.toEntity()
		in.Attachment = &a
	}

	img, err := h.imageUseCase.Update(c.Request.Context(), ventureID, imageID, in)
	if err != nil {
		respondError(c, h.logger, err, imageNotFound)
		return
	}
	c.JSON(http.StatusOK, toImageResponse(img, h.urls))
}

// Move godoc
// @Summary      Move venture image
// @Description  Places the image at order, shifting the images at or after it down
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int               true  "Venture ID"
// @Param        imageId  path  int               true  "Image ID"
// @Param        request  body  MoveImageRequest  true  "Target order"
// @Success      200  {object}  ImageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/images/{imageId}/order [put]
func (h *ImageHandler) Move(c *gin.Context) {
	ventureID, imageID, ok := imageParams(c)
	if !ok {
		return
	}

	var req MoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.imageUseCase.MoveTo(c.Request.Context(), ventureID, imageID, req.Order)
	if err != nil {
		respondError(c, h.logger, err, imageNotFound)
		return
	}
	c.JSON(http.StatusOK, toImageResponse(img, h.urls))
}

// SetCover godoc
// @Summary      Make image the venture cover
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        imageId  path  int  true  "Image ID"
// @Success      200  {object}  ImageResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/images/{imageId}/cover [post]
func (h *ImageHandler) SetCover(c *gin.Context) {
	ventureID, imageID, ok := imageParams(c)
	if !ok {
		return
	}

	img, err := h.imageUseCase.SetCover(c.Request.Context(), ventureID, imageID)
	if err != nil {
		respondError(c, h.logger, err, imageNotFound)
		return
	}
	c.JSON(http.StatusOK, toImageResponse(img, h.urls))
}

// Deactivate godoc
// @Summary      Deactivate venture image
// @Description  The image is hidden from the public API and loses the cover flag
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path  int  true  "Venture ID"
// @Param        imageId  path  int  true  "Image ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/ventures/{id}/images/{imageId} [delete]
func (h *ImageHandler) Deactivate(c *gin.Context) {
	ventureID, imageID, ok := imageParams(c)
	if !ok {
		return
	}

	if err := h.imageUseCase.Deactivate(c.Request.Context(), ventureID, imageID); err != nil {
		respondError(c, h.logger, err, imageNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r AttachmentRequest) toEntity() entity.Attachment {
	switch r.Kind {
	case "floor_plan":
		return entity.AttachToFloorPlan(r.ID)
	case "area":
		return entity.AttachToArea(r.ID)
	default:
		return entity.Attachment{}
	}
}

func imageParams(c *gin.Context) (int64, int64, bool) {
	ventureID, ok := idParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	imageID, ok := idParam(c, "imageId")
	if !ok {
		return 0, 0, false
	}
	return ventureID, imageID, true
}

func formBool(c *gin.Context, name string) (bool, error) {
	raw := c.PostForm(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// formAttachment reads floor_plan_id and area_id; setting both is rejected.
func formAttachment(c *gin.Context) (entity.Attachment, bool) {
	floorPlan, area := c.PostForm("floor_plan_id"), c.PostForm("area_id")
	if floorPlan != "" && area != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image can be attached to a floor plan or an area, not both"})
		return entity.Attachment{}, false
	}

	raw, attach := floorPlan, entity.AttachToFloorPlan
	if area != "" {
		raw, attach = area, entity.AttachToArea
	}
	if raw == "" {
		return entity.Attachment{}, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment id"})
		return entity.Attachment{}, false
	}
	return attach(id), true
}

func openUpload(file *multipart.FileHeader) (multipart.File, error) {
	return file.Open()
}
