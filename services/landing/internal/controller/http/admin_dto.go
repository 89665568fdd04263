package http

import (
	"time"

	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/projection"
)

type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ImageResponse struct {
	ID          int64     `json:"id"`
	VentureID   int64     `json:"venture_id"`
	ImageKey    string    `json:"image_key"`
	URL         string    `json:"url"`
	Caption     string    `json:"caption"`
	IsCover     bool      `json:"is_cover"`
	IsHighLight bool      `json:"is_high_light"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	FloorPlanID *int64    `json:"floor_plan_id"`
	AreaID      *int64    `json:"area_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HighlightResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Info  string `json:"info"`
}

type AmenityResponse struct {
	ID    int64  `json:"id"`
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Span  int    `json:"span"`
}

type FloorPlanResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DescriptionList []string `json:"description_list"`
}

type VentureResponse struct {
	ID               int64               `json:"id"`
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	ShortDescription string              `json:"short_description"`
	Location         string              `json:"location"`
	TotalUnits       *int                `json:"total_units"`
	IsLastUnits      bool                `json:"is_last_units"`
	IsActive         bool                `json:"is_active"`
	YTVideoID        string              `json:"yt_video_id"`
	Status           *NamedResponse      `json:"status"`
	Category         *NamedResponse      `json:"category"`
	HeroHighlights   []HighlightResponse `json:"hero_highlights,omitempty"`
	Amenities        []AmenityResponse   `json:"amenities,omitempty"`
	FloorPlans       []FloorPlanResponse `json:"floor_plans,omitempty"`
	Areas            []NamedResponse     `json:"areas,omitempty"`
	Images           []ImageResponse     `json:"images,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type ArticleResponse struct {
	ID               int64          `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	Tag              *NamedResponse `json:"tag"`
	ShortDescription string         `json:"short_description"`
	CoverImageKey    string         `json:"cover_image_key"`
	CoverImageURL    string         `json:"cover_image_url"`
	Content          string         `json:"content,omitempty"`
	IsHighlight      bool           `json:"is_highlight"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func toImageResponse(img *entity.Image, urls projection.URLResolver) ImageResponse {
	return ImageResponse{
		ID:          img.ID,
		VentureID:   img.VentureID,
		ImageKey:    img.Key,
		URL:         urls.URL(img.Key),
		Caption:     img.Caption,
		IsCover:     img.IsCover,
		IsHighLight: img.IsHighLight,
		Order:       img.Order,
		IsActive:    img.IsActive,
		FloorPlanID: img.Attachment.FloorPlanID(),
		AreaID:      img.Attachment.AreaID(),
		CreatedAt:   img.CreatedAt,
		UpdatedAt:   img.UpdatedAt,
	}
}

func toVentureResponse(v *entity.Venture, urls projection.URLResolver) VentureResponse {
	resp := VentureResponse{
		ID:               v.ID,
		Slug:             v.Slug,
		Name:             v.Name,
		ShortDescription: v.ShortDescription,
		Location:         v.Location,
		TotalUnits:       v.TotalUnits,
		IsLastUnits:      v.IsLastUnits,
		IsActive:         v.IsActive,
		YTVideoID:        v.YTVideoID,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Status != nil {
		resp.Status = &NamedResponse{ID: v.Status.ID, Name: v.Status.Name}
	}
	if v.Category != nil {
		resp.Category = &NamedResponse{ID: v.Category.ID, Name: v.Category.Name}
	}
	for _, h := range v.HeroHighlights {
		resp.HeroHighlights = append(resp.HeroHighlights, HighlightResponse{ID: h.ID, Label: h.Label, Info: h.Info})
	}
	for _, a := range v.Amenities {
		resp.Amenities = append(resp.Amenities, AmenityResponse{ID: a.ID, Icon: a.Icon, Value: a.Value, Span: a.Span})
	}
	for _, fp := range v.FloorPlans {
		resp.FloorPlans = append(resp.FloorPlans, FloorPlanResponse{ID: fp.ID, Name: fp.Name, DescriptionList: fp.DescriptionList})
	}
	for _, a := range v.Areas {
		resp.Areas = append(resp.Areas, NamedResponse{ID: a.ID, Name: a.Name})
	}
	for i := range v.Images {
		resp.Images = append(resp.Images, toImageResponse(&v.Images[i], urls))
	}
	return resp
}

func toVentureList(ventures []entity.Venture, urls projection.URLResolver) []VentureResponse {
	out := make([]VentureResponse, len(ventures))
	for i := range ventures {
		out[i] = toVentureResponse(&ventures[i], urls)
	}
	return out
}

func toArticleResponse(a *entity.Article, urls projection.URLResolver) ArticleResponse {
	resp := ArticleResponse{
		ID:               a.ID,
		Slug:             a.Slug,
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		CoverImageKey:    a.CoverImageKey,
		CoverImageURL:    urls.URL(a.CoverImageKey),
		Content:          a.Content,
		IsHighlight:      a.IsHighlight,
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.Tag != nil {
		resp.Tag = &NamedResponse{ID: a.Tag.ID, Name: a.Tag.Name}
	}
	return resp
}
