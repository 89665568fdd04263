package usecase

import (
	"strings"

	"abq-api/services/landing/internal/entity"
)

type VentureInput struct {
	Name             string `json:"name" validate:"required,max=100"`
	Slug             string `json:"slug" validate:"max=100"`
	ShortDescription string `json:"short_description" validate:"max=100"`
	Location         string `json:"location" validate:"max=50"`
	TotalUnits       *int   `json:"total_units" validate:"omitempty,gte=0"`
	IsLastUnits      bool   `json:"is_last_units"`
	IsActive         *bool  `json:"is_active"`
	YTVideoID        string `json:"yt_video_id" validate:"max=50"`
	StatusID         *int64 `json:"status_id"`
	CategoryID       *int64 `json:"category_id"`
}

type NameInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

type HighlightInput struct {
	Label string `json:"label" validate:"required,max=50"`
	Info  string `json:"info" validate:"required,max=50"`
}

// AmenityInput treats a zero span as one column.
type AmenityInput struct {
	Icon  string `json:"icon" validate:"required,max=50"`
	Value string `json:"value" validate:"required,max=100"`
	Span  int    `json:"span" validate:"omitempty,gte=1,lte=10"`
}

type FloorPlanInput struct {
	Name            string   `json:"name" validate:"required,max=50"`
	DescriptionList []string `json:"description_list" validate:"max=15,dive,max=100"`
}

type AreaInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

type ArticleInput struct {
	Title            string `json:"title" validate:"required,max=200"`
	Slug             string `json:"slug" validate:"max=200"`
	TagID            *int64 `json:"tag_id"`
	ShortDescription string `json:"short_description" validate:"max=255"`
	Content          string `json:"content"`
	IsHighlight      bool   `json:"is_highlight"`
	IsActive         *bool  `json:"is_active"`
}

func (in *VentureInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.Location = strings.TrimSpace(in.Location)
	in.YTVideoID = strings.TrimSpace(in.YTVideoID)
}

func (in *FloorPlanInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	items := make([]string, 0, len(in.DescriptionList))
	for _, item := range in.DescriptionList {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	in.DescriptionList = items
}

func (in *ArticleInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
}

func amenitySpan(span int) int {
	if span == 0 {
		return entity.MinAmenitySpan
	}
	return span
}

func optionalStatus(id *int64) *entity.Status {
	if id == nil {
		return nil
	}
	return &entity.Status{ID: *id}
}

func optionalCategory(id *int64) *entity.Category {
	if id == nil {
		return nil
	}
	return &entity.Category{ID: *id}
}

func optionalTag(id *int64) *entity.Tag {
	if id == nil {
		return nil
	}
	return &entity.Tag{ID: *id}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
