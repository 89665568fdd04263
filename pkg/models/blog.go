package models

import (
	"time"

	"abq-api/pkg/slug"

	"gorm.io/gorm"
)

type BlogTag struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogTag) TableName() string { return "blog_tags" }

type BlogArticle struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Slug             string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	TagID            *int64    `gorm:"index" json:"tag_id"`
	ShortDescription string    `gorm:"size:255" json:"short_description"`
	CoverImageKey    string    `gorm:"size:255" json:"cover_image_key"`
	Content          string    `gorm:"type:text" json:"content"`
	IsHighlight      bool      `gorm:"default:false" json:"is_highlight"`
	IsActive         bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Tag *BlogTag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

func (BlogArticle) TableName() string { return "blog_articles" }

func (a *BlogArticle) BeforeCreate(tx *gorm.DB) error {
	if a.Slug == "" {
		a.Slug = slug.Make(a.Title)
	}
	return nil
}
