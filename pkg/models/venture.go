package models

import (
	"time"

	"abq-api/pkg/slug"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const MaxDescriptionItems = 15

type VentureStatus struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VentureStatus) TableName() string { return "venture_statuses" }

type VentureCategory struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VentureCategory) TableName() string { return "venture_categories" }

type Venture struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Slug             string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	ShortDescription string    `gorm:"size:100" json:"short_description"`
	Location         string    `gorm:"size:50" json:"location"`
	TotalUnits       *int      `json:"total_units"`
	IsLastUnits      bool      `gorm:"default:false" json:"is_last_units"`
	IsActive         bool      `gorm:"not null;index" json:"is_active"`
	YTVideoID        string    `gorm:"column:yt_video_id;size:50" json:"yt_video_id"`
	StatusID         *int64    `gorm:"index" json:"status_id"`
	CategoryID       *int64    `gorm:"index" json:"category_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Status         *VentureStatus         `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Category       *VentureCategory       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	HeroHighlights []VentureHeroHighlight `gorm:"foreignKey:VentureID" json:"hero_highlights,omitempty"`
	Amenities      []VentureAmenity       `gorm:"foreignKey:VentureID" json:"amenities,omitempty"`
	FloorPlans     []VentureFloorPlan     `gorm:"foreignKey:VentureID" json:"floor_plans,omitempty"`
	Areas          []VentureArea          `gorm:"foreignKey:VentureID" json:"areas,omitempty"`
	Images         []VentureImage         `gorm:"foreignKey:VentureID" json:"images,omitempty"`
}

func (Venture) TableName() string { return "ventures" }

func (v *Venture) BeforeCreate(tx *gorm.DB) error {
	if v.Slug == "" {
		v.Slug = slug.Make(v.Name)
	}
	return nil
}

type VentureHeroHighlight struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	VentureID int64     `gorm:"not null;index" json:"venture_id"`
	Label     string    `gorm:"size:50;not null" json:"label"`
	Info      string    `gorm:"size:50;not null" json:"info"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VentureHeroHighlight) TableName() string { return "venture_hero_highlights" }

type VentureAmenity struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	VentureID int64     `gorm:"not null;index" json:"venture_id"`
	Icon      string    `gorm:"size:50;not null" json:"icon"`
	Value     string    `gorm:"size:100;not null" json:"value"`
	Span      int       `gorm:"default:1;not null" json:"span"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VentureAmenity) TableName() string { return "venture_amenities" }

func (a *VentureAmenity) BeforeSave(tx *gorm.DB) error {
	if a.Span <= 0 {
		a.Span = 1
	}
	return nil
}

type VentureFloorPlan struct {
	ID              int64          `gorm:"primaryKey" json:"id"`
	VentureID       int64          `gorm:"not null;index" json:"venture_id"`
	Name            string         `gorm:"size:50;not null" json:"name"`
	DescriptionList pq.StringArray `gorm:"column:description_list;type:varchar(100)[]" json:"description_list"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (VentureFloorPlan) TableName() string { return "venture_floor_plans" }

// BeforeSave drops blank entries and normalises nil to an empty array.
func (f *VentureFloorPlan) BeforeSave(tx *gorm.DB) error {
	items := make(pq.StringArray, 0, len(f.DescriptionList))
	for _, item := range f.DescriptionList {
		if item != "" {
			items = append(items, item)
		}
	}
	f.DescriptionList = items
	return nil
}

type VentureArea struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	VentureID int64     `gorm:"not null;index" json:"venture_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VentureArea) TableName() string { return "venture_areas" }
