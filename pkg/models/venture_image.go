package models

import (
	"time"
)

type VentureImage struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	VentureID   int64     `gorm:"not null;index" json:"venture_id"`
	ImageKey    string    `gorm:"size:255;not null" json:"image_key"`
	Caption     string    `gorm:"size:200" json:"caption"`
	IsCover     bool      `gorm:"default:false" json:"is_cover"`
	IsHighLight bool      `gorm:"column:is_high_light;default:false" json:"is_high_light"`
	Order       int       `gorm:"column:sort_order;not null" json:"order"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	FloorPlanID *int64    `gorm:"index" json:"floor_plan_id"`
	AreaID      *int64    `gorm:"index" json:"area_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	FloorPlan *VentureFloorPlan `gorm:"foreignKey:FloorPlanID" json:"floor_plan,omitempty"`
	Area      *VentureArea      `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (VentureImage) TableName() string { return "venture_images" }
