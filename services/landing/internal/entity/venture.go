package entity

import "time"

type Status struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Venture struct {
	ID               int64
	Slug             string
	Name             string
	ShortDescription string
	Location         string
	TotalUnits       *int
	IsLastUnits      bool
	IsActive         bool
	YTVideoID        string
	Status           *Status
	Category         *Category
	HeroHighlights   []HeroHighlight
	Amenities        []Amenity
	FloorPlans       []FloorPlan
	Areas            []Area
	Images           []Image
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type HeroHighlight struct {
	ID        int64
	VentureID int64
	Label     string
	Info      string
}

const (
	MinAmenitySpan = 1
	MaxAmenitySpan = 10
)

type Amenity struct {
	ID        int64
	VentureID int64
	Icon      string
	Value     string
	Span      int
}

const MaxDescriptionItems = 15

type FloorPlan struct {
	ID              int64
	VentureID       int64
	Name            string
	DescriptionList []string
}

type Area struct {
	ID        int64
	VentureID int64
	Name      string
}

// FloorPlanByID returns nil when the plan does not belong to the venture.
func (v *Venture) FloorPlanByID(id int64) *FloorPlan {
	for i := range v.FloorPlans {
		if v.FloorPlans[i].ID == id {
			return &v.FloorPlans[i]
		}
	}
	return nil
}

func (v *Venture) AreaByID(id int64) *Area {
	for i := range v.Areas {
		if v.Areas[i].ID == id {
			return &v.Areas[i]
		}
	}
	return nil
}
