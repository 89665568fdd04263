// Package projection turns stored ventures and articles into the public JSON
// views. Nothing here mutates its inputs.
package projection

import (
	"fmt"
	"sort"

	"abq-api/services/landing/internal/entity"
)

const (
	CollectionLabel = "Empreendimentos"
	CollectionPath  = "/nossas-obras/"
)

// URLResolver maps a stored object key to a public URL.
type URLResolver interface {
	URL(key string) string
}

type ImageView struct {
	IsHighlight bool    `json:"is_highlight"`
	URL         string  `json:"url"`
	Unit        *string `json:"unit"`
	Area        *string `json:"area"`
}

type VentureSummary struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"short_description"`
	Location         string  `json:"location"`
	Status           *string `json:"status"`
	TotalUnits       *int    `json:"total_units"`
	HeroImageURL     *string `json:"hero_image_url"`
}

type CategoryView struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Ventures []VentureSummary `json:"ventures"`
}

type CollectionView struct {
	Categories []CategoryView `json:"categories"`
}

type HighlightView struct {
	Label string `json:"label"`
	Info  string `json:"info"`
}

type BreadcrumbView struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type AmenityView struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Span  int    `json:"span"`
}

type FloorPlanView struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	DescriptionList []string    `json:"descriptionList"`
	Images          []ImageView `json:"images"`
}

type GroupView struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Images []ImageView `json:"images"`
}

type GalleriesView struct {
	Highlighted []ImageView `json:"highlighted"`
	Units       []GroupView `json:"units"`
	Areas       []GroupView `json:"areas"`
}

type DetailView struct {
	Slug           string           `json:"slug"`
	Name           string           `json:"name"`
	Subtitle       string           `json:"subtitle"`
	HeroImage      *string          `json:"heroImage"`
	HeroHighLights []HighlightView  `json:"heroHighLights"`
	Breadcrumb     []BreadcrumbView `json:"breadcrumb"`
	Location       string           `json:"location"`
	Status         *string          `json:"status"`
	LastUnits      bool             `json:"lastUnits"`
	Amenities      []AmenityView    `json:"amenities"`
	FloorPlans     []FloorPlanView  `json:"floorPlans"`
	Areas          []string         `json:"areas"`
	YTVideoID      *string          `json:"ytVideoId"`
	Galeries       GalleriesView    `json:"galeries"`
}

// Collection groups active ventures under their categories. Categories
// without an active venture are left out; order follows the inputs.
func Collection(categories []entity.Category, ventures []entity.Venture, urls URLResolver) CollectionView {
	view := CollectionView{Categories: []CategoryView{}}

	for _, category := range categories {
		group := CategoryView{ID: category.ID, Name: category.Name, Ventures: []VentureSummary{}}
		for i := range ventures {
			v := &ventures[i]
			if !v.IsActive || v.Category == nil || v.Category.ID != category.ID {
				continue
			}
			group.Ventures = append(group.Ventures, summary(v, urls))
		}
		if len(group.Ventures) > 0 {
			view.Categories = append(view.Categories, group)
		}
	}

	return view
}

func summary(v *entity.Venture, urls URLResolver) VentureSummary {
	s := VentureSummary{
		ID:               v.ID,
		Name:             v.Name,
		Slug:             v.Slug,
		ShortDescription: v.ShortDescription,
		Location:         v.Location,
		Status:           statusName(v),
		TotalUnits:       v.TotalUnits,
	}
	if cover, ok := Cover(v); ok {
		s.HeroImageURL = optional(urls.URL(cover.Key))
	}
	return s
}

// Cover returns the first active cover image by order.
func Cover(v *entity.Venture) (entity.Image, bool) {
	for _, img := range activeImages(v.Images) {
		if img.IsCover {
			return img, true
		}
	}
	return entity.Image{}, false
}

// Detail builds the venture page. hasCover is false when no active image is
// flagged as cover; HeroImage is then null.
func Detail(v *entity.Venture, urls URLResolver) (view DetailView, hasCover bool) {
	images := activeImages(v.Images)
	render := func(img entity.Image) ImageView {
		return imageView(v, img, urls)
	}

	view = DetailView{
		Slug:           v.Slug,
		Name:           v.Name,
		Subtitle:       v.ShortDescription,
		HeroHighLights: make([]HighlightView, 0, len(v.HeroHighlights)),
		Breadcrumb: []BreadcrumbView{
			{Label: CollectionLabel, URL: CollectionPath},
			{Label: v.Name, URL: fmt.Sprintf("%s%s/", CollectionPath, v.Slug)},
		},
		Location:   v.Location,
		Status:     statusName(v),
		LastUnits:  v.IsLastUnits,
		Amenities:  make([]AmenityView, 0, len(v.Amenities)),
		FloorPlans: make([]FloorPlanView, 0, len(v.FloorPlans)),
		Areas:      make([]string, 0, len(v.Areas)),
		YTVideoID:  optional(v.YTVideoID),
		Galeries: GalleriesView{
			Highlighted: []ImageView{},
			Units:       make([]GroupView, 0, len(v.FloorPlans)),
			Areas:       make([]GroupView, 0, len(v.Areas)),
		},
	}

	if cover, ok := Cover(v); ok {
		view.HeroImage = optional(urls.URL(cover.Key))
		hasCover = true
	}

	for _, h := range v.HeroHighlights {
		view.HeroHighLights = append(view.HeroHighLights, HighlightView{Label: h.Label, Info: h.Info})
	}

	for _, a := range v.Amenities {
		view.Amenities = append(view.Amenities, AmenityView{Label: a.Icon, Value: a.Value, Span: a.Span})
	}

	for _, fp := range v.FloorPlans {
		fpImages := mapImages(filter(images, entity.FloorPlanLinked, fp.ID), render)
		descriptions := fp.DescriptionList
		if descriptions == nil {
			descriptions = []string{}
		}
		view.FloorPlans = append(view.FloorPlans, FloorPlanView{
			ID:              fp.ID,
			Name:            fp.Name,
			DescriptionList: descriptions,
			Images:          fpImages,
		})
		view.Galeries.Units = append(view.Galeries.Units, GroupView{ID: fp.ID, Name: fp.Name, Images: fpImages})
	}

	for _, area := range v.Areas {
		view.Areas = append(view.Areas, area.Name)
		view.Galeries.Areas = append(view.Galeries.Areas, GroupView{
			ID:     area.ID,
			Name:   area.Name,
			Images: mapImages(filter(images, entity.AreaLinked, area.ID), render),
		})
	}

	for _, img := range images {
		if img.IsHighLight {
			view.Galeries.Highlighted = append(view.Galeries.Highlighted, render(img))
		}
	}

	return view, hasCover
}

func imageView(v *entity.Venture, img entity.Image, urls URLResolver) ImageView {
	out := ImageView{IsHighlight: img.IsHighLight, URL: urls.URL(img.Key)}
	switch img.Attachment.Kind {
	case entity.FloorPlanLinked:
		if fp := v.FloorPlanByID(img.Attachment.RefID); fp != nil {
			out.Unit = optional(fp.Name)
		}
	case entity.AreaLinked:
		if area := v.AreaByID(img.Attachment.RefID); area != nil {
			out.Area = optional(area.Name)
		}
	}
	return out
}

// activeImages returns a sorted copy holding only active images.
func activeImages(images []entity.Image) []entity.Image {
	out := make([]entity.Image, 0, len(images))
	for _, img := range images {
		if img.IsActive {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func filter(images []entity.Image, kind entity.AttachmentKind, refID int64) []entity.Image {
	var out []entity.Image
	for _, img := range images {
		if img.Attachment.Kind == kind && img.Attachment.RefID == refID {
			out = append(out, img)
		}
	}
	return out
}

func mapImages(images []entity.Image, fn func(entity.Image) ImageView) []ImageView {
	out := make([]ImageView, 0, len(images))
	for _, img := range images {
		out = append(out, fn(img))
	}
	return out
}

func statusName(v *entity.Venture) *string {
	if v.Status == nil {
		return nil
	}
	name := v.Status.Name
	return &name
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
