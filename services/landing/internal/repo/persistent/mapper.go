package persistent

import (
	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"github.com/lib/pq"
)

func ToStatusEntity(m *models.VentureStatus) *entity.Status {
	if m == nil {
		return nil
	}
	return &entity.Status{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToCategoryEntity(m *models.VentureCategory) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToVentureEntity(m *models.Venture) *entity.Venture {
	if m == nil {
		return nil
	}

	v := &entity.Venture{
		ID:               m.ID,
		Slug:             m.Slug,
		Name:             m.Name,
		ShortDescription: m.ShortDescription,
		Location:         m.Location,
		TotalUnits:       m.TotalUnits,
		IsLastUnits:      m.IsLastUnits,
		IsActive:         m.IsActive,
		YTVideoID:        m.YTVideoID,
		Status:           ToStatusEntity(m.Status),
		Category:         ToCategoryEntity(m.Category),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if v.Status == nil && m.StatusID != nil {
		v.Status = &entity.Status{ID: *m.StatusID}
	}
	if v.Category == nil && m.CategoryID != nil {
		v.Category = &entity.Category{ID: *m.CategoryID}
	}

	for i := range m.HeroHighlights {
		v.HeroHighlights = append(v.HeroHighlights, *ToHighlightEntity(&m.HeroHighlights[i]))
	}
	for i := range m.Amenities {
		v.Amenities = append(v.Amenities, *ToAmenityEntity(&m.Amenities[i]))
	}
	for i := range m.FloorPlans {
		v.FloorPlans = append(v.FloorPlans, *ToFloorPlanEntity(&m.FloorPlans[i]))
	}
	for i := range m.Areas {
		v.Areas = append(v.Areas, *ToAreaEntity(&m.Areas[i]))
	}
	for i := range m.Images {
		v.Images = append(v.Images, *ToImageEntity(&m.Images[i]))
	}
	return v
}

// ToVentureModel maps scalar fields only; children are written separately.
func ToVentureModel(e *entity.Venture) *models.Venture {
	if e == nil {
		return nil
	}

	m := &models.Venture{
		ID:               e.ID,
		Slug:             e.Slug,
		Name:             e.Name,
		ShortDescription: e.ShortDescription,
		Location:         e.Location,
		TotalUnits:       e.TotalUnits,
		IsLastUnits:      e.IsLastUnits,
		IsActive:         e.IsActive,
		YTVideoID:        e.YTVideoID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Status != nil {
		id := e.Status.ID
		m.StatusID = &id
	}
	if e.Category != nil {
		id := e.Category.ID
		m.CategoryID = &id
	}
	return m
}

func ToHighlightEntity(m *models.VentureHeroHighlight) *entity.HeroHighlight {
	return &entity.HeroHighlight{ID: m.ID, VentureID: m.VentureID, Label: m.Label, Info: m.Info}
}

func ToHighlightModel(e *entity.HeroHighlight) *models.VentureHeroHighlight {
	return &models.VentureHeroHighlight{ID: e.ID, VentureID: e.VentureID, Label: e.Label, Info: e.Info}
}

func ToAmenityEntity(m *models.VentureAmenity) *entity.Amenity {
	return &entity.Amenity{ID: m.ID, VentureID: m.VentureID, Icon: m.Icon, Value: m.Value, Span: m.Span}
}

func ToAmenityModel(e *entity.Amenity) *models.VentureAmenity {
	return &models.VentureAmenity{ID: e.ID, VentureID: e.VentureID, Icon: e.Icon, Value: e.Value, Span: e.Span}
}

func ToFloorPlanEntity(m *models.VentureFloorPlan) *entity.FloorPlan {
	return &entity.FloorPlan{
		ID:              m.ID,
		VentureID:       m.VentureID,
		Name:            m.Name,
		DescriptionList: []string(m.DescriptionList),
	}
}

func ToFloorPlanModel(e *entity.FloorPlan) *models.VentureFloorPlan {
	return &models.VentureFloorPlan{
		ID:              e.ID,
		VentureID:       e.VentureID,
		Name:            e.Name,
		DescriptionList: pq.StringArray(e.DescriptionList),
	}
}

func ToAreaEntity(m *models.VentureArea) *entity.Area {
	return &entity.Area{ID: m.ID, VentureID: m.VentureID, Name: m.Name}
}

func ToAreaModel(e *entity.Area) *models.VentureArea {
	return &models.VentureArea{ID: e.ID, VentureID: e.VentureID, Name: e.Name}
}

// ToImageEntity reads the two nullable references into a single attachment.
// Rows carrying both resolve to the floor plan.
func ToImageEntity(m *models.VentureImage) *entity.Image {
	img := &entity.Image{
		ID:          m.ID,
		VentureID:   m.VentureID,
		Key:         m.ImageKey,
		Caption:     m.Caption,
		IsCover:     m.IsCover,
		IsHighLight: m.IsHighLight,
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	switch {
	case m.FloorPlanID != nil:
		img.Attachment = entity.AttachToFloorPlan(*m.FloorPlanID)
	case m.AreaID != nil:
		img.Attachment = entity.AttachToArea(*m.AreaID)
	}
	return img
}

func ToImageModel(e *entity.Image) *models.VentureImage {
	return &models.VentureImage{
		ID:          e.ID,
		VentureID:   e.VentureID,
		ImageKey:    e.Key,
		Caption:     e.Caption,
		IsCover:     e.IsCover,
		IsHighLight: e.IsHighLight,
		Order:       e.Order,
		IsActive:    e.IsActive,
		FloorPlanID: e.Attachment.FloorPlanID(),
		AreaID:      e.Attachment.AreaID(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTagEntity(m *models.BlogTag) *entity.Tag {
	if m == nil {
		return nil
	}
	return &entity.Tag{ID: m.ID, Name: m.Name}
}

func ToArticleEntity(m *models.BlogArticle) *entity.Article {
	if m == nil {
		return nil
	}
	a := &entity.Article{
		ID:               m.ID,
		Slug:             m.Slug,
		Title:            m.Title,
		Tag:              ToTagEntity(m.Tag),
		ShortDescription: m.ShortDescription,
		CoverImageKey:    m.CoverImageKey,
		Content:          m.Content,
		IsHighlight:      m.IsHighlight,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if a.Tag == nil && m.TagID != nil {
		a.Tag = &entity.Tag{ID: *m.TagID}
	}
	return a
}

func ToArticleModel(e *entity.Article) *models.BlogArticle {
	m := &models.BlogArticle{
		ID:               e.ID,
		Slug:             e.Slug,
		Title:            e.Title,
		ShortDescription: e.ShortDescription,
		CoverImageKey:    e.CoverImageKey,
		Content:          e.Content,
		IsHighlight:      e.IsHighlight,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Tag != nil {
		id := e.Tag.ID
		m.TagID = &id
	}
	return m
}

func ToAdminUserEntity(m *models.AdminUser) *entity.AdminUser {
	if m == nil {
		return nil
	}
	return &entity.AdminUser{
		ID:       m.ID,
		Email:    m.Email,
		Password: m.Password,
		Role:     string(m.Role),
		IsActive: m.IsActive,
	}
}

func ToAdminUserModel(e *entity.AdminUser) *models.AdminUser {
	return &models.AdminUser{
		ID:       e.ID,
		Email:    e.Email,
		Password: e.Password,
		Role:     models.AdminRole(e.Role),
		IsActive: e.IsActive,
	}
}
