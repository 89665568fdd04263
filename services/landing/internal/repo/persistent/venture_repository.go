package persistent

import (
	"context"
	"errors"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"gorm.io/gorm"
)

type VentureFilter struct {
	StatusID    *int64
	CategoryID  *int64
	IsLastUnits *bool
	Search      string
}

type VentureRepository interface {
	ListActive(ctx context.Context) ([]entity.Venture, error)
	ListCategoriesWithActiveVentures(ctx context.Context) ([]entity.Category, error)
	GetActiveBySlug(ctx context.Context, slug string) (*entity.Venture, error)
	GetByID(ctx context.Context, id int64) (*entity.Venture, error)
	List(ctx context.Context, filter VentureFilter) ([]entity.Venture, error)
	Create(ctx context.Context, venture *entity.Venture) error
	Update(ctx context.Context, venture *entity.Venture) error
	SetActive(ctx context.Context, id int64, active bool) error

	SaveHighlight(ctx context.Context, h *entity.HeroHighlight) error
	DeleteHighlight(ctx context.Context, ventureID, id int64) error
	SaveAmenity(ctx context.Context, a *entity.Amenity) error
	DeleteAmenity(ctx context.Context, ventureID, id int64) error
	SaveFloorPlan(ctx context.Context, fp *entity.FloorPlan) error
	DeleteFloorPlan(ctx context.Context, ventureID, id int64) error
	SaveArea(ctx context.Context, a *entity.Area) error
	DeleteArea(ctx context.Context, ventureID, id int64) error
}

type ventureRepository struct {
	db *gorm.DB
}

func NewVentureRepository(db *gorm.DB) VentureRepository {
	return &ventureRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

func conflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrConflict
	}
	return err
}

func (r *ventureRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Status").
		Preload("Category").
		Preload("HeroHighlights", func(db *gorm.DB) *gorm.DB {
			return db.Order("venture_hero_highlights.id ASC")
		}).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("venture_amenities.id ASC")
		}).
		Preload("FloorPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("venture_floor_plans.id ASC")
		}).
		Preload("Areas", func(db *gorm.DB) *gorm.DB {
			return db.Order("venture_areas.id ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("venture_images.sort_order ASC, venture_images.id ASC")
		})
}

func toVentures(rows []models.Venture) []entity.Venture {
	out := make([]entity.Venture, len(rows))
	for i := range rows {
		out[i] = *ToVentureEntity(&rows[i])
	}
	return out
}

func (r *ventureRepository) ListActive(ctx context.Context) ([]entity.Venture, error) {
	var rows []models.Venture
	err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Where("venture_images.is_cover = ? AND venture_images.is_active = ?", true, true).
				Order("venture_images.sort_order ASC, venture_images.id ASC")
		}).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toVentures(rows), nil
}

func (r *ventureRepository) ListCategoriesWithActiveVentures(ctx context.Context) ([]entity.Category, error) {
	var rows []models.VentureCategory
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.Venture{}).Select("category_id").Where("is_active = ? AND category_id IS NOT NULL", true)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Category, len(rows))
	for i := range rows {
		out[i] = *ToCategoryEntity(&rows[i])
	}
	return out, nil
}

func (r *ventureRepository) GetActiveBySlug(ctx context.Context, slug string) (*entity.Venture, error) {
	var row models.Venture
	if err := r.withChildren(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToVentureEntity(&row), nil
}

func (r *ventureRepository) GetByID(ctx context.Context, id int64) (*entity.Venture, error) {
	var row models.Venture
	if err := r.withChildren(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToVentureEntity(&row), nil
}

func (r *ventureRepository) List(ctx context.Context, filter VentureFilter) ([]entity.Venture, error) {
	query := r.db.WithContext(ctx).Preload("Status").Preload("Category").Order("id ASC")

	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsLastUnits != nil {
		query = query.Where("is_last_units = ?", *filter.IsLastUnits)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ? OR short_description ILIKE ? OR location ILIKE ?", like, like, like, like)
	}

	var rows []models.Venture
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toVentures(rows), nil
}

func (r *ventureRepository) Create(ctx context.Context, venture *entity.Venture) error {
	row := ToVentureModel(venture)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return conflict(err)
	}
	venture.ID = row.ID
	venture.Slug = row.Slug
	venture.CreatedAt = row.CreatedAt
	venture.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ventureRepository) Update(ctx context.Context, venture *entity.Venture) error {
	row := ToVentureModel(venture)
	res := r.db.WithContext(ctx).Model(&models.Venture{ID: venture.ID}).
		Select("slug", "name", "short_description", "location", "total_units", "is_last_units",
			"is_active", "yt_video_id", "status_id", "category_id").
		Updates(row)
	if res.Error != nil {
		return conflict(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ventureRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.Venture{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// saveChild inserts when id is zero, otherwise updates the row owned by ventureID.
func (r *ventureRepository) saveChild(ctx context.Context, row interface{}, id, ventureID int64) error {
	db := r.db.WithContext(ctx)
	if id == 0 {
		return db.Create(row).Error
	}
	res := db.Model(row).Where("id = ? AND venture_id = ?", id, ventureID).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ventureRepository) deleteChild(ctx context.Context, row interface{}, ventureID, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND venture_id = ?", id, ventureID).Delete(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ventureRepository) SaveHighlight(ctx context.Context, h *entity.HeroHighlight) error {
	row := ToHighlightModel(h)
	if err := r.saveChild(ctx, row, h.ID, h.VentureID); err != nil {
		return err
	}
	h.ID = row.ID
	return nil
}

func (r *ventureRepository) DeleteHighlight(ctx context.Context, ventureID, id int64) error {
	return r.deleteChild(ctx, &models.VentureHeroHighlight{}, ventureID, id)
}

func (r *ventureRepository) SaveAmenity(ctx context.Context, a *entity.Amenity) error {
	row := ToAmenityModel(a)
	if err := r.saveChild(ctx, row, a.ID, a.VentureID); err != nil {
		return err
	}
	a.ID = row.ID
	a.Span = row.Span
	return nil
}

func (r *ventureRepository) DeleteAmenity(ctx context.Context, ventureID, id int64) error {
	return r.deleteChild(ctx, &models.VentureAmenity{}, ventureID, id)
}

func (r *ventureRepository) SaveFloorPlan(ctx context.Context, fp *entity.FloorPlan) error {
	row := ToFloorPlanModel(fp)
	if err := r.saveChild(ctx, row, fp.ID, fp.VentureID); err != nil {
		return err
	}
	fp.ID = row.ID
	fp.DescriptionList = []string(row.DescriptionList)
	return nil
}

// DeleteFloorPlan detaches its images before removing the plan.
func (r *ventureRepository) DeleteFloorPlan(ctx context.Context, ventureID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VentureImage{}).
			Where("venture_id = ? AND floor_plan_id = ?", ventureID, id).
			Update("floor_plan_id", nil).Error; err != nil {
			return err
		}
		repo := &ventureRepository{db: tx}
		return repo.deleteChild(ctx, &models.VentureFloorPlan{}, ventureID, id)
	})
}

func (r *ventureRepository) SaveArea(ctx context.Context, a *entity.Area) error {
	row := ToAreaModel(a)
	if err := r.saveChild(ctx, row, a.ID, a.VentureID); err != nil {
		return err
	}
	a.ID = row.ID
	return nil
}

func (r *ventureRepository) DeleteArea(ctx context.Context, ventureID, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VentureImage{}).
			Where("venture_id = ? AND area_id = ?", ventureID, id).
			Update("area_id", nil).Error; err != nil {
			return err
		}
		repo := &ventureRepository{db: tx}
		return repo.deleteChild(ctx, &models.VentureArea{}, ventureID, id)
	})
}
