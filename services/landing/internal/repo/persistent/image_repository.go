package persistent

import (
	"context"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/gallery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImageStore is the set of writes available while a venture's images are locked.
type ImageStore interface {
	Venture() *entity.Venture
	Slots() ([]gallery.Slot, error)
	Get(id int64) (*entity.Image, error)
	ClearCover(ids []int64) error
	ShiftOrder(id int64, order int) error
	Create(img *entity.Image) error
	Update(img *entity.Image) error
}

type ImageRepository interface {
	// WithVentureLock runs fn in one transaction holding a row lock on the
	// venture, so concurrent image writes on the same venture serialize.
	WithVentureLock(ctx context.Context, ventureID int64, fn func(store ImageStore) error) error
	GetByID(ctx context.Context, id int64) (*entity.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) WithVentureLock(ctx context.Context, ventureID int64, fn func(store ImageStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venture models.Venture
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ventureID).
			First(&venture).Error
		if err != nil {
			return notFound(err)
		}

		if err := tx.Where("venture_id = ?", ventureID).Order("id ASC").Find(&venture.FloorPlans).Error; err != nil {
			return err
		}
		if err := tx.Where("venture_id = ?", ventureID).Order("id ASC").Find(&venture.Areas).Error; err != nil {
			return err
		}

		return fn(&imageStore{tx: tx, venture: ToVentureEntity(&venture)})
	})
}

func (r *imageRepository) GetByID(ctx context.Context, id int64) (*entity.Image, error) {
	var row models.VentureImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToImageEntity(&row), nil
}

type imageStore struct {
	tx      *gorm.DB
	venture *entity.Venture
}

func (s *imageStore) Venture() *entity.Venture {
	return s.venture
}

func (s *imageStore) Slots() ([]gallery.Slot, error) {
	var rows []models.VentureImage
	err := s.tx.Select("id", "sort_order", "is_cover").
		Where("venture_id = ?", s.venture.ID).
		Order("sort_order ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	slots := make([]gallery.Slot, len(rows))
	for i, row := range rows {
		slots[i] = gallery.Slot{ID: row.ID, Order: row.Order, IsCover: row.IsCover}
	}
	return slots, nil
}

func (s *imageStore) Get(id int64) (*entity.Image, error) {
	var row models.VentureImage
	if err := s.tx.Where("id = ? AND venture_id = ?", id, s.venture.ID).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToImageEntity(&row), nil
}

func (s *imageStore) ClearCover(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.tx.Model(&models.VentureImage{}).
		Where("venture_id = ? AND id IN ?", s.venture.ID, ids).
		Update("is_cover", false).Error
}

func (s *imageStore) ShiftOrder(id int64, order int) error {
	return s.tx.Model(&models.VentureImage{}).
		Where("id = ? AND venture_id = ?", id, s.venture.ID).
		Update("sort_order", order).Error
}

func (s *imageStore) Create(img *entity.Image) error {
	row := ToImageModel(img)
	row.VentureID = s.venture.ID
	if err := s.tx.Create(row).Error; err != nil {
		return err
	}
	*img = *ToImageEntity(row)
	return nil
}

func (s *imageStore) Update(img *entity.Image) error {
	row := ToImageModel(img)
	res := s.tx.Model(&models.VentureImage{ID: img.ID}).
		Where("venture_id = ?", s.venture.ID).
		Select("image_key", "caption", "is_cover", "is_high_light", "sort_order", "is_active", "floor_plan_id", "area_id").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
