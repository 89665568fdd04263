package persistent

import (
	"context"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"gorm.io/gorm"
)

// TaxonomyRepository manages the named lookup tables: venture statuses,
// venture categories and blog tags.
type TaxonomyRepository interface {
	ListStatuses(ctx context.Context) ([]entity.Status, error)
	SaveStatus(ctx context.Context, s *entity.Status) error
	DeleteStatus(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	SaveCategory(ctx context.Context, c *entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListTags(ctx context.Context) ([]entity.Tag, error)
	SaveTag(ctx context.Context, t *entity.Tag) error
	DeleteTag(ctx context.Context, id int64) error
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) save(ctx context.Context, row interface{}, id int64, name string) error {
	db := r.db.WithContext(ctx)
	if id == 0 {
		return db.Create(row).Error
	}
	res := db.Model(row).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// clearAndDelete nulls the referencing column in table before deleting.
func (r *taxonomyRepository) clearAndDelete(ctx context.Context, row interface{}, id int64, table, column string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).Where(column+" = ?", id).Update(column, nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

func (r *taxonomyRepository) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	var rows []models.VentureStatus
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Status, len(rows))
	for i := range rows {
		out[i] = *ToStatusEntity(&rows[i])
	}
	return out, nil
}

func (r *taxonomyRepository) SaveStatus(ctx context.Context, s *entity.Status) error {
	row := &models.VentureStatus{ID: s.ID, Name: s.Name}
	if err := r.save(ctx, row, s.ID, s.Name); err != nil {
		return err
	}
	s.ID = row.ID
	return nil
}

func (r *taxonomyRepository) DeleteStatus(ctx context.Context, id int64) error {
	return r.clearAndDelete(ctx, &models.VentureStatus{}, id, "ventures", "status_id")
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var rows []models.VentureCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Category, len(rows))
	for i := range rows {
		out[i] = *ToCategoryEntity(&rows[i])
	}
	return out, nil
}

func (r *taxonomyRepository) SaveCategory(ctx context.Context, c *entity.Category) error {
	row := &models.VentureCategory{ID: c.ID, Name: c.Name}
	if err := r.save(ctx, row, c.ID, c.Name); err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *taxonomyRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.clearAndDelete(ctx, &models.VentureCategory{}, id, "ventures", "category_id")
}

func (r *taxonomyRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	var rows []models.BlogTag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Tag, len(rows))
	for i := range rows {
		out[i] = *ToTagEntity(&rows[i])
	}
	return out, nil
}

func (r *taxonomyRepository) SaveTag(ctx context.Context, t *entity.Tag) error {
	row := &models.BlogTag{ID: t.ID, Name: t.Name}
	if err := r.save(ctx, row, t.ID, t.Name); err != nil {
		return err
	}
	t.ID = row.ID
	return nil
}

func (r *taxonomyRepository) DeleteTag(ctx context.Context, id int64) error {
	return r.clearAndDelete(ctx, &models.BlogTag{}, id, "blog_articles", "tag_id")
}
