package persistent

import (
	"context"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"gorm.io/gorm"
)

type ArticleFilter struct {
	IsActive    *bool
	IsHighlight *bool
	TagID       *int64
	Search      string
}

type BlogRepository interface {
	ListActive(ctx context.Context) ([]entity.Article, error)
	GetActiveBySlug(ctx context.Context, slug string) (*entity.Article, error)
	ListActiveExcept(ctx context.Context, id int64) ([]entity.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]entity.Article, error)
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func toArticles(rows []models.BlogArticle) []entity.Article {
	out := make([]entity.Article, len(rows))
	for i := range rows {
		out[i] = *ToArticleEntity(&rows[i])
	}
	return out
}

func (r *blogRepository) ListActive(ctx context.Context) ([]entity.Article, error) {
	var rows []models.BlogArticle
	err := r.db.WithContext(ctx).Preload("Tag").
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toArticles(rows), nil
}

func (r *blogRepository) GetActiveBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var row models.BlogArticle
	if err := r.db.WithContext(ctx).Preload("Tag").Where("slug = ? AND is_active = ?", slug, true).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToArticleEntity(&row), nil
}

// ListActiveExcept skips the content column; callers only render summaries.
func (r *blogRepository) ListActiveExcept(ctx context.Context, id int64) ([]entity.Article, error) {
	var rows []models.BlogArticle
	err := r.db.WithContext(ctx).Preload("Tag").
		Omit("content").
		Where("is_active = ? AND id <> ?", true, id).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toArticles(rows), nil
}

func (r *blogRepository) List(ctx context.Context, filter ArticleFilter) ([]entity.Article, error) {
	query := r.db.WithContext(ctx).Preload("Tag").Order("created_at DESC, id DESC")

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsHighlight != nil {
		query = query.Where("is_highlight = ?", *filter.IsHighlight)
	}
	if filter.TagID != nil {
		query = query.Where("tag_id = ?", *filter.TagID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR slug ILIKE ? OR content ILIKE ?", like, like, like)
	}

	var rows []models.BlogArticle
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toArticles(rows), nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	var row models.BlogArticle
	if err := r.db.WithContext(ctx).Preload("Tag").Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToArticleEntity(&row), nil
}

func (r *blogRepository) Create(ctx context.Context, article *entity.Article) error {
	row := ToArticleModel(article)
	if err := r.db.WithContext(ctx).Omit("Tag").Create(row).Error; err != nil {
		return conflict(err)
	}
	article.ID = row.ID
	article.Slug = row.Slug
	article.CreatedAt = row.CreatedAt
	article.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *blogRepository) Update(ctx context.Context, article *entity.Article) error {
	row := ToArticleModel(article)
	res := r.db.WithContext(ctx).Model(&models.BlogArticle{ID: article.ID}).
		Select("slug", "title", "tag_id", "short_description", "cover_image_key", "content", "is_highlight", "is_active").
		Updates(row)
	if res.Error != nil {
		return conflict(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
