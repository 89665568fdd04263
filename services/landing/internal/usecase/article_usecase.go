package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"abq-api/pkg/logger"
	"abq-api/pkg/slug"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/repo/persistent"

	"github.com/go-playground/validator/v10"
)

// ArticleUseCase backs the admin API for blog articles and tags.
type ArticleUseCase interface {
	ListArticles(ctx context.Context, filter persistent.ArticleFilter) ([]entity.Article, error)
	GetArticle(ctx context.Context, id int64) (*entity.Article, error)
	CreateArticle(ctx context.Context, in ArticleInput) (*entity.Article, error)
	UpdateArticle(ctx context.Context, id int64, in ArticleInput) (*entity.Article, error)
	SetArticleActive(ctx context.Context, id int64, active bool) error
	UploadCover(ctx context.Context, id int64, filename, contentType string, body io.ReadSeeker) (*entity.Article, error)

	ListTags(ctx context.Context) ([]entity.Tag, error)
	SaveTag(ctx context.Context, id int64, in NameInput) (*entity.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

type articleUseCase struct {
	blogRepo     persistent.BlogRepository
	taxonomyRepo persistent.TaxonomyRepository
	storage      ObjectStorage
	cache        ViewCache
	validate     *validator.Validate
	logger       *logger.Logger
	now          func() time.Time
}

func NewArticleUseCase(
	blogRepo persistent.BlogRepository,
	taxonomyRepo persistent.TaxonomyRepository,
	storage ObjectStorage,
	cache ViewCache,
	logger *logger.Logger,
) ArticleUseCase {
	return &articleUseCase{
		blogRepo:     blogRepo,
		taxonomyRepo: taxonomyRepo,
		storage:      storage,
		cache:        cacheOrNoop(cache),
		validate:     newValidator(),
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *articleUseCase) ListArticles(ctx context.Context, filter persistent.ArticleFilter) ([]entity.Article, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return uc.blogRepo.List(ctx, filter)
}

func (uc *articleUseCase) GetArticle(ctx context.Context, id int64) (*entity.Article, error) {
	return uc.blogRepo.GetByID(ctx, id)
}

func (uc *articleUseCase) CreateArticle(ctx context.Context, in ArticleInput) (*entity.Article, error) {
	in.normalize()
	if err := uc.check(in); err != nil {
		return nil, err
	}

	article := &entity.Article{}
	applyArticleInput(article, in, true)
	if err := uc.blogRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Article %s created with id %d", article.Slug, article.ID)
	return uc.blogRepo.GetByID(ctx, article.ID)
}

func (uc *articleUseCase) UpdateArticle(ctx context.Context, id int64, in ArticleInput) (*entity.Article, error) {
	in.normalize()
	if err := uc.check(in); err != nil {
		return nil, err
	}

	article, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyArticleInput(article, in, article.IsActive)
	if err := uc.blogRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return uc.blogRepo.GetByID(ctx, id)
}

func (uc *articleUseCase) SetArticleActive(ctx context.Context, id int64, active bool) error {
	article, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	article.IsActive = active
	if err := uc.blogRepo.Update(ctx, article); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// UploadCover stores the new cover and then removes the previous object.
func (uc *articleUseCase) UploadCover(ctx context.Context, id int64, filename, contentType string, body io.ReadSeeker) (*entity.Article, error) {
	article, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := "blog_covers/" + objectName(filename, uc.now())
	if err := uc.storage.Upload(ctx, key, body, contentType); err != nil {
		return nil, err
	}

	previous := article.CoverImageKey
	article.CoverImageKey = key
	if err := uc.blogRepo.Update(ctx, article); err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned object %s: %v", key, delErr)
		}
		return nil, err
	}

	if previous != "" && !strings.HasPrefix(previous, "http") {
		if err := uc.storage.Delete(ctx, previous); err != nil {
			uc.logger.Warn("Failed to remove previous cover %s: %v", previous, err)
		}
	}

	uc.invalidate(ctx)
	return article, nil
}

func (uc *articleUseCase) ListTags(ctx context.Context) ([]entity.Tag, error) {
	return uc.taxonomyRepo.ListTags(ctx)
}

func (uc *articleUseCase) SaveTag(ctx context.Context, id int64, in NameInput) (*entity.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	t := &entity.Tag{ID: id, Name: in.Name}
	if err := uc.taxonomyRepo.SaveTag(ctx, t); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return t, nil
}

func (uc *articleUseCase) DeleteTag(ctx context.Context, id int64) error {
	if err := uc.taxonomyRepo.DeleteTag(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *articleUseCase) check(in ArticleInput) error {
	if err := validateStruct(uc.validate, in); err != nil {
		return err
	}
	if in.Slug != "" && slug.Make(in.Slug) != in.Slug {
		verr := entity.NewValidationError()
		verr.Add("slug", "Enter a valid slug consisting of lowercase letters, numbers, underscores or hyphens.")
		return verr
	}
	if in.Slug == "" && slug.Make(in.Title) == "" {
		verr := entity.NewValidationError()
		verr.Add("slug", "Could not derive a slug from the title.")
		return verr
	}
	return nil
}

func applyArticleInput(a *entity.Article, in ArticleInput, defaultActive bool) {
	a.Title = in.Title
	a.Slug = in.Slug
	if a.Slug == "" {
		a.Slug = slug.Make(in.Title)
	}
	a.Tag = optionalTag(in.TagID)
	a.ShortDescription = in.ShortDescription
	a.Content = in.Content
	a.IsHighlight = in.IsHighlight
	a.IsActive = boolOr(in.IsActive, defaultActive)
}

func (uc *articleUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate view cache: %v", err)
	}
}
