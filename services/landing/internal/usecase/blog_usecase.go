package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"abq-api/pkg/logger"
	"abq-api/pkg/metrics"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/repo/persistent"
)

const cacheKeyBlogList = "blog:list"

// Shuffler has the signature of rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

type BlogUseCase interface {
	List(ctx context.Context) (*projection.ArticleListView, error)
	Detail(ctx context.Context, slug string) (*projection.ArticleDetailView, error)
}

type blogUseCase struct {
	blogRepo persistent.BlogRepository
	urls     projection.URLResolver
	cache    ViewCache
	shuffle  Shuffler
	metrics  *metrics.Manager
	logger   *logger.Logger
}

func NewBlogUseCase(
	blogRepo persistent.BlogRepository,
	urls projection.URLResolver,
	cache ViewCache,
	shuffle Shuffler,
	metrics *metrics.Manager,
	logger *logger.Logger,
) BlogUseCase {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &blogUseCase{
		blogRepo: blogRepo,
		urls:     urls,
		cache:    cacheOrNoop(cache),
		shuffle:  shuffle,
		metrics:  metrics,
		logger:   logger,
	}
}

func (uc *blogUseCase) List(ctx context.Context) (*projection.ArticleListView, error) {
	var view projection.ArticleListView
	found, err := uc.cache.Get(ctx, cacheKeyBlogList, &view)
	if err != nil {
		uc.logger.Warn("Cache read failed for %s: %v", cacheKeyBlogList, err)
	}
	uc.metrics.CacheResult("blog_list", found)
	if found {
		return &view, nil
	}

	articles, err := uc.blogRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	view = projection.ArticleList(articles, uc.urls)
	if err := uc.cache.Set(ctx, cacheKeyBlogList, view); err != nil {
		uc.logger.Warn("Cache write failed for %s: %v", cacheKeyBlogList, err)
	}
	return &view, nil
}

func (uc *blogUseCase) Detail(ctx context.Context, slug string) (*projection.ArticleDetailView, error) {
	article, err := uc.blogRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.blogRepo.ListActiveExcept(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	view := projection.ArticleDetail(article, uc.sample(candidates, entity.MaxSuggestedArticles), uc.urls)
	return &view, nil
}

// sample picks min(k, len(items)) items uniformly without replacement.
func (uc *blogUseCase) sample(items []entity.Article, k int) []entity.Article {
	pool := append([]entity.Article(nil), items...)
	uc.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > k {
		pool = pool[:k]
	}
	return pool
}
