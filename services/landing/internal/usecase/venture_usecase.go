package usecase

import (
	"context"
	"fmt"

	"abq-api/pkg/logger"
	"abq-api/pkg/metrics"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/repo/persistent"
)

const (
	cacheKeyCollection = "venture:collection"
	cacheKeyDetail     = "venture:detail:"
)

type VentureUseCase interface {
	Collection(ctx context.Context) (*projection.CollectionView, error)
	Detail(ctx context.Context, slug string) (*projection.DetailView, error)
}

type ventureUseCase struct {
	ventureRepo persistent.VentureRepository
	urls        projection.URLResolver
	cache       ViewCache
	metrics     *metrics.Manager
	logger      *logger.Logger
}

func NewVentureUseCase(
	ventureRepo persistent.VentureRepository,
	urls projection.URLResolver,
	cache ViewCache,
	metrics *metrics.Manager,
	logger *logger.Logger,
) VentureUseCase {
	return &ventureUseCase{
		ventureRepo: ventureRepo,
		urls:        urls,
		cache:       cacheOrNoop(cache),
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *ventureUseCase) Collection(ctx context.Context) (*projection.CollectionView, error) {
	var view projection.CollectionView
	if uc.fromCache(ctx, "venture_collection", cacheKeyCollection, &view) {
		return &view, nil
	}

	categories, err := uc.ventureRepo.ListCategoriesWithActiveVentures(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	ventures, err := uc.ventureRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ventures: %w", err)
	}

	view = projection.Collection(categories, ventures, uc.urls)
	uc.toCache(ctx, cacheKeyCollection, view)
	return &view, nil
}

func (uc *ventureUseCase) Detail(ctx context.Context, slug string) (*projection.DetailView, error) {
	var view projection.DetailView
	key := cacheKeyDetail + slug
	if uc.fromCache(ctx, "venture_detail", key, &view) {
		return &view, nil
	}

	venture, err := uc.ventureRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	view, hasCover := projection.Detail(venture, uc.urls)
	if !hasCover {
		uc.metrics.MissingCover()
		uc.logger.Warn("Venture %s (id=%d) has no active cover image", venture.Slug, venture.ID)
	}

	uc.toCache(ctx, key, view)
	return &view, nil
}

func (uc *ventureUseCase) fromCache(ctx context.Context, view, key string, dst interface{}) bool {
	found, err := uc.cache.Get(ctx, key, dst)
	if err != nil {
		uc.logger.Warn("Cache read failed for %s: %v", key, err)
		return false
	}
	uc.metrics.CacheResult(view, found)
	return found
}

func (uc *ventureUseCase) toCache(ctx context.Context, key string, value interface{}) {
	if err := uc.cache.Set(ctx, key, value); err != nil {
		uc.logger.Warn("Cache write failed for %s: %v", key, err)
	}
}
