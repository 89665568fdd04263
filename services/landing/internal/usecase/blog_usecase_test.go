package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"abq-api/pkg/logger"
	"abq-api/services/landing/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// keepOrder is a Shuffler that leaves the input untouched.
func keepOrder(int, func(i, j int)) {}

// reverse is a deterministic Shuffler.
func reverse(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func articles(ids ...int64) []entity.Article {
	out := make([]entity.Article, len(ids))
	for i, id := range ids {
		out[i] = entity.Article{ID: id, Slug: "a" + string(rune('0'+id)), IsActive: true, CreatedAt: time.Unix(id, 0)}
	}
	return out
}

func TestBlogUseCase_DetailSuggestsThree(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := NewBlogUseCase(repo, newMemoryStorage(), nil, reverse, nil, logger.NewNop())

	current := &entity.Article{ID: 1, Slug: "current", Title: "Current", Content: "<p>hi</p>", IsActive: true}
	repo.On("GetActiveBySlug", mock.Anything, "current").Return(current, nil)
	repo.On("ListActiveExcept", mock.Anything, int64(1)).Return(articles(2, 3, 4, 5, 6), nil)

	view, err := uc.Detail(context.Background(), "current")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", view.Content)
	require.Len(t, view.SuggestedArticles, entity.MaxSuggestedArticles)

	var ids []int64
	for _, s := range view.SuggestedArticles {
		ids = append(ids, s.ID)
		assert.NotEqual(t, int64(1), s.ID)
	}
	assert.Equal(t, []int64{6, 5, 4}, ids)
}

func TestBlogUseCase_DetailFewerCandidates(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := NewBlogUseCase(repo, newMemoryStorage(), nil, keepOrder, nil, logger.NewNop())

	repo.On("GetActiveBySlug", mock.Anything, "current").Return(&entity.Article{ID: 1, IsActive: true}, nil)
	repo.On("ListActiveExcept", mock.Anything, int64(1)).Return(articles(2), nil)

	view, err := uc.Detail(context.Background(), "current")
	require.NoError(t, err)
	require.Len(t, view.SuggestedArticles, 1)
	assert.Equal(t, int64(2), view.SuggestedArticles[0].ID)
}

func TestBlogUseCase_DetailNoCandidates(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := NewBlogUseCase(repo, newMemoryStorage(), nil, nil, nil, logger.NewNop())

	repo.On("GetActiveBySlug", mock.Anything, "only").Return(&entity.Article{ID: 1, IsActive: true}, nil)
	repo.On("ListActiveExcept", mock.Anything, int64(1)).Return([]entity.Article{}, nil)

	view, err := uc.Detail(context.Background(), "only")
	require.NoError(t, err)
	assert.Empty(t, view.SuggestedArticles)
}

func TestBlogUseCase_DetailNotFound(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := NewBlogUseCase(repo, newMemoryStorage(), nil, nil, nil, logger.NewNop())

	repo.On("GetActiveBySlug", mock.Anything, "gone").Return(nil, entity.ErrNotFound)

	_, err := uc.Detail(context.Background(), "gone")
	assert.ErrorIs(t, err, entity.ErrNotFound)
	repo.AssertNotCalled(t, "ListActiveExcept", mock.Anything, mock.Anything)
}

func TestBlogUseCase_SampleIsWithoutReplacement(t *testing.T) {
	uc := &blogUseCase{shuffle: reverse}
	picked := uc.sample(articles(1, 2, 3, 4), 3)

	seen := map[int64]bool{}
	for _, a := range picked {
		assert.False(t, seen[a.ID], "article %d picked twice", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, picked, 3)
}

func TestBlogUseCase_List(t *testing.T) {
	repo := new(MockBlogRepository)
	cache := newMemoryCache()
	uc := NewBlogUseCase(repo, newMemoryStorage(), cache, nil, nil, logger.NewNop())

	list := articles(1, 2)
	list[0].IsHighlight = true
	repo.On("ListActive", mock.Anything).Return(list, nil).Once()

	view, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, view.HighlightedArticles, 1)
	require.Len(t, view.RegularArticles, 1)

	_, err = uc.List(context.Background())
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBlogUseCase_ListError(t *testing.T) {
	repo := new(MockBlogRepository)
	uc := NewBlogUseCase(repo, newMemoryStorage(), nil, nil, nil, logger.NewNop())

	repo.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	_, err := uc.List(context.Background())
	assert.Error(t, err)
}
