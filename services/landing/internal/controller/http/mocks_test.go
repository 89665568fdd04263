package http

import (
	"context"
	"io"

	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/projection"
	"abq-api/services/landing/internal/repo/persistent"
	"abq-api/services/landing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type prefixURLs struct{}

func (prefixURLs) URL(key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.test/" + key
}

type MockVentureUseCase struct {
	mock.Mock
}

var _ usecase.VentureUseCase = (*MockVentureUseCase)(nil)

func (m *MockVentureUseCase) Collection(ctx context.Context) (*projection.CollectionView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projection.CollectionView), args.Error(1)
}

func (m *MockVentureUseCase) Detail(ctx context.Context, slug string) (*projection.DetailView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projection.DetailView), args.Error(1)
}

type MockBlogUseCase struct {
	mock.Mock
}

var _ usecase.BlogUseCase = (*MockBlogUseCase)(nil)

func (m *MockBlogUseCase) List(ctx context.Context) (*projection.ArticleListView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projection.ArticleListView), args.Error(1)
}

func (m *MockBlogUseCase) Detail(ctx context.Context, slug string) (*projection.ArticleDetailView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projection.ArticleDetailView), args.Error(1)
}

type MockContactUseCase struct {
	mock.Mock
}

var _ usecase.ContactUseCase = (*MockContactUseCase)(nil)

func (m *MockContactUseCase) Send(ctx context.Context, msg entity.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockAuthUseCase struct {
	mock.Mock
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.AdminUser, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.AdminUser), args.String(1), args.Error(2)
}

type MockImageUseCase struct {
	mock.Mock
}

var _ usecase.ImageUseCase = (*MockImageUseCase)(nil)

func (m *MockImageUseCase) Upload(ctx context.Context, in usecase.UploadImageInput) (*entity.Image, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageUseCase) Update(ctx context.Context, ventureID, imageID int64, in usecase.UpdateImageInput) (*entity.Image, error) {
	args := m.Called(ctx, ventureID, imageID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageUseCase) MoveTo(ctx context.Context, ventureID, imageID int64, order int) (*entity.Image, error) {
	args := m.Called(ctx, ventureID, imageID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageUseCase) SetCover(ctx context.Context, ventureID, imageID int64) (*entity.Image, error) {
	args := m.Called(ctx, ventureID, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockImageUseCase) Deactivate(ctx context.Context, ventureID, imageID int64) error {
	return m.Called(ctx, ventureID, imageID).Error(0)
}

type MockCatalogUseCase struct {
	mock.Mock
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func (m *MockCatalogUseCase) ListVentures(ctx context.Context, filter persistent.VentureFilter) ([]entity.Venture, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Venture), args.Error(1)
}

func (m *MockCatalogUseCase) GetVenture(ctx context.Context, id int64) (*entity.Venture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venture), args.Error(1)
}

func (m *MockCatalogUseCase) CreateVenture(ctx context.Context, in usecase.VentureInput) (*entity.Venture, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venture), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateVenture(ctx context.Context, id int64, in usecase.VentureInput) (*entity.Venture, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venture), args.Error(1)
}

func (m *MockCatalogUseCase) SetVentureActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockCatalogUseCase) SaveHighlight(ctx context.Context, ventureID, id int64, in usecase.HighlightInput) (*entity.HeroHighlight, error) {
	args := m.Called(ctx, ventureID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HeroHighlight), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteHighlight(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockCatalogUseCase) SaveAmenity(ctx context.Context, ventureID, id int64, in usecase.AmenityInput) (*entity.Amenity, error) {
	args := m.Called(ctx, ventureID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Amenity), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteAmenity(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockCatalogUseCase) SaveFloorPlan(ctx context.Context, ventureID, id int64, in usecase.FloorPlanInput) (*entity.FloorPlan, error) {
	args := m.Called(ctx, ventureID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FloorPlan), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteFloorPlan(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockCatalogUseCase) SaveArea(ctx context.Context, ventureID, id int64, in usecase.AreaInput) (*entity.Area, error) {
	args := m.Called(ctx, ventureID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Area), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteArea(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockCatalogUseCase) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Status), args.Error(1)
}

func (m *MockCatalogUseCase) SaveStatus(ctx context.Context, id int64, in usecase.NameInput) (*entity.Status, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Status), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteStatus(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogUseCase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCatalogUseCase) SaveCategory(ctx context.Context, id int64, in usecase.NameInput) (*entity.Category, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockArticleUseCase struct {
	mock.Mock
}

var _ usecase.ArticleUseCase = (*MockArticleUseCase)(nil)

func (m *MockArticleUseCase) ListArticles(ctx context.Context, filter persistent.ArticleFilter) ([]entity.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) GetArticle(ctx context.Context, id int64) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) CreateArticle(ctx context.Context, in usecase.ArticleInput) (*entity.Article, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) UpdateArticle(ctx context.Context, id int64, in usecase.ArticleInput) (*entity.Article, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) SetArticleActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockArticleUseCase) UploadCover(ctx context.Context, id int64, filename, contentType string, body io.ReadSeeker) (*entity.Article, error) {
	args := m.Called(ctx, id, filename, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) ListTags(ctx context.Context) ([]entity.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

func (m *MockArticleUseCase) SaveTag(ctx context.Context, id int64, in usecase.NameInput) (*entity.Tag, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockArticleUseCase) DeleteTag(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
