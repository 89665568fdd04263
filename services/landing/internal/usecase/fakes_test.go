package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"
	"sync"

	"abq-api/pkg/mailer"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/gallery"
	"abq-api/services/landing/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockVentureRepository struct {
	mock.Mock
}

var _ persistent.VentureRepository = (*MockVentureRepository)(nil)

func (m *MockVentureRepository) ListActive(ctx context.Context) ([]entity.Venture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Venture), args.Error(1)
}

func (m *MockVentureRepository) ListCategoriesWithActiveVentures(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockVentureRepository) GetActiveBySlug(ctx context.Context, slug string) (*entity.Venture, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venture), args.Error(1)
}

func (m *MockVentureRepository) GetByID(ctx context.Context, id int64) (*entity.Venture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venture), args.Error(1)
}

func (m *MockVentureRepository) List(ctx context.Context, filter persistent.VentureFilter) ([]entity.Venture, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Venture), args.Error(1)
}

func (m *MockVentureRepository) Create(ctx context.Context, venture *entity.Venture) error {
	return m.Called(ctx, venture).Error(0)
}

func (m *MockVentureRepository) Update(ctx context.Context, venture *entity.Venture) error {
	return m.Called(ctx, venture).Error(0)
}

func (m *MockVentureRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockVentureRepository) SaveHighlight(ctx context.Context, h *entity.HeroHighlight) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockVentureRepository) DeleteHighlight(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockVentureRepository) SaveAmenity(ctx context.Context, a *entity.Amenity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockVentureRepository) DeleteAmenity(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockVentureRepository) SaveFloorPlan(ctx context.Context, fp *entity.FloorPlan) error {
	return m.Called(ctx, fp).Error(0)
}

func (m *MockVentureRepository) DeleteFloorPlan(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

func (m *MockVentureRepository) SaveArea(ctx context.Context, a *entity.Area) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockVentureRepository) DeleteArea(ctx context.Context, ventureID, id int64) error {
	return m.Called(ctx, ventureID, id).Error(0)
}

type MockBlogRepository struct {
	mock.Mock
}

var _ persistent.BlogRepository = (*MockBlogRepository)(nil)

func (m *MockBlogRepository) ListActive(ctx context.Context) ([]entity.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Article), args.Error(1)
}

func (m *MockBlogRepository) GetActiveBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockBlogRepository) ListActiveExcept(ctx context.Context, id int64) ([]entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Article), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, filter persistent.ArticleFilter) ([]entity.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Article), args.Error(1)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockBlogRepository) Create(ctx context.Context, article *entity.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *MockBlogRepository) Update(ctx context.Context, article *entity.Article) error {
	return m.Called(ctx, article).Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

// memoryCache is a ViewCache that round-trips values through JSON.
type memoryCache struct {
	entries     map[string][]byte
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.entries = make(map[string][]byte)
	c.invalidated++
	return nil
}

type memoryStorage struct {
	objects map[string][]byte
	deleted []string
	failPut error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, key string, body io.ReadSeeker, _ string) error {
	if s.failPut != nil {
		return s.failPut
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	s.objects[key] = buf.Bytes()
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *memoryStorage) URL(key string) string {
	return "https://cdn.test/" + key
}

type recordingSender struct {
	sent []mailer.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// memoryImageRepository keeps one venture's images in memory behind a mutex,
// standing in for the row lock.
type memoryImageRepository struct {
	mu      sync.Mutex
	venture entity.Venture
	images  map[int64]*entity.Image
	nextID  int64
}

func newMemoryImageRepository(v entity.Venture, images ...entity.Image) *memoryImageRepository {
	r := &memoryImageRepository{venture: v, images: make(map[int64]*entity.Image)}
	for i := range images {
		img := images[i]
		img.VentureID = v.ID
		r.images[img.ID] = &img
		if img.ID > r.nextID {
			r.nextID = img.ID
		}
	}
	return r
}

func (r *memoryImageRepository) WithVentureLock(_ context.Context, ventureID int64, fn func(persistent.ImageStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ventureID != r.venture.ID {
		return entity.ErrNotFound
	}
	return fn(&memoryImageStore{repo: r})
}

func (r *memoryImageRepository) GetByID(_ context.Context, id int64) (*entity.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

// sorted returns images ordered by order then id.
func (r *memoryImageRepository) sorted() []entity.Image {
	out := make([]entity.Image, 0, len(r.images))
	for _, img := range r.images {
		out = append(out, *img)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type memoryImageStore struct {
	repo *memoryImageRepository
}

func (s *memoryImageStore) Venture() *entity.Venture {
	return &s.repo.venture
}

func (s *memoryImageStore) Slots() ([]gallery.Slot, error) {
	var slots []gallery.Slot
	for _, img := range s.repo.sorted() {
		slots = append(slots, gallery.Slot{ID: img.ID, Order: img.Order, IsCover: img.IsCover})
	}
	return slots, nil
}

func (s *memoryImageStore) Get(id int64) (*entity.Image, error) {
	img, ok := s.repo.images[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (s *memoryImageStore) ClearCover(ids []int64) error {
	for _, id := range ids {
		s.repo.images[id].IsCover = false
	}
	return nil
}

func (s *memoryImageStore) ShiftOrder(id int64, order int) error {
	s.repo.images[id].Order = order
	return nil
}

func (s *memoryImageStore) Create(img *entity.Image) error {
	s.repo.nextID++
	img.ID = s.repo.nextID
	img.VentureID = s.repo.venture.ID
	cp := *img
	s.repo.images[img.ID] = &cp
	return nil
}

func (s *memoryImageStore) Update(img *entity.Image) error {
	if _, ok := s.repo.images[img.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *img
	s.repo.images[img.ID] = &cp
	return nil
}

type MockTaxonomyRepository struct {
	mock.Mock
}

var _ persistent.TaxonomyRepository = (*MockTaxonomyRepository)(nil)

func (m *MockTaxonomyRepository) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Status), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveStatus(ctx context.Context, s *entity.Status) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockTaxonomyRepository) DeleteStatus(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveCategory(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockTaxonomyRepository) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaxonomyRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

func (m *MockTaxonomyRepository) SaveTag(ctx context.Context, t *entity.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaxonomyRepository) DeleteTag(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
