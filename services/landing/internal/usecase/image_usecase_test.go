package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"abq-api/pkg/logger"
	"abq-api/pkg/metrics"
	"abq-api/services/landing/internal/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type imageFixture struct {
	uc      *imageUseCase
	images  *memoryImageRepository
	storage *memoryStorage
	cache   *memoryCache
	metrics *metrics.Manager
}

func newImageFixture(t *testing.T, existing ...entity.Image) *imageFixture {
	t.Helper()

	venture := entity.Venture{
		ID:         7,
		Name:       "Residencial Solar",
		Slug:       "residencial-solar",
		FloorPlans: []entity.FloorPlan{{ID: 11, VentureID: 7, Name: "Tipo A"}},
		Areas:      []entity.Area{{ID: 21, VentureID: 7, Name: "Piscina"}},
	}

	ventures := new(MockVentureRepository)
	ventures.On("GetByID", mock.Anything, int64(7)).Return(&venture, nil)
	ventures.On("GetByID", mock.Anything, mock.Anything).Return(nil, entity.ErrNotFound)

	f := &imageFixture{
		images:  newMemoryImageRepository(venture, existing...),
		storage: newMemoryStorage(),
		cache:   newMemoryCache(),
		metrics: metrics.NewManager("test"),
	}
	f.uc = NewImageUseCase(f.images, ventures, f.storage, f.cache, f.metrics, logger.NewNop()).(*imageUseCase)
	f.uc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	return f
}

func (f *imageFixture) orders() map[int64]int {
	out := map[int64]int{}
	for _, img := range f.images.sorted() {
		out[img.ID] = img.Order
	}
	return out
}

func (f *imageFixture) covers() []int64 {
	var ids []int64
	for _, img := range f.images.sorted() {
		if img.IsCover {
			ids = append(ids, img.ID)
		}
	}
	return ids
}

func upload(order int, cover bool) UploadImageInput {
	return UploadImageInput{
		VentureID:   7,
		Filename:    "Fachada.JPG",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpeg-bytes"),
		IsCover:     cover,
		Order:       order,
	}
}

func TestImageUseCase_UploadAppends(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true},
		entity.Image{ID: 2, Order: 2, IsActive: true},
	)

	img, err := f.uc.Upload(context.Background(), upload(0, false))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Order)
	assert.True(t, img.IsActive)
	assert.Equal(t, map[int64]int{1: 1, 2: 2, 3: 3}, f.orders())
	assert.Contains(t, f.storage.objects, img.Key)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestImageUseCase_UploadIntoTakenSlotShiftsLater(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true},
		entity.Image{ID: 2, Order: 2, IsActive: true},
		entity.Image{ID: 3, Order: 3, IsActive: true},
	)

	img, err := f.uc.Upload(context.Background(), upload(2, false))
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 1, img.ID: 2, 2: 3, 3: 4}, f.orders())
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.ImageShifts))
}

func TestImageUseCase_UploadCoverClearsPrevious(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true, IsCover: true},
	)

	img, err := f.uc.Upload(context.Background(), upload(0, true))
	require.NoError(t, err)
	assert.Equal(t, []int64{img.ID}, f.covers())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CoverReassigned))
}

func TestImageUseCase_UploadRejectsForeignAttachment(t *testing.T) {
	f := newImageFixture(t)

	in := upload(0, false)
	in.Attachment = entity.AttachToFloorPlan(999)

	_, err := f.uc.Upload(context.Background(), in)
	assert.ErrorIs(t, err, entity.ErrInvalidAttachment)
	assert.Empty(t, f.storage.objects)
	assert.Empty(t, f.images.images)
}

func TestImageUseCase_UploadUnknownVenture(t *testing.T) {
	f := newImageFixture(t)

	in := upload(0, false)
	in.VentureID = 8

	_, err := f.uc.Upload(context.Background(), in)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestImageUseCase_UploadStorageFailure(t *testing.T) {
	f := newImageFixture(t)
	f.storage.failPut = errors.New("bucket gone")

	_, err := f.uc.Upload(context.Background(), upload(0, false))
	assert.Error(t, err)
	assert.Empty(t, f.images.images)
}

func TestImageUseCase_UploadCaptionTooLong(t *testing.T) {
	f := newImageFixture(t)

	in := upload(0, false)
	in.Caption = strings.Repeat("x", maxCaptionLength+1)

	_, err := f.uc.Upload(context.Background(), in)
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "caption")
}

func TestImageUseCase_MoveTo(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true},
		entity.Image{ID: 2, Order: 2, IsActive: true},
		entity.Image{ID: 3, Order: 3, IsActive: true},
	)

	img, err := f.uc.MoveTo(context.Background(), 7, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Order)
	assert.Equal(t, map[int64]int{3: 1, 1: 2, 2: 3}, f.orders())
}

func TestImageUseCase_MoveToUnknownImage(t *testing.T) {
	f := newImageFixture(t, entity.Image{ID: 1, Order: 1, IsActive: true})

	_, err := f.uc.MoveTo(context.Background(), 7, 42, 1)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestImageUseCase_SetCover(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true, IsCover: true},
		entity.Image{ID: 2, Order: 2, IsActive: true},
	)

	img, err := f.uc.SetCover(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.True(t, img.IsCover)
	assert.Equal(t, []int64{2}, f.covers())
	assert.Equal(t, map[int64]int{1: 1, 2: 2}, f.orders())
}

func TestImageUseCase_UpdateAttachment(t *testing.T) {
	f := newImageFixture(t, entity.Image{ID: 1, Order: 1, IsActive: true})

	area := entity.AttachToArea(21)
	img, err := f.uc.Update(context.Background(), 7, 1, UpdateImageInput{Attachment: &area})
	require.NoError(t, err)
	assert.Equal(t, area, img.Attachment)

	foreign := entity.AttachToArea(99)
	_, err = f.uc.Update(context.Background(), 7, 1, UpdateImageInput{Attachment: &foreign})
	assert.ErrorIs(t, err, entity.ErrInvalidAttachment)

	stored, err := f.images.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, area, stored.Attachment)
}

func TestImageUseCase_Deactivate(t *testing.T) {
	f := newImageFixture(t,
		entity.Image{ID: 1, Order: 1, IsActive: true, IsCover: true},
	)

	require.NoError(t, f.uc.Deactivate(context.Background(), 7, 1))

	stored, err := f.images.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.False(t, stored.IsCover)
}

func TestImageUseCase_SequenceKeepsSingleCoverAndUniqueOrder(t *testing.T) {
	f := newImageFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.uc.Upload(ctx, upload(0, i%2 == 0))
		require.NoError(t, err)
	}
	_, err := f.uc.Upload(ctx, upload(1, true))
	require.NoError(t, err)
	_, err = f.uc.MoveTo(ctx, 7, 2, 5)
	require.NoError(t, err)

	assert.Len(t, f.covers(), 1)

	seen := map[int]bool{}
	for _, order := range f.orders() {
		assert.False(t, seen[order], "order %d used twice", order)
		seen[order] = true
	}
	assert.Len(t, seen, 5)
}

func TestImageKey(t *testing.T) {
	v := &entity.Venture{ID: 7, Name: "Residencial São João"}
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	key := ImageKey(v, "Fachada.JPG", now)
	assert.True(t, strings.HasPrefix(key, "venture_images/7-residencial-sao-joao/20240309_140507_"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)

	key = ImageKey(v, "noext", now)
	assert.True(t, strings.HasSuffix(key, ".img"), key)
}
