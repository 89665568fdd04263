package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"abq-api/pkg/logger"
	"abq-api/pkg/metrics"
	"abq-api/pkg/slug"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/gallery"
	"abq-api/services/landing/internal/repo/persistent"

	"github.com/google/uuid"
)

const maxCaptionLength = 200

type UploadImageInput struct {
	VentureID   int64
	Filename    string
	ContentType string
	Body        io.ReadSeeker
	Caption     string
	IsCover     bool
	IsHighLight bool
	Order       int
	Attachment  entity.Attachment
}

// UpdateImageInput leaves nil fields unchanged.
type UpdateImageInput struct {
	Caption     *string
	IsCover     *bool
	IsHighLight *bool
	IsActive    *bool
	Order       *int
	Attachment  *entity.Attachment
}

type ImageUseCase interface {
	Upload(ctx context.Context, in UploadImageInput) (*entity.Image, error)
	Update(ctx context.Context, ventureID, imageID int64, in UpdateImageInput) (*entity.Image, error)
	MoveTo(ctx context.Context, ventureID, imageID int64, order int) (*entity.Image, error)
	SetCover(ctx context.Context, ventureID, imageID int64) (*entity.Image, error)
	Deactivate(ctx context.Context, ventureID, imageID int64) error
}

type imageUseCase struct {
	imageRepo   persistent.ImageRepository
	ventureRepo persistent.VentureRepository
	storage     ObjectStorage
	cache       ViewCache
	metrics     *metrics.Manager
	logger      *logger.Logger
	now         func() time.Time
}

func NewImageUseCase(
	imageRepo persistent.ImageRepository,
	ventureRepo persistent.VentureRepository,
	storage ObjectStorage,
	cache ViewCache,
	metrics *metrics.Manager,
	logger *logger.Logger,
) ImageUseCase {
	return &imageUseCase{
		imageRepo:   imageRepo,
		ventureRepo: ventureRepo,
		storage:     storage,
		cache:       cacheOrNoop(cache),
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *imageUseCase) Upload(ctx context.Context, in UploadImageInput) (*entity.Image, error) {
	if err := checkCaption(in.Caption); err != nil {
		return nil, err
	}
	venture, err := uc.ventureRepo.GetByID(ctx, in.VentureID)
	if err != nil {
		return nil, err
	}
	if err := validateAttachment(venture, in.Attachment); err != nil {
		return nil, err
	}

	key := ImageKey(venture, in.Filename, uc.now())
	if err := uc.storage.Upload(ctx, key, in.Body, in.ContentType); err != nil {
		return nil, err
	}

	img := &entity.Image{
		VentureID:   venture.ID,
		Key:         key,
		Caption:     in.Caption,
		IsCover:     in.IsCover,
		IsHighLight: in.IsHighLight,
		Order:       in.Order,
		IsActive:    true,
		Attachment:  in.Attachment,
	}

	err = uc.imageRepo.WithVentureLock(ctx, venture.ID, func(store persistent.ImageStore) error {
		if err := validateAttachment(store.Venture(), img.Attachment); err != nil {
			return err
		}
		slots, err := store.Slots()
		if err != nil {
			return err
		}
		g := gallery.New(slots)
		var plan gallery.Plan
		if img.Order > 0 {
			plan = g.InsertAt(gallery.Slot{IsCover: img.IsCover}, img.Order)
		} else {
			plan = g.Append(gallery.Slot{IsCover: img.IsCover})
		}
		if err := uc.applyPlan(store, plan); err != nil {
			return err
		}
		img.Order = plan.Order
		return store.Create(img)
	})
	if err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned object %s: %v", key, delErr)
		}
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Image %d uploaded to venture %d at order %d", img.ID, venture.ID, img.Order)
	return img, nil
}

func (uc *imageUseCase) Update(ctx context.Context, ventureID, imageID int64, in UpdateImageInput) (*entity.Image, error) {
	return uc.modify(ctx, ventureID, imageID, resave, func(img *entity.Image) {
		if in.Caption != nil {
			img.Caption = *in.Caption
		}
		if in.IsCover != nil {
			img.IsCover = *in.IsCover
		}
		if in.IsHighLight != nil {
			img.IsHighLight = *in.IsHighLight
		}
		if in.IsActive != nil {
			img.IsActive = *in.IsActive
		}
		if in.Order != nil {
			img.Order = *in.Order
		}
		if in.Attachment != nil {
			img.Attachment = *in.Attachment
		}
	})
}

func (uc *imageUseCase) MoveTo(ctx context.Context, ventureID, imageID int64, order int) (*entity.Image, error) {
	place := func(g *gallery.Gallery, img *entity.Image) (gallery.Plan, bool) {
		return g.MoveTo(img.ID, order)
	}
	return uc.modify(ctx, ventureID, imageID, place, nil)
}

func (uc *imageUseCase) SetCover(ctx context.Context, ventureID, imageID int64) (*entity.Image, error) {
	place := func(g *gallery.Gallery, img *entity.Image) (gallery.Plan, bool) {
		return g.SetCover(img.ID)
	}
	return uc.modify(ctx, ventureID, imageID, place, nil)
}

// Deactivate hides the image and drops its cover flag. The row is kept.
func (uc *imageUseCase) Deactivate(ctx context.Context, ventureID, imageID int64) error {
	_, err := uc.modify(ctx, ventureID, imageID, resave, func(img *entity.Image) {
		img.IsActive = false
		img.IsCover = false
	})
	return err
}

// placement positions an already edited image inside its gallery.
type placement func(g *gallery.Gallery, img *entity.Image) (gallery.Plan, bool)

func resave(g *gallery.Gallery, img *entity.Image) (gallery.Plan, bool) {
	return g.Save(gallery.Slot{ID: img.ID, Order: img.Order, IsCover: img.IsCover}), true
}

// modify applies edit (when set) to an existing image, then places it with
// place and stores the result, all under the venture lock.
func (uc *imageUseCase) modify(ctx context.Context, ventureID, imageID int64, place placement, edit func(img *entity.Image)) (*entity.Image, error) {
	var saved *entity.Image
	err := uc.imageRepo.WithVentureLock(ctx, ventureID, func(store persistent.ImageStore) error {
		img, err := store.Get(imageID)
		if err != nil {
			return err
		}

		if edit != nil {
			edit(img)
		}
		if err := checkCaption(img.Caption); err != nil {
			return err
		}
		if err := validateAttachment(store.Venture(), img.Attachment); err != nil {
			return err
		}

		slots, err := store.Slots()
		if err != nil {
			return err
		}
		g := gallery.New(slots)
		plan, ok := place(g, img)
		if !ok {
			return entity.ErrNotFound
		}
		if err := uc.applyPlan(store, plan); err != nil {
			return err
		}

		placed, _ := g.Get(img.ID)
		img.Order = placed.Order
		img.IsCover = placed.IsCover
		if err := store.Update(img); err != nil {
			return err
		}
		saved = img
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return saved, nil
}

func (uc *imageUseCase) applyPlan(store persistent.ImageStore, plan gallery.Plan) error {
	if err := store.ClearCover(plan.ClearCover); err != nil {
		return fmt.Errorf("failed to clear cover: %w", err)
	}
	for _, sh := range plan.Shifts {
		if err := store.ShiftOrder(sh.ID, sh.To); err != nil {
			return fmt.Errorf("failed to shift image %d: %w", sh.ID, err)
		}
	}
	uc.metrics.AddCoverCleared(len(plan.ClearCover))
	uc.metrics.AddImageShifts(len(plan.Shifts))
	if len(plan.Shifts) > 0 {
		uc.logger.Debug("Shifted %d images to free order %d", len(plan.Shifts), plan.Order)
	}
	return nil
}

func (uc *imageUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate view cache: %v", err)
	}
}

func validateAttachment(v *entity.Venture, a entity.Attachment) error {
	switch a.Kind {
	case entity.Unattached:
		return nil
	case entity.FloorPlanLinked:
		if v.FloorPlanByID(a.RefID) != nil {
			return nil
		}
	case entity.AreaLinked:
		if v.AreaByID(a.RefID) != nil {
			return nil
		}
	}
	return entity.ErrInvalidAttachment
}

func checkCaption(caption string) error {
	if utf8.RuneCountInString(caption) <= maxCaptionLength {
		return nil
	}
	verr := entity.NewValidationError()
	verr.Add("caption", fmt.Sprintf("Ensure this value has at most %d characters (it has %d).",
		maxCaptionLength, utf8.RuneCountInString(caption)))
	return verr
}

// ImageKey builds venture_images/<id>-<slug>/<YYYYmmdd_HHMMSS>_<uuid><ext>.
func ImageKey(v *entity.Venture, filename string, now time.Time) string {
	return fmt.Sprintf("venture_images/%d-%s/%s", v.ID, slug.Make(v.Name), objectName(filename, now))
}

func objectName(filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".img"
	}
	return fmt.Sprintf("%s_%s%s", now.Format("20060102_150405"), uuid.New().String(), ext)
}
