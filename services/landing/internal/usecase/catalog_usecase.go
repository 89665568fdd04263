package usecase

import (
	"context"
	"strings"

	"abq-api/pkg/logger"
	"abq-api/pkg/slug"
	"abq-api/services/landing/internal/entity"
	"abq-api/services/landing/internal/repo/persistent"

	"github.com/go-playground/validator/v10"
)

// CatalogUseCase backs the admin API for ventures, their sections and the
// status/category taxonomies. Every write invalidates the public view cache.
type CatalogUseCase interface {
	ListVentures(ctx context.Context, filter persistent.VentureFilter) ([]entity.Venture, error)
	GetVenture(ctx context.Context, id int64) (*entity.Venture, error)
	CreateVenture(ctx context.Context, in VentureInput) (*entity.Venture, error)
	UpdateVenture(ctx context.Context, id int64, in VentureInput) (*entity.Venture, error)
	SetVentureActive(ctx context.Context, id int64, active bool) error

	SaveHighlight(ctx context.Context, ventureID, id int64, in HighlightInput) (*entity.HeroHighlight, error)
	DeleteHighlight(ctx context.Context, ventureID, id int64) error
	SaveAmenity(ctx context.Context, ventureID, id int64, in AmenityInput) (*entity.Amenity, error)
	DeleteAmenity(ctx context.Context, ventureID, id int64) error
	SaveFloorPlan(ctx context.Context, ventureID, id int64, in FloorPlanInput) (*entity.FloorPlan, error)
	DeleteFloorPlan(ctx context.Context, ventureID, id int64) error
	SaveArea(ctx context.Context, ventureID, id int64, in AreaInput) (*entity.Area, error)
	DeleteArea(ctx context.Context, ventureID, id int64) error

	ListStatuses(ctx context.Context) ([]entity.Status, error)
	SaveStatus(ctx context.Context, id int64, in NameInput) (*entity.Status, error)
	DeleteStatus(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	SaveCategory(ctx context.Context, id int64, in NameInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type catalogUseCase struct {
	ventureRepo  persistent.VentureRepository
	taxonomyRepo persistent.TaxonomyRepository
	cache        ViewCache
	validate     *validator.Validate
	logger       *logger.Logger
}

func NewCatalogUseCase(
	ventureRepo persistent.VentureRepository,
	taxonomyRepo persistent.TaxonomyRepository,
	cache ViewCache,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		ventureRepo:  ventureRepo,
		taxonomyRepo: taxonomyRepo,
		cache:        cacheOrNoop(cache),
		validate:     newValidator(),
		logger:       logger,
	}
}

func (uc *catalogUseCase) ListVentures(ctx context.Context, filter persistent.VentureFilter) ([]entity.Venture, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return uc.ventureRepo.List(ctx, filter)
}

func (uc *catalogUseCase) GetVenture(ctx context.Context, id int64) (*entity.Venture, error) {
	return uc.ventureRepo.GetByID(ctx, id)
}

func (uc *catalogUseCase) CreateVenture(ctx context.Context, in VentureInput) (*entity.Venture, error) {
	in.normalize()
	if err := uc.checkVenture(in); err != nil {
		return nil, err
	}

	venture := &entity.Venture{}
	applyVentureInput(venture, in, true)
	if err := uc.ventureRepo.Create(ctx, venture); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	uc.logger.Info("Venture %s created with id %d", venture.Slug, venture.ID)
	return uc.ventureRepo.GetByID(ctx, venture.ID)
}

func (uc *catalogUseCase) UpdateVenture(ctx context.Context, id int64, in VentureInput) (*entity.Venture, error) {
	in.normalize()
	if err := uc.checkVenture(in); err != nil {
		return nil, err
	}

	venture, err := uc.ventureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyVentureInput(venture, in, venture.IsActive)
	if err := uc.ventureRepo.Update(ctx, venture); err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return uc.ventureRepo.GetByID(ctx, id)
}

func (uc *catalogUseCase) SetVentureActive(ctx context.Context, id int64, active bool) error {
	if err := uc.ventureRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	uc.invalidate(ctx)
	uc.logger.Info("Venture %d active=%t", id, active)
	return nil
}

func (uc *catalogUseCase) checkVenture(in VentureInput) error {
	if err := validateStruct(uc.validate, in); err != nil {
		return err
	}
	if in.Slug == "" && slug.Make(in.Name) == "" {
		verr := entity.NewValidationError()
		verr.Add("slug", "Could not derive a slug from the name.")
		return verr
	}
	if in.Slug != "" && slug.Make(in.Slug) != in.Slug {
		verr := entity.NewValidationError()
		verr.Add("slug", "Enter a valid slug consisting of lowercase letters, numbers, underscores or hyphens.")
		return verr
	}
	return nil
}

func applyVentureInput(v *entity.Venture, in VentureInput, defaultActive bool) {
	v.Name = in.Name
	v.Slug = in.Slug
	if v.Slug == "" {
		v.Slug = slug.Make(in.Name)
	}
	v.ShortDescription = in.ShortDescription
	v.Location = in.Location
	v.TotalUnits = in.TotalUnits
	v.IsLastUnits = in.IsLastUnits
	v.IsActive = boolOr(in.IsActive, defaultActive)
	v.YTVideoID = in.YTVideoID
	v.Status = optionalStatus(in.StatusID)
	v.Category = optionalCategory(in.CategoryID)
}

func (uc *catalogUseCase) SaveHighlight(ctx context.Context, ventureID, id int64, in HighlightInput) (*entity.HeroHighlight, error) {
	in.Label = strings.TrimSpace(in.Label)
	in.Info = strings.TrimSpace(in.Info)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if err := uc.ventureExists(ctx, ventureID); err != nil {
		return nil, err
	}

	h := &entity.HeroHighlight{ID: id, VentureID: ventureID, Label: in.Label, Info: in.Info}
	if err := uc.ventureRepo.SaveHighlight(ctx, h); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return h, nil
}

func (uc *catalogUseCase) DeleteHighlight(ctx context.Context, ventureID, id int64) error {
	return uc.deleted(ctx, uc.ventureRepo.DeleteHighlight(ctx, ventureID, id))
}

func (uc *catalogUseCase) SaveAmenity(ctx context.Context, ventureID, id int64, in AmenityInput) (*entity.Amenity, error) {
	in.Icon = strings.TrimSpace(in.Icon)
	in.Value = strings.TrimSpace(in.Value)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if err := uc.ventureExists(ctx, ventureID); err != nil {
		return nil, err
	}

	a := &entity.Amenity{ID: id, VentureID: ventureID, Icon: in.Icon, Value: in.Value, Span: amenitySpan(in.Span)}
	if err := uc.ventureRepo.SaveAmenity(ctx, a); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return a, nil
}

func (uc *catalogUseCase) DeleteAmenity(ctx context.Context, ventureID, id int64) error {
	return uc.deleted(ctx, uc.ventureRepo.DeleteAmenity(ctx, ventureID, id))
}

func (uc *catalogUseCase) SaveFloorPlan(ctx context.Context, ventureID, id int64, in FloorPlanInput) (*entity.FloorPlan, error) {
	in.normalize()
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if err := uc.ventureExists(ctx, ventureID); err != nil {
		return nil, err
	}

	fp := &entity.FloorPlan{ID: id, VentureID: ventureID, Name: in.Name, DescriptionList: in.DescriptionList}
	if err := uc.ventureRepo.SaveFloorPlan(ctx, fp); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return fp, nil
}

func (uc *catalogUseCase) DeleteFloorPlan(ctx context.Context, ventureID, id int64) error {
	return uc.deleted(ctx, uc.ventureRepo.DeleteFloorPlan(ctx, ventureID, id))
}

func (uc *catalogUseCase) SaveArea(ctx context.Context, ventureID, id int64, in AreaInput) (*entity.Area, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if err := uc.ventureExists(ctx, ventureID); err != nil {
		return nil, err
	}

	a := &entity.Area{ID: id, VentureID: ventureID, Name: in.Name}
	if err := uc.ventureRepo.SaveArea(ctx, a); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return a, nil
}

func (uc *catalogUseCase) DeleteArea(ctx context.Context, ventureID, id int64) error {
	return uc.deleted(ctx, uc.ventureRepo.DeleteArea(ctx, ventureID, id))
}

func (uc *catalogUseCase) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	return uc.taxonomyRepo.ListStatuses(ctx)
}

func (uc *catalogUseCase) SaveStatus(ctx context.Context, id int64, in NameInput) (*entity.Status, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	s := &entity.Status{ID: id, Name: in.Name}
	if err := uc.taxonomyRepo.SaveStatus(ctx, s); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return s, nil
}

func (uc *catalogUseCase) DeleteStatus(ctx context.Context, id int64) error {
	return uc.deleted(ctx, uc.taxonomyRepo.DeleteStatus(ctx, id))
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return uc.taxonomyRepo.ListCategories(ctx)
}

func (uc *catalogUseCase) SaveCategory(ctx context.Context, id int64, in NameInput) (*entity.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	c := &entity.Category{ID: id, Name: in.Name}
	if err := uc.taxonomyRepo.SaveCategory(ctx, c); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return c, nil
}

func (uc *catalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.deleted(ctx, uc.taxonomyRepo.DeleteCategory(ctx, id))
}

func (uc *catalogUseCase) ventureExists(ctx context.Context, id int64) error {
	_, err := uc.ventureRepo.GetByID(ctx, id)
	return err
}

func (uc *catalogUseCase) deleted(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *catalogUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate view cache: %v", err)
	}
}
