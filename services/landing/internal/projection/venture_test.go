package projection

import (
	"encoding/json"
	"testing"

	"abq-api/services/landing/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixURLs struct{}

func (prefixURLs) URL(key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.test/" + key
}

func intPtr(n int) *int { return &n }

func sampleVenture() *entity.Venture {
	return &entity.Venture{
		ID:               7,
		Slug:             "solar",
		Name:             "Residencial Solar",
		ShortDescription: "Apartamentos de 2 e 3 quartos",
		Location:         "Centro",
		TotalUnits:       intPtr(48),
		IsLastUnits:      true,
		IsActive:         true,
		Status:           &entity.Status{ID: 1, Name: "Em obras"},
		Category:         &entity.Category{ID: 3, Name: "Residencial"},
		HeroHighlights: []entity.HeroHighlight{
			{ID: 1, Label: "Área", Info: "75m²"},
		},
		Amenities: []entity.Amenity{
			{ID: 1, Icon: "pool", Value: "Piscina", Span: 2},
		},
		FloorPlans: []entity.FloorPlan{
			{ID: 10, Name: "Tipo A", DescriptionList: []string{"2 quartos"}},
			{ID: 11, Name: "Tipo B"},
		},
		Areas: []entity.Area{
			{ID: 20, Name: "Lazer"},
		},
		Images: []entity.Image{
			{ID: 100, Key: "cover.jpg", IsCover: true, Order: 1, IsActive: true},
			{ID: 101, Key: "a.jpg", Order: 3, IsActive: true, Attachment: entity.AttachToFloorPlan(10)},
			{ID: 102, Key: "b.jpg", Order: 2, IsActive: true, Attachment: entity.AttachToFloorPlan(11)},
			{ID: 103, Key: "lazer.jpg", Order: 4, IsActive: true, Attachment: entity.AttachToArea(20)},
			{ID: 104, Key: "hl.jpg", Order: 5, IsActive: true, IsHighLight: true},
			{ID: 105, Key: "old.jpg", Order: 6, IsActive: false, IsHighLight: true, Attachment: entity.AttachToArea(20)},
		},
	}
}

func TestDetail_GalleryCounts(t *testing.T) {
	view, hasCover := Detail(sampleVenture(), prefixURLs{})

	require.True(t, hasCover)
	require.NotNil(t, view.HeroImage)
	assert.Equal(t, "https://cdn.test/cover.jpg", *view.HeroImage)

	require.Len(t, view.Galeries.Units, 2)
	require.Len(t, view.Galeries.Units[0].Images, 1)
	require.Len(t, view.Galeries.Units[1].Images, 1)
	assert.Equal(t, "https://cdn.test/a.jpg", view.Galeries.Units[0].Images[0].URL)
	assert.Equal(t, "https://cdn.test/b.jpg", view.Galeries.Units[1].Images[0].URL)

	require.Len(t, view.Galeries.Areas, 1)
	require.Len(t, view.Galeries.Areas[0].Images, 1)
	assert.Equal(t, "https://cdn.test/lazer.jpg", view.Galeries.Areas[0].Images[0].URL)
	require.NotNil(t, view.Galeries.Areas[0].Images[0].Area)
	assert.Equal(t, "Lazer", *view.Galeries.Areas[0].Images[0].Area)
	assert.Nil(t, view.Galeries.Areas[0].Images[0].Unit)

	require.Len(t, view.Galeries.Highlighted, 1)
	assert.Equal(t, "https://cdn.test/hl.jpg", view.Galeries.Highlighted[0].URL)

	require.Len(t, view.FloorPlans, 2)
	assert.Equal(t, []string{"2 quartos"}, view.FloorPlans[0].DescriptionList)
	assert.Equal(t, []string{}, view.FloorPlans[1].DescriptionList)
	require.NotNil(t, view.FloorPlans[0].Images[0].Unit)
	assert.Equal(t, "Tipo A", *view.FloorPlans[0].Images[0].Unit)

	assert.Equal(t, []string{"Lazer"}, view.Areas)
}

func TestDetail_IdentityFields(t *testing.T) {
	view, _ := Detail(sampleVenture(), prefixURLs{})

	assert.Equal(t, "solar", view.Slug)
	assert.Equal(t, "Apartamentos de 2 e 3 quartos", view.Subtitle)
	assert.Equal(t, []BreadcrumbView{
		{Label: "Empreendimentos", URL: "/nossas-obras/"},
		{Label: "Residencial Solar", URL: "/nossas-obras/solar/"},
	}, view.Breadcrumb)
	require.NotNil(t, view.Status)
	assert.Equal(t, "Em obras", *view.Status)
	assert.True(t, view.LastUnits)
	assert.Nil(t, view.YTVideoID)
	assert.Equal(t, []AmenityView{{Label: "pool", Value: "Piscina", Span: 2}}, view.Amenities)
	assert.Equal(t, []HighlightView{{Label: "Área", Info: "75m²"}}, view.HeroHighLights)
}

func TestDetail_MissingCoverIsNull(t *testing.T) {
	v := sampleVenture()
	v.Images[0].IsCover = false

	view, hasCover := Detail(v, prefixURLs{})

	assert.False(t, hasCover)
	assert.Nil(t, view.HeroImage)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "heroImage")
	assert.Nil(t, raw["heroImage"])
}

func TestDetail_InactiveCoverIgnored(t *testing.T) {
	v := sampleVenture()
	v.Images[0].IsActive = false

	_, hasCover := Detail(v, prefixURLs{})
	assert.False(t, hasCover)
}

func TestDetail_JSONKeys(t *testing.T) {
	v := sampleVenture()
	v.YTVideoID = "dQw4w9WgXcQ"
	view, _ := Detail(v, prefixURLs{})

	data, err := json.Marshal(view)
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"slug", "name", "subtitle", "heroImage", "heroHighLights", "breadcrumb",
		"location", "status", "lastUnits", "amenities", "floorPlans", "areas",
		"ytVideoId", "galeries",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "dQw4w9WgXcQ", raw["ytVideoId"])

	galeries := raw["galeries"].(map[string]interface{})
	assert.Contains(t, galeries, "highlighted")
	assert.Contains(t, galeries, "units")
	assert.Contains(t, galeries, "areas")
}

func TestDetail_ImagesSortedByOrder(t *testing.T) {
	v := sampleVenture()
	v.Images = append(v.Images, entity.Image{ID: 106, Key: "a0.jpg", Order: 0, IsActive: true, Attachment: entity.AttachToFloorPlan(10)})

	view, _ := Detail(v, prefixURLs{})

	require.Len(t, view.FloorPlans[0].Images, 2)
	assert.Equal(t, "https://cdn.test/a0.jpg", view.FloorPlans[0].Images[0].URL)
	assert.Equal(t, "https://cdn.test/a.jpg", view.FloorPlans[0].Images[1].URL)
}

func TestCollection_GroupsActiveVenturesByCategory(t *testing.T) {
	residencial := entity.Category{ID: 3, Name: "Residencial"}
	comercial := entity.Category{ID: 4, Name: "Comercial"}
	vazia := entity.Category{ID: 5, Name: "Vazia"}

	solar := *sampleVenture()
	lua := entity.Venture{ID: 8, Slug: "lua", Name: "Lua", IsActive: true, Category: &residencial}
	hidden := entity.Venture{ID: 9, Slug: "hidden", Name: "Hidden", IsActive: false, Category: &comercial}
	orphan := entity.Venture{ID: 10, Slug: "orphan", Name: "Orphan", IsActive: true}

	view := Collection(
		[]entity.Category{residencial, comercial, vazia},
		[]entity.Venture{solar, lua, hidden, orphan},
		prefixURLs{},
	)

	require.Len(t, view.Categories, 1)
	cat := view.Categories[0]
	assert.Equal(t, int64(3), cat.ID)
	require.Len(t, cat.Ventures, 2)

	assert.Equal(t, "solar", cat.Ventures[0].Slug)
	require.NotNil(t, cat.Ventures[0].HeroImageURL)
	assert.Equal(t, "https://cdn.test/cover.jpg", *cat.Ventures[0].HeroImageURL)
	require.NotNil(t, cat.Ventures[0].TotalUnits)
	assert.Equal(t, 48, *cat.Ventures[0].TotalUnits)

	assert.Equal(t, "lua", cat.Ventures[1].Slug)
	assert.Nil(t, cat.Ventures[1].HeroImageURL)
	assert.Nil(t, cat.Ventures[1].Status)
}

func TestCollection_EmptyEncodesAsList(t *testing.T) {
	data, err := json.Marshal(Collection(nil, nil, prefixURLs{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":[]}`, string(data))
}

func TestDetail_DoesNotMutateInput(t *testing.T) {
	v := sampleVenture()
	before := append([]entity.Image(nil), v.Images...)

	Detail(v, prefixURLs{})

	assert.Equal(t, before, v.Images)
}
