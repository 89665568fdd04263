package persistent

import (
	"testing"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }

func TestImageMapping_Attachment(t *testing.T) {
	tests := []struct {
		name  string
		model models.VentureImage
		want  entity.Attachment
	}{
		{"unattached", models.VentureImage{ID: 1}, entity.Attachment{}},
		{"floor plan", models.VentureImage{ID: 1, FloorPlanID: int64Ptr(5)}, entity.AttachToFloorPlan(5)},
		{"area", models.VentureImage{ID: 1, AreaID: int64Ptr(6)}, entity.AttachToArea(6)},
		{"both prefers floor plan", models.VentureImage{ID: 1, FloorPlanID: int64Ptr(5), AreaID: int64Ptr(6)}, entity.AttachToFloorPlan(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := ToImageEntity(&tt.model)
			assert.Equal(t, tt.want, img.Attachment)

			back := ToImageModel(img)
			if tt.want.Kind == entity.AreaLinked {
				assert.Nil(t, back.FloorPlanID)
				require.NotNil(t, back.AreaID)
			}
			if tt.want.Kind == entity.FloorPlanLinked {
				assert.Nil(t, back.AreaID)
				require.NotNil(t, back.FloorPlanID)
			}
		})
	}
}

func TestVentureMapping_ReferencesWithoutPreload(t *testing.T) {
	m := &models.Venture{ID: 1, Name: "Solar", StatusID: int64Ptr(2), CategoryID: int64Ptr(3)}

	v := ToVentureEntity(m)

	require.NotNil(t, v.Status)
	assert.Equal(t, int64(2), v.Status.ID)
	require.NotNil(t, v.Category)
	assert.Equal(t, int64(3), v.Category.ID)

	back := ToVentureModel(v)
	assert.Equal(t, int64(2), *back.StatusID)
	assert.Equal(t, int64(3), *back.CategoryID)
}

func TestVentureMapping_Children(t *testing.T) {
	m := &models.Venture{
		ID:         1,
		Status:     &models.VentureStatus{ID: 2, Name: "Lançamento"},
		FloorPlans: []models.VentureFloorPlan{{ID: 10, VentureID: 1, Name: "A", DescriptionList: pq.StringArray{"x"}}},
		Areas:      []models.VentureArea{{ID: 20, VentureID: 1, Name: "Lazer"}},
		Images:     []models.VentureImage{{ID: 100, VentureID: 1, ImageKey: "k", Order: 1, IsActive: true}},
	}

	v := ToVentureEntity(m)

	assert.Equal(t, "Lançamento", v.Status.Name)
	assert.Equal(t, []string{"x"}, v.FloorPlans[0].DescriptionList)
	assert.Equal(t, "Lazer", v.Areas[0].Name)
	assert.Equal(t, "k", v.Images[0].Key)
}
