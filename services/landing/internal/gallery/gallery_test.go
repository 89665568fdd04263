package gallery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orders(g *Gallery) map[int64]int {
	out := make(map[int64]int)
	for _, s := range g.Slots() {
		out[s.ID] = s.Order
	}
	return out
}

func coverCount(g *Gallery) int {
	n := 0
	for _, s := range g.Slots() {
		if s.IsCover {
			n++
		}
	}
	return n
}

func TestPlanSave_AppendsWhenOrderOmitted(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}, {ID: 3, Order: 5}}

	plan := PlanSave(siblings, Slot{ID: 0}, true)

	assert.Equal(t, 6, plan.Order)
	assert.True(t, plan.Empty())
}

func TestPlanSave_FirstImageGetsOne(t *testing.T) {
	plan := PlanSave(nil, Slot{}, true)
	assert.Equal(t, 1, plan.Order)
}

func TestPlanSave_ShiftsOnCollision(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}, {ID: 3, Order: 3}}

	plan := PlanSave(siblings, Slot{ID: 4, Order: 2}, true)

	assert.Equal(t, 2, plan.Order)
	assert.Equal(t, []Shift{
		{ID: 3, From: 3, To: 4},
		{ID: 2, From: 2, To: 3},
	}, plan.Shifts)
}

func TestPlanSave_BeyondMaxIsNoop(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}}

	plan := PlanSave(siblings, Slot{ID: 3, Order: 7}, true)

	assert.Equal(t, 7, plan.Order)
	assert.Empty(t, plan.Shifts)
}

func TestPlanSave_VacantGapIsNoop(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 3, Order: 3}}

	plan := PlanSave(siblings, Slot{ID: 4, Order: 2}, true)

	assert.Equal(t, 2, plan.Order)
	assert.Empty(t, plan.Shifts)
}

func TestPlanSave_ResaveUnchangedDoesNotSelfCollide(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2, IsCover: true}, {ID: 3, Order: 3}}

	plan := PlanSave(siblings, Slot{ID: 2, Order: 2, IsCover: true}, false)

	assert.Equal(t, 2, plan.Order)
	assert.True(t, plan.Empty())
}

func TestPlanSave_ClearsOtherCovers(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1, IsCover: true}, {ID: 2, Order: 2}, {ID: 3, Order: 3, IsCover: true}}

	plan := PlanSave(siblings, Slot{ID: 2, Order: 2, IsCover: true}, false)

	assert.ElementsMatch(t, []int64{1, 3}, plan.ClearCover)
	assert.Empty(t, plan.Shifts)
}

func TestPlanSave_NonCoverLeavesCoversAlone(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1, IsCover: true}}

	plan := PlanSave(siblings, Slot{}, true)

	assert.Empty(t, plan.ClearCover)
}

func TestPlanSave_ExistingImageWithZeroOrderKeepsIt(t *testing.T) {
	siblings := []Slot{{ID: 1, Order: 1}, {ID: 2, Order: 0}}

	plan := PlanSave(siblings, Slot{ID: 2, Order: 0}, false)

	assert.Equal(t, 0, plan.Order)
	assert.Empty(t, plan.Shifts)
}

func TestGallery_InsertAtMiddle(t *testing.T) {
	g := New([]Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}, {ID: 3, Order: 3}})

	g.InsertAt(Slot{ID: 4}, 2)

	assert.Equal(t, map[int64]int{1: 1, 4: 2, 2: 3, 3: 4}, orders(g))
}

func TestGallery_AppendTwiceIsConsecutive(t *testing.T) {
	g := New([]Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}})

	first := g.Append(Slot{ID: 3})
	second := g.Append(Slot{ID: 4})

	assert.Equal(t, 3, first.Order)
	assert.Equal(t, 4, second.Order)
}

func TestGallery_MoveTo(t *testing.T) {
	g := New([]Slot{{ID: 1, Order: 1}, {ID: 2, Order: 2}, {ID: 3, Order: 3}})

	plan, ok := g.MoveTo(3, 1)
	require.True(t, ok)

	assert.Equal(t, 1, plan.Order)
	assert.Equal(t, map[int64]int{3: 1, 1: 2, 2: 3}, orders(g))
}

func TestGallery_MoveToUnknown(t *testing.T) {
	g := New(nil)
	_, ok := g.MoveTo(9, 1)
	assert.False(t, ok)
}

func TestGallery_SetCover(t *testing.T) {
	g := New([]Slot{{ID: 1, Order: 1, IsCover: true}, {ID: 2, Order: 2}})

	plan, ok := g.SetCover(2)
	require.True(t, ok)

	assert.Equal(t, []int64{1}, plan.ClearCover)
	cover, found := g.Get(2)
	require.True(t, found)
	assert.True(t, cover.IsCover)
	assert.Equal(t, 1, coverCount(g))
}

func TestGallery_RandomInsertsStayDenseWithSingleCover(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := New(nil)
		n := 1 + rng.Intn(30)

		for id := int64(1); id <= int64(n); id++ {
			size := len(g.Slots())
			order := 0
			if rng.Intn(2) == 0 {
				order = 1 + rng.Intn(size+1)
			}
			g.InsertAt(Slot{ID: id, IsCover: rng.Intn(4) == 0}, order)

			assert.LessOrEqual(t, coverCount(g), 1)
		}

		slots := g.Slots()
		require.Len(t, slots, n)
		for i, s := range slots {
			assert.Equal(t, i+1, s.Order, "round %d", round)
		}
	}
}

func TestGallery_InsertAtUnstoredCover(t *testing.T) {
	g := New([]Slot{{ID: 1, Order: 1, IsCover: true}, {ID: 2, Order: 2}})

	plan := g.InsertAt(Slot{IsCover: true}, 1)

	assert.Equal(t, 1, plan.Order)
	assert.Equal(t, []int64{1}, plan.ClearCover)
	assert.Equal(t, []Shift{{ID: 2, From: 2, To: 3}, {ID: 1, From: 1, To: 2}}, plan.Shifts)
	assert.Equal(t, 1, coverCount(g))
}
