// Package gallery keeps the per-venture image sequence: a single cover and
// orders 1..N, shifting later images down when a slot is taken.
package gallery

import "sort"

type Slot struct {
	ID      int64
	Order   int
	IsCover bool
}

type Shift struct {
	ID   int64
	From int
	To   int
}

// Plan lists the writes needed to persist one image. Shifts must be
// applied in the given order (highest order first).
type Plan struct {
	Order      int
	ClearCover []int64
	Shifts     []Shift
}

func (p Plan) Empty() bool {
	return len(p.ClearCover) == 0 && len(p.Shifts) == 0
}

// PlanSave computes the writes for saving img among siblings. For a new image
// img.ID is ignored when excluding it from the scans.
func PlanSave(siblings []Slot, img Slot, isNew bool) Plan {
	others := make([]Slot, 0, len(siblings))
	for _, s := range siblings {
		if !isNew && s.ID == img.ID {
			continue
		}
		others = append(others, s)
	}

	plan := Plan{Order: img.Order}

	if img.IsCover {
		for _, s := range others {
			if s.IsCover {
				plan.ClearCover = append(plan.ClearCover, s.ID)
			}
		}
	}

	if isNew && plan.Order <= 0 {
		maxOrder := 0
		for _, s := range others {
			if s.Order > maxOrder {
				maxOrder = s.Order
			}
		}
		plan.Order = maxOrder + 1
	}

	collides := false
	for _, s := range others {
		if s.Order == plan.Order {
			collides = true
			break
		}
	}
	if !collides {
		return plan
	}

	var tail []Slot
	for _, s := range others {
		if s.Order >= plan.Order {
			tail = append(tail, s)
		}
	}
	sort.Slice(tail, func(i, j int) bool {
		if tail[i].Order != tail[j].Order {
			return tail[i].Order > tail[j].Order
		}
		return tail[i].ID > tail[j].ID
	})
	for _, s := range tail {
		plan.Shifts = append(plan.Shifts, Shift{ID: s.ID, From: s.Order, To: s.Order + 1})
	}

	return plan
}

// Gallery is an in-memory view of one venture's images keyed by id.
type Gallery struct {
	slots map[int64]Slot
}

func New(slots []Slot) *Gallery {
	g := &Gallery{slots: make(map[int64]Slot, len(slots))}
	for _, s := range slots {
		g.slots[s.ID] = s
	}
	return g
}

// Slots returns the images sorted by order, then id.
func (g *Gallery) Slots() []Slot {
	out := make([]Slot, 0, len(g.slots))
	for _, s := range g.slots {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (g *Gallery) Get(id int64) (Slot, bool) {
	s, ok := g.slots[id]
	return s, ok
}

// InsertAt adds a new image at order; a non-positive order appends it.
// A zero img.ID stands for an image that has not been stored yet.
func (g *Gallery) InsertAt(img Slot, order int) Plan {
	img.Order = order
	plan := PlanSave(g.Slots(), img, true)
	g.apply(img, plan)
	return plan
}

func (g *Gallery) Append(img Slot) Plan {
	return g.InsertAt(img, 0)
}

// MoveTo places an existing image at order. It reports false for unknown ids.
func (g *Gallery) MoveTo(id int64, order int) (Plan, bool) {
	img, ok := g.slots[id]
	if !ok {
		return Plan{}, false
	}
	img.Order = order
	return g.Save(img), true
}

// SetCover makes id the only cover image.
func (g *Gallery) SetCover(id int64) (Plan, bool) {
	img, ok := g.slots[id]
	if !ok {
		return Plan{}, false
	}
	img.IsCover = true
	return g.Save(img), true
}

// Save re-saves an existing image with the given fields.
func (g *Gallery) Save(img Slot) Plan {
	plan := PlanSave(g.Slots(), img, false)
	g.apply(img, plan)
	return plan
}

func (g *Gallery) apply(img Slot, plan Plan) {
	for _, id := range plan.ClearCover {
		s := g.slots[id]
		s.IsCover = false
		g.slots[id] = s
	}
	for _, sh := range plan.Shifts {
		s := g.slots[sh.ID]
		s.Order = sh.To
		g.slots[sh.ID] = s
	}
	img.Order = plan.Order
	g.slots[img.ID] = img
}
