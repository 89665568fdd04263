package entity

import "time"

type AttachmentKind string

const (
	Unattached      AttachmentKind = ""
	FloorPlanLinked AttachmentKind = "floor_plan"
	AreaLinked      AttachmentKind = "area"
)

// Attachment links an image to at most one floor plan or area of its venture.
type Attachment struct {
	Kind  AttachmentKind
	RefID int64
}

func AttachToFloorPlan(id int64) Attachment {
	return Attachment{Kind: FloorPlanLinked, RefID: id}
}

func AttachToArea(id int64) Attachment {
	return Attachment{Kind: AreaLinked, RefID: id}
}

func (a Attachment) FloorPlanID() *int64 {
	if a.Kind != FloorPlanLinked {
		return nil
	}
	id := a.RefID
	return &id
}

func (a Attachment) AreaID() *int64 {
	if a.Kind != AreaLinked {
		return nil
	}
	id := a.RefID
	return &id
}

type Image struct {
	ID          int64
	VentureID   int64
	Key         string
	Caption     string
	IsCover     bool
	IsHighLight bool
	Order       int
	IsActive    bool
	Attachment  Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
