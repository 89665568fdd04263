package entity

import "time"

type Tag struct {
	ID   int64
	Name string
}

type Article struct {
	ID               int64
	Slug             string
	Title            string
	Tag              *Tag
	ShortDescription string
	CoverImageKey    string
	Content          string
	IsHighlight      bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const MaxSuggestedArticles = 3
