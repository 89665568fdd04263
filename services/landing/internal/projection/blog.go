package projection

import (
	"sort"
	"time"

	"abq-api/services/landing/internal/entity"
)

type ArticleSummary struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Tag              *string   `json:"tag"`
	ShortDescription string    `json:"short_description"`
	CoverImageURL    *string   `json:"cover_image_url"`
	CreatedAt        time.Time `json:"created_at"`
}

type ArticleListView struct {
	HighlightedArticles []ArticleSummary `json:"highlighted_articles"`
	RegularArticles     []ArticleSummary `json:"regular_articles"`
}

type ArticleDetailView struct {
	ArticleSummary
	Content           string           `json:"content"`
	SuggestedArticles []ArticleSummary `json:"suggested_articles"`
}

// ArticleList splits active articles into highlighted and regular buckets,
// newest first.
func ArticleList(articles []entity.Article, urls URLResolver) ArticleListView {
	active := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		if a.IsActive {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if !active[i].CreatedAt.Equal(active[j].CreatedAt) {
			return active[i].CreatedAt.After(active[j].CreatedAt)
		}
		return active[i].ID > active[j].ID
	})

	view := ArticleListView{
		HighlightedArticles: []ArticleSummary{},
		RegularArticles:     []ArticleSummary{},
	}
	for i := range active {
		s := Summary(&active[i], urls)
		if active[i].IsHighlight {
			view.HighlightedArticles = append(view.HighlightedArticles, s)
		} else {
			view.RegularArticles = append(view.RegularArticles, s)
		}
	}
	return view
}

func Summary(a *entity.Article, urls URLResolver) ArticleSummary {
	s := ArticleSummary{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		ShortDescription: a.ShortDescription,
		CreatedAt:        a.CreatedAt,
	}
	if a.Tag != nil {
		name := a.Tag.Name
		s.Tag = &name
	}
	if a.CoverImageKey != "" {
		s.CoverImageURL = optional(urls.URL(a.CoverImageKey))
	}
	return s
}

func ArticleDetail(a *entity.Article, suggestions []entity.Article, urls URLResolver) ArticleDetailView {
	view := ArticleDetailView{
		ArticleSummary:    Summary(a, urls),
		Content:           a.Content,
		SuggestedArticles: make([]ArticleSummary, 0, len(suggestions)),
	}
	for i := range suggestions {
		view.SuggestedArticles = append(view.SuggestedArticles, Summary(&suggestions[i], urls))
	}
	return view
}
