// Package article provides HTTP handlers for article endpoints: the
// paginated category feed, detail lookup, free-text search, hashtag feeds
// and the like/share engagement counters.
package article

import (
	"time"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// CategoryDTO is the embedded category of a composite article view.
type CategoryDTO struct {
	ID    int64  `json:"id" example:"2"`
	Name  string `json:"name" example:"Celebrity"`
	Slug  string `json:"slug" example:"celebrity"`
	Color string `json:"color" example:"hsl(267, 45%, 51%)"`
	Icon  string `json:"icon" example:"star"`
}

// ActorDTO is the embedded actor of a composite article view.
type ActorDTO struct {
	ID           int64   `json:"id" example:"3"`
	Name         string  `json:"name" example:"Beyoncé"`
	Slug         string  `json:"slug" example:"beyonce"`
	Category     string  `json:"category" example:"music"`
	SunSign      *string `json:"sunSign,omitempty" example:"Virgo"`
	MoonSign     *string `json:"moonSign,omitempty" example:"Scorpio"`
	RisingSign   *string `json:"risingSign,omitempty" example:"Libra"`
	ProfileImage *string `json:"profileImage,omitempty" example:"https://cdn.example.com/beyonce.jpg"`
}

// DTO represents the JSON structure for a composite article view: the
// article itself with its category and actors resolved.
type DTO struct {
	ID            int64               `json:"id" example:"1"`
	Title         string              `json:"title" example:"Mercury Stations Direct"`
	Summary       string              `json:"summary" example:"The retrograde is over and the group chat is healing."`
	Content       string              `json:"content,omitempty"`
	Category      CategoryDTO         `json:"category"`
	PublishedAt   time.Time           `json:"publishedAt" example:"2026-08-20T10:00:00Z"`
	AstroAnalysis string              `json:"astroAnalysis,omitempty"`
	AstroGlyphs   []entity.AstroGlyph `json:"astroGlyphs"`
	Hashtags      []string            `json:"hashtags"`
	Actors        []ActorDTO          `json:"actors"`
	LikeCount     int                 `json:"likeCount" example:"12"`
	ShareCount    int                 `json:"shareCount" example:"4"`
	BookmarkCount int                 `json:"bookmarkCount" example:"7"`
	IsCelebrity   bool                `json:"isCelebrity" example:"true"`
}

// EngagementDTO is the response for like/share actions: the article id and
// its counters after the bump.
type EngagementDTO struct {
	ID         int64 `json:"id" example:"1"`
	LikeCount  int   `json:"likeCount" example:"13"`
	ShareCount int   `json:"shareCount" example:"4"`
}

// NewDTO maps a composite view to its wire shape.
func NewDTO(v repository.ArticleWithDetails) DTO {
	actors := make([]ActorDTO, 0, len(v.Actors))
	for _, a := range v.Actors {
		actors = append(actors, ActorDTO{
			ID:           a.ID,
			Name:         a.Name,
			Slug:         a.Slug,
			Category:     a.Category,
			SunSign:      a.SunSign,
			MoonSign:     a.MoonSign,
			RisingSign:   a.RisingSign,
			ProfileImage: a.ProfileImage,
		})
	}

	glyphs := v.Article.AstroGlyphs
	if glyphs == nil {
		glyphs = []entity.AstroGlyph{}
	}
	hashtags := v.Article.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return DTO{
		ID:      v.Article.ID,
		Title:   v.Article.Title,
		Summary: v.Article.Summary,
		Content: v.Article.Content,
		Category: CategoryDTO{
			ID:    v.Category.ID,
			Name:  v.Category.Name,
			Slug:  v.Category.Slug,
			Color: v.Category.Color,
			Icon:  v.Category.Icon,
		},
		PublishedAt:   v.Article.PublishedAt,
		AstroAnalysis: v.Article.AstroAnalysis,
		AstroGlyphs:   glyphs,
		Hashtags:      hashtags,
		Actors:        actors,
		LikeCount:     v.Article.LikeCount,
		ShareCount:    v.Article.ShareCount,
		BookmarkCount: v.Article.BookmarkCount,
		IsCelebrity:   v.Article.IsCelebrity,
	}
}

// NewDTOs maps a slice of composite views, never returning nil so empty
// results serialize as [] instead of null.
func NewDTOs(views []repository.ArticleWithDetails) []DTO {
	out := make([]DTO, 0, len(views))
	for _, v := range views {
		out = append(out, NewDTO(v))
	}
	return out
}
