package entity

import (
	"strings"
	"time"
)

// AstroGlyph is a purely presentational planetary annotation attached to an
// article. It is not derived from astronomical data.
type AstroGlyph struct {
	Planet string `json:"planet"`
	Color  string `json:"color"`
	Symbol string `json:"symbol,omitempty"` // e.g. "Rx" for retrograde
}

// Article represents a news article entity in the system.
// It contains the article's content, astrological metadata, and references
// to its category and the actors appearing in it.
type Article struct {
	ID            int64
	Title         string
	Summary       string
	Content       string
	CategoryID    int64 // FK into the category collection
	PublishedAt   time.Time
	AstroAnalysis string
	AstroGlyphs   []AstroGlyph
	Hashtags      []string // canonical form: each entry starts with "#"
	ActorIDs      []int64  // order preserving; duplicates carry no meaning
	LikeCount     int
	ShareCount    int
	BookmarkCount int
	IsCelebrity   bool
}

// HasActor reports whether the article lists the given actor.
func (a *Article) HasActor(actorID int64) bool {
	for _, id := range a.ActorIDs {
		if id == actorID {
			return true
		}
	}
	return false
}

// HasHashtag reports whether the article carries the given hashtag.
// The comparison is case-insensitive and tolerates a missing leading "#"
// in the argument; stored tags are always in canonical form.
func (a *Article) HasHashtag(tag string) bool {
	want := strings.ToLower(CanonicalHashtag(tag))
	for _, t := range a.Hashtags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the article's title, summary, or any of its hashtags.
func (a *Article) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), q) {
		return true
	}
	for _, t := range a.Hashtags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// CanonicalHashtag returns the canonical stored form of a hashtag: the tag
// with a single leading "#". Case is preserved; comparisons are done
// case-insensitively by callers.
func CanonicalHashtag(tag string) string {
	if tag == "" || strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}
