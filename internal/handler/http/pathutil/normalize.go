package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap on the hot path.
var pathPatterns = []*PathPattern{
	// Article routes with IDs
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/like$`), Template: "/articles/:id/like"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/share$`), Template: "/articles/:id/share"},

	// Actor routes; the identifier segment may be a numeric id or a slug
	{Pattern: regexp.MustCompile(`^/actors/\d+/articles$`), Template: "/actors/:id/articles"},
	{Pattern: regexp.MustCompile(`^/actors/\d+/relationships$`), Template: "/actors/:id/relationships"},
	{Pattern: regexp.MustCompile(`^/actors/[a-z0-9-]+$`), Template: "/actors/:identifier"},

	// Hashtag feeds carry arbitrary tags in the path
	{Pattern: regexp.MustCompile(`^/hashtags/[^/]+/articles$`), Template: "/hashtags/:tag/articles"},

	// Bookmark removal carries the article id
	{Pattern: regexp.MustCompile(`^/me/bookmarks/\d+$`), Template: "/me/bookmarks/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/123) to template format (e.g., /articles/:id).
// Static paths and search endpoints remain unchanged.
//
// Examples:
//
//	NormalizePath("/articles/123")               // "/articles/:id"
//	NormalizePath("/articles/123/like")          // "/articles/:id/like"
//	NormalizePath("/actors/taylor-swift")        // "/actors/:identifier"
//	NormalizePath("/hashtags/%23eclipse/articles") // "/hashtags/:tag/articles"
//	NormalizePath("/search")                     // "/search" (unchanged)
//	NormalizePath("/health")                     // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/articles/123?limit=5")       // "/articles/:id"
//	NormalizePath("/articles/123/")              // "/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	// Static paths like /health, /metrics, /search and /categories pass
	// through unchanged
	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization. This is useful for capacity planning and monitoring.
func GetExpectedCardinality() int {
	// Count template patterns
	templateCount := len(pathPatterns)

	// Estimate static endpoints
	staticCount := 12 // /health, /metrics, /categories, /articles, /search, /auth/*, /me/*, etc.

	// Total expected cardinality
	return templateCount + staticCount
}
