// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Category, Actor and Article, along
// with their validation rules and domain-specific errors.
package entity

// Category represents an editorial section of the feed ("Top", "Celebrity", ...).
// Categories are seeded at store initialization and never deleted; articles
// reference them by CategoryID.
type Category struct {
	ID    int64
	Name  string
	Slug  string // unique, URL-safe identifier
	Color string // display token, e.g. "hsl(267, 45%, 51%)"
	Icon  string // display token, e.g. "star"
}
