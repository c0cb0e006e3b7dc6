package entity

// Actor represents a public figure that articles can reference.
//
// Category is a free-text label ("music", "tech", ...) describing the actor's
// field. It is deliberately NOT a foreign key into the Category collection;
// the two concepts are unrelated despite the similar name.
type Actor struct {
	ID       int64
	Name     string
	Slug     string // unique, URL-safe identifier
	Category string // free-text label, not a Category FK

	// Static natal chart signs. Nil means unknown; no ephemeris
	// computation happens anywhere in the system.
	SunSign    *string
	MoonSign   *string
	RisingSign *string

	ProfileImage *string
}
