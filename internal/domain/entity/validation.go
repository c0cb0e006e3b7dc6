package entity

import "fmt"

// maxSlugLength caps slug size; slugs appear in URLs and metric labels.
const maxSlugLength = 128

// ValidateSlug validates the format of a URL-safe slug.
// A slug is non-empty, at most maxSlugLength characters, and consists of
// lowercase letters, digits and hyphens, without leading/trailing hyphens.
// Returns a ValidationError describing the first violation found.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	if slug[0] == '-' || slug[len(slug)-1] == '-' {
		return &ValidationError{Field: "slug", Message: "cannot start or end with a hyphen"}
	}
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return &ValidationError{
				Field:   "slug",
				Message: "must contain only lowercase letters, digits and hyphens",
			}
		}
	}
	return nil
}
