package respond

import (
	"regexp"
)

var (
	// Signed JWTs (three base64url segments). Masked so tokens that end
	// up inside wrapped errors never reach logs verbatim.
	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Bearer header values
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_.-]+`)

	// Credentials embedded in URLs
	urlPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)
)

// SanitizeError returns the error message with sensitive values masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = jwtPattern.ReplaceAllString(msg, "eyJ****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
