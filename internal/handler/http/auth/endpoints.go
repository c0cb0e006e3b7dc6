// Package auth provides token issuance, account registration and the
// authorization middleware for the API server. The API is public reading
// by default; only account-scoped routes require a caller identity.
package auth

// ProtectedEndpoints lists path prefixes that require a valid JWT.
//
// Everything under /me/ is scoped to the authenticated account: bookmarks,
// follows and the follow management routes. Catalog reads (articles,
// actors, categories, search) and engagement counters stay public, the
// mobile client calls them before any account exists.
var ProtectedEndpoints = []string{
	"/me/",
}
