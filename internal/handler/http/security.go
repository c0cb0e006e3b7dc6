package http

import (
	"net/http"
	"strings"

	"astrobuzz/pkg/security/csp"
)

// SecurityHeaders returns middleware that sets a Content-Security-Policy
// and related headers on every response. JSON endpoints get the strict
// policy; the Swagger UI is an HTML surface and needs a looser one.
func SecurityHeaders() func(http.Handler) http.Handler {
	strict := csp.StrictPolicy()
	swagger := csp.SwaggerUIPolicy()
	strictValue := strict.Build()
	swaggerValue := swagger.Build()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			policy := strict
			value := strictValue
			if strings.HasPrefix(r.URL.Path, "/swagger/") {
				policy = swagger
				value = swaggerValue
			}

			w.Header().Set(policy.HeaderName(), value)
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Referrer-Policy", "no-referrer")

			next.ServeHTTP(w, r)
		})
	}
}
