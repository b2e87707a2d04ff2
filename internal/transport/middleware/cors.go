package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS builds the cross-origin policy for the browser dashboard from the
// comma-separated allowed origins list.
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if allowedOrigins != "" {
		origins = origins[:0]
		for _, o := range strings.Split(allowedOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	})
	return c.Handler
}
