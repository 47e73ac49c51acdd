package middleware

import (
	"net/http"

	"github.com/haiminhng/retail-console/pkg/correlationid"
)

// CorrelationID reads the correlation id header, generating one when absent,
// and makes it available on the request context and the response.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)
			r = r.WithContext(correlationid.WithContext(r.Context(), id))

			next.ServeHTTP(w, r)
		})
	}
}
