package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/stubserver/apierr"
)

// BearerAuth rejects requests without a bearer token. Any non-empty token is
// accepted; the stub issues fabricated tokens and has no way to verify them.
func BearerAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				res := apierr.New(apperr.ErrUnauthorized)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(res.StatusCode)
				//nolint:errcheck
				json.NewEncoder(w).Encode(res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
