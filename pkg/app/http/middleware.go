package http

import (
	"net/http"

	"golang.org/x/time/rate"

	apperrors "github.com/chainsafe/nft-mint-action/pkg/app/errors"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-CSRF-Token, X-Requested-With, Accept, " +
		"Accept-Version, Content-Length, Content-MD5, Date, X-Api-Version"
)

// CORS sets Access-Control-Allow-Origin: * on every response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// Preflight answers CORS preflight requests with 204.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
	w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
	w.WriteHeader(http.StatusNoContent)
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// Preflight requests never take a token. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions && !limiter.Allow() {
				DefaultErrorHandler(w, apperrors.TooManyRequestsError("too many requests, try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
