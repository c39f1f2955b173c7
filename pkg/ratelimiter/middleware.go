package ratelimiter

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/djedproject/formatter/pkg/response"
)

// ErrTooManyRequests is written when a client exceeds its limit.
var ErrTooManyRequests = response.NewHTTPError(http.StatusTooManyRequests, "too_many_requests")

// KeyFunc picks the bucket for a request. An empty key is not limited.
type KeyFunc func(r *http.Request) string

// RemoteIP keys requests by the host part of r.RemoteAddr.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests over the store's limit with 429 and a
// Retry-After header in whole seconds.
func Middleware(store *Store, key KeyFunc) func(http.Handler) http.Handler {
	if key == nil {
		key = RemoteIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}
			if ok, wait := store.Allow(k); !ok {
				if wait > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				_ = response.Error(w, ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
