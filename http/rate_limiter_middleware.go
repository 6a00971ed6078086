package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"rental-sim/logger"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	log *logger.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		ok, retryAfter := limiter.Allow(ip)
		if !ok {
			log.Debug("rate limit exceeded for %s on %s", ip, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
