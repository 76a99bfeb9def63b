package limiter

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter is a token bucket shared by the gRPC interceptor and the HTTP
// middleware.
type Limiter struct {
	logger *zap.Logger
	l      *rate.Limiter
}

func New(logger *zap.Logger, limit, burst int) *Limiter {
	return &Limiter{logger: logger, l: rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit reports whether the current call must be rejected.
func (l *Limiter) Limit() bool {
	allowed := l.l.Allow()
	l.logger.Debug("Rate limit check",
		zap.Bool("allowed", allowed),
		zap.Float64("limit", float64(l.l.Limit())),
		zap.Int("burst", l.l.Burst()),
	)
	return !allowed
}

// Middleware answers 429 once the bucket is empty.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Limit() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
