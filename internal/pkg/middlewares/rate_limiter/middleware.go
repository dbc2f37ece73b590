package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"deliveryhub/pkg/logger"
)

const rejectionBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware drops requests the limiter refuses before they reach any
// handler. limitQPS попадает в заголовок X-RateLimit-Limit; отдельного
// конфига для rate limiter пока нет, берем значение из конфига сервера.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}
			reject(log, w, r, limitQPS)
		})
	}
}

func reject(log handlerLogger, w http.ResponseWriter, r *http.Request, limitQPS int) {
	route := r.URL.Path
	if muxRoute := mux.CurrentRoute(r); muxRoute != nil {
		if template, err := muxRoute.GetPathTemplate(); err == nil {
			route = template
		}
	}

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", route),
		logger.NewField("remote_addr", r.RemoteAddr),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	if _, err := w.Write([]byte(rejectionBody)); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}
