package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			requestID, _ := GetRequestID(r.Context())
			duration := time.Since(start)

			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error("HTTP %s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, sw.status, sw.bytes, duration, requestID)
			default:
				logger.Info("HTTP %s %s - status=%d, bytes=%d, duration=%s, request_id=%s",
					r.Method, r.URL.Path, sw.status, sw.bytes, duration, requestID)
			}
		})
	}
}
