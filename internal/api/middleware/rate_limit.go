package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// IPRateLimiter хранит token bucket для каждого IP
type IPRateLimiter struct {
	mu         sync.RWMutex
	limiters   map[string]*visitor
	r          rate.Limit
	b          int
	idleTTL    time.Duration
	trustProxy bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter создает лимитер на rps запросов в секунду с запасом burst
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*visitor),
		r:        rate.Limit(rps),
		b:        burst,
		idleTTL:  10 * time.Minute,
	}
}

// WithTrustedProxy берет IP клиента из X-Forwarded-For.
// Включать только за прокси, который перезаписывает этот заголовок.
func (l *IPRateLimiter) WithTrustedProxy(trust bool) *IPRateLimiter {
	l.trustProxy = trust
	return l
}

// Allow сообщает, можно ли пропустить запрос с этого IP
func (l *IPRateLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.RLock()
	v, ok := l.limiters[ip]
	l.mu.RUnlock()

	if !ok {
		l.mu.Lock()
		if v, ok = l.limiters[ip]; !ok {
			v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
			l.limiters[ip] = v
		}
		l.mu.Unlock()
	}

	l.mu.Lock()
	v.lastSeen = now
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Cleanup удаляет лимитеры IP, не появлявшихся дольше idleTTL
func (l *IPRateLimiter) Cleanup() {
	cutoff := time.Now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.limiters {
		if v.lastSeen.Before(cutoff) {
			delete(l.limiters, ip)
		}
	}
}

// RunCleanup периодически вызывает Cleanup до закрытия stop
func (l *IPRateLimiter) RunCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Cleanup()
		case <-stop:
			return
		}
	}
}

// RateLimit отвечает 429, когда клиент превысил лимит
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r, limiter.trustProxy)) {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustProxy && forwarded != "" {
		if first, _, _ := strings.Cut(forwarded, ","); strings.TrimSpace(first) != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
