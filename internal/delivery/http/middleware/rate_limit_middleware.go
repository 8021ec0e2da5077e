package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"clinic-registry/pkg/response"

	"golang.org/x/time/rate"
)

const (
	clientIdleTTL  = 3 * time.Minute
	sweepInterval  = time.Minute
	unknownAddress = "unknown"
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimitMiddleware applies a token bucket per remote address.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	clients   map[string]*client
	r         rate.Limit
	burst     int
	lastSweep time.Time
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		clients:   make(map[string]*client),
		r:         rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (m *RateLimitMiddleware) get(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if now.Sub(m.lastSweep) > sweepInterval {
		for addr, c := range m.clients {
			if now.Sub(c.seen) > clientIdleTTL {
				delete(m.clients, addr)
			}
		}
		m.lastSweep = now
	}

	if c, ok := m.clients[ip]; ok {
		c.seen = now
		return c.lim
	}
	l := rate.NewLimiter(m.r, m.burst)
	m.clients[ip] = &client{lim: l, seen: now}
	return l
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil || ip == "" {
			ip = unknownAddress
		}

		if !m.get(ip).Allow() {
			response.TooManyRequests(w)
			return
		}

		next.ServeHTTP(w, req)
	})
}
