package ratelimit

import (
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a caller identified by a key may proceed.
type Limiter interface {
	Allow(identifier string) bool
}

// NewInMemoryRateLimiter keeps one token bucket per identifier. Buckets unused
// for longer than idleTTL are dropped on the next call; zero keeps them forever.
func NewInMemoryRateLimiter(r rate.Limit, b int, idleTTL time.Duration) Limiter {
	return &inMemoryRateLimiter{
		rate:    r,
		burst:   b,
		idleTTL: idleTTL,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type inMemoryRateLimiter struct {
	rate    rate.Limit
	burst   int
	idleTTL time.Duration
	clients map[string]*client
	mu      sync.Mutex
	now     func() time.Time
	swept   time.Time
}

func (l *inMemoryRateLimiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, exists := l.clients[identifier]
	if !exists {
		c = &client{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[identifier] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

func (l *inMemoryRateLimiter) sweep(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.swept) < l.idleTTL {
		return
	}
	for id, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idleTTL {
			delete(l.clients, id)
		}
	}
	l.swept = now
}

// Unlimited never rejects.
type Unlimited struct{}

func (Unlimited) Allow(string) bool { return true }

// PerMethod picks a limiter by RPC method name. Names are matched without
// regard to case since configuration keys arrive lower-cased.
type PerMethod struct {
	fallback Limiter
	methods  map[string]Limiter
}

func NewPerMethod(fallback Limiter, methods map[string]Limiter) *PerMethod {
	m := make(map[string]Limiter, len(methods))
	for name, l := range methods {
		m[strings.ToLower(name)] = l
	}
	return &PerMethod{fallback: fallback, methods: m}
}

// For returns the limiter for a method given as a bare name or a full
// "/service/Method" path.
func (p *PerMethod) For(method string) Limiter {
	name := strings.ToLower(path.Base(method))
	if l, ok := p.methods[name]; ok {
		return l
	}
	return p.fallback
}
