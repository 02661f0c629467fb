package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	maxSignInAttempts = 5
	signInBlock       = 15 * time.Minute
	signInWindow      = 15 * time.Minute
)

type attemptData struct {
	count        int
	firstAttempt time.Time
}

// rateLimiter tracks failed sign-in attempts per client IP and blocks an IP
// after too many failures inside the window.
type rateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptData
	blocked  map[string]time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		attempts: make(map[string]*attemptData),
		blocked:  make(map[string]time.Time),
	}
}

// Allow reports whether the IP may attempt a sign-in, clearing expired blocks.
func (l *rateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if until, ok := l.blocked[ip]; ok {
		if time.Now().Before(until) {
			return false
		}
		delete(l.blocked, ip)
		delete(l.attempts, ip)
	}
	return true
}

// RecordFailure counts a failed attempt and blocks the IP at the threshold.
func (l *rateLimiter) RecordFailure(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Cap memory: reset rather than grow without bound.
	if len(l.attempts) > 10000 {
		l.attempts = make(map[string]*attemptData)
	}

	data, ok := l.attempts[ip]
	if !ok || time.Since(data.firstAttempt) > signInWindow {
		l.attempts[ip] = &attemptData{count: 1, firstAttempt: time.Now()}
		return
	}
	data.count++
	if data.count >= maxSignInAttempts {
		l.blocked[ip] = time.Now().Add(signInBlock)
	}
}

// Reset clears the counter for an IP after a successful sign-in.
func (l *rateLimiter) Reset(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, ip)
	delete(l.blocked, ip)
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
