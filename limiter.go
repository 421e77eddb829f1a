package folio

import (
	"sync"
	"time"
)

// contactLimiter is a per-IP rate limiter for contact-form submissions, so a
// single visitor cannot flood the mail relay with verification emails.
type contactLimiter struct {
	mu          sync.Mutex
	submissions map[string][]time.Time
	max         int
	window      time.Duration
}

func newContactLimiter(max int, window time.Duration) *contactLimiter {
	l := &contactLimiter{
		submissions: make(map[string][]time.Time),
		max:         max,
		window:      window,
	}
	go l.cleanup()
	return l
}

func (l *contactLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	for range ticker.C {
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.submissions {
			kept := hits[:0]
			for _, t := range hits {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(l.submissions, ip)
			} else {
				l.submissions[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Allow returns true if the IP has not exceeded the rate limit within the window.
func (l *contactLimiter) Allow(ip string) bool {
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.submissions[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.max {
		l.submissions[ip] = kept
		return false
	}
	kept = append(kept, now)
	l.submissions[ip] = kept
	return true
}
