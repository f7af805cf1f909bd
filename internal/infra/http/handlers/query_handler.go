package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/workvine/crm-backend/internal/usecase"
)

// QueryHandler serves the public contact-us form. It is the only
// unauthenticated write path, so it sits behind a per-IP rate limiter.
type QueryHandler struct {
	CreateUC    *usecase.CreateQueryUseCase
	rateLimiter *RateLimiter
}

func NewQueryHandler(createUC *usecase.CreateQueryUseCase) *QueryHandler {
	return &QueryHandler{
		CreateUC:    createUC,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(clientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateQueryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	query, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, query)
}

// clientIP keys the rate limiter. Only the first X-Forwarded-For hop is
// used, so appending hops cannot mint fresh buckets.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
