package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/workvine/crm-backend/internal/entity"
	"github.com/workvine/crm-backend/internal/usecase"
)

func queryBody() string {
	return `{"name":"Visitor","email":"visitor@example.test","message":"Tell me more"}`
}

func TestQueryCreate(t *testing.T) {
	queries := new(mockQueryRepository)
	queries.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewQueryHandler(usecase.NewCreateQueryUseCase(queries))

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(queryBody()))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Query
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entity.QueryStatusPending, got.Status)
}

func TestQueryCreateValidation(t *testing.T) {
	h := NewQueryHandler(usecase.NewCreateQueryUseCase(new(mockQueryRepository)))

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"name":"Visitor"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryRateLimited(t *testing.T) {
	queries := new(mockQueryRepository)
	queries.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewQueryHandler(usecase.NewCreateQueryUseCase(queries))

	var lastCode int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(queryBody()))
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestQueryRateLimitIgnoresAppendedHops(t *testing.T) {
	queries := new(mockQueryRepository)
	queries.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewQueryHandler(usecase.NewCreateQueryUseCase(queries))

	var lastCode int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(queryBody()))
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.9, 10.0.0.%d", i))
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestQueryRateLimitIsPerIP(t *testing.T) {
	queries := new(mockQueryRepository)
	queries.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewQueryHandler(usecase.NewCreateQueryUseCase(queries))

	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(queryBody()))
		req.Header.Set("X-Real-IP", "198.51.100.7")
		rec := httptest.NewRecorder()
		h.Create(rec, req)
	}

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(queryBody()))
	req.Header.Set("X-Real-IP", "198.51.100.8")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.Allow("ip"))
	assert.True(t, rl.Allow("ip"))
	assert.False(t, rl.Allow("ip"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("ip"))
}

func TestClientIPPrecedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.1")
	req.Header.Set("X-Real-IP", "203.0.113.2")
	assert.Equal(t, "203.0.113.1", clientIP(req))

	// Only the first hop counts; appended hops do not change the bucket.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1, 10.0.0.2")
	assert.Equal(t, "203.0.113.1", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.2")
	assert.Equal(t, "203.0.113.2", clientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, req.RemoteAddr, clientIP(req))
}
