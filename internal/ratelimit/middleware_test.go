package ratelimit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/circuit"
	"flightsurety/pkg/platform/middleware/metadata"
	"flightsurety/pkg/testutil"
)

type stubStore struct {
	err  error
	keys []string
}

func (s *stubStore) Allow(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return Result{}, s.err
	}
	return Result{Allowed: true, Limit: limit, Remaining: limit - 1, ResetAt: time.Now().Add(window)}, nil
}

type MiddlewareSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	primary *stubStore
	breaker *circuit.Breaker
	handler http.Handler
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.primary = &stubStore{}
	s.breaker = circuit.New("ratelimit", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1))
	mw := New(s.primary, Limit{Requests: 2, Window: time.Minute},
		WithLogger(slog.New(slog.NewTextHandler(s.logs, nil))),
		WithBreaker(s.breaker),
	)
	s.handler = mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func (s *MiddlewareSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.handler, req)
}

func (s *MiddlewareSuite) fromIP(ip string) *http.Request {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/v1/credits")
	return req.WithContext(metadata.WithClientIP(req.Context(), ip))
}

func (s *MiddlewareSuite) TestKeysByCallerThenIP() {
	caller := domain.MustParseAddress("0x00000000000000000000000000000000000000aa")

	s.do(testutil.WithCaller(s.fromIP("10.0.0.1"), caller))
	s.do(s.fromIP("10.0.0.2"))

	s.Equal([]string{"caller:" + caller.String(), "ip:10.0.0.2"}, s.primary.keys)
}

func (s *MiddlewareSuite) TestAnnotatesHeaders() {
	rr := s.do(s.fromIP("10.0.0.1"))
	s.Equal(http.StatusNoContent, rr.Code)
	s.Equal("2", rr.Header().Get("X-RateLimit-Limit"))
	s.Equal("1", rr.Header().Get("X-RateLimit-Remaining"))
	s.NotEmpty(rr.Header().Get("X-RateLimit-Reset"))
	s.Empty(rr.Header().Get("X-RateLimit-Status"))
}

func (s *MiddlewareSuite) TestFallsBackWhenPrimaryFails() {
	s.primary.err = errors.New("redis down")

	s.Run("fails open below the threshold", func() {
		rr := s.do(s.fromIP("10.0.0.1"))
		s.Equal(http.StatusNoContent, rr.Code)
		s.False(s.breaker.IsOpen())
	})

	s.Run("fallback enforces the limit once open", func() {
		s.Equal(http.StatusNoContent, s.do(s.fromIP("10.0.0.1")).Code)
		s.True(s.breaker.IsOpen())
		s.Contains(s.logs.String(), "using fallback")

		rr := s.do(s.fromIP("10.0.0.1"))
		s.Equal(http.StatusNoContent, rr.Code)
		s.Equal("degraded", rr.Header().Get("X-RateLimit-Status"))

		rr = s.do(s.fromIP("10.0.0.1"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusTooManyRequests, "rate_limit_exceeded")
		s.NotEmpty(rr.Header().Get("Retry-After"))
	})

	s.Run("recovers when the primary answers again", func() {
		s.primary.err = nil
		rr := s.do(s.fromIP("10.0.0.1"))
		s.Equal(http.StatusNoContent, rr.Code)
		s.False(s.breaker.IsOpen())
		s.Contains(s.logs.String(), "rate limit store recovered")
	})
}

func TestDisabledLimitPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	h := New(&stubStore{err: errors.New("unused")}, Limit{}).Handler(next)

	rr := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}
