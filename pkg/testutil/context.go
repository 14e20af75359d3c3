package testutil

import (
	"net/http"
	"strings"

	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
	authmw "flightsurety/pkg/platform/middleware/auth"
	"flightsurety/pkg/requestcontext"
)

// WithCaller binds caller to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithCaller(req *http.Request, caller domain.Address) *http.Request {
	return req.WithContext(requestcontext.WithCaller(req.Context(), caller))
}

// WithBearer sets the Authorization header.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// StaticValidator accepts tokens of the form "token-<address>" and maps them to
// that address. Anything else is rejected.
type StaticValidator struct{}

func (StaticValidator) ValidateToken(token string) (*authmw.JWTClaims, error) {
	raw, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthenticated, "invalid token")
	}
	caller, err := domain.ParseAddress(raw)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthenticated, "invalid token")
	}
	return &authmw.JWTClaims{Caller: caller, JTI: "static"}, nil
}

// TokenFor returns a token StaticValidator accepts for caller.
func TokenFor(caller domain.Address) string {
	return "token-" + caller.String()
}
