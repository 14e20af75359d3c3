//go:build e2e

// Package e2e drives a running ledger server through its HTTP API with
// godog scenarios.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jwttoken "flightsurety/internal/jwt_token"
	"flightsurety/internal/platform/config"
	"flightsurety/pkg/domain"
)

// actors are the named callers scenarios speak for. The founder and owner
// come from the server configuration; the rest must be minted by the
// genesis file the server was started with.
var actors = map[string]string{
	"second airline": "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc",
	"third airline":  "0x90f79bf6eb2c4f870365e785982e1f101e93b907",
	"passenger":      "0x9965507d1a55bcc2695c58ba16fb37d819b0a4dc",
	"oracle":         "0x14dc79964da2c08b23698b3d3cc7ca32193d9955",
	"stranger":       "0xa0ee7a142d267c1f36714e4a8f75612f20a79720",
}

// TestContext holds the client and the last response of a scenario.
type TestContext struct {
	baseURL string
	client  *http.Client
	tokens  *jwttoken.JWTService
	ttl     time.Duration
	cfg     config.Config

	lastStatus int
	lastBody   []byte
}

// NewTestContext reads the same environment as the server so tokens validate.
// FLIGHTSURETY_E2E_URL selects the server, defaulting to localhost:8080.
func NewTestContext() (*TestContext, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	baseURL := os.Getenv("FLIGHTSURETY_E2E_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &TestContext{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		tokens:  jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience),
		ttl:     5 * time.Minute,
		cfg:     cfg,
	}, nil
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastBody = nil
}

// Address resolves an actor name.
func (tc *TestContext) Address(actor string) (domain.Address, error) {
	switch actor {
	case "owner":
		return tc.cfg.Ledger.Owner, nil
	case "founder":
		return tc.cfg.Ledger.Founder, nil
	}
	raw, ok := actors[actor]
	if !ok {
		return domain.Address{}, fmt.Errorf("unknown actor %q", actor)
	}
	return domain.ParseAddress(raw)
}

// Do sends an authenticated request as actor. An empty actor sends none.
func (tc *TestContext) Do(actor, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, tc.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		caller, err := tc.Address(actor)
		if err != nil {
			return err
		}
		token, err := tc.tokens.GenerateAccessToken(caller, tc.ttl)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	return err
}

func (tc *TestContext) LastStatus() int { return tc.lastStatus }

// Field returns a top-level field of the last JSON response.
func (tc *TestContext) Field(name string) (any, error) {
	var body map[string]any
	if err := json.Unmarshal(tc.lastBody, &body); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %s", tc.lastBody)
	}
	v, ok := body[name]
	if !ok {
		return nil, fmt.Errorf("response has no field %q: %s", name, tc.lastBody)
	}
	return v, nil
}

// Body is the raw last response, for failure messages.
func (tc *TestContext) Body() string { return string(tc.lastBody) }
