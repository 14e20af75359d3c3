//go:build e2e

package insurance

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"flightsurety/pkg/domain"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(actor, method, path string, body any) error
	Address(actor string) (domain.Address, error)
}

// RegisterSteps registers flight and policy steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &insuranceSteps{tc: tc}

	ctx.Step(`^"([^"]*)" registers flight "([^"]*)" departing at (\d+)$`, steps.registerFlight)
	ctx.Step(`^"([^"]*)" looks up flight "([^"]*)" of "([^"]*)" departing at (\d+)$`, steps.lookupFlight)
	ctx.Step(`^"([^"]*)" buys ([0-9.]+) units of insurance for flight "([^"]*)" of "([^"]*)" departing at (\d+)$`, steps.buy)
	ctx.Step(`^"([^"]*)" looks up the policy for flight "([^"]*)" of "([^"]*)" departing at (\d+)$`, steps.lookupPolicy)
	ctx.Step(`^"([^"]*)" checks their credits$`, steps.credits)
	ctx.Step(`^"([^"]*)" withdraws their credits$`, steps.withdraw)
	ctx.Step(`^"([^"]*)" checks their balance$`, steps.balance)
}

type insuranceSteps struct {
	tc TestContext
}

func (s *insuranceSteps) flightPath(prefix, airline, code string, ts int64) (string, error) {
	addr, err := s.tc.Address(airline)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s/%d", prefix, addr, code, ts), nil
}

func (s *insuranceSteps) registerFlight(ctx context.Context, airline, code string, ts int64) error {
	return s.tc.Do(airline, http.MethodPost, "/v1/flights", map[string]any{"code": code, "timestamp": ts})
}

func (s *insuranceSteps) lookupFlight(ctx context.Context, actor, code, airline string, ts int64) error {
	path, err := s.flightPath("/v1/flights", airline, code, ts)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodGet, path, nil)
}

func (s *insuranceSteps) buy(ctx context.Context, actor, units, code, airline string, ts int64) error {
	addr, err := s.tc.Address(airline)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodPost, "/v1/insurance", map[string]any{
		"airline":   addr.String(),
		"code":      code,
		"timestamp": ts,
		"value":     units,
	})
}

func (s *insuranceSteps) lookupPolicy(ctx context.Context, actor, code, airline string, ts int64) error {
	path, err := s.flightPath("/v1/insurance", airline, code, ts)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodGet, path, nil)
}

func (s *insuranceSteps) credits(ctx context.Context, actor string) error {
	return s.tc.Do(actor, http.MethodGet, "/v1/credits", nil)
}

func (s *insuranceSteps) withdraw(ctx context.Context, actor string) error {
	return s.tc.Do(actor, http.MethodPost, "/v1/credits/withdrawals", nil)
}

func (s *insuranceSteps) balance(ctx context.Context, actor string) error {
	return s.tc.Do(actor, http.MethodGet, "/v1/accounts/me", nil)
}
