//go:build e2e

package airline

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

// RegisterSteps registers airline membership and funding steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &airlineSteps{tc: tc}

	ctx.Step(`^"([^"]*)" funds ([0-9.]+) units$`, steps.fund)
	ctx.Step(`^"([^"]*)" adds "([^"]*)" as airline "([^"]*)"$`, steps.addAirline)
	ctx.Step(`^"([^"]*)" votes for "([^"]*)" as airline "([^"]*)"$`, steps.vote)
	ctx.Step(`^"([^"]*)" looks up airline "([^"]*)"$`, steps.lookup)
}

type airlineSteps struct {
	tc TestContext
}

func (s *airlineSteps) fund(ctx context.Context, actor, units string) error {
	return s.tc.Do(actor, http.MethodPost, "/v1/funding", map[string]string{"value": units})
}

func (s *airlineSteps) addAirline(ctx context.Context, sponsor, candidate, name string) error {
	addr, err := s.tc.Address(candidate)
	if err != nil {
		return err
	}
	return s.tc.Do(sponsor, http.MethodPost, "/v1/airlines", map[string]string{
		"address": addr.String(),
		"name":    name,
	})
}

func (s *airlineSteps) vote(ctx context.Context, voter, candidate, name string) error {
	addr, err := s.tc.Address(candidate)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("/v1/airlines/%s/registrations", addr)
	return s.tc.Do(voter, http.MethodPost, path, map[string]string{"name": name})
}

func (s *airlineSteps) lookup(ctx context.Context, actor, airline string) error {
	addr, err := s.tc.Address(airline)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodGet, "/v1/airlines/"+addr.String(), nil)
}
