//go:build e2e

package oracle

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
	Field(name string) (any, error)
}

// RegisterSteps registers oracle registration and reporting steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &oracleSteps{tc: tc}

	ctx.Step(`^"([^"]*)" registers as an oracle paying ([0-9.]+) units$`, steps.register)
	ctx.Step(`^"([^"]*)" fetches their oracle indexes$`, steps.fetchIndexes)
	ctx.Step(`^the response should list (\d+) indexes$`, steps.shouldListIndexes)
	ctx.Step(`^"([^"]*)" requests the status of flight "([^"]*)" of "([^"]*)" departing at (\d+)$`, steps.requestStatus)
	ctx.Step(`^"([^"]*)" reports status (\d+) for flight "([^"]*)" of "([^"]*)" departing at (\d+) on its first index$`, steps.report)
}

type oracleSteps struct {
	tc TestContext
}

func (s *oracleSteps) register(ctx context.Context, actor, units string) error {
	return s.tc.Do(actor, http.MethodPost, "/v1/oracles", map[string]string{"value": units})
}

func (s *oracleSteps) fetchIndexes(ctx context.Context, actor string) error {
	return s.tc.Do(actor, http.MethodGet, "/v1/oracles/me/indexes", nil)
}

func (s *oracleSteps) indexes() ([]any, error) {
	raw, err := s.tc.Field("indexes")
	if err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("indexes is %T, not a list", raw)
	}
	return list, nil
}

func (s *oracleSteps) shouldListIndexes(ctx context.Context, n int) error {
	list, err := s.indexes()
	if err != nil {
		return err
	}
	if len(list) != n {
		return fmt.Errorf("expected %d indexes, got %d", n, len(list))
	}
	return nil
}

func (s *oracleSteps) requestStatus(ctx context.Context, actor, code, airline string, ts int64) error {
	addr, err := s.tc.Address(airline)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodPost, fmt.Sprintf("/v1/flights/%s/%s/%d/status-requests", addr, code, ts), nil)
}

func (s *oracleSteps) report(ctx context.Context, actor string, status int, code, airline string, ts int64) error {
	if err := s.fetchIndexes(ctx, actor); err != nil {
		return err
	}
	list, err := s.indexes()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("%s holds no indexes", actor)
	}
	addr, err := s.tc.Address(airline)
	if err != nil {
		return err
	}
	return s.tc.Do(actor, http.MethodPost, "/v1/oracles/responses", map[string]any{
		"index":     int(list[0].(float64)),
		"airline":   addr.String(),
		"code":      code,
		"timestamp": ts,
		"status":    status,
	})
}
