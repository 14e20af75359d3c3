//go:build e2e

package common

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(actor, method, path string, body any) error
	LastStatus() int
	Field(name string) (any, error)
	Body() string
}

// RegisterSteps registers background and assertion steps shared by features.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^the ledger is healthy$`, steps.ledgerIsHealthy)
	ctx.Step(`^"([^"]*)" checks whether the ledger is operational$`, steps.checkOperational)
	ctx.Step(`^"([^"]*)" sets the ledger operational to (true|false)$`, steps.setOperational)
	ctx.Step(`^an unauthenticated caller reads "([^"]*)"$`, steps.unauthenticatedGet)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the error should be "([^"]*)"$`, steps.errorShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) ledgerIsHealthy(ctx context.Context) error {
	if err := s.tc.Do("", http.MethodGet, "/health", nil); err != nil {
		return err
	}
	return s.statusShouldBe(ctx, http.StatusOK)
}

func (s *commonSteps) checkOperational(ctx context.Context, actor string) error {
	return s.tc.Do(actor, http.MethodGet, "/v1/operational", nil)
}

func (s *commonSteps) setOperational(ctx context.Context, actor, value string) error {
	return s.tc.Do(actor, http.MethodPut, "/v1/operational", map[string]bool{"operational": value == "true"})
}

func (s *commonSteps) unauthenticatedGet(ctx context.Context, path string) error {
	return s.tc.Do("", http.MethodGet, path, nil)
}

func (s *commonSteps) statusShouldBe(ctx context.Context, want int) error {
	if got := s.tc.LastStatus(); got != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, got, s.tc.Body())
	}
	return nil
}

func (s *commonSteps) errorShouldBe(ctx context.Context, code string) error {
	return s.fieldShouldBe(ctx, "error", code)
}

func (s *commonSteps) fieldShouldBe(ctx context.Context, field, want string) error {
	got, err := s.tc.Field(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(got) != want {
		return fmt.Errorf("expected %s to be %q, got %q", field, want, fmt.Sprint(got))
	}
	return nil
}
