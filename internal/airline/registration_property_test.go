//go:build property

package airline

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"flightsurety/internal/ledger/ledgertest"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

const population = 8

func identities() []domain.Address {
	out := []domain.Address{ledgertest.Founder}
	for i := 1; i < population; i++ {
		out = append(out, ledgertest.Address(byte(i)))
	}
	return out
}

// Each op encodes sponsor = op / population and candidate = op % population.
func TestRegistrationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	ids := identities()

	properties.Property("registered flag is monotonic", prop.ForAll(
		func(ops []int) bool {
			ctx := context.Background()
			svc := New(ledgertest.New(t).Ledger, ledgertest.Founder)
			seen := map[domain.Address]bool{ledgertest.Founder: true}
			for _, op := range ops {
				_, _ = svc.RegisterAirline(ctx, ids[op/population], ids[op%population], "Air")
				for _, a := range ids {
					ok, _ := svc.HasAirlineBeenRegistered(ctx, a)
					if seen[a] && !ok {
						return false
					}
					seen[a] = seen[a] || ok
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, population*population-1)),
	))

	properties.Property("voted registrations always hold a strict majority", prop.ForAll(
		func(ops []int) bool {
			ctx := context.Background()
			svc := New(ledgertest.New(t).Ledger, ledgertest.Founder)
			for _, op := range ops {
				res, err := svc.RegisterAirline(ctx, ids[op/population], ids[op%population], "Air")
				if err != nil || res.Votes == 0 {
					continue
				}
				before := res.RegisteredCount
				if res.Registered {
					before--
				}
				if res.Registered != (res.Votes*2 > before) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, population*population-1)),
	))

	properties.Property("rejected votes never change the vote count", prop.ForAll(
		func(ops []int) bool {
			ctx := context.Background()
			svc := New(ledgertest.New(t).Ledger, ledgertest.Founder)
			for _, op := range ops {
				candidate := ids[op%population]
				before, beforeErr := svc.Get(ctx, candidate)
				_, err := svc.RegisterAirline(ctx, ids[op/population], candidate, "Air")
				if err == nil || beforeErr != nil {
					continue
				}
				after, _ := svc.Get(ctx, candidate)
				if len(after.Votes) != len(before.Votes) {
					return false
				}
				if dErrors.HasCode(err, dErrors.CodeDuplicateVote) && after.Registered {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, population*population-1)),
	))

	properties.TestingRun(t)
}
