package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	dErrors "flightsurety/pkg/domain-errors"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SetOperational(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operational))
	m.SetOperational(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Operational))

	m.AddPolicy(500)
	m.AddPolicy(250)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PoliciesPurchased))
	assert.Equal(t, 750.0, testutil.ToFloat64(m.PremiumsCollected))

	m.Observe("buy_insurance", time.Now(), dErrors.New(dErrors.CodePaymentExceedsCap, "too much"))
	m.Observe("buy_insurance", time.Now(), errors.New("boom"))
	m.Observe("buy_insurance", time.Now(), nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("buy_insurance", "payment_exceeds_cap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("buy_insurance", "internal_error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetOperational(true)
		m.Observe("x", time.Now(), errors.New("boom"))
		m.IncAirlineRegistered()
		m.IncOracleResponse("OnTime")
		m.AddCreditsWithdrawn(1)
	})
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
