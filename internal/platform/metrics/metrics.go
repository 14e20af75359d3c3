package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	dErrors "flightsurety/pkg/domain-errors"
)

// Metrics holds all Prometheus metrics for the ledger service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Operational        prometheus.Gauge
	AirlinesRegistered prometheus.Counter
	AirlineVotes       prometheus.Counter
	AirlinesFunded     prometheus.Counter
	FlightsRegistered  prometheus.Counter
	PoliciesPurchased  prometheus.Counter
	PremiumsCollected  prometheus.Counter
	CreditsIssued      prometheus.Counter
	CreditsWithdrawn   prometheus.Counter
	OraclesRegistered  prometheus.Counter
	OracleRequests     prometheus.Counter
	OracleResponses    *prometheus.CounterVec
	FlightsFinalized   *prometheus.CounterVec
	Rejections         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
}

// New creates and registers all metrics on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Operational: f.NewGauge(prometheus.GaugeOpts{
			Name: "flightsurety_operational",
			Help: "1 while the ledger accepts mutations, 0 while paused",
		}),
		AirlinesRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_airlines_registered_total",
			Help: "Total number of airlines that became registered",
		}),
		AirlineVotes: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_airline_votes_total",
			Help: "Total number of sponsor votes recorded",
		}),
		AirlinesFunded: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_airlines_funded_total",
			Help: "Total number of airlines that submitted their stake",
		}),
		FlightsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_flights_registered_total",
			Help: "Total number of flights registered",
		}),
		PoliciesPurchased: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_policies_purchased_total",
			Help: "Total number of insurance policies sold",
		}),
		PremiumsCollected: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_premiums_collected_base_units_total",
			Help: "Sum of premiums escrowed, in base currency units",
		}),
		CreditsIssued: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_credits_issued_base_units_total",
			Help: "Sum of insurance payouts credited, in base currency units",
		}),
		CreditsWithdrawn: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_credits_withdrawn_base_units_total",
			Help: "Sum of credits paid out to passengers, in base currency units",
		}),
		OraclesRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_oracles_registered_total",
			Help: "Total number of oracles registered",
		}),
		OracleRequests: f.NewCounter(prometheus.CounterOpts{
			Name: "flightsurety_oracle_requests_total",
			Help: "Total number of flight status requests opened",
		}),
		OracleResponses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flightsurety_oracle_responses_total",
			Help: "Accepted oracle responses by reported status",
		}, []string{"status"}),
		FlightsFinalized: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flightsurety_flights_finalized_total",
			Help: "Flights that reached oracle quorum, by final status",
		}, []string{"status"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flightsurety_rejections_total",
			Help: "Rejected calls by operation and error code",
		}, []string{"operation", "code"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flightsurety_operation_duration_seconds",
			Help:    "Duration of ledger operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"operation"}),
	}
}

// SetOperational implements the gate status observer.
func (m *Metrics) SetOperational(operational bool) {
	if m == nil {
		return
	}
	if operational {
		m.Operational.Set(1)
		return
	}
	m.Operational.Set(0)
}

// Observe records the duration of operation and, on failure, its error code.
// Call with time.Now() at the start of the operation.
func (m *Metrics) Observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.Rejections.WithLabelValues(operation, string(dErrors.CodeOf(err))).Inc()
	}
}

func (m *Metrics) IncAirlineRegistered() {
	if m != nil {
		m.AirlinesRegistered.Inc()
	}
}

func (m *Metrics) IncAirlineVote() {
	if m != nil {
		m.AirlineVotes.Inc()
	}
}

func (m *Metrics) IncAirlineFunded() {
	if m != nil {
		m.AirlinesFunded.Inc()
	}
}

func (m *Metrics) IncFlightRegistered() {
	if m != nil {
		m.FlightsRegistered.Inc()
	}
}

func (m *Metrics) AddPolicy(premium uint64) {
	if m != nil {
		m.PoliciesPurchased.Inc()
		m.PremiumsCollected.Add(float64(premium))
	}
}

func (m *Metrics) AddCreditsIssued(amount uint64) {
	if m != nil {
		m.CreditsIssued.Add(float64(amount))
	}
}

func (m *Metrics) AddCreditsWithdrawn(amount uint64) {
	if m != nil {
		m.CreditsWithdrawn.Add(float64(amount))
	}
}

func (m *Metrics) IncOracleRegistered() {
	if m != nil {
		m.OraclesRegistered.Inc()
	}
}

func (m *Metrics) IncOracleRequest() {
	if m != nil {
		m.OracleRequests.Inc()
	}
}

func (m *Metrics) IncOracleResponse(status string) {
	if m != nil {
		m.OracleResponses.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) IncFlightFinalized(status string) {
	if m != nil {
		m.FlightsFinalized.WithLabelValues(status).Inc()
	}
}
