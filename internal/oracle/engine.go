// Package oracle registers oracles, opens flight status requests and
// finalizes flight status once enough matching oracle responses arrive.
//
// The engine serializes every call on its own mutex and runs ledger work
// inside that critical section, so responses for one (index, flight) pair are
// applied in arrival order and the quorum check sees every earlier response.
// Lock order is always engine, then ledger. Events go out after the engine
// lock is released, so a slow sink never holds up other oracle calls.
package oracle

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"flightsurety/internal/events"
	"flightsurety/internal/ledger"
	"flightsurety/internal/oracle/randomness"
	"flightsurety/internal/platform/metrics"
	"flightsurety/pkg/domain"
	dErrors "flightsurety/pkg/domain-errors"
)

const (
	// IndexesPerOracle is how many distinct indexes each oracle holds.
	IndexesPerOracle = 3

	DefaultIndexRange   uint8 = 10
	DefaultMinResponses       = 3

	// maxDraws bounds index assignment against a degenerate source.
	maxDraws = 1024

	tracerName = "flightsurety/oracle"
)

// DefaultFee is the minimum registration payment.
var DefaultFee = domain.Units(1)

// Insurer credits policyholders inside the finalizing transaction.
type Insurer interface {
	CreditInsurees(tx ledger.Tx, key domain.FlightKey) ([]ledger.Credit, error)
}

// Response is the outcome of one accepted oracle response.
type Response struct {
	// Ignored is set when the tally had already finalized; nothing changed.
	Ignored bool
	// Count is how many oracles now back the reported status.
	Count int
	// Finalized is set when this response moved the flight out of Unknown.
	Finalized bool
	Credits   []ledger.Credit
}

type tallyKey struct {
	index  uint8
	flight domain.FlightKey
}

type tally struct {
	responses map[domain.Status]map[domain.Address]struct{}
	finalized bool
}

// countWith is the backing for status once oracle is included.
func (t *tally) countWith(status domain.Status, oracle domain.Address) int {
	if t == nil {
		return 1
	}
	set := t.responses[status]
	if _, ok := set[oracle]; ok {
		return len(set)
	}
	return len(set) + 1
}

type Engine struct {
	mu           sync.Mutex
	ledger       ledger.Ledger
	insurer      Insurer
	source       randomness.Source
	fee          domain.Amount
	indexRange   uint8
	minResponses int
	nonce        uint64
	oracles      map[domain.Address][]uint8
	tallies      map[tallyKey]*tally
	logger       *slog.Logger
	publisher    events.Publisher
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithPublisher(publisher events.Publisher) Option {
	return func(e *Engine) {
		e.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithSource swaps the index source, typically for a randomness.Sequence in tests.
func WithSource(source randomness.Source) Option {
	return func(e *Engine) {
		e.source = source
	}
}

func WithFee(fee domain.Amount) Option {
	return func(e *Engine) {
		e.fee = fee
	}
}

func WithIndexRange(n uint8) Option {
	return func(e *Engine) {
		e.indexRange = n
	}
}

func WithMinResponses(n int) Option {
	return func(e *Engine) {
		e.minResponses = n
	}
}

func New(l ledger.Ledger, insurer Insurer, opts ...Option) (*Engine, error) {
	e := &Engine{
		ledger:       l,
		insurer:      insurer,
		source:       randomness.Keccak{},
		fee:          DefaultFee,
		indexRange:   DefaultIndexRange,
		minResponses: DefaultMinResponses,
		oracles:      make(map[domain.Address][]uint8),
		tallies:      make(map[tallyKey]*tally),
		tracer:       otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	if l == nil || insurer == nil {
		return nil, fmt.Errorf("ledger and insurer are required")
	}
	if e.indexRange < IndexesPerOracle {
		return nil, fmt.Errorf("index range %d cannot hold %d distinct indexes", e.indexRange, IndexesPerOracle)
	}
	if e.minResponses < 1 {
		return nil, fmt.Errorf("min responses must be positive")
	}
	return e, nil
}

// RegisterOracle collects at least the fee from oracle and assigns its
// indexes. The whole payment goes to the vault.
func (e *Engine) RegisterOracle(ctx context.Context, oracle domain.Address, payment domain.Amount) (indexes []uint8, err error) {
	start := time.Now()
	defer func() { e.metrics.Observe("register_oracle", start, err) }()

	indexes, err = e.register(ctx, oracle, payment)
	if err != nil {
		return nil, err
	}

	e.metrics.IncOracleRegistered()
	events.Emit(ctx, e.logger, e.publisher, events.New(ctx, events.TypeOracleRegistered, events.OracleRegistered{
		Oracle:  oracle,
		Indexes: slices.Clone(indexes),
	}))
	return slices.Clone(indexes), nil
}

func (e *Engine) register(ctx context.Context, oracle domain.Address, payment domain.Amount) (indexes []uint8, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	nonce := e.nonce
	err = e.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		if _, ok := e.oracles[oracle]; ok {
			return dErrors.New(dErrors.CodeAlreadyRegistered, "oracle is already registered")
		}
		if payment < e.fee {
			return dErrors.New(dErrors.CodeInsufficientFunds, "registration fee is "+e.fee.String()+" units")
		}
		var err error
		indexes, nonce, err = e.assignIndexes(oracle, nonce)
		if err != nil {
			return err
		}
		return tx.Collect(oracle, payment)
	})
	if err != nil {
		return nil, err
	}
	e.nonce = nonce
	e.oracles[oracle] = indexes
	return indexes, nil
}

// assignIndexes draws distinct indexes seeded by the oracle and a counter
// that advances on every draw. It returns the next counter value.
func (e *Engine) assignIndexes(oracle domain.Address, nonce uint64) ([]uint8, uint64, error) {
	indexes := make([]uint8, 0, IndexesPerOracle)
	for draws := 0; len(indexes) < IndexesPerOracle; draws++ {
		if draws == maxDraws {
			return nil, nonce, dErrors.New(dErrors.CodeInternal, "index source did not yield distinct indexes")
		}
		seed := binary.BigEndian.AppendUint64(oracle.Bytes(), nonce)
		nonce++
		idx := e.source.Index(seed, e.indexRange)
		if !slices.Contains(indexes, idx) {
			indexes = append(indexes, idx)
		}
	}
	return indexes, nonce, nil
}

// GetMyIndexes returns the indexes assigned to oracle.
func (e *Engine) GetMyIndexes(_ context.Context, oracle domain.Address) ([]uint8, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	indexes, ok := e.oracles[oracle]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "oracle is not registered")
	}
	return slices.Clone(indexes), nil
}

// RequestStatus derives the request index from the flight key and announces
// the request to oracles. Repeated requests for one key share an index.
func (e *Engine) RequestStatus(ctx context.Context, key domain.FlightKey) (index uint8, err error) {
	index, err = e.openRequest(ctx, key)
	if err != nil {
		return 0, err
	}

	e.metrics.IncOracleRequest()
	events.Emit(ctx, e.logger, e.publisher, events.New(ctx, events.TypeOracleRequest, events.OracleRequest{
		Index:     index,
		Airline:   key.Airline,
		Flight:    key.Code,
		Timestamp: key.Timestamp,
	}))
	return index, nil
}

func (e *Engine) openRequest(ctx context.Context, key domain.FlightKey) (uint8, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		return tx.Authorize()
	})
	if err != nil {
		return 0, err
	}
	return e.source.Index(key.Bytes(), e.indexRange), nil
}

// SubmitOracleResponse records oracle's report of status for key under index.
// The first status backed by the quorum finalizes an Unknown flight; a late
// airline status also credits its insurees in the same transaction. Responses
// to a finalized tally are accepted and ignored.
func (e *Engine) SubmitOracleResponse(ctx context.Context, oracle domain.Address, index uint8, key domain.FlightKey, status domain.Status) (res Response, err error) {
	start := time.Now()
	defer func() { e.metrics.Observe("submit_oracle_response", start, err) }()

	ctx, span := e.tracer.Start(ctx, "oracle.SubmitResponse", trace.WithAttributes(
		attribute.Int("oracle.index", int(index)),
		attribute.String("flight.code", key.Code),
		attribute.Int("flight.status", int(status)),
	))
	defer span.End()

	res, err = e.record(ctx, oracle, index, key, status)
	if err != nil {
		span.RecordError(err)
		return Response{}, err
	}
	if res.Ignored {
		return res, nil
	}

	e.metrics.IncOracleResponse(status.String())
	events.Emit(ctx, e.logger, e.publisher, events.New(ctx, events.TypeOracleReport, events.OracleReport{
		Oracle:    oracle,
		Index:     index,
		Airline:   key.Airline,
		Flight:    key.Code,
		Timestamp: key.Timestamp,
		Status:    status,
	}))
	if res.Finalized {
		span.AddEvent("flight.finalized")
		e.metrics.IncFlightFinalized(status.String())
		events.Emit(ctx, e.logger, e.publisher, events.New(ctx, events.TypeFlightStatusInfo, events.FlightStatusInfo{
			Airline:   key.Airline,
			Flight:    key.Code,
			Timestamp: key.Timestamp,
			Status:    status,
		}))
	}
	if len(res.Credits) > 0 {
		payload := events.InsureesCredited{
			Airline:   key.Airline,
			Flight:    key.Code,
			Timestamp: key.Timestamp,
		}
		for _, c := range res.Credits {
			e.metrics.AddCreditsIssued(uint64(c.Amount))
			payload.Credits = append(payload.Credits, events.Credit{Passenger: c.Passenger, Amount: c.Amount})
		}
		events.Emit(ctx, e.logger, e.publisher, events.New(ctx, events.TypeInsureesCredited, payload))
	}
	return res, nil
}

// record applies one response to its tally under the engine lock.
func (e *Engine) record(ctx context.Context, oracle domain.Address, index uint8, key domain.FlightKey, status domain.Status) (res Response, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tk := tallyKey{index: index, flight: key}
	t := e.tallies[tk]
	closes := false
	err = e.ledger.RunInTx(ctx, func(tx ledger.Tx) error {
		if err := tx.Authorize(); err != nil {
			return err
		}
		if !slices.Contains(e.oracles[oracle], index) {
			return dErrors.New(dErrors.CodeOracleNotEligible, "index does not match oracle request")
		}
		if !status.IsValid() {
			return dErrors.New(dErrors.CodeInvalidInput, "unknown status code")
		}
		if t != nil && t.finalized {
			res.Ignored = true
			return nil
		}
		res.Count = t.countWith(status, oracle)
		if res.Count < e.minResponses || !status.IsTerminal() {
			return nil
		}
		f, ok := tx.Flight(key)
		if !ok {
			return nil
		}
		closes = true
		if f.Status != domain.StatusUnknown {
			return nil
		}
		if err := tx.SetFlightStatus(key, status); err != nil {
			return err
		}
		res.Finalized = true
		if status.TriggersPayout() {
			credits, err := e.insurer.CreditInsurees(tx, key)
			if err != nil {
				return err
			}
			res.Credits = credits
		}
		return nil
	})
	if err != nil || res.Ignored {
		return res, err
	}

	if t == nil {
		t = &tally{responses: make(map[domain.Status]map[domain.Address]struct{})}
		e.tallies[tk] = t
	}
	if t.responses[status] == nil {
		t.responses[status] = make(map[domain.Address]struct{})
	}
	t.responses[status][oracle] = struct{}{}
	t.finalized = closes
	return res, nil
}
