package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightsurety/internal/airline"
	"flightsurety/internal/events"
	eventskafka "flightsurety/internal/events/kafka"
	eventsredis "flightsurety/internal/events/redis"
	eventstore "flightsurety/internal/events/store"
	"flightsurety/internal/flight"
	"flightsurety/internal/funding"
	"flightsurety/internal/gate"
	"flightsurety/internal/insurance"
	jwttoken "flightsurety/internal/jwt_token"
	"flightsurety/internal/ledger"
	"flightsurety/internal/oracle"
	"flightsurety/internal/platform/config"
	"flightsurety/internal/platform/metrics"
	"flightsurety/internal/ratelimit"
	platformredis "flightsurety/internal/platform/redis"
	httptransport "flightsurety/internal/transport/http"
	"flightsurety/internal/treasury"
	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/circuit"
)

// balances is the treasury surface the server needs beyond ledger transfers.
type balances interface {
	ledger.Treasury
	Mint(ctx context.Context, a domain.Address, amount domain.Amount) error
	Balance(ctx context.Context, a domain.Address) (domain.Amount, error)
}

type app struct {
	router  http.Handler
	worker  *events.Worker
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// build assembles every component. On error, anything already opened is
// closed before returning.
func build(ctx context.Context, cfg config.Config, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)
	checks := map[string]httptransport.HealthCheck{}

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	if redisClient != nil {
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		checks["redis"] = redisClient.Health
	}

	publisher, err := buildPublisher(ctx, cfg, log, redisClient, a, checks)
	if err != nil {
		return nil, err
	}

	var bank balances
	switch cfg.Treasury {
	case config.TreasuryRedis:
		bank = treasury.NewRedis(redisClient.Client)
	default:
		bank = treasury.NewMemory()
	}

	founderName := cfg.Ledger.FounderName
	if cfg.GenesisFile != "" {
		genesis, err := config.LoadGenesis(cfg.GenesisFile)
		if err != nil {
			return nil, err
		}
		if genesis.FounderName != "" {
			founderName = genesis.FounderName
		}
		for _, acct := range genesis.Accounts {
			if err := bank.Mint(ctx, acct.Address, acct.Amount); err != nil {
				return nil, fmt.Errorf("mint genesis balance for %s: %w", acct.Address, err)
			}
		}
		log.Info("genesis loaded", "file", cfg.GenesisFile, "accounts", len(genesis.Accounts))
	}

	g := gate.New(cfg.Ledger.Owner,
		gate.WithLogger(log),
		gate.WithObserver(m),
		gate.WithPublisher(publisher),
	)
	m.SetOperational(g.IsOperational())
	if err := g.AuthorizeCaller(ctx, cfg.Ledger.Owner, cfg.Ledger.App); err != nil {
		return nil, fmt.Errorf("authorize app identity: %w", err)
	}

	store, err := ledger.New(g, bank, cfg.Ledger.Vault,
		ledger.WithLogger(log),
		ledger.WithFounder(cfg.Ledger.Founder, founderName),
	)
	if err != nil {
		return nil, fmt.Errorf("create ledger: %w", err)
	}
	l := store.Bind(cfg.Ledger.App)

	insuranceSvc := insurance.New(l,
		insurance.WithLogger(log),
		insurance.WithPublisher(publisher),
		insurance.WithMetrics(m),
		insurance.WithMaxPremium(cfg.Ledger.MaxPremium),
		insurance.WithPayoutTenths(cfg.Ledger.PayoutTenths),
	)
	engine, err := oracle.New(l, insuranceSvc,
		oracle.WithLogger(log),
		oracle.WithPublisher(publisher),
		oracle.WithMetrics(m),
		oracle.WithFee(cfg.Ledger.OracleFee),
		oracle.WithIndexRange(cfg.Ledger.OracleIndexRange),
		oracle.WithMinResponses(cfg.Ledger.MinResponses),
	)
	if err != nil {
		return nil, fmt.Errorf("create oracle engine: %w", err)
	}
	flightSvc := flight.New(l, engine,
		flight.WithLogger(log),
		flight.WithPublisher(publisher),
		flight.WithMetrics(m),
	)
	airlineSvc := airline.New(l, cfg.Ledger.Founder,
		airline.WithLogger(log),
		airline.WithPublisher(publisher),
		airline.WithMetrics(m),
	)
	fundingSvc := funding.New(l,
		funding.WithLogger(log),
		funding.WithPublisher(publisher),
		funding.WithMetrics(m),
		funding.WithMinFunding(cfg.Ledger.MinFunding),
	)

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	a.router = httptransport.NewRouter(httptransport.RouterConfig{
		Logger:       log,
		Validator:    jwttoken.NewJWTServiceAdapter(jwtService),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		MetricsToken: cfg.Server.MetricsToken,
		Checks:       checks,
		Throttle:     buildThrottle(cfg, log, redisClient),
		Handlers: []httptransport.Registrar{
			httptransport.NewGateHandler(g, log),
			httptransport.NewAirlineHandler(airlineSvc, fundingSvc, log),
			httptransport.NewFlightHandler(flightSvc, log),
			httptransport.NewInsuranceHandler(insuranceSvc, log),
			httptransport.NewOracleHandler(engine, log),
			httptransport.NewAccountHandler(bank, log),
		},
	})

	log.Info("ledger ready",
		"owner", cfg.Ledger.Owner,
		"app", cfg.Ledger.App,
		"vault", cfg.Ledger.Vault,
		"founder", cfg.Ledger.Founder,
		"treasury", cfg.Treasury,
	)
	return a, nil
}

// buildPublisher fans events out to every configured sink. With none
// configured, events are only logged.
func buildPublisher(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
	redisClient *platformredis.Client,
	a *app,
	checks map[string]httptransport.HealthCheck,
) (events.Publisher, error) {
	var fanout events.Fanout

	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := eventskafka.New(eventskafka.Config{
			Brokers:           cfg.Kafka.Brokers,
			Topic:             cfg.Kafka.Topic,
			Partitions:        cfg.Kafka.Partitions,
			ReplicationFactor: cfg.Kafka.ReplicationFactor,
			DeliveryTimeout:   cfg.Kafka.DeliveryTimeout,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, kp.Close)
		if err := kp.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor); err != nil {
			return nil, fmt.Errorf("ensure kafka topic: %w", err)
		}
		checks["kafka"] = kp.Health
		fanout = append(fanout, events.Guard(kp, circuit.New("kafka"), events.WithGuardLogger(log)))
		log.Info("kafka event sink enabled", "topic", cfg.Kafka.Topic)
	}

	if redisClient != nil {
		rp := eventsredis.New(redisClient.Client, cfg.Redis.Channel)
		fanout = append(fanout, events.Guard(rp, circuit.New("redis"), events.WithGuardLogger(log)))
		log.Info("redis event sink enabled")
	}

	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		pg := eventstore.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		if cfg.Postgres.OutboxSize <= 0 {
			return nil, errors.New("EVENT_OUTBOX_SIZE must be positive")
		}
		outbox := events.NewOutbox(cfg.Postgres.OutboxSize)
		a.worker = events.NewWorker(pg, outbox.Inbox(), log)
		checks["postgres"] = db.PingContext
		fanout = append(fanout, outbox)
		log.Info("postgres event log enabled")
	}

	return fanout, nil
}

// buildThrottle shares rate limit windows through Redis when available.
func buildThrottle(cfg config.Config, log *slog.Logger, redisClient *platformredis.Client) func(http.Handler) http.Handler {
	limit := ratelimit.Limit{Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window}
	if !limit.Enabled() {
		log.Info("rate limiting disabled")
		return nil
	}
	var store ratelimit.Store = ratelimit.NewMemory()
	if redisClient != nil {
		store = ratelimit.NewRedis(redisClient.Client)
	}
	return ratelimit.New(store, limit, ratelimit.WithLogger(log)).Handler
}
