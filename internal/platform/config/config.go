package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"flightsurety/pkg/domain"
	pkgstrings "flightsurety/pkg/platform/strings"
)

// Development identities used when the environment does not name them.
const (
	defaultOwner   = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	defaultApp     = "0x90f79bf6eb2c4f870365e785982e1f101e93b906"
	defaultVault   = "0x15d34aaf54267db7d7c367839aaf71a00a2c6a65"
	defaultFounder = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
)

// Treasury backends.
const (
	TreasuryMemory = "memory"
	TreasuryRedis  = "redis"
)

// Config is the full process configuration.
type Config struct {
	Server      Server
	Auth        Auth
	Ledger      Ledger
	Redis       RedisConfig
	Kafka       KafkaConfig
	Postgres    PostgresConfig
	RateLimit   RateLimitConfig
	Treasury    string
	GenesisFile string
	LogLevel    string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// MetricsToken, when set, is required in X-Admin-Token on /metrics.
	MetricsToken string
}

// Auth configures bearer token validation.
type Auth struct {
	JWTSigningKey string
	Issuer        string
	Audience      string
	TokenTTL      time.Duration
}

// Ledger names the deploy-time identities and the economic parameters.
type Ledger struct {
	Owner            domain.Address
	App              domain.Address
	Vault            domain.Address
	Founder          domain.Address
	FounderName      string
	MinFunding       domain.Amount
	MaxPremium       domain.Amount
	OracleFee        domain.Amount
	PayoutTenths     uint64
	OracleIndexRange uint8
	MinResponses     int
}

// RedisConfig configures the optional Redis connection. An empty URL
// disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Channel      string
}

// KafkaConfig configures the optional Kafka event sink. No brokers disables it.
type KafkaConfig struct {
	Brokers           []string
	Topic             string
	Partitions        int32
	ReplicationFactor int16
	DeliveryTimeout   time.Duration
}

// PostgresConfig configures the optional event log. An empty DSN disables it.
type PostgresConfig struct {
	DSN        string
	OutboxSize int
}

// RateLimitConfig bounds API calls per caller. Requests <= 0 disables it.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var (
		cfg  Config
		errs []error
	)
	addr := func(key, def string) domain.Address {
		a, err := domain.ParseAddress(getEnv(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return a
	}
	amount := func(key string, def domain.Amount) domain.Amount {
		v, err := parseUnits(os.Getenv(key), def)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	integer := func(key string, def int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return v
	}
	duration := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return v
	}

	cfg.Server = Server{
		Addr:            getEnv("FLIGHTSURETY_ADDR", ":8080"),
		ReadTimeout:     duration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    duration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     duration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MetricsToken:    os.Getenv("METRICS_TOKEN"),
	}
	cfg.Auth = Auth{
		// Use a default for development - should be overridden in production
		JWTSigningKey: getEnv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		Issuer:        getEnv("JWT_ISSUER", "flightsurety"),
		Audience:      getEnv("JWT_AUDIENCE", "flightsurety-api"),
		TokenTTL:      duration("JWT_TOKEN_TTL", 24*time.Hour),
	}
	cfg.Ledger = Ledger{
		Owner:            addr("OWNER_ADDRESS", defaultOwner),
		App:              addr("APP_ADDRESS", defaultApp),
		Vault:            addr("VAULT_ADDRESS", defaultVault),
		Founder:          addr("FOUNDER_ADDRESS", defaultFounder),
		FounderName:      getEnv("FOUNDER_NAME", "Founding Airline"),
		MinFunding:       amount("MIN_FUNDING_UNITS", domain.Units(10)),
		MaxPremium:       amount("MAX_PREMIUM_UNITS", domain.Units(1)),
		OracleFee:        amount("ORACLE_FEE_UNITS", domain.Units(1)),
		PayoutTenths:     uint64(integer("PAYOUT_TENTHS", 15)),
		OracleIndexRange: uint8(integer("ORACLE_INDEX_RANGE", 10)),
		MinResponses:     integer("ORACLE_MIN_RESPONSES", 3),
	}
	cfg.Redis = RedisConfig{
		URL:          os.Getenv("REDIS_URL"),
		PoolSize:     integer("REDIS_POOL_SIZE", 10),
		MinIdleConns: integer("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  duration("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		Channel:      os.Getenv("REDIS_EVENTS_CHANNEL"),
	}
	cfg.Kafka = KafkaConfig{
		Brokers:           pkgstrings.SplitList(os.Getenv("KAFKA_BROKERS"), ","),
		Topic:             getEnv("KAFKA_TOPIC", "flightsurety-events"),
		Partitions:        int32(integer("KAFKA_PARTITIONS", 3)),
		ReplicationFactor: int16(integer("KAFKA_REPLICATION_FACTOR", 1)),
		DeliveryTimeout:   duration("KAFKA_DELIVERY_TIMEOUT", 5*time.Second),
	}
	cfg.Postgres = PostgresConfig{
		DSN:        os.Getenv("DATABASE_URL"),
		OutboxSize: integer("EVENT_OUTBOX_SIZE", 1024),
	}
	cfg.RateLimit = RateLimitConfig{
		Requests: integer("RATE_LIMIT_REQUESTS", 600),
		Window:   duration("RATE_LIMIT_WINDOW", time.Minute),
	}
	cfg.Treasury = getEnv("TREASURY_BACKEND", TreasuryMemory)
	cfg.GenesisFile = os.Getenv("GENESIS_FILE")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	if err := cfg.validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Treasury {
	case TreasuryMemory:
	case TreasuryRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("TREASURY_BACKEND=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("TREASURY_BACKEND must be %q or %q", TreasuryMemory, TreasuryRedis)
	}
	if c.Ledger.App == c.Ledger.Owner {
		return fmt.Errorf("APP_ADDRESS must differ from OWNER_ADDRESS")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// parseUnits reads a decimal amount of whole units, e.g. "10" or "0.5".
func parseUnits(raw string, def domain.Amount) (domain.Amount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return domain.ParseUnits(raw)
}
