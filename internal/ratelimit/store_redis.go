package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flightsurety:ratelimit:"

// slidingWindowScript trims KEYS[1] to the window ending at ARGV[1] (ms),
// then admits ARGV[4] as a new member if fewer than ARGV[3] remain.
// Returns {allowed, count, oldest}.
var slidingWindowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', now - window)
local count = redis.call('ZCARD', KEYS[1])
local allowed = 0
if count < limit then
	redis.call('ZADD', KEYS[1], now, ARGV[4])
	count = count + 1
	allowed = 1
end
redis.call('PEXPIRE', KEYS[1], window)
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local first = now
if oldest[2] then
	first = tonumber(oldest[2])
end
return {allowed, count, first}
`)

// Redis shares sliding windows between server replicas.
type Redis struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client, now: time.Now}
}

func (r *Redis) Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	now := r.now()
	raw, err := slidingWindowScript.Run(ctx, r.client,
		[]string{keyPrefix + key},
		now.UnixMilli(), window.Milliseconds(), limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit check: %w", err)
	}
	if len(raw) != 3 {
		return Result{}, fmt.Errorf("rate limit check: unexpected reply %v", raw)
	}

	res := Result{
		Allowed: raw[0] == 1,
		Limit:   limit,
		ResetAt: time.UnixMilli(raw[2]).Add(window),
	}
	if res.Allowed {
		res.Remaining = limit - int(raw[1])
	} else {
		res.RetryAfter = res.ResetAt.Sub(now)
	}
	return res, nil
}
