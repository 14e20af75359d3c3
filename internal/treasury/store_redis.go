package treasury

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"flightsurety/pkg/domain"
	"flightsurety/pkg/platform/sentinel"
)

const balanceKeyPrefix = "flightsurety:balance:"

// Lua numbers are doubles, so balances are compared as decimal strings.
// Redis stores them canonically: no sign, no leading zeros.
const luaLess = `
local function less(a, b)
	if #a ~= #b then
		return #a < #b
	end
	return a < b
end
`

// mintScript credits KEYS[1] by ARGV[1] unless its balance exceeds the
// headroom ARGV[2]. Returns -1 on overflow.
var mintScript = redis.NewScript(luaLess + `
local target = redis.call('GET', KEYS[1]) or '0'
if less(ARGV[2], target) then
	return -1
end
redis.call('INCRBY', KEYS[1], ARGV[1])
return 1
`)

// transferScript debits KEYS[1] and credits KEYS[2] by ARGV[1] atomically.
// Returns 0 when the source balance is too low and -1 when the target
// balance exceeds the headroom ARGV[2].
var transferScript = redis.NewScript(luaLess + `
local balance = redis.call('GET', KEYS[1]) or '0'
if less(balance, ARGV[1]) then
	return 0
end
if KEYS[1] ~= KEYS[2] then
	local target = redis.call('GET', KEYS[2]) or '0'
	if less(ARGV[2], target) then
		return -1
	end
end
redis.call('DECRBY', KEYS[1], ARGV[1])
redis.call('INCRBY', KEYS[2], ARGV[1])
return 1
`)

// Redis keeps balances in Redis so several ledger processes can share one
// treasury. Mints and transfers run as Lua scripts.
type Redis struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func balanceKey(a domain.Address) string {
	return balanceKeyPrefix + a.String()
}

// scriptArgs returns amount and the largest balance that can still take it.
func scriptArgs(amount domain.Amount) []any {
	return []any{
		strconv.FormatUint(uint64(amount), 10),
		strconv.FormatUint(uint64(MaxBalance-amount), 10),
	}
}

func (r *Redis) Mint(ctx context.Context, a domain.Address, amount domain.Amount) error {
	if amount > MaxBalance {
		return fmt.Errorf("mint %s to %s: %w", amount, a, ErrBalanceOverflow)
	}
	res, err := mintScript.Run(ctx, r.client, []string{balanceKey(a)}, scriptArgs(amount)...).Int()
	if err != nil {
		return fmt.Errorf("mint balance: %w", err)
	}
	if res < 0 {
		return fmt.Errorf("mint %s to %s: %w", amount, a, ErrBalanceOverflow)
	}
	return nil
}

func (r *Redis) Balance(ctx context.Context, a domain.Address) (domain.Amount, error) {
	raw, err := r.client.Get(ctx, balanceKey(a)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance: %w", err)
	}
	return domain.Amount(v), nil
}

func (r *Redis) Transfer(ctx context.Context, from, to domain.Address, amount domain.Amount) error {
	if amount > MaxBalance {
		return fmt.Errorf("transfer %s from %s: %w", amount, from, sentinel.ErrInsufficient)
	}
	res, err := transferScript.Run(ctx, r.client, []string{balanceKey(from), balanceKey(to)}, scriptArgs(amount)...).Int()
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	switch res {
	case 0:
		return fmt.Errorf("transfer %s from %s: %w", amount, from, sentinel.ErrInsufficient)
	case -1:
		return fmt.Errorf("transfer %s to %s: %w", amount, to, ErrBalanceOverflow)
	}
	return nil
}
