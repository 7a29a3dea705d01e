package repository

import (
	"BalaghAPI/internal/adapter"
	"BalaghAPI/internal/constant"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateWindowScript counts one hit and opens the window on the first hit of a
// fixed window. It returns the count and the window's remaining milliseconds.
var rateWindowScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 or redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {n, redis.call('PTTL', KEYS[1])}
`)

// RateSubject is who a limit counts against. A signed-in user is counted by
// account wherever they connect from; anyone else by client address.
type RateSubject struct {
	UserID   string
	ClientIP string
}

func (s RateSubject) String() string {
	if s.UserID != "" {
		return "user:" + s.UserID
	}
	return "ip:" + s.ClientIP
}

type RateDecision struct {
	Allowed   bool
	Remaining int
	Reset     time.Duration
}

type RateLimitRepository struct {
	redisAdapter *adapter.RedisAdapter
}

func NewRateLimitRepository(redisAdapter *adapter.RedisAdapter) *RateLimitRepository {
	return &RateLimitRepository{
		redisAdapter: redisAdapter,
	}
}

// rateLimitKey is ratelimit:<action>:user:<id> or ratelimit:<action>:ip:<addr>.
func rateLimitKey(action string, subject RateSubject) string {
	return fmt.Sprintf("%s%s:%s", constant.RateLimitKeyPrefix, action, subject)
}

// Hit records one attempt at action by subject inside a fixed window.
func (r *RateLimitRepository) Hit(ctx context.Context, action string, subject RateSubject, limit int, window time.Duration) (RateDecision, error) {
	res, err := rateWindowScript.Run(ctx, r.redisAdapter.Client(), []string{rateLimitKey(action, subject)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return RateDecision{}, err
	}
	if len(res) != 2 {
		return RateDecision{}, fmt.Errorf("unexpected rate window reply: %v", res)
	}

	count, pttl := res[0], res[1]
	reset := window
	if pttl > 0 {
		reset = time.Duration(pttl) * time.Millisecond
	}
	return RateDecision{
		Allowed:   count <= int64(limit),
		Remaining: max(limit-int(count), 0),
		Reset:     reset,
	}, nil
}
