package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockoutKeyPrefix  = "lockout:owner:"
	lockoutTTL        = 25 * time.Hour // auto-cleanup
	failThreshold     = 5
	maxLockoutMinutes = 12 * 60
)

// LoginLockout throttles repeated failed owner logins per email. State lives
// in Redis; with a nil client every check passes, so the app still works
// without Redis.
type LoginLockout struct {
	rdb *redis.Client
}

func NewLoginLockout(rdb *redis.Client) *LoginLockout {
	return &LoginLockout{rdb: rdb}
}

// lockoutDuration doubles per tier of failThreshold consecutive failures,
// starting at 10 minutes and capped at 12h.
func lockoutDuration(failCount int) time.Duration {
	tier := failCount / failThreshold
	if tier <= 0 {
		return 0
	}
	minutes := 10 * (1 << (tier - 1))
	if minutes > maxLockoutMinutes {
		minutes = maxLockoutMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// IsLocked reports whether an email is locked out and for how many more
// seconds.
func (lo *LoginLockout) IsLocked(ctx context.Context, email string) (bool, int) {
	if lo == nil || lo.rdb == nil {
		return false, 0
	}
	lockedUntil, err := lo.rdb.HGet(ctx, lockoutKeyPrefix+email, "locked_until").Result()
	if err != nil {
		return false, 0
	}
	ts, err := strconv.ParseInt(lockedUntil, 10, 64)
	if err != nil {
		return false, 0
	}
	until := time.Unix(ts, 0)
	if time.Now().After(until) {
		return false, 0
	}
	return true, int(time.Until(until).Seconds())
}

// RecordFailure bumps the fail count and applies a lockout at each
// threshold multiple.
func (lo *LoginLockout) RecordFailure(ctx context.Context, email string) {
	if lo == nil || lo.rdb == nil {
		return
	}
	key := lockoutKeyPrefix + email

	newCount, err := lo.rdb.HIncrBy(ctx, key, "fail_count", 1).Result()
	if err != nil {
		log.Printf("[Lockout] Redis HIncrBy failed for %s: %v", email, err)
		return
	}
	if err := lo.rdb.Expire(ctx, key, lockoutTTL).Err(); err != nil {
		log.Printf("[Lockout] Redis Expire failed for %s: %v", email, err)
	}

	if newCount >= failThreshold && newCount%failThreshold == 0 {
		until := time.Now().Add(lockoutDuration(int(newCount))).Unix()
		if err := lo.rdb.HSet(ctx, key, "locked_until", strconv.FormatInt(until, 10)).Err(); err != nil {
			log.Printf("[Lockout] Redis HSet failed for %s: %v", email, err)
		}
	}
}

// RecordSuccess clears the fail count after a successful login.
func (lo *LoginLockout) RecordSuccess(ctx context.Context, email string) {
	if lo == nil || lo.rdb == nil {
		return
	}
	if err := lo.rdb.Del(ctx, lockoutKeyPrefix+email).Err(); err != nil {
		log.Printf("[Lockout] Redis Del failed for %s: %v", email, err)
	}
}
