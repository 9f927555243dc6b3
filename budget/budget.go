// Package budget enforces the global daily ceiling on LLM token consumption.
// The gate is a soft limit: a request checks the counter before calling the
// model and records actual usage afterwards, so concurrent requests can
// modestly overshoot the ceiling between checks. When the counter store is
// not configured or unreachable, the gate fails open — budgeting is treated
// as disabled rather than blocking the feature.
package budget

import (
	"context"
	"time"

	"github.com/Luciano655dev/HobbyASAP/logger"
	"github.com/Luciano655dev/HobbyASAP/store"
	"go.uber.org/zap"
)

const (
	keyPrefix = "groq:tokens:global:"

	// Counter keys stay around well past midnight so a request straddling
	// the day boundary never resurrects a zeroed counter.
	usageTTL = 48 * time.Hour
)

// Result is the outcome of a budget check.
type Result struct {
	Allowed bool
	DayKey  string
	Used    int64
}

// Gate guards the daily token budget shared by every instance of the API.
type Gate struct {
	counters store.Counters
	limit    int64
	now      func() time.Time
}

// NewGate creates a budget gate. A nil counter store disables budgeting.
func NewGate(counters store.Counters, limit int64) *Gate {
	return &Gate{counters: counters, limit: limit, now: time.Now}
}

// Enabled reports whether a counter store is configured.
func (g *Gate) Enabled() bool {
	return g.counters != nil
}

// Check reads the current UTC day's counter and reports whether another model
// call is allowed. Store errors fail open.
func (g *Gate) Check(ctx context.Context) Result {
	day := g.todayKey()
	if g.counters == nil {
		return Result{Allowed: true, DayKey: day}
	}

	used, err := g.counters.Get(ctx, day)
	if err != nil {
		logger.Get().Warn("budget check failed, allowing request",
			zap.String("key", day),
			zap.Error(err))
		return Result{Allowed: true, DayKey: day}
	}

	return Result{Allowed: used < g.limit, DayKey: day, Used: used}
}

// RecordUsage atomically adds tokens to the day's counter and refreshes its
// expiry. It is a no-op when tokens is zero or the store is not configured;
// errors are logged and swallowed since the tokens were already consumed.
func (g *Gate) RecordUsage(ctx context.Context, dayKey string, tokens int64) {
	if g.counters == nil || tokens == 0 {
		return
	}

	total, err := g.counters.IncrBy(ctx, dayKey, tokens, usageTTL)
	if err != nil {
		logger.Get().Error("failed to record token usage",
			zap.String("key", dayKey),
			zap.Int64("tokens", tokens),
			zap.Error(err))
		return
	}
	logger.Get().Debug("recorded token usage",
		zap.String("key", dayKey),
		zap.Int64("tokens", tokens),
		zap.Int64("total", total))
}

func (g *Gate) todayKey() string {
	return keyPrefix + g.now().UTC().Format("2006-01-02")
}
