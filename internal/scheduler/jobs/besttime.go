package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/redis"
)

// BestTimeReportJob computes the month's optimal purchase slot every
// morning, logs it, and warms the cache the API serves it from.
type BestTimeReportJob struct {
	engine *pricing.Engine
	cache  *redis.Cache
	logger *logger.Logger
	now    func() time.Time
}

// NewBestTimeReportJob creates a new best-time report job
func NewBestTimeReportJob(engine *pricing.Engine, cache *redis.Cache, log *logger.Logger) *BestTimeReportJob {
	return &BestTimeReportJob{
		engine: engine,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

// Name returns the job name
func (j *BestTimeReportJob) Name() string {
	return "best_time_report"
}

// Schedule returns the cron schedule (6 AM daily, with seconds)
func (j *BestTimeReportJob) Schedule() string {
	return "0 0 6 * * *"
}

// Run computes and caches the current month's best purchase time
func (j *BestTimeReportJob) Run(ctx context.Context) error {
	now := j.now()
	month := int(now.Month())
	events := pricing.DefaultEvents(now)

	best, err := j.engine.BestTime(month, events, now)
	if err != nil {
		return fmt.Errorf("best time: %w", err)
	}

	clearance := events.Has(contracts.EventPostHoliday) && month == 12 &&
		now.Day() >= 26 && now.Day() <= 31
	key := redis.BestTimeKey(month, events.Key(), clearance)

	if err := j.cache.Set(ctx, key, best, redis.TTLDaily); err != nil {
		// 캐시 실패는 리포트 자체를 막지 않음
		j.logger.WithError(err).Warn("Best-time cache warm failed")
	}

	j.logger.WithFields(map[string]interface{}{
		"month":  month,
		"events": events.Key(),
		"day":    best.Day,
		"hour":   best.Hour,
		"price":  best.Price.String(),
	}).Info("Best purchase time for this month")

	return nil
}
