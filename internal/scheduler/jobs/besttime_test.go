package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/redis"
)

func testJob(t *testing.T) *BestTimeReportJob {
	t.Helper()

	log := logger.New(&config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
	})

	engine := pricing.NewWithPrices(
		decimal.RequireFromString("6.00"),
		decimal.RequireFromString("2.50"),
		log,
	)

	client, err := redis.New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewBestTimeReportJob(engine, redis.NewCache(client, "sockpricer"), log)
}

func TestBestTimeReportJob_Metadata(t *testing.T) {
	job := testJob(t)

	assert.Equal(t, "best_time_report", job.Name())
	assert.Equal(t, "0 0 6 * * *", job.Schedule())
}

func TestBestTimeReportJob_Run(t *testing.T) {
	job := testJob(t)
	job.now = func() time.Time {
		return time.Date(2026, 7, 10, 6, 0, 0, 0, time.UTC)
	}

	err := job.Run(context.Background())
	assert.NoError(t, err)
}

func TestBestTimeReportJob_RunWithSeasonalDefaults(t *testing.T) {
	job := testJob(t)

	// Dec 28 activates the post_holiday default and the clearance window
	job.now = func() time.Time {
		return time.Date(2026, 12, 28, 6, 0, 0, 0, time.UTC)
	}

	err := job.Run(context.Background())
	assert.NoError(t, err)
}
