package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/internal/scheduler"
	"github.com/wonny/sockpricer/internal/scheduler/jobs"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/redis"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "스케줄러 시작",
	Long: `정기 작업 스케줄러를 시작합니다.

Jobs:
  best_time_report - 매일 06:00, 이달의 최적 구매 시각 계산/캐시 워밍

Example:
  go run ./cmd/sock scheduler
  go run ./cmd/sock scheduler --run-now`,
	RunE: runScheduler,
}

var (
	schedulerRunNow bool
)

func init() {
	rootCmd.AddCommand(schedulerCmd)

	// Flags
	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "run-now", false, "등록된 작업을 즉시 1회 실행")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Sockpricer Scheduler ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Connect to Redis (optional cache)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "sockpricer")

	// 4. Create pricing engine
	engine := pricing.New(cfg, log)

	// 5. Register jobs
	sched := scheduler.New(log)

	bestTimeJob := jobs.NewBestTimeReportJob(engine, cache, log)
	if err := sched.AddJob(bestTimeJob); err != nil {
		return fmt.Errorf("add job: %w", err)
	}

	// 6. Start
	sched.Start()
	defer sched.Stop()

	if schedulerRunNow {
		if err := sched.RunJob(bestTimeJob.Name()); err != nil {
			return fmt.Errorf("run job: %w", err)
		}
	}

	PrintSuccess("Scheduler running. Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	return nil
}
