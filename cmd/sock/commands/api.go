package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/sockpricer/internal/api"
	"github.com/wonny/sockpricer/internal/api/handlers"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/metrics"
	"github.com/wonny/sockpricer/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health              - Health check
  GET  /api/price           - 단일 시점 가격 예측
  GET  /api/curve/daily     - 24시간 곡선
  GET  /api/curve/weekly    - 주간 곡선
  GET  /api/besttime        - 최적 구매 시각
  GET  /api/heatmap         - 7x24 가격 히트맵
  GET  /api/events          - 이벤트 플래그/기본값
  GET  /ws/price            - 실시간 가격 스트림

Example:
  go run ./cmd/sock api
  go run ./cmd/sock api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Sockpricer API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to Redis (optional cache)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	cache := redis.NewCache(redisClient, "sockpricer")
	if redisClient.Enabled() {
		log.Info("Connected to Redis")
	}

	// 4. Create pricing engine
	engine := pricing.New(cfg, log)

	// 5. Create metrics (optional)
	var m *metrics.Metrics
	metricsCtx, metricsCancel := context.WithCancel(context.Background())
	defer metricsCancel()
	if cfg.MetricsEnabled {
		m, err = metrics.New(nil)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		go func() {
			if err := metrics.StartServer(metricsCtx, ":"+cfg.MetricsPort); err != nil {
				log.WithError(err).Error("Metrics server failed")
			}
		}()
		log.WithField("port", cfg.MetricsPort).Info("Metrics server started")
	}

	// 6. Create handlers
	priceHandler := handlers.NewPriceHandler(engine, cache, log)
	streamHandler := handlers.NewStreamHandler(engine, cfg.API.StreamInterval, log)

	// 7. Create router
	router := api.NewRouter(priceHandler, streamHandler, cfg.API, m, log)

	// 8. Create server
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/price")
	fmt.Println("  GET  /api/curve/daily")
	fmt.Println("  GET  /api/curve/weekly")
	fmt.Println("  GET  /api/besttime")
	fmt.Println("  GET  /api/heatmap")
	fmt.Println("  GET  /api/events")
	fmt.Println("  GET  /ws/price")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
