package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sock",
	Short: "Sockpricer - 시간 기반 양말 가격 예측 시스템",
	Long: `Sockpricer Unified CLI

요일/시간/월 패턴과 이벤트 플래그로 크루삭스 가격을 결정론적으로 계산.
예측, 일간/주간 곡선, 최적 구매 시각 조회와 API 서버 실행을 제공.

Usage:
  go run ./cmd/sock [command]

Examples:
  go run ./cmd/sock api
  go run ./cmd/sock predict --day 0 --hour 7 --month 1
  go run ./cmd/sock curve daily --day 1 --month 7
  go run ./cmd/sock besttime --month 11 --events black_friday`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
