package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "단일 시점 가격 예측",
	Long: `요일/시간/월과 이벤트 플래그로 한 시점의 양말 가격을 계산합니다.

--date를 주면 요일과 월을 날짜에서 유도하고, 연말 정리 할인의 기준일로도
사용합니다. 명시적 --day/--month가 우선합니다.

Events: back_to_school, black_friday, post_holiday, sock_day

Example:
  go run ./cmd/sock predict --day 0 --hour 7 --month 1
  go run ./cmd/sock predict --date 2026-11-27 --hour 14 --events black_friday
  go run ./cmd/sock predict --date 2026-12-04 --hour 10 --auto-events`,
	RunE: runPredict,
}

var (
	predictDay    int
	predictHour   int
	predictMonth  int
	predictDate   string
	predictEvents string
	predictAuto   bool
)

func init() {
	rootCmd.AddCommand(predictCmd)

	// Flags
	predictCmd.Flags().IntVar(&predictDay, "day", 0, "요일 (0=Monday .. 6=Sunday)")
	predictCmd.Flags().IntVar(&predictHour, "hour", 12, "시간 (0-23)")
	predictCmd.Flags().IntVar(&predictMonth, "month", 1, "월 (1-12)")
	predictCmd.Flags().StringVar(&predictDate, "date", "", "날짜 (YYYY-MM-DD, 요일/월 유도)")
	predictCmd.Flags().StringVar(&predictEvents, "events", "", "이벤트 플래그 (쉼표 구분)")
	predictCmd.Flags().BoolVar(&predictAuto, "auto-events", false, "날짜 기반 기본 이벤트 자동 적용")
}

func runPredict(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	in, err := resolveInputs(predictDate, predictEvents,
		predictDay, predictHour, predictMonth,
		cmd.Flags().Changed("day"), cmd.Flags().Changed("month"))
	if err != nil {
		return err
	}

	if predictAuto && predictEvents == "" && !in.refDate.IsZero() {
		in.events = pricing.DefaultEvents(in.refDate)
	}

	result, err := engine.Predict(in.day, in.hour, in.month, in.events, in.refDate)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	PrintDoubleSeparator()
	fmt.Println("  Sock Price Prediction")
	PrintSeparator()
	PrintKeyValue("Day", contracts.DayNames[in.day], 10)
	PrintKeyValue("Hour", fmt.Sprintf("%d:00", in.hour), 10)
	PrintKeyValue("Month", fmt.Sprintf("%d", in.month), 10)
	PrintKeyValue("Events", in.events.Key(), 10)
	PrintSeparator()
	PrintKeyValue("Price", FormatPrice(result.Price), 10)
	PrintKeyValue("Base", FormatPrice(result.BasePrice), 10)
	if result.Savings.IsPositive() {
		PrintKeyValue("Savings", FormatPrice(result.Savings), 10)
	}
	PrintSeparator()

	if len(result.Factors) > 0 {
		fmt.Println("  Price Factors:")
		PrintList(result.Factors)
	} else {
		PrintInfo("No factors at this time, base price applies")
	}
	PrintDoubleSeparator()

	return nil
}
