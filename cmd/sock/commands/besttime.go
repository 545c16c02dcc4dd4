package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// besttimeCmd represents the besttime command
var besttimeCmd = &cobra.Command{
	Use:   "besttime",
	Short: "최적 구매 시각 탐색",
	Long: `한 달의 7x24 슬롯 전체를 평가해 가장 싼 (요일, 시간)을 찾습니다.

Example:
  go run ./cmd/sock besttime --month 11 --events black_friday
  go run ./cmd/sock besttime --month 7 --heatmap`,
	RunE: runBestTime,
}

var (
	besttimeMonth   int
	besttimeDate    string
	besttimeEvents  string
	besttimeHeatmap bool
)

func init() {
	rootCmd.AddCommand(besttimeCmd)

	// Flags
	besttimeCmd.Flags().IntVar(&besttimeMonth, "month", 1, "월 (1-12)")
	besttimeCmd.Flags().StringVar(&besttimeDate, "date", "", "날짜 (YYYY-MM-DD, 월 유도 + 기준일)")
	besttimeCmd.Flags().StringVar(&besttimeEvents, "events", "", "이벤트 플래그 (쉼표 구분)")
	besttimeCmd.Flags().BoolVar(&besttimeHeatmap, "heatmap", false, "7x24 히트맵 출력")
}

func runBestTime(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	in, err := resolveInputs(besttimeDate, besttimeEvents,
		0, 0, besttimeMonth,
		false, cmd.Flags().Changed("month"))
	if err != nil {
		return err
	}

	best, err := engine.BestTime(in.month, in.events, in.refDate)
	if err != nil {
		return fmt.Errorf("best time: %w", err)
	}

	PrintDoubleSeparator()
	fmt.Printf("  Best Time to Buy — month %d (events: %s)\n", in.month, in.events.Key())
	PrintSeparator()
	PrintKeyValue("Day", best.Day, 8)
	PrintKeyValue("Hour", fmt.Sprintf("%d:00", best.Hour), 8)
	PrintKeyValue("Price", FormatPrice(best.Price), 8)
	PrintDoubleSeparator()

	if besttimeHeatmap {
		heatmap, err := engine.Heatmap(in.month, in.events, in.refDate)
		if err != nil {
			return fmt.Errorf("heatmap: %w", err)
		}

		fmt.Println("\nWeekly price heatmap:")
		for d, day := range heatmap.Days {
			fmt.Printf("%-10s", day)
			for h := range heatmap.Hours {
				fmt.Printf(" %6s", heatmap.Prices[d][h].StringFixed(2))
			}
			fmt.Println()
		}
	}

	return nil
}
