package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
)

// curveCmd represents the curve command
var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "일간/주간 가격 곡선",
	Long: `하루 24시간 또는 일주일 7일의 가격 곡선을 표로 출력합니다.

Example:
  go run ./cmd/sock curve daily --day 1 --month 7
  go run ./cmd/sock curve weekly --hour 14 --month 11 --events black_friday`,
}

// curveDailyCmd represents the daily subcommand
var curveDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "특정 요일의 24시간 곡선",
	RunE:  runCurveDaily,
}

// curveWeeklyCmd represents the weekly subcommand
var curveWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "특정 시간의 주간 곡선 (월요일부터)",
	RunE:  runCurveWeekly,
}

var (
	curveDay    int
	curveHour   int
	curveMonth  int
	curveDate   string
	curveEvents string
)

func init() {
	rootCmd.AddCommand(curveCmd)
	curveCmd.AddCommand(curveDailyCmd)
	curveCmd.AddCommand(curveWeeklyCmd)

	// Flags (shared by both subcommands)
	for _, c := range []*cobra.Command{curveDailyCmd, curveWeeklyCmd} {
		c.Flags().IntVar(&curveDay, "day", 0, "요일 (0=Monday .. 6=Sunday)")
		c.Flags().IntVar(&curveHour, "hour", 12, "시간 (0-23)")
		c.Flags().IntVar(&curveMonth, "month", 1, "월 (1-12)")
		c.Flags().StringVar(&curveDate, "date", "", "날짜 (YYYY-MM-DD, 요일/월 유도)")
		c.Flags().StringVar(&curveEvents, "events", "", "이벤트 플래그 (쉼표 구분)")
	}
}

func runCurveDaily(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	in, err := resolveInputs(curveDate, curveEvents,
		curveDay, curveHour, curveMonth,
		cmd.Flags().Changed("day"), cmd.Flags().Changed("month"))
	if err != nil {
		return err
	}

	points, err := engine.DailyCurve(in.day, in.month, in.events, in.refDate)
	if err != nil {
		return fmt.Errorf("daily curve: %w", err)
	}

	fmt.Printf("\nHourly prices — %s, month %d (events: %s)\n\n",
		contracts.DayNames[in.day], in.month, in.events.Key())
	printCurve(points)
	return nil
}

func runCurveWeekly(cmd *cobra.Command, args []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	in, err := resolveInputs(curveDate, curveEvents,
		curveDay, curveHour, curveMonth,
		cmd.Flags().Changed("day"), cmd.Flags().Changed("month"))
	if err != nil {
		return err
	}

	points, err := engine.WeeklyCurve(in.hour, in.month, in.events, in.refDate)
	if err != nil {
		return fmt.Errorf("weekly curve: %w", err)
	}

	fmt.Printf("\nWeekly prices at %d:00, month %d (events: %s)\n\n",
		in.hour, in.month, in.events.Key())
	printCurve(points)
	return nil
}

// printCurve prints curve points with lowest/highest markers
func printCurve(points []contracts.PricePoint) {
	lowest, highest := pricing.CurveExtremes(points)

	widths := []int{12, 10, 8}
	PrintTableHeader([]string{"Slot", "Price", ""}, widths)

	for _, p := range points {
		marker := ""
		if p.Label == lowest.Label {
			marker = "◀ low"
		} else if p.Label == highest.Label {
			marker = "◀ high"
		}
		PrintTableRow([]string{p.Label, FormatPrice(p.Price), marker}, widths)
	}

	fmt.Println()
	PrintSuccess(fmt.Sprintf("Lowest %s at %s, highest %s at %s",
		FormatPrice(lowest.Price), lowest.Label,
		FormatPrice(highest.Price), highest.Label))
}
