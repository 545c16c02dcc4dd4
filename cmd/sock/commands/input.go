package commands

import (
	"fmt"
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
)

// predictionInputs 커맨드 플래그에서 해석된 예측 입력
type predictionInputs struct {
	day     int
	hour    int
	month   int
	events  contracts.EventFlags
	refDate time.Time
}

// resolveInputs merges --date with the explicit flags. --date fills day and
// month (and the clearance reference date); explicit flags win.
func resolveInputs(dateStr, eventsStr string, day, hour, month int, daySet, monthSet bool) (*predictionInputs, error) {
	in := &predictionInputs{
		day:   day,
		hour:  hour,
		month: month,
	}

	if dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --date (expected YYYY-MM-DD): %w", err)
		}
		in.refDate = date
		if !daySet {
			in.day = (int(date.Weekday()) + 6) % 7 // Monday-first
		}
		if !monthSet {
			in.month = int(date.Month())
		}
	}

	events, err := contracts.ParseEventFlags(eventsStr)
	if err != nil {
		return nil, err
	}
	in.events = events

	return in, nil
}

// newEngine loads config and builds the shared engine + logger pair.
func newEngine() (*pricing.Engine, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)
	return pricing.New(cfg, log), log, nil
}
