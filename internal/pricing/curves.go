package pricing

import (
	"fmt"
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
)

// DailyCurve returns 24 hourly points for one day of the week.
func (e *Engine) DailyCurve(dayOfWeek, month int, events contracts.EventFlags, refDate time.Time) ([]contracts.PricePoint, error) {
	if err := validateInputs(dayOfWeek, 0, month); err != nil {
		return nil, err
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}

	points := make([]contracts.PricePoint, 0, 24)
	for hour := 0; hour < 24; hour++ {
		result, err := e.Predict(dayOfWeek, hour, month, events, refDate)
		if err != nil {
			return nil, err
		}
		points = append(points, contracts.PricePoint{
			Label: fmt.Sprintf("%d:00", hour),
			Price: result.Price,
		})
	}
	return points, nil
}

// WeeklyCurve returns 7 points (Monday-first) for one hour of the day.
func (e *Engine) WeeklyCurve(hour, month int, events contracts.EventFlags, refDate time.Time) ([]contracts.PricePoint, error) {
	if err := validateInputs(0, hour, month); err != nil {
		return nil, err
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}

	points := make([]contracts.PricePoint, 0, 7)
	for day := 0; day < 7; day++ {
		result, err := e.Predict(day, hour, month, events, refDate)
		if err != nil {
			return nil, err
		}
		points = append(points, contracts.PricePoint{
			Label: contracts.DayNames[day],
			Price: result.Price,
		})
	}
	return points, nil
}

// BestTime scans all 7x24 slots of a month and returns the cheapest.
// Ties resolve to the first slot in day-major, hour-minor order.
func (e *Engine) BestTime(month int, events contracts.EventFlags, refDate time.Time) (*contracts.BestTime, error) {
	if err := validateInputs(0, 0, month); err != nil {
		return nil, err
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}

	t := e.table(month, events, e.refDay(refDate))

	best := contracts.BestTime{
		Day:   contracts.DayNames[0],
		Hour:  0,
		Price: t.prices[0][0],
	}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			if t.prices[day][hour].LessThan(best.Price) {
				best = contracts.BestTime{
					Day:   contracts.DayNames[day],
					Hour:  hour,
					Price: t.prices[day][hour],
				}
			}
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"month":  month,
		"events": events.Key(),
		"day":    best.Day,
		"hour":   best.Hour,
		"price":  best.Price.String(),
	}).Debug("Best purchase time computed")

	return &best, nil
}

// Heatmap returns the full 7x24 price matrix for a month.
func (e *Engine) Heatmap(month int, events contracts.EventFlags, refDate time.Time) (*contracts.Heatmap, error) {
	if err := validateInputs(0, 0, month); err != nil {
		return nil, err
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}

	t := e.table(month, events, e.refDay(refDate))

	heatmap := &contracts.Heatmap{
		Days:  contracts.DayNames[:],
		Hours: make([]int, 24),
	}
	for hour := 0; hour < 24; hour++ {
		heatmap.Hours[hour] = hour
	}
	for day := 0; day < 7; day++ {
		row := t.prices[day][:]
		heatmap.Prices = append(heatmap.Prices, append(row[:0:0], row...))
	}

	return heatmap, nil
}

// CurveExtremes returns the cheapest and most expensive point of a curve.
// Ties resolve to the first point encountered.
func CurveExtremes(points []contracts.PricePoint) (min, max contracts.PricePoint) {
	if len(points) == 0 {
		return
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.Price.LessThan(min.Price) {
			min = p
		}
		if p.Price.GreaterThan(max.Price) {
			max = p
		}
	}
	return
}
