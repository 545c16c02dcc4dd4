package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
)

// queryParams 쿼리스트링에서 해석된 예측 입력
//
// A `date` parameter (YYYY-MM-DD) fills day-of-week and month and becomes
// the reference date for the clearance window; explicit day/hour/month
// parameters override the derived values.
type queryParams struct {
	day   int
	hour  int
	month int

	daySet   bool
	hourSet  bool
	monthSet bool

	events  contracts.EventFlags
	refDate time.Time
}

// parseParams resolves the shared query parameters of every pricing endpoint.
func parseParams(r *http.Request) (*queryParams, error) {
	q := r.URL.Query()
	p := &queryParams{events: contracts.EventFlags{}}

	if dateStr := q.Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'date' format (expected YYYY-MM-DD)")
		}
		p.refDate = date
		// Monday-first weekday index
		p.day = (int(date.Weekday()) + 6) % 7
		p.month = int(date.Month())
		p.daySet = true
		p.monthSet = true
	}

	if dayStr := q.Get("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'day' (expected integer 0-6, Monday=0)")
		}
		p.day = day
		p.daySet = true
	}

	if hourStr := q.Get("hour"); hourStr != "" {
		hour, err := strconv.Atoi(hourStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'hour' (expected integer 0-23)")
		}
		p.hour = hour
		p.hourSet = true
	}

	if monthStr := q.Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'month' (expected integer 1-12)")
		}
		p.month = month
		p.monthSet = true
	}

	if eventsStr := q.Get("events"); eventsStr != "" {
		events, err := contracts.ParseEventFlags(eventsStr)
		if err != nil {
			return nil, err
		}
		p.events = events
	}

	return p, nil
}

// require returns an error naming the first missing parameter.
func (p *queryParams) require(day, hour, month bool) error {
	if day && !p.daySet {
		return fmt.Errorf("'day' (or 'date') is required")
	}
	if hour && !p.hourSet {
		return fmt.Errorf("'hour' is required")
	}
	if month && !p.monthSet {
		return fmt.Errorf("'month' (or 'date') is required")
	}
	return nil
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
