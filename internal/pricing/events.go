package pricing

import (
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
)

// DefaultEvents derives the event flags that are normally active on a
// calendar date. Callers stay free to toggle any flag on or off; these are
// only the presets the presentation layer starts from.
//
//   - back_to_school: September
//   - black_friday:   November 24-25
//   - post_holiday:   December 26 onward
//   - sock_day:       December 4 (National Sock Day)
func DefaultEvents(date time.Time) contracts.EventFlags {
	events := contracts.EventFlags{}

	month := date.Month()
	day := date.Day()

	if month == time.September {
		events = append(events, contracts.EventBackToSchool)
	}
	if month == time.November && day >= 24 && day <= 25 {
		events = append(events, contracts.EventBlackFriday)
	}
	if month == time.December && day >= 26 {
		events = append(events, contracts.EventPostHoliday)
	}
	if month == time.December && day == 4 {
		events = append(events, contracts.EventSockDay)
	}

	return events
}
