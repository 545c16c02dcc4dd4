package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/wonny/sockpricer/internal/contracts"
)

// ruleInput is the fully-resolved input one rule evaluation sees.
type ruleInput struct {
	dayOfWeek int // 0=Monday .. 6=Sunday
	hour      int // 0..23
	month     int // 1..12
	events    contracts.EventFlags
	refDay    int // day-of-month of the reference date (clearance window check)
}

// rule is one additive price adjustment with its human-readable factor.
type rule struct {
	factor  string
	delta   decimal.Decimal
	applies func(in ruleInput) bool
}

var (
	deltaMondayRush   = decimal.RequireFromString("1.50")
	deltaTuesdayLull  = decimal.RequireFromString("-2.00")
	deltaWeekendEve   = decimal.RequireFromString("0.75")
	deltaPeakHours    = decimal.RequireFromString("0.50")
	deltaLateNight    = decimal.RequireFromString("-1.00")
	deltaWinter       = decimal.RequireFromString("1.00")
	deltaSummer       = decimal.RequireFromString("-0.75")
	deltaBackToSchool = decimal.RequireFromString("2.50")
	deltaBlackFriday  = decimal.RequireFromString("-3.50")
	deltaPostHoliday  = decimal.RequireFromString("-3.00")
	deltaSockDay      = decimal.RequireFromString("1.25")
)

// priceRules 가격 조정 규칙 (평가 순서 = 선언 순서, factors 순서 보장)
// ⭐ SSOT: 가격 규칙은 이 테이블에서만 정의
var priceRules = []rule{
	// Day-of-week x hour-band (disjoint across days)
	{
		factor: "Monday morning rush (+$1.50)",
		delta:  deltaMondayRush,
		applies: func(in ruleInput) bool {
			return in.dayOfWeek == 0 && in.hour >= 6 && in.hour <= 10
		},
	},
	{
		factor: "Tuesday afternoon lull (-$2.00)",
		delta:  deltaTuesdayLull,
		applies: func(in ruleInput) bool {
			return in.dayOfWeek == 1 && in.hour >= 13 && in.hour <= 16
		},
	},
	{
		factor: "Weekend evening shopping (+$0.75)",
		delta:  deltaWeekendEve,
		applies: func(in ruleInput) bool {
			return (in.dayOfWeek == 5 || in.dayOfWeek == 6) && in.hour >= 18 && in.hour <= 22
		},
	},

	// Hour-of-day (the two bands are disjoint; 7,8 and 22,23 hit neither)
	{
		factor: "Peak shopping hours (+$0.50)",
		delta:  deltaPeakHours,
		applies: func(in ruleInput) bool {
			return in.hour >= 9 && in.hour <= 21
		},
	},
	{
		factor: "Late night discount (-$1.00)",
		delta:  deltaLateNight,
		applies: func(in ruleInput) bool {
			return in.hour >= 0 && in.hour <= 6
		},
	},

	// Season
	{
		factor: "Winter season (+$1.00)",
		delta:  deltaWinter,
		applies: func(in ruleInput) bool {
			return in.month == 12 || in.month == 1 || in.month == 2
		},
	},
	{
		factor: "Summer clearance (-$0.75)",
		delta:  deltaSummer,
		applies: func(in ruleInput) bool {
			return in.month >= 6 && in.month <= 8
		},
	},

	// Events (flag presence AND month/day condition)
	{
		factor: "Back-to-school rush (+$2.50)",
		delta:  deltaBackToSchool,
		applies: func(in ruleInput) bool {
			return in.events.Has(contracts.EventBackToSchool) && in.month == 9
		},
	},
	{
		factor: "Black Friday sale (-$3.50)",
		delta:  deltaBlackFriday,
		applies: func(in ruleInput) bool {
			return in.events.Has(contracts.EventBlackFriday) && in.month == 11
		},
	},
	{
		factor: "Post-holiday clearance (-$3.00)",
		delta:  deltaPostHoliday,
		applies: func(in ruleInput) bool {
			return in.events.Has(contracts.EventPostHoliday) && in.month == 12 &&
				in.refDay >= 26 && in.refDay <= 31
		},
	},
	{
		factor: "National Sock Day premium (+$1.25)",
		delta:  deltaSockDay,
		applies: func(in ruleInput) bool {
			return in.events.Has(contracts.EventSockDay)
		},
	},
}
