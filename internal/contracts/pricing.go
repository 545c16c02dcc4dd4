package contracts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// EventFlag 프로모션/시즌 이벤트 플래그
type EventFlag string

const (
	// EventBackToSchool 9월 신학기 수요 (월=9일 때만 적용)
	EventBackToSchool EventFlag = "back_to_school"
	// EventBlackFriday 블랙프라이데이 세일 (월=11일 때만 적용)
	EventBlackFriday EventFlag = "black_friday"
	// EventPostHoliday 연말 재고 정리 (12월 26~31일, 기준일 기준)
	EventPostHoliday EventFlag = "post_holiday"
	// EventSockDay 양말의 날 프리미엄 (12월 4일, 플래그만으로 적용)
	EventSockDay EventFlag = "sock_day"
)

// AllEventFlags lists every known flag in declaration order.
var AllEventFlags = []EventFlag{
	EventBackToSchool,
	EventBlackFriday,
	EventPostHoliday,
	EventSockDay,
}

// Valid reports whether the flag is one of the known events.
func (f EventFlag) Valid() bool {
	switch f {
	case EventBackToSchool, EventBlackFriday, EventPostHoliday, EventSockDay:
		return true
	}
	return false
}

// ParseEventFlag converts a string into a known EventFlag.
func ParseEventFlag(s string) (EventFlag, error) {
	f := EventFlag(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown event flag: %q", s)
	}
	return f, nil
}

// EventFlags 호출자가 켠 이벤트 플래그 집합
type EventFlags []EventFlag

// ParseEventFlags parses a comma-separated flag list ("black_friday,sock_day").
// An empty string yields an empty set.
func ParseEventFlags(s string) (EventFlags, error) {
	if strings.TrimSpace(s) == "" {
		return EventFlags{}, nil
	}

	var flags EventFlags
	for _, part := range strings.Split(s, ",") {
		f, err := ParseEventFlag(part)
		if err != nil {
			return nil, err
		}
		if !flags.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags, nil
}

// Has reports whether the set contains the flag.
func (e EventFlags) Has(flag EventFlag) bool {
	for _, f := range e {
		if f == flag {
			return true
		}
	}
	return false
}

// Validate returns an error if the set contains an unknown flag.
func (e EventFlags) Validate() error {
	for _, f := range e {
		if !f.Valid() {
			return fmt.Errorf("unknown event flag: %q", string(f))
		}
	}
	return nil
}

// Key returns a canonical (sorted, comma-joined) representation.
// 캐시 키로 사용되므로 순서와 중복에 영향받지 않아야 함
func (e EventFlags) Key() string {
	if len(e) == 0 {
		return "none"
	}

	seen := make(map[EventFlag]bool, len(e))
	names := make([]string, 0, len(e))
	for _, f := range e {
		if seen[f] {
			continue
		}
		seen[f] = true
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// DayNames 요일 이름 (Monday-first, dayOfWeek 0=Monday)
var DayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// PriceResult is the outcome of a single price prediction.
type PriceResult struct {
	Price     decimal.Decimal `json:"price"`
	Factors   []string        `json:"factors"`
	BasePrice decimal.Decimal `json:"base_price"`
	Savings   decimal.Decimal `json:"savings"`
}

// PricePoint is one labeled point of a daily or weekly curve.
type PricePoint struct {
	Label string          `json:"label"` // hour ("14:00") or day name
	Price decimal.Decimal `json:"price"`
}

// BestTime is the cheapest (day, hour) slot of a month.
type BestTime struct {
	Day   string          `json:"day"`
	Hour  int             `json:"hour"`
	Price decimal.Decimal `json:"price"`
}

// Heatmap is the full 7x24 price matrix for a month.
// Prices[d][h] = price at DayNames[d], hour h.
type Heatmap struct {
	Days   []string            `json:"days"`
	Hours  []int               `json:"hours"`
	Prices [][]decimal.Decimal `json:"prices"`
}
