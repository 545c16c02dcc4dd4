package pricing

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
)

// Engine computes rule-based crew sock prices from temporal features.
// 순수 함수 평가라 동시 호출에 안전 (메모 테이블만 뮤텍스로 보호)
// ⭐ SSOT: 가격 계산은 이 엔진에서만
type Engine struct {
	basePrice  decimal.Decimal
	floorPrice decimal.Decimal
	logger     *logger.Logger
	now        func() time.Time

	mu     sync.RWMutex
	tables map[string]*priceTable
}

// New creates an engine from config (BASE_PRICE / FLOOR_PRICE overrides).
func New(cfg *config.Config, log *logger.Logger) *Engine {
	return NewWithPrices(cfg.Pricing.BasePrice, cfg.Pricing.FloorPrice, log)
}

// NewWithPrices creates an engine with explicit base and floor prices.
func NewWithPrices(base, floor decimal.Decimal, log *logger.Logger) *Engine {
	return &Engine{
		basePrice:  base,
		floorPrice: floor,
		logger:     log,
		now:        time.Now,
		tables:     make(map[string]*priceTable),
	}
}

// WithClock replaces the engine clock. The clock is only consulted when a
// prediction is made with a zero reference date.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// BasePrice returns the undiscounted reference price.
func (e *Engine) BasePrice() decimal.Decimal {
	return e.basePrice
}

// Predict computes the price for one (dayOfWeek, hour, month) slot.
//
// dayOfWeek: 0=Monday .. 6=Sunday, hour: 0..23, month: 1..12.
// refDate gates the post-holiday clearance window (Dec 26-31); a zero
// refDate falls back to the engine clock.
func (e *Engine) Predict(dayOfWeek, hour, month int, events contracts.EventFlags, refDate time.Time) (*contracts.PriceResult, error) {
	if err := validateInputs(dayOfWeek, hour, month); err != nil {
		return nil, err
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}

	in := ruleInput{
		dayOfWeek: dayOfWeek,
		hour:      hour,
		month:     month,
		events:    events,
		refDay:    e.refDay(refDate),
	}

	result := e.evaluate(in)

	e.logger.WithFields(map[string]interface{}{
		"day":     contracts.DayNames[dayOfWeek],
		"hour":    hour,
		"month":   month,
		"events":  events.Key(),
		"price":   result.Price.String(),
		"factors": len(result.Factors),
	}).Debug("Price predicted")

	return result, nil
}

// evaluate runs the rule table over a validated input.
func (e *Engine) evaluate(in ruleInput) *contracts.PriceResult {
	price := e.basePrice
	factors := []string{}

	for _, r := range priceRules {
		if r.applies(in) {
			price = price.Add(r.delta)
			factors = append(factors, r.factor)
		}
	}

	// Floor clamp after all adjustments
	if price.LessThan(e.floorPrice) {
		price = e.floorPrice
	}

	savings := decimal.Zero
	if price.LessThan(e.basePrice) {
		savings = e.basePrice.Sub(price).Round(2)
	}

	return &contracts.PriceResult{
		Price:     price.Round(2),
		Factors:   factors,
		BasePrice: e.basePrice,
		Savings:   savings,
	}
}

// refDay resolves the day-of-month used by the clearance rule.
func (e *Engine) refDay(refDate time.Time) int {
	if refDate.IsZero() {
		refDate = e.now()
	}
	return refDate.Day()
}

// priceTable is the memoized 7x24 price matrix for one (month, events) key.
type priceTable struct {
	prices [7][24]decimal.Decimal
}

// table returns the memoized matrix, building it on first use.
// refDay만으로는 키가 안 되고 clearance 활성 여부만 가격에 영향
func (e *Engine) table(month int, events contracts.EventFlags, refDay int) *priceTable {
	clearance := events.Has(contracts.EventPostHoliday) && month == 12 &&
		refDay >= 26 && refDay <= 31

	key := fmt.Sprintf("%02d|%s|%t", month, events.Key(), clearance)

	e.mu.RLock()
	t, ok := e.tables[key]
	e.mu.RUnlock()
	if ok {
		return t
	}

	t = &priceTable{}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			in := ruleInput{
				dayOfWeek: day,
				hour:      hour,
				month:     month,
				events:    events,
				refDay:    refDay,
			}
			t.prices[day][hour] = e.evaluate(in).Price
		}
	}

	e.mu.Lock()
	e.tables[key] = t
	e.mu.Unlock()

	return t
}
