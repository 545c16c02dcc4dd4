package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	log := logger.New(&config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
	})
	return NewWithPrices(
		decimal.RequireFromString("6.00"),
		decimal.RequireFromString("2.50"),
		log,
	)
}

func mustPredict(t *testing.T, e *Engine, day, hour, month int, events contracts.EventFlags) *contracts.PriceResult {
	t.Helper()
	result, err := e.Predict(day, hour, month, events, time.Time{})
	require.NoError(t, err)
	return result
}

func TestPredict_Fixtures(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name    string
		day     int
		hour    int
		month   int
		events  contracts.EventFlags
		price   string
		savings string
	}{
		{
			// Monday rush + winter, hour 7 triggers no hour rule
			name: "monday morning winter", day: 0, hour: 7, month: 1,
			price: "8.50", savings: "0",
		},
		{
			// Hour 8 also sits between the two hour bands
			name: "monday morning hour eight", day: 0, hour: 8, month: 1,
			price: "8.50", savings: "0",
		},
		{
			// Tuesday lull + peak hours + summer clearance
			name: "tuesday afternoon summer", day: 1, hour: 14, month: 7,
			price: "3.75", savings: "2.25",
		},
		{
			// Late night only, no day or season rule
			name: "wednesday late night may", day: 2, hour: 2, month: 5,
			price: "5.00", savings: "1.00",
		},
		{
			// Weekend evening + peak hours
			name: "saturday evening april", day: 5, hour: 19, month: 4,
			price: "7.25", savings: "0",
		},
		{
			name: "back to school in september", day: 3, hour: 10, month: 9,
			events: contracts.EventFlags{contracts.EventBackToSchool},
			price:  "9.00", savings: "0",
		},
		{
			// Flag set but month condition not met
			name: "back to school outside september", day: 3, hour: 10, month: 8,
			events: contracts.EventFlags{contracts.EventBackToSchool},
			price:  "5.75", savings: "0.25",
		},
		{
			// Sock day has no month guard
			name: "sock day in march", day: 2, hour: 12, month: 3,
			events: contracts.EventFlags{contracts.EventSockDay},
			price:  "7.75", savings: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustPredict(t, engine, tt.day, tt.hour, tt.month, tt.events)

			assert.True(t, result.Price.Equal(decimal.RequireFromString(tt.price)),
				"price = %s, want %s", result.Price, tt.price)
			assert.True(t, result.Savings.Equal(decimal.RequireFromString(tt.savings)),
				"savings = %s, want %s", result.Savings, tt.savings)
			assert.True(t, result.BasePrice.Equal(decimal.RequireFromString("6.00")))
		})
	}
}

func TestPredict_FactorsInRuleOrder(t *testing.T) {
	engine := testEngine(t)

	result := mustPredict(t, engine, 0, 9, 12, contracts.EventFlags{contracts.EventSockDay})

	assert.Equal(t, []string{
		"Monday morning rush (+$1.50)",
		"Peak shopping hours (+$0.50)",
		"Winter season (+$1.00)",
		"National Sock Day premium (+$1.25)",
	}, result.Factors)
	assert.True(t, result.Price.Equal(decimal.RequireFromString("10.25")))
}

func TestPredict_NoFactors(t *testing.T) {
	engine := testEngine(t)

	// Wednesday 7:00 in April hits no rule at all
	result := mustPredict(t, engine, 2, 7, 4, nil)

	assert.Empty(t, result.Factors)
	assert.True(t, result.Price.Equal(decimal.RequireFromString("6.00")))
	assert.True(t, result.Savings.IsZero())
}

func TestPredict_FloorClamp(t *testing.T) {
	engine := testEngine(t)

	// Tuesday lull + Black Friday stack below the floor:
	// 6.00 - 2.00 + 0.50 - 3.50 = 1.00 -> clamped to 2.50
	result := mustPredict(t, engine, 1, 14, 11,
		contracts.EventFlags{contracts.EventBlackFriday})

	assert.True(t, result.Price.Equal(decimal.RequireFromString("2.50")),
		"price = %s", result.Price)
	assert.True(t, result.Savings.Equal(decimal.RequireFromString("3.50")),
		"savings = %s", result.Savings)
}

func TestPredict_FloorInvariant(t *testing.T) {
	engine := testEngine(t)
	floor := decimal.RequireFromString("2.50")

	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			for month := 1; month <= 12; month++ {
				result := mustPredict(t, engine, day, hour, month, nil)
				assert.True(t, result.Price.GreaterThanOrEqual(floor),
					"price %s below floor at day=%d hour=%d month=%d",
					result.Price, day, hour, month)
			}
		}
	}
}

func TestPredict_PostHolidayClearance(t *testing.T) {
	engine := testEngine(t)
	events := contracts.EventFlags{contracts.EventPostHoliday}

	t.Run("inside window", func(t *testing.T) {
		refDate := time.Date(2026, 12, 27, 0, 0, 0, 0, time.UTC)
		result, err := engine.Predict(2, 12, 12, events, refDate)
		require.NoError(t, err)

		// 6.00 + 0.50 (peak) + 1.00 (winter) - 3.00 (clearance) = 4.50
		assert.True(t, result.Price.Equal(decimal.RequireFromString("4.50")),
			"price = %s", result.Price)
		assert.Contains(t, result.Factors, "Post-holiday clearance (-$3.00)")
	})

	t.Run("before window", func(t *testing.T) {
		refDate := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
		result, err := engine.Predict(2, 12, 12, events, refDate)
		require.NoError(t, err)

		assert.True(t, result.Price.Equal(decimal.RequireFromString("7.50")),
			"price = %s", result.Price)
		assert.NotContains(t, result.Factors, "Post-holiday clearance (-$3.00)")
	})

	t.Run("zero ref date falls back to clock", func(t *testing.T) {
		clocked := testEngine(t).WithClock(func() time.Time {
			return time.Date(2026, 12, 28, 9, 0, 0, 0, time.UTC)
		})

		result, err := clocked.Predict(2, 12, 12, events, time.Time{})
		require.NoError(t, err)
		assert.True(t, result.Price.Equal(decimal.RequireFromString("4.50")),
			"price = %s", result.Price)
	})
}

func TestPredict_Validation(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name  string
		day   int
		hour  int
		month int
		field string
	}{
		{"day too low", -1, 12, 6, "dayOfWeek"},
		{"day too high", 7, 12, 6, "dayOfWeek"},
		{"hour too low", 3, -1, 6, "hour"},
		{"hour too high", 3, 24, 6, "hour"},
		{"month too low", 3, 12, 0, "month"},
		{"month too high", 3, 12, 13, "month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Predict(tt.day, tt.hour, tt.month, nil, time.Time{})
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestPredict_UnknownEventFlag(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Predict(0, 12, 6, contracts.EventFlags{"free_shipping"}, time.Time{})
	assert.Error(t, err)
}

func TestPredict_Idempotent(t *testing.T) {
	engine := testEngine(t)
	events := contracts.EventFlags{contracts.EventSockDay}

	first := mustPredict(t, engine, 5, 20, 12, events)
	second := mustPredict(t, engine, 5, 20, 12, events)

	assert.Equal(t, first, second)
}
