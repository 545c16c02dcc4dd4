package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/config"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/redis"
)

func testHandler(t *testing.T) *PriceHandler {
	t.Helper()

	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "error",
		LogFormat: "json",
	}
	log := logger.New(cfg)

	engine := pricing.NewWithPrices(
		decimal.RequireFromString("6.00"),
		decimal.RequireFromString("2.50"),
		log,
	)

	client, err := redis.New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewPriceHandler(engine, redis.NewCache(client, "sockpricer"), log)
}

func doRequest(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestGetPrice(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetPrice, "/api/price?day=0&hour=7&month=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result contracts.PriceResult
	decodeBody(t, rec, &result)

	assert.True(t, result.Price.Equal(decimal.RequireFromString("8.50")),
		"price = %s", result.Price)
	assert.True(t, result.BasePrice.Equal(decimal.RequireFromString("6.00")))
	assert.Equal(t, []string{
		"Monday morning rush (+$1.50)",
		"Winter season (+$1.00)",
	}, result.Factors)
}

func TestGetPrice_DateDerivesDayAndMonth(t *testing.T) {
	h := testHandler(t)

	// 2026-07-14 is a Tuesday
	rec := doRequest(t, h.GetPrice, "/api/price?date=2026-07-14&hour=14")
	require.Equal(t, http.StatusOK, rec.Code)

	var result contracts.PriceResult
	decodeBody(t, rec, &result)

	assert.True(t, result.Price.Equal(decimal.RequireFromString("3.75")),
		"price = %s", result.Price)
}

func TestGetPrice_BadRequests(t *testing.T) {
	h := testHandler(t)

	tests := []struct {
		name   string
		target string
	}{
		{"missing hour", "/api/price?day=0&month=1"},
		{"missing day", "/api/price?hour=7&month=1"},
		{"missing month", "/api/price?day=0&hour=7"},
		{"day out of range", "/api/price?day=9&hour=7&month=1"},
		{"non-numeric hour", "/api/price?day=0&hour=noon&month=1"},
		{"bad date format", "/api/price?date=14-07-2026&hour=14"},
		{"unknown event flag", "/api/price?day=0&hour=7&month=1&events=prime_day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h.GetPrice, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			decodeBody(t, rec, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetEvents(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetEvents, "/api/events?date=2026-12-04")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Flags    []string `json:"flags"`
		Date     string   `json:"date"`
		Defaults []string `json:"defaults"`
	}
	decodeBody(t, rec, &body)

	assert.Len(t, body.Flags, 4)
	assert.Equal(t, "2026-12-04", body.Date)
	assert.Equal(t, []string{"sock_day"}, body.Defaults)
}

func TestGetDailyCurve(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetDailyCurve, "/api/curve/daily?day=1&month=7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CurveResponse
	decodeBody(t, rec, &resp)

	require.Len(t, resp.Points, 24)
	assert.Equal(t, "13:00", resp.Lowest.Label)
	assert.True(t, resp.Lowest.Price.Equal(decimal.RequireFromString("3.75")),
		"lowest = %s", resp.Lowest.Price)
	assert.True(t, resp.Highest.Price.GreaterThan(resp.Lowest.Price))
}

func TestGetWeeklyCurve(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetWeeklyCurve, "/api/curve/weekly?hour=14&month=7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CurveResponse
	decodeBody(t, rec, &resp)

	require.Len(t, resp.Points, 7)
	assert.Equal(t, "Monday", resp.Points[0].Label)
	assert.Equal(t, "Tuesday", resp.Lowest.Label)
}

func TestGetWeeklyCurve_MissingHour(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetWeeklyCurve, "/api/curve/weekly?month=7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBestTime(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetBestTime, "/api/besttime?month=7")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BestTimeResponse
	decodeBody(t, rec, &resp)

	assert.Equal(t, "Tuesday", resp.Best.Day)
	assert.Equal(t, 13, resp.Best.Hour)
	assert.True(t, resp.Best.Price.Equal(decimal.RequireFromString("3.75")),
		"price = %s", resp.Best.Price)
	assert.Nil(t, resp.PotentialSavings)
}

func TestGetBestTime_PotentialSavings(t *testing.T) {
	h := testHandler(t)

	// Black Friday floors several slots at 2.50; the first is Monday 0:00.
	// Current selection Monday 12:00 prices at 3.00.
	rec := doRequest(t, h.GetBestTime,
		"/api/besttime?month=11&events=black_friday&day=0&hour=12")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BestTimeResponse
	decodeBody(t, rec, &resp)

	assert.Equal(t, "Monday", resp.Best.Day)
	assert.Equal(t, 0, resp.Best.Hour)
	assert.True(t, resp.Best.Price.Equal(decimal.RequireFromString("2.50")),
		"best = %s", resp.Best.Price)

	require.NotNil(t, resp.PotentialSavings)
	assert.True(t, resp.PotentialSavings.Equal(decimal.RequireFromString("0.50")),
		"savings = %s", resp.PotentialSavings)
}

func TestGetBestTime_MissingMonth(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetBestTime, "/api/besttime?events=black_friday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHeatmap(t *testing.T) {
	h := testHandler(t)

	rec := doRequest(t, h.GetHeatmap, "/api/heatmap?month=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var hm contracts.Heatmap
	decodeBody(t, rec, &hm)

	require.Len(t, hm.Days, 7)
	require.Len(t, hm.Hours, 24)
	require.Len(t, hm.Prices, 7)

	// Monday 7:00 in January: morning rush + winter
	assert.True(t, hm.Prices[0][7].Equal(decimal.RequireFromString("8.50")),
		"price = %s", hm.Prices[0][7])
}

func TestParseParams_ExplicitOverridesDate(t *testing.T) {
	// 2026-07-14 is a Tuesday (day 1); explicit day=5 wins
	req := httptest.NewRequest(http.MethodGet,
		"/api/price?date=2026-07-14&day=5&hour=10", nil)

	p, err := parseParams(req)
	require.NoError(t, err)

	assert.Equal(t, 5, p.day)
	assert.Equal(t, 7, p.month)
	assert.Equal(t, 10, p.hour)
	assert.False(t, p.refDate.IsZero())
}
