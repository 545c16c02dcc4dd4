package handlers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/pkg/redis"
)

// BestTimeResponse is the month optimum, optionally with the savings a
// caller would realize versus their current (day, hour) selection.
type BestTimeResponse struct {
	Best             contracts.BestTime `json:"best"`
	PotentialSavings *decimal.Decimal   `json:"potential_savings,omitempty"`
}

// GetBestTime returns the cheapest (day, hour) slot of a month
// GET /api/besttime?month=&events=&date=[&day=&hour=]
func (h *PriceHandler) GetBestTime(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.require(false, false, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	key := redis.BestTimeKey(p.month, p.events.Key(), h.clearanceActive(p))

	var best contracts.BestTime
	found, err := h.cache.Get(ctx, key, &best)
	if err != nil {
		h.logger.WithError(err).Warn("Best-time cache read failed")
	}
	if !found {
		result, err := h.engine.BestTime(p.month, p.events, p.refDate)
		if err != nil {
			respondEngineError(w, h.logger, err)
			return
		}
		best = *result

		if err := h.cache.Set(ctx, key, best, redis.TTLDaily); err != nil {
			h.logger.WithError(err).Warn("Best-time cache write failed")
		}
	}

	resp := BestTimeResponse{Best: best}

	// Savings versus the caller's current selection, when supplied
	if p.daySet && p.hourSet {
		current, err := h.engine.Predict(p.day, p.hour, p.month, p.events, p.refDate)
		if err != nil {
			respondEngineError(w, h.logger, err)
			return
		}
		savings := current.Price.Sub(best.Price)
		resp.PotentialSavings = &savings
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetHeatmap returns the full 7x24 price matrix of a month
// GET /api/heatmap?month=&events=&date=
func (h *PriceHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.require(false, false, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	key := redis.HeatmapKey(p.month, p.events.Key(), h.clearanceActive(p))

	var heatmap contracts.Heatmap
	found, err := h.cache.Get(ctx, key, &heatmap)
	if err != nil {
		h.logger.WithError(err).Warn("Heatmap cache read failed")
	}
	if !found {
		result, err := h.engine.Heatmap(p.month, p.events, p.refDate)
		if err != nil {
			respondEngineError(w, h.logger, err)
			return
		}
		heatmap = *result

		if err := h.cache.Set(ctx, key, heatmap, redis.TTLLong); err != nil {
			h.logger.WithError(err).Warn("Heatmap cache write failed")
		}
	}

	respondJSON(w, http.StatusOK, heatmap)
}

// clearanceActive mirrors the engine's clearance-window check so cache keys
// can't serve a stale table across the Dec 26 boundary.
func (h *PriceHandler) clearanceActive(p *queryParams) bool {
	if !p.events.Has(contracts.EventPostHoliday) || p.month != 12 {
		return false
	}

	refDate := p.refDate
	if refDate.IsZero() {
		refDate = time.Now()
	}
	return refDate.Day() >= 26 && refDate.Day() <= 31
}
