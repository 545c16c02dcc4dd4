package handlers

import (
	"net/http"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
)

// CurveResponse is a daily or weekly curve with its extremes.
type CurveResponse struct {
	Points  []contracts.PricePoint `json:"points"`
	Lowest  contracts.PricePoint   `json:"lowest"`
	Highest contracts.PricePoint   `json:"highest"`
}

// GetDailyCurve returns 24 hourly prices for one day of the week
// GET /api/curve/daily?day=&month=&events=&date=
func (h *PriceHandler) GetDailyCurve(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.require(true, false, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := h.engine.DailyCurve(p.day, p.month, p.events, p.refDate)
	if err != nil {
		respondEngineError(w, h.logger, err)
		return
	}

	lowest, highest := pricing.CurveExtremes(points)
	respondJSON(w, http.StatusOK, CurveResponse{
		Points:  points,
		Lowest:  lowest,
		Highest: highest,
	})
}

// GetWeeklyCurve returns 7 daily prices for one hour of the day
// GET /api/curve/weekly?hour=&month=&events=&date=
func (h *PriceHandler) GetWeeklyCurve(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.require(false, true, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := h.engine.WeeklyCurve(p.hour, p.month, p.events, p.refDate)
	if err != nil {
		respondEngineError(w, h.logger, err)
		return
	}

	lowest, highest := pricing.CurveExtremes(points)
	respondJSON(w, http.StatusOK, CurveResponse{
		Points:  points,
		Lowest:  lowest,
		Highest: highest,
	})
}
