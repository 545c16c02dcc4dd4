package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/logger"
	"github.com/wonny/sockpricer/pkg/redis"
)

// PriceHandler handles pricing API endpoints
// ⭐ SSOT: 가격 API 핸들러는 이 구조체에서만
type PriceHandler struct {
	engine *pricing.Engine
	cache  *redis.Cache
	logger *logger.Logger
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(engine *pricing.Engine, cache *redis.Cache, log *logger.Logger) *PriceHandler {
	return &PriceHandler{
		engine: engine,
		cache:  cache,
		logger: log,
	}
}

// GetPrice predicts the price for one (day, hour, month) slot
// GET /api/price?day=&hour=&month=&events=&date=
func (h *PriceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.require(true, true, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Predict(p.day, p.hour, p.month, p.events, p.refDate)
	if err != nil {
		respondEngineError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetEvents lists all event flags and the defaults for a date
// GET /api/events?date=
func (h *PriceHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	date := p.refDate
	if date.IsZero() {
		date = time.Now()
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flags":    contracts.AllEventFlags,
		"date":     date.Format("2006-01-02"),
		"defaults": pricing.DefaultEvents(date),
	})
}

// respondEngineError maps engine errors to HTTP status codes.
// 범위 위반은 클라이언트 잘못, 그 외는 서버 오류
func respondEngineError(w http.ResponseWriter, log *logger.Logger, err error) {
	var ve *pricing.ValidationError
	if errors.As(err, &ve) {
		respondError(w, http.StatusBadRequest, ve.Error())
		return
	}

	log.WithError(err).Error("Price computation failed")
	respondError(w, http.StatusInternalServerError, "Failed to compute price")
}
