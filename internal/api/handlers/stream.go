package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/sockpricer/internal/contracts"
	"github.com/wonny/sockpricer/internal/pricing"
	"github.com/wonny/sockpricer/pkg/logger"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// StreamHandler pushes the current predicted price over a websocket.
// 프레젠테이션 레이어의 실시간 가격 타일용
type StreamHandler struct {
	engine   *pricing.Engine
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time

	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new stream handler. interval controls how
// often a fresh prediction is pushed.
func NewStreamHandler(engine *pricing.Engine, interval time.Duration, log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		engine:   engine,
		interval: interval,
		logger:   log,
		now:      time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// StreamUpdate is one pushed price frame.
type StreamUpdate struct {
	Timestamp string                `json:"timestamp"`
	Day       string                `json:"day"`
	Hour      int                   `json:"hour"`
	Month     int                   `json:"month"`
	Events    contracts.EventFlags  `json:"events"`
	Result    contracts.PriceResult `json:"result"`
}

// Stream upgrades the connection and pushes price updates until the client
// disconnects. Events come from the `events` query parameter; without it
// the date-derived defaults are used on every tick.
// GET /ws/price?events=
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var explicit contracts.EventFlags
	hasExplicit := false
	if eventsStr := r.URL.Query().Get("events"); eventsStr != "" {
		events, err := contracts.ParseEventFlags(eventsStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		explicit = events
		hasExplicit = true
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.logger.WithField("remote", conn.RemoteAddr().String()).Info("Price stream opened")

	// Drain reads so close frames are processed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	pinger := time.NewTicker(streamPingInterval)
	defer pinger.Stop()

	// First frame immediately
	if err := h.push(conn, explicit, hasExplicit); err != nil {
		return
	}

	for {
		select {
		case <-done:
			h.logger.Info("Price stream closed by client")
			return
		case <-r.Context().Done():
			return
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ticker.C:
			if err := h.push(conn, explicit, hasExplicit); err != nil {
				h.logger.WithError(err).Warn("Price stream push failed")
				return
			}
		}
	}
}

// push predicts for the current wall-clock slot and writes one frame.
func (h *StreamHandler) push(conn *websocket.Conn, explicit contracts.EventFlags, hasExplicit bool) error {
	now := h.now()
	day := (int(now.Weekday()) + 6) % 7
	month := int(now.Month())

	events := explicit
	if !hasExplicit {
		events = pricing.DefaultEvents(now)
	}

	result, err := h.engine.Predict(day, now.Hour(), month, events, now)
	if err != nil {
		return err
	}

	update := StreamUpdate{
		Timestamp: now.Format(time.RFC3339),
		Day:       contracts.DayNames[day],
		Hour:      now.Hour(),
		Month:     month,
		Events:    events,
		Result:    *result,
	}

	conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return conn.WriteJSON(update)
}
