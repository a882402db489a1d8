package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"cooking_probe/internal/models"
	"cooking_probe/internal/service"
	"cooking_probe/internal/thermal"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000

	// maxLiveSamples bounds the per-connection series (about 10 hours at 10s polling).
	maxLiveSamples = 3600
)

// Envelope types sent to the client.
const (
	msgSession    = "session"
	msgPrediction = "prediction"
	msgRejected   = "rejected"
	msgRecorder   = "recorder"
	msgError      = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveParams describes the product being cooked during a live session.
type liveParams struct {
	MeatType int     `json:"meat_type"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Unit     string  `json:"unit"`
}

// livePrediction is the per-reading answer: the projected points past the
// accepted sample and, once estimable, the remaining cook time.
type livePrediction struct {
	Sample        models.Sample           `json:"sample"`
	Samples       int                     `json:"samples"`
	PredictedTime []float64               `json:"predicted_time"`
	Predicted     []float64               `json:"predicted_temp_data"`
	ETA           *service.TargetEstimate `json:"eta,omitempty"`
}

// liveSession accumulates accepted readings for one connection. Only the
// newest limit samples are kept.
type liveSession struct {
	params liveParams
	series models.Series
	limit  int
}

func newLiveSession(p liveParams) *liveSession {
	return &liveSession{params: p, limit: maxLiveSamples}
}

func (s *liveSession) append(x models.Sample) {
	if s.limit > 0 && s.series.Len() >= s.limit {
		drop := s.series.Len() - s.limit + 1
		s.series.Time = s.series.Time[drop:]
		s.series.Internal = s.series.Internal[drop:]
		s.series.External = s.series.External[drop:]
	}
	s.series.Append(x)
}

func (s *liveSession) last() *models.Sample {
	if s.series.Len() == 0 {
		return nil
	}
	l := s.series.Last()
	return &l
}

type wsInbound struct {
	reading models.Reading
	err     error
}

var errBadReading = errors.New("reading must be a JSON object with time, internal and external")

// wsConnect godoc
// @Summary      Live prediction session
// @Description  Client sends readings as {"time","internal","external"}; null stands for a missing value. Each accepted reading is answered with a prediction envelope, rejected ones with a rejected envelope. Recorder status is pushed every interval.
// @Tags         live
// @Param        meat_type    query  int     false  "Product category (default 0, pork)"
// @Param        weight       query  number  true   "Weight"
// @Param        unit         query  string  false  "C or F"  Enums(C,F)
// @Param        interval     query  string  false  "Status push interval, e.g. 2s (max 10s)"
// @Param        interval_ms  query  int     false  "Status push interval in milliseconds"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	params, err := parseLiveParams(c)
	if err != nil {
		h.log.Infow("ws_bad_params", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := c.Request.Context()
	in := make(chan wsInbound)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go h.startReader(conn, in, done, quit)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	sess := newLiveSession(params)
	if err := writeEnvelope(conn, wsEnvelope{Type: msgSession, Data: params}); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}
	if err := h.sendRecorderStatus(ctx, conn); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case msg := <-in:
			if err := h.handleReading(ctx, conn, sess, msg); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendRecorderStatus(ctx, conn); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

func parseLiveParams(c *gin.Context) (liveParams, error) {
	var p liveParams
	if s := c.Query("meat_type"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return p, errors.New("meat_type must be an integer")
		}
		p.MeatType = v
	}
	w, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil || !(w > 0) || math.IsInf(w, 0) {
		return p, thermal.ErrInvalidWeight
	}
	p.Weight = w

	switch u := c.DefaultQuery("unit", "C"); u {
	case "C", "c":
		p.Unit = "C"
	case "F", "f":
		p.Unit = "F"
	default:
		return p, service.ErrInvalidUnit
	}
	p.Category = thermal.Category(p.MeatType).Name()
	return p, nil
}

// handleReading runs one inbound message through the stall filter and the
// predictor. Only write failures are returned; everything else is reported
// to the client.
func (h *Handler) handleReading(ctx context.Context, conn *websocket.Conn, sess *liveSession, msg wsInbound) error {
	if msg.err != nil {
		return writeEnvelope(conn, wsEnvelope{Type: msgError, Error: msg.err.Error()})
	}
	r := msg.reading
	if !thermal.Accept(sess.last(), r) {
		return writeEnvelope(conn, wsEnvelope{Type: msgRejected, Data: r, Error: rejectReason(r)})
	}

	sample := models.Sample{Time: *r.Time, Internal: *r.Internal, External: *r.External}
	sess.append(sample)

	pred, err := h.services.Predict(ctx, service.PredictParams{
		MeatType: sess.params.MeatType,
		Weight:   sess.params.Weight,
		Series:   sess.series,
		Live:     true,
	})
	if err != nil {
		return writeEnvelope(conn, wsEnvelope{Type: msgError, Error: err.Error()})
	}

	n := len(pred.Time)
	out := livePrediction{
		Sample:        sample,
		Samples:       sess.series.Len(),
		PredictedTime: pred.Time[n-len(pred.Predicted):],
		Predicted:     pred.Predicted,
	}
	if h.services.Analysis != nil {
		est, err := h.services.TimeToTarget(ctx, service.TargetParams{
			MeatType: sess.params.MeatType,
			Unit:     sess.params.Unit,
			Series:   sess.series,
			Live:     true,
		})
		if err == nil {
			out.ETA = &est
		}
	}
	return writeEnvelope(conn, wsEnvelope{Type: msgPrediction, Data: out})
}

func rejectReason(r models.Reading) string {
	if r.Time == nil || r.Internal == nil || r.External == nil {
		return "reading has a missing value"
	}
	return "reading repeats the previous sample"
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader decodes client readings until the connection fails. done is
// closed on exit; quit tells it the writer loop is gone.
func (h *Handler) startReader(conn *websocket.Conn, in chan<- wsInbound, done chan<- struct{}, quit <-chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			h.log.Infow("ws_read_closed", "err", err)
			return
		}
		var msg wsInbound
		if err := json.Unmarshal(data, &msg.reading); err != nil {
			msg.err = errBadReading
		}
		select {
		case in <- msg:
		case <-quit:
			return
		}
	}
}

// sendRecorderStatus pushes the recorder status when a recorder is wired.
func (h *Handler) sendRecorderStatus(ctx context.Context, conn *websocket.Conn) error {
	if h.services.Recorder == nil {
		return nil
	}
	st, err := h.services.Recorder.Status(ctx)
	if err != nil {
		h.log.Errorw("ws_recorder_status_failed", "err", err)
		return writeEnvelope(conn, wsEnvelope{Type: msgError, Error: "failed to load recorder status"})
	}
	return writeEnvelope(conn, wsEnvelope{Type: msgRecorder, Data: st})
}

func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
