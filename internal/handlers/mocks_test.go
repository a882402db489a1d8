package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"cooking_probe/internal/models"
	"cooking_probe/internal/service"
	"cooking_probe/internal/thermal"

	"github.com/gin-gonic/gin"
)

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockPrediction runs the real extrapolation without auditing.
type mockPrediction struct {
	requireLive bool
	calls       int
	last        service.PredictParams
}

var errNotLive = errors.New("call is not flagged live")

func (m *mockPrediction) Predict(ctx context.Context, p service.PredictParams) (models.Prediction, error) {
	m.calls++
	m.last = p
	if m.requireLive && !p.Live {
		return models.Prediction{}, errNotLive
	}
	return thermal.Extrapolate(thermal.Category(p.MeatType), p.Weight, p.Series)
}

type mockAnalysis struct {
	requireLive bool
	cleanRes    service.CleanResult
	cleanErr    error
	fitRep      service.FitReport
	fitErr      error
	target      service.TargetEstimate
	targetErr   error

	lastBody   string
	lastFit    service.FitParams
	lastTarget service.TargetParams
}

func (m *mockAnalysis) Clean(ctx context.Context, r io.Reader) (service.CleanResult, error) {
	b, _ := io.ReadAll(r)
	m.lastBody = string(b)
	return m.cleanRes, m.cleanErr
}
func (m *mockAnalysis) FitLog(ctx context.Context, r io.Reader, p service.FitParams) (service.FitReport, error) {
	b, _ := io.ReadAll(r)
	m.lastBody = string(b)
	m.lastFit = p
	return m.fitRep, m.fitErr
}
func (m *mockAnalysis) TimeToTarget(ctx context.Context, p service.TargetParams) (service.TargetEstimate, error) {
	m.lastTarget = p
	if m.requireLive && !p.Live {
		return service.TargetEstimate{}, errNotLive
	}
	return m.target, m.targetErr
}

type mockRecorder struct {
	status    models.RecorderStatus
	startErr  error
	stopErr   error
	statusErr error

	startCalled int
	stopCalled  int
}

func (m *mockRecorder) Start(ctx context.Context) (models.RecorderStatus, error) {
	m.startCalled++
	return m.status, m.startErr
}
func (m *mockRecorder) Stop(ctx context.Context) (models.RecorderStatus, error) {
	m.stopCalled++
	return m.status, m.stopErr
}
func (m *mockRecorder) Status(ctx context.Context) (models.RecorderStatus, error) {
	return m.status, m.statusErr
}

type mockEventLog struct {
	resp     []models.ProbeEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ProbeEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withAuth(req *http.Request) *http.Request {
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
