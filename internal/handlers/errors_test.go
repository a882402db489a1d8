package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cooking_probe/internal/probe"
	"cooking_probe/internal/recorder"
	"cooking_probe/internal/service"
	"cooking_probe/internal/thermal"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{thermal.ErrEmptySeries, http.StatusBadRequest},
		{fmt.Errorf("%w: 1 prefix point(s)", thermal.ErrInsufficientData), http.StatusBadRequest},
		{thermal.ErrTargetOutOfRange, http.StatusBadRequest},
		{service.ErrInvalidTimeRange, http.StatusBadRequest},
		{thermal.ErrFitNotConverged, http.StatusUnprocessableEntity},
		{recorder.ErrAlreadyRunning, http.StatusConflict},
		{recorder.ErrNotRunning, http.StatusConflict},
		{service.ErrRecorderUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("login: %w", probe.ErrCircuitOpen), http.StatusServiceUnavailable},
		{fmt.Errorf("login: %w", probe.ErrUnauthorized), http.StatusBadGateway},
		{probe.ErrNoDevice, http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Errorf("statusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
