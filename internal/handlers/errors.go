package handlers

import (
	"errors"
	"net/http"

	"cooking_probe/internal/probe"
	"cooking_probe/internal/recorder"
	"cooking_probe/internal/service"
	"cooking_probe/internal/thermal"

	"github.com/gin-gonic/gin"
)

var badRequestErrs = []error{
	thermal.ErrEmptySeries,
	thermal.ErrLengthMismatch,
	thermal.ErrInsufficientData,
	thermal.ErrInvalidInitialGuess,
	thermal.ErrInvalidWeight,
	thermal.ErrInvalidRate,
	thermal.ErrTargetOutOfRange,
	service.ErrInvalidUnit,
	service.ErrInvalidTarget,
	service.ErrInvalidTimeRange,
	service.ErrEmptyPassword,
	service.ErrEmptyUsername,
}

// statusFor maps service and domain errors onto HTTP status codes.
func statusFor(err error) int {
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, thermal.ErrFitNotConverged):
		return http.StatusUnprocessableEntity
	case errors.Is(err, recorder.ErrAlreadyRunning), errors.Is(err, recorder.ErrNotRunning):
		return http.StatusConflict
	case errors.Is(err, service.ErrRecorderUnavailable), errors.Is(err, probe.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	case errors.Is(err, probe.ErrUnauthorized), errors.Is(err, probe.ErrNoDevice), errors.Is(err, probe.ErrBadStatus):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError logs err under logKey and writes {"error": ...}. Internal
// failures get a generic message instead of the raw error.
func (h *Handler) respondError(c *gin.Context, err error, logKey, internalMsg string, kv ...interface{}) {
	code := statusFor(err)
	fields := append([]interface{}{"err", err, "status", code}, kv...)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
		msg = internalMsg
	} else {
		h.log.Infow(logKey, fields...)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

// bindJSONOrBadRequest binds the body into dst, answering 400 on failure.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, logKey string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow(logKey, "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
