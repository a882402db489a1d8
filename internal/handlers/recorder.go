package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// startRecorder godoc
// @Summary      Start recording the probe
// @Tags         recorder
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.RecorderStatus
// @Failure      409  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/recorder/start [post]
func (h *Handler) startRecorder(c *gin.Context) {
	h.log.Infow("recorder_start_requested", "user_id", userIDFrom(c))
	st, err := h.services.Recorder.Start(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "recorder_start_failed", "failed to start recorder")
		return
	}
	c.JSON(http.StatusOK, st)
}

// stopRecorder godoc
// @Summary      Stop recording
// @Tags         recorder
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.RecorderStatus
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/recorder/stop [post]
func (h *Handler) stopRecorder(c *gin.Context) {
	h.log.Infow("recorder_stop_requested", "user_id", userIDFrom(c))
	st, err := h.services.Recorder.Stop(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "recorder_stop_failed", "failed to stop recorder")
		return
	}
	c.JSON(http.StatusOK, st)
}

// recorderStatus godoc
// @Summary      Current recorder status
// @Tags         recorder
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.RecorderStatus
// @Router       /api/v1/recorder/status [get]
func (h *Handler) recorderStatus(c *gin.Context) {
	st, err := h.services.Recorder.Status(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "recorder_status_failed", "failed to load recorder status")
		return
	}
	c.JSON(http.StatusOK, st)
}
