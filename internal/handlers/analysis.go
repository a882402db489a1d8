package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"cooking_probe/internal/models"
	"cooking_probe/internal/service"

	"github.com/gin-gonic/gin"
)

const logFileField = "file"

// openUpload returns the multipart log file or answers 400.
func (h *Handler) openUpload(c *gin.Context) (multipart.File, bool) {
	fh, err := c.FormFile(logFileField)
	if err != nil {
		h.log.Infow("log_upload_missing", "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("multipart field %q is required", logFileField)})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		h.log.Errorw("log_upload_open_failed", "err", err, "filename", fh.Filename)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return nil, false
	}
	return f, true
}

// cleanLog godoc
// @Summary      Clean a recorded log
// @Description  Drops header lines, N/A rows, malformed rows and stalls.
// @Tags         analysis
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Recorder log"
// @Success      200   {object}  service.CleanResult
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/analysis/clean [post]
func (h *Handler) cleanLog(c *gin.Context) {
	f, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	res, err := h.services.Clean(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err, "clean_log_failed", "failed to clean log")
		return
	}
	c.JSON(http.StatusOK, res)
}

// fitLog godoc
// @Summary      Fit the rate constant of a recorded log
// @Tags         analysis
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "Recorder log"
// @Param        points         formData  int     false  "Prefix length used for fitting"
// @Param        initial_guess  formData  number  false  "Starting rate constant"
// @Success      200  {object}  service.FitReport
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/analysis/fit [post]
func (h *Handler) fitLog(c *gin.Context) {
	var params service.FitParams
	if raw := c.PostForm("points"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "points must be a positive integer"})
			return
		}
		params.Points = n
	}
	if raw := c.PostForm("initial_guess"); raw != "" {
		g, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "initial_guess must be a number"})
			return
		}
		params.InitialGuess = g
	}

	f, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	rep, err := h.services.FitLog(c.Request.Context(), f, params)
	if err != nil {
		h.respondError(c, err, "fit_log_failed", "failed to fit log")
		return
	}
	c.JSON(http.StatusOK, rep)
}

// timeToTargetRequest carries no weight: the estimate depends only on the
// series and the target.
type timeToTargetRequest struct {
	MeatType         *int      `json:"meat_type" binding:"required"`
	Unit             string    `json:"unit"`
	TargetTemp       *float64  `json:"target_temp"`
	TimeData         []float64 `json:"time_data" binding:"required"`
	InternalTempData []float64 `json:"internal_temp_data" binding:"required"`
	ExternalTempData []float64 `json:"external_temp_data" binding:"required"`
}

func (r timeToTargetRequest) series() models.Series {
	return models.Series{
		Time:     r.TimeData,
		Internal: r.InternalTempData,
		External: r.ExternalTempData,
	}
}

// timeToTarget godoc
// @Summary      Estimate remaining cook time
// @Description  Target defaults to the category's doneness temperature in the requested unit.
// @Tags         analysis
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      timeToTargetRequest  true  "Series, product and target"
// @Success      200   {object}  service.TargetEstimate
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/analysis/time-to-target [post]
func (h *Handler) timeToTarget(c *gin.Context) {
	var req timeToTargetRequest
	if !h.bindJSONOrBadRequest(c, &req, "time_to_target_bind_failed") {
		return
	}

	est, err := h.services.TimeToTarget(c.Request.Context(), service.TargetParams{
		MeatType: *req.MeatType,
		Unit:     req.Unit,
		Target:   req.TargetTemp,
		Series:   req.series(),
	})
	if err != nil {
		h.respondError(c, err, "time_to_target_failed", "failed to estimate time to target")
		return
	}
	c.JSON(http.StatusOK, est)
}
