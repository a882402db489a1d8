package handlers

import (
	"net/http"

	"cooking_probe/internal/models"
	"cooking_probe/internal/service"

	"github.com/gin-gonic/gin"
)

type heatTransferRequest struct {
	MeatType         *int      `json:"meat_type" binding:"required"`
	Weight           *float64  `json:"weight" binding:"required"`
	TimeData         []float64 `json:"time_data" binding:"required"`
	InternalTempData []float64 `json:"internal_temp_data" binding:"required"`
	ExternalTempData []float64 `json:"external_temp_data" binding:"required"`
}

func (r heatTransferRequest) series() models.Series {
	return models.Series{
		Time:     r.TimeData,
		Internal: r.InternalTempData,
		External: r.ExternalTempData,
	}
}

// calculateHeatTransfer godoc
// @Summary      Extrapolate the next readings
// @Description  Appends five one-second predictions after the last sample. Every failure is a 400.
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        body  body      heatTransferRequest  true  "Series and product"
// @Success      200   {object}  models.Prediction
// @Failure      400   {object}  map[string]string
// @Router       /calculate_heat_transfer [post]
func (h *Handler) calculateHeatTransfer(c *gin.Context) {
	var req heatTransferRequest
	if !h.bindJSONOrBadRequest(c, &req, "heat_transfer_bind_failed") {
		return
	}

	pred, err := h.services.Predict(c.Request.Context(), service.PredictParams{
		MeatType: *req.MeatType,
		Weight:   *req.Weight,
		Series:   req.series(),
	})
	if err != nil {
		h.log.Infow("heat_transfer_failed", "err", err, "meat_type", *req.MeatType)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pred)
}
