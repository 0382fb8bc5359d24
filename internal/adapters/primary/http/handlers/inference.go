package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type predictRequest struct {
	Features []float64 `json:"features" binding:"required"`
}

type predictResponse struct {
	Prediction int    `json:"prediction"`
	ClassName  string `json:"class_name"`
}

type statusResponse struct {
	Message   string `json:"message"`
	ModelType string `json:"model_type"`
	TrainedOn string `json:"trained_on"`
	Mock      bool   `json:"mock,omitempty"`
}

// Status reports which model this process serves.
func (h *Handler) Status(c *gin.Context) {
	info := h.inferenceSvc.Info()
	c.JSON(http.StatusOK, statusResponse{
		Message:   "ML Inference API is running",
		ModelType: info.ModelType,
		TrainedOn: info.CreatedUTC.Format(time.RFC3339),
		Mock:      info.IsMock,
	})
}

// Predict maps a feature vector to a class index and its label.
func (h *Handler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pred, err := h.inferenceSvc.Predict(req.Features)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, predictResponse{
		Prediction: pred.Class,
		ClassName:  pred.Label,
	})
}
