package handlers

import (
	"github.com/gin-gonic/gin"

	"ml-pipeline-service/internal/core/services"
)

type Handler struct {
	inferenceSvc *services.InferenceService
	chatSvc      *services.ChatService
}

func New(inferenceSvc *services.InferenceService, chatSvc *services.ChatService) *Handler {
	return &Handler{
		inferenceSvc: inferenceSvc,
		chatSvc:      chatSvc,
	}
}

// RegisterInferenceRoutes mounts the model-serving API.
func (h *Handler) RegisterInferenceRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Status)
	r.POST("/predict", h.Predict)
}

// RegisterChatRoutes mounts the chat API.
func (h *Handler) RegisterChatRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}
