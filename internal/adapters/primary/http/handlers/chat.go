package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ports "ml-pipeline-service/internal/core/ports/output"
)

type chatRequest struct {
	Prompt  string              `json:"prompt" binding:"required"`
	History []ports.ChatMessage `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards a prompt plus prior turns to the LLM provider.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatSvc.Ask(c.Request.Context(), req.Prompt, req.History)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
