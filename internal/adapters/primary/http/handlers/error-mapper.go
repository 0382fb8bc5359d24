package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ml-pipeline-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrFeatureCount),
		errors.Is(err, domain.ErrInvalidFeatures),
		errors.Is(err, domain.ErrEmptyPrompt):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Throttling surfaced after retries are exhausted
	case errors.Is(err, domain.ErrRateLimitExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})

	// Upstream provider faults
	case errors.Is(err, domain.ErrChatUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
