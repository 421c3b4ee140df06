package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/metrics"

	"github.com/gin-gonic/gin"
)

func respondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// recordRequestResultWithMetrics records request result
func recordRequestResultWithMetrics(m core.MetricsCollector, success bool, startTime time.Time, model, endpoint string) {
	if success {
		metrics.RecordSuccessWithMetrics(m, startTime, model, endpoint)
	} else {
		metrics.RecordFailureWithMetrics(m, startTime, model, endpoint)
	}
}

// respondWithGenerationError maps registry errors to HTTP responses.
func respondWithGenerationError(c *gin.Context, err error, model string, logger core.Logger) {
	switch {
	case errors.Is(err, core.ErrModelNotFound):
		respondWithError(c, http.StatusNotFound, fmt.Sprintf("Model %s not found", model))
	default:
		logger.Error("Generation failed for %s (request %s): %v", model, c.GetString(core.ContextKeyRequestID), err)
		respondWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

// withPanicRecoveryWithMetrics wraps handler with panic recovery
func withPanicRecoveryWithMetrics(c *gin.Context, m core.MetricsCollector, startTime time.Time, logger core.Logger) func() {
	return func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handler %s: %v", c.FullPath(), r)
			metrics.RecordFailureWithMetrics(m, startTime, "", c.FullPath())
			if !c.Writer.Written() {
				respondWithError(c, http.StatusInternalServerError, "internal server error")
			}
			c.Abort()
		}
	}
}
