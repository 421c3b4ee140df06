package server

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/metrics"
	"onebuttonprompt/internal/util"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var staticFiles embed.FS

// generateRequest is the JSON body accepted by the generate endpoints.
// Absent selectors keep their random defaults; insanity may be a number or a numeric string.
type generateRequest struct {
	ModelType     string            `json:"model_type"`
	SubjectType   *string           `json:"subject_type"`
	ArtistStyle   *string           `json:"artist_style"`
	ImageType     *string           `json:"image_type"`
	Insanity      *core.FlexibleInt `json:"insanity"`
	ManualSubject string            `json:"manual_subject"`
	Prefix        string            `json:"prefix"`
	Suffix        string            `json:"suffix"`
	Seed          *int64            `json:"seed"`
}

func (r generateRequest) toGenerationRequest() core.GenerationRequest {
	req := core.DefaultGenerationRequest()
	if r.ModelType != "" {
		req.Model = r.ModelType
	}
	if r.SubjectType != nil {
		req.SubjectType = *r.SubjectType
	}
	if r.ArtistStyle != nil {
		req.ArtistStyle = *r.ArtistStyle
	}
	if r.ImageType != nil {
		req.ImageType = *r.ImageType
	}
	if r.Insanity != nil {
		req.Insanity = int(*r.Insanity)
	}
	req.ManualSubject = r.ManualSubject
	req.Prefix = r.Prefix
	req.Suffix = r.Suffix
	req.Seed = r.Seed
	return req
}

// bindGenerateRequest treats an empty body as an all-defaults request.
func bindGenerateRequest(c *gin.Context) (core.GenerationRequest, error) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		return core.GenerationRequest{}, err
	}
	return body.toGenerationRequest(), nil
}

// metricsModel keeps client-supplied keys out of the persisted per-model counters.
func (s *Server) metricsModel(model string) string {
	if _, ok := s.models.Get(model); ok {
		return model
	}
	return ""
}

func showIndexPage(c *gin.Context) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load page")
		return
	}
	c.Data(http.StatusOK, core.ContentTypeHTML, data)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, s.models.ListModels())
}

func (s *Server) modelSettings(c *gin.Context) {
	model := c.Param("model")
	settings, err := s.models.Settings(model)
	if err != nil {
		respondWithError(c, http.StatusNotFound, fmt.Sprintf("Model %s not found", model))
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) generate(c *gin.Context) {
	startTime := time.Now()
	defer withPanicRecoveryWithMetrics(c, s.metricsService, startTime, s.config.Logger)()

	req, err := bindGenerateRequest(c)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, "", c.FullPath())
		respondWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.models.Generate(req.Model, req)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, s.metricsModel(req.Model), c.FullPath())
		respondWithGenerationError(c, err, req.Model, s.config.Logger)
		return
	}

	recordRequestResultWithMetrics(s.metricsService, true, startTime, req.Model, c.FullPath())
	s.config.Logger.Debug("Generated %s prompt %s: %s", req.Model, result.ID, util.TruncateString(result.Prompt, 60, 20, "..."))
	c.JSON(http.StatusOK, result)
}

func (s *Server) generateBatch(c *gin.Context) {
	startTime := time.Now()
	defer withPanicRecoveryWithMetrics(c, s.metricsService, startTime, s.config.Logger)()

	req, err := bindGenerateRequest(c)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, "", c.FullPath())
		respondWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	results := s.models.GenerateAll(c.Request.Context(), req)
	for model, entry := range results {
		if entry.Err != nil {
			s.config.Logger.Warn("Batch generation failed for %s: %v", model, entry.Err)
		}
		recordRequestResultWithMetrics(s.metricsService, entry.Err == nil, startTime, model, c.FullPath())
	}

	c.JSON(http.StatusOK, results)
}

func (s *Server) generateLegacy(c *gin.Context) {
	startTime := time.Now()
	defer withPanicRecoveryWithMetrics(c, s.metricsService, startTime, s.config.Logger)()

	req, err := bindGenerateRequest(c)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, core.ModelLegacy, c.FullPath())
		respondWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.legacy.Generate(core.ModelLegacy, req)
	if err != nil {
		recordRequestResultWithMetrics(s.metricsService, false, startTime, core.ModelLegacy, c.FullPath())
		respondWithGenerationError(c, err, core.ModelLegacy, s.config.Logger)
		return
	}

	recordRequestResultWithMetrics(s.metricsService, true, startTime, core.ModelLegacy, c.FullPath())
	c.JSON(http.StatusOK, result)
}

func (s *Server) getStatsData(c *gin.Context) {
	stats := s.metricsService.GetRequestStats()
	periodStats := metrics.GetPeriodStats(stats.RequestHistory, 24, 24*7, 24*30)
	currentQPS := s.metricsService.GetQPS()

	c.JSON(http.StatusOK, gin.H{
		"currentTime":        time.Now().Format(core.TimeFormatDateTime),
		"currentQPS":         fmt.Sprintf("%.3f", currentQPS),
		"totalRequests":      stats.TotalRequests,
		"successfulRequests": stats.SuccessfulRequests,
		"failedRequests":     stats.FailedRequests,
		"totalRecords":       len(stats.RequestHistory),
		"modelCounts":        stats.ModelCounts,
		"stats24h":           periodStats[24],
		"stats7d":            periodStats[24*7],
		"stats30d":           periodStats[24*30],
	})
}
