package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// GenerationRequest is the parameter set for one generation call.
type GenerationRequest struct {
	Model         string
	SubjectType   string
	ArtistStyle   string
	ImageType     string
	Insanity      int
	ManualSubject string
	Prefix        string
	Suffix        string
	// Seed makes a single call reproducible when set.
	Seed *int64
}

// DefaultGenerationRequest returns a request with every selector set to random.
func DefaultGenerationRequest() GenerationRequest {
	return GenerationRequest{
		Model:       DefaultModel,
		SubjectType: SelectorRandom,
		ArtistStyle: SelectorRandom,
		ImageType:   SelectorRandom,
		Insanity:    DefaultInsanity,
	}
}

// RecommendedSettings is the sampler configuration suggested for a model.
type RecommendedSettings struct {
	Steps    int     `json:"steps"`
	CFGScale float64 `json:"cfg_scale"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Sampler  string  `json:"sampler"`
}

// ModelProfile is the declarative metadata registered alongside a generator.
type ModelProfile struct {
	Key                     string              `json:"-"`
	DisplayName             string              `json:"display_name"`
	Description             string              `json:"description"`
	OptimalPromptStyle      string              `json:"optimal_prompt_style"`
	SupportsNegativePrompts bool                `json:"supports_negative_prompts"`
	SupportsWeights         bool                `json:"supports_weights"`
	RecommendedSettings     RecommendedSettings `json:"recommended_settings"`
}

// ModelSettingsResponse is returned by the per-model settings endpoint.
type ModelSettingsResponse struct {
	ModelType               string              `json:"model_type"`
	RecommendedSettings     RecommendedSettings `json:"recommended_settings"`
	SupportsNegativePrompts bool                `json:"supports_negative_prompts"`
	SupportsWeights         bool                `json:"supports_weights"`
}

// GenerationResult is the output of one generation.
type GenerationResult struct {
	ID             string               `json:"id"`
	Prompt         string               `json:"prompt"`
	NegativePrompt string               `json:"negative_prompt"`
	Model          string               `json:"model"`
	Settings       *RecommendedSettings `json:"settings,omitempty"`
}

// BatchEntry holds either a result or the error recorded for one model.
type BatchEntry struct {
	Result *GenerationResult
	Err    error
}

// MarshalJSON renders a successful entry as the bare result and a failed one as {"error": "..."}.
func (e BatchEntry) MarshalJSON() ([]byte, error) {
	if e.Err != nil {
		return sonic.Marshal(map[string]string{"error": e.Err.Error()})
	}
	return sonic.Marshal(e.Result)
}

// FlexibleInt accepts a JSON number or a numeric string.
type FlexibleInt int

// UnmarshalJSON custom JSON parsing, supports number and string formats.
func (fi *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	var num float64
	if err := sonic.Unmarshal(data, &num); err == nil {
		if math.IsNaN(num) || math.IsInf(num, 0) {
			return fmt.Errorf("%w: %s", ErrInvalidInsanity, raw)
		}
		*fi = FlexibleInt(int(math.Max(math.MinInt32, math.Min(math.MaxInt32, num))))
		return nil
	}

	var str string
	if err := sonic.Unmarshal(data, &str); err == nil {
		parsed, convErr := strconv.Atoi(strings.TrimSpace(str))
		if convErr != nil {
			return fmt.Errorf("%w: %q", ErrInvalidInsanity, str)
		}
		*fi = FlexibleInt(parsed)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidInsanity, raw)
}

// RequestStats holds aggregated request statistics for monitoring.
type RequestStats struct {
	TotalRequests      int64            `json:"total_requests"`
	SuccessfulRequests int64            `json:"successful_requests"`
	FailedRequests     int64            `json:"failed_requests"`
	TotalResponseTime  int64            `json:"total_response_time"`
	LastRequestTime    time.Time        `json:"last_request_time"`
	ModelCounts        map[string]int64 `json:"model_counts"`
	RequestHistory     []RequestRecord  `json:"request_history"`
}

// RequestRecord represents a single request's metadata for history tracking.
type RequestRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	ResponseTime int64     `json:"response_time"`
	Model        string    `json:"model"`
	Endpoint     string    `json:"endpoint"`
}

// PeriodStats holds computed statistics for a time period.
type PeriodStats struct {
	Requests        int64   `json:"requests"`
	SuccessRate     float64 `json:"successRate"`
	AvgResponseTime int64   `json:"avgResponseTime"`
	QPS             float64 `json:"qps"`
}
