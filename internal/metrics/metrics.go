package metrics

import (
	"maps"
	"math"
	"sync"
	"time"

	"onebuttonprompt/internal/core"

	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

const qpsWindow = time.Minute

// MetricsConfig configuration for MetricsService
type MetricsConfig struct {
	// SaveInterval is the minimum gap between persisted snapshots. Zero saves on every request.
	SaveInterval time.Duration
	HistorySize  int
	Storage      core.StorageInterface
	Logger       core.Logger
}

// MetricsService counts generation requests per model and keeps a bounded history for /api/stats.
type MetricsService struct {
	mu           sync.RWMutex
	stats        core.RequestStats
	recent       []time.Time
	historyLimit int

	storage   core.StorageInterface
	logger    core.Logger
	saver     *rate.Sometimes
	closeOnce sync.Once
}

func NewMetricsService(config MetricsConfig) *MetricsService {
	if config.HistorySize <= 0 {
		config.HistorySize = core.HistoryBufferSize
	}
	if config.Logger == nil {
		config.Logger = &core.NopLogger{}
	}

	saver := &rate.Sometimes{Interval: config.SaveInterval}
	if config.SaveInterval <= 0 {
		saver = &rate.Sometimes{Every: 1}
	}

	return &MetricsService{
		stats:        core.RequestStats{ModelCounts: make(map[string]int64)},
		historyLimit: config.HistorySize,
		storage:      config.Storage,
		logger:       config.Logger,
		saver:        saver,
	}
}

// RecordRequest records one generation outcome. An empty model is counted in the totals only.
func (ms *MetricsService) RecordRequest(success bool, responseTime int64, model string, endpoint string) {
	now := time.Now()

	ms.mu.Lock()
	ms.stats.TotalRequests++
	ms.stats.TotalResponseTime += responseTime
	if success {
		ms.stats.SuccessfulRequests++
	} else {
		ms.stats.FailedRequests++
	}
	ms.stats.LastRequestTime = now
	if model != "" {
		ms.stats.ModelCounts[model]++
	}

	ms.stats.RequestHistory = append(ms.stats.RequestHistory, core.RequestRecord{
		Timestamp:    now,
		Success:      success,
		ResponseTime: responseTime,
		Model:        model,
		Endpoint:     endpoint,
	})
	if over := len(ms.stats.RequestHistory) - ms.historyLimit; over > 0 {
		ms.stats.RequestHistory = append(ms.stats.RequestHistory[:0], ms.stats.RequestHistory[over:]...)
	}

	ms.recent = append(dropBefore(ms.recent, now.Add(-qpsWindow)), now)
	ms.mu.Unlock()

	ms.saver.Do(ms.save)
}

// dropBefore removes the leading timestamps older than cutoff.
func dropBefore(times []time.Time, cutoff time.Time) []time.Time {
	idx := 0
	for idx < len(times) && times[idx].Before(cutoff) {
		idx++
	}
	if idx == 0 {
		return times
	}
	return append(times[:0], times[idx:]...)
}

// GetQPS returns requests per second over the last minute, rounded to three places.
func (ms *MetricsService) GetQPS() float64 {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.recent = dropBefore(ms.recent, time.Now().Add(-qpsWindow))
	return math.Round(float64(len(ms.recent))/qpsWindow.Seconds()*1000) / 1000
}

// GetRequestStats returns a snapshot that shares no memory with the service.
func (ms *MetricsService) GetRequestStats() core.RequestStats {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	snapshot := ms.stats
	snapshot.ModelCounts = maps.Clone(ms.stats.ModelCounts)
	snapshot.RequestHistory = append([]core.RequestRecord(nil), ms.stats.RequestHistory...)
	return snapshot
}

// GetPeriodStats summarizes the records that fall inside each trailing window of hours.
func GetPeriodStats(history []core.RequestRecord, hourPeriods ...int) map[int]core.PeriodStats {
	if len(hourPeriods) == 0 {
		return nil
	}

	now := time.Now()
	return lo.SliceToMap(hourPeriods, func(hours int) (int, core.PeriodStats) {
		window := time.Duration(hours) * time.Hour
		inWindow := lo.Filter(history, func(r core.RequestRecord, _ int) bool {
			return now.Sub(r.Timestamp) < window
		})
		return hours, summarize(inWindow, window)
	})
}

func summarize(records []core.RequestRecord, window time.Duration) core.PeriodStats {
	count := int64(len(records))
	stats := core.PeriodStats{
		Requests: count,
		QPS:      float64(count) / window.Seconds(),
	}
	if count == 0 {
		return stats
	}

	succeeded := lo.CountBy(records, func(r core.RequestRecord) bool { return r.Success })
	stats.SuccessRate = float64(succeeded) / float64(count) * 100
	stats.AvgResponseTime = lo.SumBy(records, func(r core.RequestRecord) int64 { return r.ResponseTime }) / count
	return stats
}

// LoadStats replaces the in-memory stats with the persisted snapshot.
func (ms *MetricsService) LoadStats() error {
	if ms.storage == nil {
		return nil
	}
	loaded, err := ms.storage.LoadStats()
	if err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.stats = *loaded
	if ms.stats.ModelCounts == nil {
		ms.stats.ModelCounts = make(map[string]int64)
	}
	if over := len(ms.stats.RequestHistory) - ms.historyLimit; over > 0 {
		ms.stats.RequestHistory = ms.stats.RequestHistory[over:]
	}
	return nil
}

func (ms *MetricsService) save() {
	if ms.storage == nil {
		return
	}
	stats := ms.GetRequestStats()
	if err := ms.storage.SaveStats(&stats); err != nil {
		ms.logger.Warn("Failed to save stats: %v", err)
	}
}

// Close persists a final snapshot. Later calls are no-ops.
func (ms *MetricsService) Close() error {
	var err error
	ms.closeOnce.Do(func() {
		if ms.storage != nil {
			stats := ms.GetRequestStats()
			err = ms.storage.SaveStats(&stats)
		}
	})
	return err
}

// RecordSuccessWithMetrics records successful request
func RecordSuccessWithMetrics(metrics core.MetricsCollector, startTime time.Time, model, endpoint string) {
	metrics.RecordRequest(true, time.Since(startTime).Milliseconds(), model, endpoint)
}

// RecordFailureWithMetrics records failed request
func RecordFailureWithMetrics(metrics core.MetricsCollector, startTime time.Time, model, endpoint string) {
	metrics.RecordRequest(false, time.Since(startTime).Milliseconds(), model, endpoint)
}

var _ core.MetricsCollector = (*MetricsService)(nil)
