package metrics

import (
	"sync"
	"testing"
	"time"

	"onebuttonprompt/internal/core"
)

type countingStorage struct {
	mu        sync.Mutex
	saveCount int
	last      core.RequestStats
	loaded    *core.RequestStats
}

func (s *countingStorage) SaveStats(stats *core.RequestStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCount++
	s.last = *stats
	return nil
}

func (s *countingStorage) LoadStats() (*core.RequestStats, error) {
	if s.loaded != nil {
		return s.loaded, nil
	}
	return &core.RequestStats{}, nil
}

func (s *countingStorage) Close() error { return nil }

func (s *countingStorage) getSaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCount
}

func newTestService(t *testing.T, historySize int, st core.StorageInterface) *MetricsService {
	t.Helper()
	ms := NewMetricsService(MetricsConfig{
		SaveInterval: time.Hour,
		HistorySize:  historySize,
		Storage:      st,
		Logger:       &core.NopLogger{},
	})
	t.Cleanup(func() { _ = ms.Close() })
	return ms
}

func TestMetricsService_RecordRequest(t *testing.T) {
	ms := newTestService(t, 10, nil)

	ms.RecordRequest(true, 100, core.ModelSDXL, "/generate")
	ms.RecordRequest(false, 200, core.ModelSDXL, "/generate")
	ms.RecordRequest(true, 150, core.ModelFlux, "/generate/batch")

	stats := ms.GetRequestStats()
	if stats.TotalRequests != 3 {
		t.Errorf("Expected 3 total requests, got %d", stats.TotalRequests)
	}
	if stats.SuccessfulRequests != 2 {
		t.Errorf("Expected 2 successful requests, got %d", stats.SuccessfulRequests)
	}
	if stats.FailedRequests != 1 {
		t.Errorf("Expected 1 failed request, got %d", stats.FailedRequests)
	}
	if stats.ModelCounts[core.ModelSDXL] != 2 || stats.ModelCounts[core.ModelFlux] != 1 {
		t.Errorf("Unexpected model counts %v", stats.ModelCounts)
	}
	if len(stats.RequestHistory) != 3 || stats.RequestHistory[2].Endpoint != "/generate/batch" {
		t.Errorf("Unexpected history %+v", stats.RequestHistory)
	}
}

func TestMetricsService_ModelCountsAreCopied(t *testing.T) {
	ms := newTestService(t, 10, nil)
	ms.RecordRequest(true, 1, core.ModelQwen, "/generate")

	stats := ms.GetRequestStats()
	stats.ModelCounts[core.ModelQwen] = 100
	if got := ms.GetRequestStats().ModelCounts[core.ModelQwen]; got != 1 {
		t.Errorf("snapshot should not alias internal counts, got %d", got)
	}
}

func TestMetricsService_GetQPS(t *testing.T) {
	ms := newTestService(t, 10, nil)
	if qps := ms.GetQPS(); qps != 0 {
		t.Errorf("Expected 0 QPS before any request, got %f", qps)
	}

	for i := 0; i < 6; i++ {
		ms.RecordRequest(true, 1, core.ModelSDXL, "/generate")
	}
	if qps := ms.GetQPS(); qps != 0.1 {
		t.Errorf("Expected 0.1 QPS, got %f", qps)
	}
}

func TestMetricsService_MaxHistorySize(t *testing.T) {
	ms := newTestService(t, 3, nil)

	for i := 0; i < 5; i++ {
		ms.RecordRequest(true, 100, core.ModelSDXL, "/generate")
	}

	stats := ms.GetRequestStats()
	if len(stats.RequestHistory) != 3 {
		t.Errorf("History should be capped at 3, got %d", len(stats.RequestHistory))
	}
}

func TestMetricsService_DefaultHistorySize(t *testing.T) {
	ms := newTestService(t, 0, nil)
	if ms.historyLimit != core.HistoryBufferSize {
		t.Errorf("Expected default history size %d, got %d", core.HistoryBufferSize, ms.historyLimit)
	}
}

func TestMetricsService_SaveIsDebounced(t *testing.T) {
	tests := []struct {
		name      string
		interval  time.Duration
		wantSaves int
	}{
		{"hourly interval saves the first request only", time.Hour, 1},
		{"zero interval saves every request", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &countingStorage{}
			ms := NewMetricsService(MetricsConfig{SaveInterval: tt.interval, HistorySize: 10, Storage: st})

			for i := 0; i < 3; i++ {
				ms.RecordRequest(true, 1, core.ModelSDXL, "/generate")
			}
			if got := st.getSaveCount(); got != tt.wantSaves {
				t.Errorf("expected %d saves, got %d", tt.wantSaves, got)
			}
		})
	}
}

func TestMetricsService_EmptyModelNotCounted(t *testing.T) {
	ms := newTestService(t, 10, nil)
	ms.RecordRequest(false, 1, "", "/generate")

	stats := ms.GetRequestStats()
	if stats.FailedRequests != 1 || len(stats.ModelCounts) != 0 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRecordSuccessAndFailureWithMetrics(t *testing.T) {
	ms := newTestService(t, 10, nil)

	RecordSuccessWithMetrics(ms, time.Now(), core.ModelSDXL, "/generate")
	RecordFailureWithMetrics(ms, time.Now(), core.ModelQwen, "/generate")

	stats := ms.GetRequestStats()
	if stats.SuccessfulRequests != 1 || stats.FailedRequests != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestGetPeriodStats(t *testing.T) {
	now := time.Now()
	history := []core.RequestRecord{
		{Timestamp: now.Add(-time.Hour), Success: true, ResponseTime: 10},
		{Timestamp: now.Add(-2 * time.Hour), Success: false, ResponseTime: 30},
		{Timestamp: now.Add(-48 * time.Hour), Success: true, ResponseTime: 50},
	}

	periods := GetPeriodStats(history, 24, 24*7)
	day := periods[24]
	if day.Requests != 2 || day.SuccessRate != 50 || day.AvgResponseTime != 20 {
		t.Errorf("Unexpected 24h stats %+v", day)
	}
	if week := periods[24*7]; week.Requests != 3 {
		t.Errorf("Unexpected 7d stats %+v", week)
	}
	if GetPeriodStats(history) != nil {
		t.Error("Expected nil without periods")
	}
}

func TestMetricsService_LoadStats(t *testing.T) {
	st := &countingStorage{loaded: &core.RequestStats{
		TotalRequests:      7,
		SuccessfulRequests: 6,
		FailedRequests:     1,
		ModelCounts:        map[string]int64{core.ModelFlux: 7},
	}}
	ms := newTestService(t, 10, st)

	if err := ms.LoadStats(); err != nil {
		t.Fatal(err)
	}
	ms.RecordRequest(true, 1, core.ModelFlux, "/generate")

	stats := ms.GetRequestStats()
	if stats.TotalRequests != 8 || stats.ModelCounts[core.ModelFlux] != 8 {
		t.Errorf("Unexpected stats after load %+v", stats)
	}
}

func TestMetricsService_Close_Idempotent(t *testing.T) {
	st := &countingStorage{}
	ms := NewMetricsService(MetricsConfig{
		SaveInterval: time.Hour,
		HistorySize:  10,
		Storage:      st,
		Logger:       &core.NopLogger{},
	})

	ms.RecordRequest(true, 10, core.ModelSDXL, "/generate")

	if err := ms.Close(); err != nil {
		t.Fatalf("first close should not fail: %v", err)
	}
	firstCloseSaves := st.getSaveCount()
	if firstCloseSaves == 0 {
		t.Fatal("first close should persist at least once")
	}
	if st.last.ModelCounts[core.ModelSDXL] != 1 {
		t.Errorf("persisted stats missing model counts: %+v", st.last)
	}

	if err := ms.Close(); err != nil {
		t.Fatalf("second close should not fail: %v", err)
	}
	if st.getSaveCount() != firstCloseSaves {
		t.Fatalf("second Close should not persist again, first=%d, now=%d", firstCloseSaves, st.getSaveCount())
	}
}

func TestMetricsService_ConcurrentRecord(t *testing.T) {
	ms := newTestService(t, 1000, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				ms.RecordRequest(true, 1, core.ModelSDXL, "/generate")
			}
		}()
	}
	wg.Wait()

	stats := ms.GetRequestStats()
	if stats.TotalRequests != 200 || stats.ModelCounts[core.ModelSDXL] != 200 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}
