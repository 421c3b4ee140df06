package inject

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"onebuttonprompt/internal/config"
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/registry"
	"onebuttonprompt/internal/server"
	"onebuttonprompt/internal/storage"

	"github.com/samber/do"
)

func setEnv(t *testing.T) string {
	t.Helper()
	statsFile := filepath.Join(t.TempDir(), "stats.json")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("STATS_FILE", statsFile)
	t.Setenv("GIN_MODE", "test")
	t.Setenv("PORT", "0")
	t.Setenv("RATE_LIMIT", "0")
	return statsFile
}

func TestSetup_ResolvesServiceGraph(t *testing.T) {
	statsFile := setEnv(t)
	injector := Setup(&core.NopLogger{})

	cfg := do.MustInvoke[config.ServerConfig](injector)
	if cfg.StatsFile != statsFile || cfg.RateLimit != 0 {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, ok := do.MustInvoke[core.StorageInterface](injector).(*storage.FileStorage); !ok {
		t.Error("expected file storage without REDIS_URL")
	}

	if keys := do.MustInvoke[*registry.Registry](injector).Keys(); len(keys) != 3 {
		t.Errorf("expected 3 models, got %v", keys)
	}

	srv := do.MustInvoke[*server.Server](injector)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health check returned %d", w.Code)
	}

	if err := injector.Shutdown(); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetup_ShutdownPersistsStats(t *testing.T) {
	statsFile := setEnv(t)
	injector := Setup(&core.NopLogger{})

	srv := do.MustInvoke[*server.Server](injector)
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	if err := injector.Shutdown(); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if _, err := os.Stat(statsFile); err != nil {
		t.Fatalf("stats file should exist after shutdown: %v", err)
	}
	stats, err := storage.NewFileStorage(statsFile).LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRequests != 1 {
		t.Errorf("expected 1 persisted request, got %d", stats.TotalRequests)
	}
}

func TestSetup_BadConfigFile(t *testing.T) {
	setEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	injector := Setup(&core.NopLogger{})

	if _, err := do.Invoke[*server.Server](injector); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
