// Package registry maps model keys to their profile and generator.
package registry

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/generator"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type entry struct {
	profile core.ModelProfile
	gen     generator.Generator
}

// Registry is populated at startup and read-only afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string
	rng     generator.Rand
	logger  core.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithRand replaces the process-level random source.
func WithRand(rng generator.Rand) Option {
	return func(r *Registry) { r.rng = rng }
}

// WithLogger sets the logger used to report recovered generator failures.
func WithLogger(logger core.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		rng:     generator.NewProcessRand(),
		logger:  &core.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a model. Keys must be unique and non-empty.
func (r *Registry) Register(key string, profile core.ModelProfile, gen generator.Generator) error {
	if key == "" {
		return fmt.Errorf("register model: empty key")
	}
	if gen == nil {
		return fmt.Errorf("register model %s: nil generator", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("register model %s: %w", key, core.ErrDuplicateModel)
	}
	profile.Key = key
	r.entries[key] = entry{profile: profile, gen: gen}
	r.order = append(r.order, key)
	return nil
}

// Get returns a copy of the profile registered under key.
func (r *Registry) Get(key string) (core.ModelProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e.profile, ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// ListModels returns every profile keyed by model. The map is freshly built on each call.
func (r *Registry) ListModels() map[string]core.ModelProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.MapValues(r.entries, func(e entry, _ string) core.ModelProfile {
		return e.profile
	})
}

// Settings returns the recommended settings and capability flags for a model.
func (r *Registry) Settings(key string) (core.ModelSettingsResponse, error) {
	profile, ok := r.Get(key)
	if !ok {
		return core.ModelSettingsResponse{}, fmt.Errorf("model %s: %w", key, core.ErrModelNotFound)
	}
	return core.ModelSettingsResponse{
		ModelType:               key,
		RecommendedSettings:     profile.RecommendedSettings,
		SupportsNegativePrompts: profile.SupportsNegativePrompts,
		SupportsWeights:         profile.SupportsWeights,
	}, nil
}

// Generate builds one prompt with the generator registered under key.
func (r *Registry) Generate(key string, req core.GenerationRequest) (*core.GenerationResult, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("model %s: %w", key, core.ErrModelNotFound)
	}

	return r.run(key, e, req)
}

// GenerateAll runs the request against every registered model concurrently.
// A failing model gets an error entry and never affects the others.
func (r *Registry) GenerateAll(ctx context.Context, req core.GenerationRequest) map[string]core.BatchEntry {
	keys := r.Keys()
	entries := make([]core.BatchEntry, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				entries[i] = core.BatchEntry{Err: err}
				return nil
			}
			result, err := r.Generate(key, req)
			entries[i] = core.BatchEntry{Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]core.BatchEntry, len(keys))
	for i, key := range keys {
		out[key] = entries[i]
	}
	return out
}

func (r *Registry) run(key string, e entry, req core.GenerationRequest) (result *core.GenerationResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("generator %s panicked: %v\n%s", key, rec, debug.Stack())
			result = nil
			err = fmt.Errorf("model %s: %w", key, core.ErrGenerationFailed)
		}
	}()

	var rng generator.Rand = r.rng
	if req.Seed != nil {
		rng = generator.NewRand(*req.Seed)
	}

	settings := e.profile.RecommendedSettings
	return &core.GenerationResult{
		ID:             uuid.NewString(),
		Prompt:         e.gen.GeneratePrompt(rng, req),
		NegativePrompt: e.gen.GenerateNegativePrompt(),
		Model:          key,
		Settings:       &settings,
	}, nil
}
