package registry

import (
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/generator"
)

// DefaultProfiles returns the profiles of the built-in models in registration order.
func DefaultProfiles() []core.ModelProfile {
	return []core.ModelProfile{
		{
			Key:                     core.ModelSDXL,
			DisplayName:             "SDXL",
			Description:             "Stable Diffusion XL - Best for photorealistic and highly detailed images",
			OptimalPromptStyle:      "Technical and detailed with quality tags",
			SupportsNegativePrompts: true,
			SupportsWeights:         true,
			RecommendedSettings: core.RecommendedSettings{
				Steps: 40, CFGScale: 7.5, Width: 1024, Height: 1024, Sampler: "DPM++ 2M Karras",
			},
		},
		{
			Key:                     core.ModelQwen,
			DisplayName:             "Qwen",
			Description:             "Natural language model - Best for conversational and descriptive prompts",
			OptimalPromptStyle:      "Natural language with flowing descriptions",
			SupportsNegativePrompts: true,
			SupportsWeights:         false,
			RecommendedSettings: core.RecommendedSettings{
				Steps: 30, CFGScale: 7.0, Width: 1024, Height: 1024, Sampler: "Euler a",
			},
		},
		{
			Key:                     core.ModelFlux,
			DisplayName:             "Flux",
			Description:             "Creative AI model - Best for artistic and imaginative outputs",
			OptimalPromptStyle:      "Creative and artistic with mood descriptors",
			SupportsNegativePrompts: true,
			SupportsWeights:         false,
			RecommendedSettings: core.RecommendedSettings{
				Steps: 25, CFGScale: 3.5, Width: 1024, Height: 1024, Sampler: "DPM++ 2M",
			},
		},
	}
}

func defaultGenerator(key string) generator.Generator {
	switch key {
	case core.ModelSDXL:
		return generator.NewTechnical()
	case core.ModelQwen:
		return generator.NewNatural()
	case core.ModelFlux:
		return generator.NewCreative()
	default:
		return nil
	}
}

// NewDefault returns a registry with sdxl, qwen and flux registered.
func NewDefault(opts ...Option) *Registry {
	r := New(opts...)
	for _, profile := range DefaultProfiles() {
		if err := r.Register(profile.Key, profile, defaultGenerator(profile.Key)); err != nil {
			panic(err)
		}
	}
	return r
}

// NewLegacy returns a registry holding only the legacy single-list generator.
func NewLegacy(opts ...Option) *Registry {
	r := New(opts...)
	profile := core.ModelProfile{
		Key:                     core.ModelLegacy,
		DisplayName:             "Legacy",
		Description:             "Original single-list generator with the extended artist and style tables",
		OptimalPromptStyle:      "Comma separated tags",
		SupportsNegativePrompts: true,
		RecommendedSettings: core.RecommendedSettings{
			Steps: 30, CFGScale: 7.0, Width: 1024, Height: 1024, Sampler: "Euler a",
		},
	}
	if err := r.Register(core.ModelLegacy, profile, generator.NewLegacy()); err != nil {
		panic(err)
	}
	return r
}
