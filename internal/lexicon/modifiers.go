package lexicon

// Technical holds the modifier lists used by the SDXL-style generator.
type Technical struct {
	Details      []string
	Cameras      []string
	Lenses       []string
	Lighting     []string
	QualityTags  []string
	NegativeTags string
}

// NewTechnical returns the SDXL modifier tables.
func NewTechnical() Technical {
	return Technical{
		Details: []string{
			"highly detailed", "sharp focus", "professional photography",
			"studio lighting", "trending on artstation", "8k resolution",
			"octane render", "unreal engine", "photorealistic", "ray tracing",
		},
		Cameras:     []string{"Canon EOS R5", "Nikon Z9", "Sony A7R IV", "Hasselblad X2D"},
		Lenses:      []string{"85mm lens", "24-70mm lens", "50mm f/1.4", "135mm f/2"},
		Lighting:    []string{"cinematic lighting", "dramatic lighting", "soft lighting", "volumetric lighting", "rim lighting"},
		QualityTags: []string{"masterpiece", "best quality", "8k uhd"},
		NegativeTags: "low quality, worst quality, blurry, pixelated, noisy, oversaturated, undersaturated, " +
			"bad anatomy, wrong proportions, extra limbs, missing limbs, deformed, mutated, " +
			"duplicate, morbid, mutilated, poorly drawn hands, poorly drawn face, mutation, " +
			"out of frame, extra fingers, mutated hands, poorly drawn eyes, blurry faces, " +
			"bad art, bad illustration, 3d, cartoon, anime, sketches, (worst quality:2), " +
			"(low quality:2), (normal quality:2), lowres, normal quality, ((monochrome)), " +
			"((grayscale)), skin spots, acnes, skin blemishes, bad anatomy, deepnegative",
	}
}

// Natural holds the clause lists used by the Qwen-style generator.
type Natural struct {
	Intros       []string
	Adjectives   []string
	Contexts     []string
	Times        []string
	Atmospheres  []string
	Closings     []string
	NegativeTags string
}

// NewNatural returns the Qwen clause tables.
func NewNatural() Natural {
	return Natural{
		Intros: []string{
			"A beautiful scene featuring", "An artistic depiction of", "A stunning visualization of",
			"A creative interpretation of", "An imaginative portrayal of",
		},
		Adjectives: []string{"magnificent", "ethereal", "vibrant", "serene", "dynamic", "mystical", "elegant"},
		Contexts: []string{
			"in a breathtaking setting",
			"captured in perfect moment",
			"with incredible attention to detail",
			"showcasing remarkable beauty",
			"in its full glory",
		},
		Times:       []string{"during golden hour", "at twilight", "under moonlight", "in morning mist", "during sunset"},
		Atmospheres: []string{"with soft natural light", "with dramatic shadows", "in harmonious composition"},
		Closings: []string{
			"with exceptional quality",
			"creating a masterpiece",
			"resulting in stunning artwork",
			"producing breathtaking imagery",
		},
		NegativeTags: "poor quality, blurry image, distorted features, unnatural colors, amateur work",
	}
}

// Creative holds the modifier lists used by the Flux-style generator.
type Creative struct {
	Modifiers    []string
	Elements     []string
	ColorMoods   []string
	Movements    []string
	Compositions []string
	Qualities    []string
	NegativeTags string
}

// NewCreative returns the Flux modifier tables.
func NewCreative() Creative {
	return Creative{
		Modifiers: []string{
			"transcendent", "otherworldly", "dreamlike", "surreal", "cosmic",
			"ethereal", "mystical", "enchanted", "sublime", "visionary",
		},
		Elements: []string{
			"with flowing energy", "radiating cosmic light", "merging with abstract forms",
			"dissolving into color", "transcending reality", "defying physics",
			"existing between dimensions", "pulsing with life", "breathing magic",
		},
		ColorMoods: []string{
			"vibrant neon palette", "deep jewel tones", "iridescent shimmer",
			"chromatic aberration", "bioluminescent glow", "aurora borealis colors",
			"prismatic light", "holographic essence", "liquid metal sheen",
		},
		Movements: []string{"impressionist", "expressionist", "abstract", "surrealist", "futurist"},
		Compositions: []string{
			"dynamic composition", "rule of thirds", "golden ratio", "symmetrical balance",
			"spiral composition", "fractal patterns", "sacred geometry", "tessellation",
		},
		Qualities: []string{
			"breathtaking artistry", "stunning creativity", "imaginative brilliance",
			"artistic mastery", "creative excellence", "visionary artwork",
		},
		NegativeTags: "mundane, ordinary, boring, conventional, cliched, uninspired, flat, lifeless, " +
			"dull colors, poor composition, lack of creativity, amateur, generic, predictable",
	}
}
