package generator

import (
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/lexicon"
)

// Creative is the Flux-style generator: mood and movement descriptors.
type Creative struct {
	subjects   *lexicon.Set
	artists    []string
	imageTypes []string
	mods       lexicon.Creative
}

// NewCreative returns a Creative generator with its own lexicon copies.
func NewCreative() *Creative {
	return &Creative{
		subjects:   lexicon.Subjects(),
		artists:    lexicon.Artists(),
		imageTypes: lexicon.ImageTypes(),
		mods:       lexicon.NewCreative(),
	}
}

func (g *Creative) GeneratePrompt(rng Rand, req core.GenerationRequest) string {
	parts := newFragments(req.Prefix)

	subject := resolveSubject(rng, g.subjects, req)
	if req.Insanity >= 4 {
		subject = pick(rng, g.mods.Modifiers) + " " + subject
	}
	parts.add(subject)

	if req.Insanity >= 5 {
		parts.add(pick(rng, g.mods.Elements))
	}

	if req.Insanity >= 6 {
		parts.add(pick(rng, g.mods.ColorMoods))
	}

	if imageType, ok := resolveSelector(rng, req.ImageType, g.imageTypes); ok {
		parts.add(pick(rng, g.mods.Movements) + " " + imageType)
	}

	if req.Insanity >= 7 {
		parts.add(pick(rng, g.mods.Compositions))
	}

	if artist, ok := resolveSelector(rng, req.ArtistStyle, g.artists); ok {
		parts.add("channeling the creative spirit of " + artist)
	}

	parts.add(pick(rng, g.mods.Qualities))
	parts.add(req.Suffix)

	return parts.join(", ")
}

func (g *Creative) GenerateNegativePrompt() string {
	return g.mods.NegativeTags
}
