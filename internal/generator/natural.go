package generator

import (
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/lexicon"
)

// Natural is the Qwen-style generator: flowing sentences joined with periods.
type Natural struct {
	subjects   *lexicon.Set
	artists    []string
	imageTypes []string
	clauses    lexicon.Natural
}

// NewNatural returns a Natural generator with its own lexicon copies.
func NewNatural() *Natural {
	return &Natural{
		subjects:   lexicon.Subjects(),
		artists:    lexicon.Artists(),
		imageTypes: lexicon.ImageTypes(),
		clauses:    lexicon.NewNatural(),
	}
}

func (g *Natural) GeneratePrompt(rng Rand, req core.GenerationRequest) string {
	parts := newFragments(req.Prefix)

	if req.Insanity >= 5 {
		parts.add(pick(rng, g.clauses.Intros))
	}

	subject := resolveSubject(rng, g.subjects, req)
	if req.Insanity >= 3 {
		subject = pick(rng, g.clauses.Adjectives) + " " + subject
	}
	parts.add(subject)

	if req.Insanity >= 4 {
		parts.add(pick(rng, g.clauses.Contexts))
	}

	if req.Insanity >= 6 {
		parts.add(pick(rng, g.clauses.Times), pick(rng, g.clauses.Atmospheres))
	}

	if imageType, ok := resolveSelector(rng, req.ImageType, g.imageTypes); ok {
		parts.add("created as a " + imageType)
	}

	if artist, ok := resolveSelector(rng, req.ArtistStyle, g.artists); ok {
		parts.add("in the style reminiscent of " + artist + "'s work")
	}

	parts.add(pick(rng, g.clauses.Closings))
	parts.add(req.Suffix)

	return parts.join(". ") + "."
}

func (g *Natural) GenerateNegativePrompt() string {
	return g.clauses.NegativeTags
}
