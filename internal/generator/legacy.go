package generator

import (
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/lexicon"

	"github.com/samber/lo"
)

// Legacy is the single-list generator kept for the /generate/legacy endpoint.
// Unlike the model generators it ignores artist and image type literals it does not know.
type Legacy struct {
	tables lexicon.Legacy
}

// NewLegacy returns a Legacy generator over the extended tables.
func NewLegacy() *Legacy {
	return &Legacy{tables: lexicon.NewLegacy()}
}

func (g *Legacy) GeneratePrompt(rng Rand, req core.GenerationRequest) string {
	parts := newFragments(req.Prefix)
	parts.add(resolveSubject(rng, g.tables.Subjects, req))

	if limit := min(req.Insanity, len(g.tables.Styles)); limit > 0 {
		parts.add(pickN(rng, g.tables.Styles, 1+rng.IntN(limit))...)
	}

	switch {
	case req.ImageType == core.SelectorNone:
	case isRandomSelector(req.ImageType):
		parts.add(pick(rng, g.tables.ImageTypes))
	case lo.Contains(g.tables.ImageTypes, req.ImageType):
		parts.add(req.ImageType)
	}

	switch {
	case req.ArtistStyle == core.SelectorNone:
	case isRandomSelector(req.ArtistStyle):
		parts.add("by " + pick(rng, g.tables.Artists))
	case lo.Contains(g.tables.Artists, req.ArtistStyle):
		parts.add("by " + req.ArtistStyle)
	}

	parts.add(g.tables.QualityTags...)
	parts.add(req.Suffix)

	return parts.join(", ")
}

func (g *Legacy) GenerateNegativePrompt() string {
	return g.tables.NegativeTags
}
