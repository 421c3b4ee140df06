package generator

import (
	"fmt"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/lexicon"

	"github.com/samber/lo"
)

const masterpieceQualifier = "detailed masterpiece artwork"

// Technical is the SDXL-style generator: comma-separated tags with weighted artist syntax.
type Technical struct {
	subjects     *lexicon.Set
	artists      []string
	imageTypes   []string
	photographic []string
	mods         lexicon.Technical
}

// NewTechnical returns a Technical generator with its own lexicon copies.
func NewTechnical() *Technical {
	return &Technical{
		subjects:     lexicon.Subjects(),
		artists:      lexicon.Artists(),
		imageTypes:   lexicon.ImageTypes(),
		photographic: lexicon.PhotographicImageTypes(),
		mods:         lexicon.NewTechnical(),
	}
}

// ArtistWeight is the inline weight applied to the artist tag.
func ArtistWeight(insanity int) float64 {
	return 1.0 + float64(insanity)*0.05
}

func (g *Technical) GeneratePrompt(rng Rand, req core.GenerationRequest) string {
	parts := newFragments(req.Prefix)

	if req.Insanity >= 7 {
		parts.add(masterpieceQualifier)
	}

	parts.add(resolveSubject(rng, g.subjects, req))
	parts.add(pickN(rng, g.mods.Details, req.Insanity/2)...)

	imageType, hasImageType := resolveSelector(rng, req.ImageType, g.imageTypes)
	if hasImageType && lo.Contains(g.photographic, imageType) {
		parts.add("shot on "+pick(rng, g.mods.Cameras), pick(rng, g.mods.Lenses))
	}

	if req.Insanity >= 5 {
		parts.add(pick(rng, g.mods.Lighting))
	}

	if hasImageType {
		parts.add(imageType)
	}

	if artist, ok := resolveSelector(rng, req.ArtistStyle, g.artists); ok {
		parts.add(fmt.Sprintf("(by %s:%.1f)", artist, ArtistWeight(req.Insanity)))
	}

	parts.add(g.mods.QualityTags...)
	parts.add(req.Suffix)

	return parts.join(", ")
}

func (g *Technical) GenerateNegativePrompt() string {
	return g.mods.NegativeTags
}
