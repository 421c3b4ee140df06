package lexicon

import "onebuttonprompt/internal/core"

// Legacy holds the extended tables of the single-list generator.
type Legacy struct {
	Subjects     *Set
	Artists      []string
	ImageTypes   []string
	Styles       []string
	QualityTags  []string
	NegativeTags string
}

// NewLegacy returns the extended legacy tables.
func NewLegacy() Legacy {
	return Legacy{
		Subjects: NewSet(
			Category{core.CategoryObject, []string{"vintage camera", "crystal sphere", "mechanical clock", "ancient book", "steampunk goggles"}},
			Category{core.CategoryAnimal, []string{"majestic eagle", "playful kitten", "mystical dragon", "wise owl", "elegant swan"}},
			Category{core.CategoryHumanoid, []string{"cyberpunk warrior", "fairy princess", "robot samurai", "viking berserker", "space explorer"}},
			Category{core.CategoryLandscape, []string{"misty mountains", "alien planet", "underwater city", "enchanted forest", "desert oasis"}},
			Category{core.CategoryConcept, []string{"time travel", "dreams within dreams", "digital consciousness", "parallel universes", "quantum entanglement"}},
		),
		Artists: []string{
			"Greg Rutkowski", "Artgerm", "Alphonse Mucha", "Studio Ghibli", "James Gurney", "Frank Frazetta",
			"Beeple", "Peter Mohrbacher", "Ross Tran", "Makoto Shinkai", "Ilya Kuvshinov", "Lois van Baarle",
			"Sam Spratt", "Yoji Shinkawa", "Hayao Miyazaki", "Norman Rockwell", "Steve McCurry", "Banksy",
			"H.R. Giger", "Zdzisław Beksiński", "Wayne Barlowe", "Michael Whelan", "Bob Ross", "Thomas Kinkade",
			"Syd Mead", "Simon Stålenhag", "Katsuhiro Otomo", "Moebius", "Ralph McQuarrie", "Drew Struzan",
			"Boris Vallejo", "Julie Bell", "Luis Royo", "Victoria Francés", "Anne Stokes", "Nene Thomas",
			"Josephine Wall", "Thomas Cole", "Albert Bierstadt", "Caspar David Friedrich", "Ivan Aivazovsky",
			"William Turner", "Claude Monet", "Vincent van Gogh", "Pablo Picasso", "Salvador Dalí",
			"René Magritte", "M.C. Escher", "Remedios Varo", "Frida Kahlo", "Gustav Klimt", "Egon Schiele",
			"Yoshitaka Amano", "Akira Toriyama", "Kentaro Miura", "Junji Ito", "Kim Jung Gi", "Ashley Wood",
			"Craig Mullins", "Sparth", "Feng Zhu", "Jama Jurabaev", "Dylan Cole", "Maciej Kuciara",
		},
		ImageTypes: []string{
			"digital painting", "oil painting", "watercolor", "3D render", "photograph", "concept art",
			"matte painting", "splash art", "cover art", "hyperrealistic", "photorealistic", "surrealism",
			"impressionism", "expressionism", "abstract art", "pop art", "art nouveau", "art deco",
			"baroque", "renaissance", "gothic art", "romanticism", "neoclassical", "minimalist art",
			"maximalist art", "psychedelic art", "vaporwave", "cyberpunk art", "steampunk art", "dieselpunk art",
			"biopunk art", "solarpunk art", "fantasy art", "sci-fi art", "horror art", "dark fantasy",
			"high fantasy", "low poly", "pixel art", "vector art", "line art", "ink drawing", "charcoal drawing",
			"pencil sketch", "colored pencil", "pastel art", "acrylic painting", "gouache painting", "tempera",
			"fresco", "encaustic", "airbrush art", "spray paint", "street art", "graffiti", "stencil art",
			"woodcut", "linocut", "etching", "lithograph", "screen print", "risograph", "cyanotype",
			"polaroid", "film photography", "digital photography", "drone photography", "macro photography",
			"portrait photography", "landscape photography", "architectural photography", "fashion photography",
			"underwater photography", "astrophotography", "HDR photography", "long exposure", "double exposure",
			"tilt-shift photography", "infrared photography", "x-ray art", "thermal imaging", "medical illustration",
			"technical illustration", "botanical illustration", "scientific illustration", "infographic",
			"comic art", "manga art", "anime art", "cartoon", "caricature", "chibi art", "isometric art",
			"flat design", "material design", "glassmorphism", "neumorphism", "brutalist design", "bauhaus",
			"memphis design", "swiss design", "scandinavian design", "japanese minimalism", "wabi-sabi",
			"ukiyo-e", "sumi-e", "mandala art", "zentangle", "sacred geometry", "fractal art", "generative art",
			"glitch art", "databending", "ascii art", "voxel art", "low poly 3D", "high poly 3D", "sculpted",
			"clay render", "wireframe", "holographic", "iridescent", "metallic art", "neon art", "bioluminescent",
			"stained glass", "mosaic", "tapestry", "embroidery", "origami", "paper cut art", "collage",
			"mixed media", "assemblage art", "found object art", "land art", "installation art", "performance art",
		},
		Styles:      []string{"highly detailed", "cinematic lighting", "dramatic", "ethereal", "photorealistic", "fantasy art"},
		QualityTags: []string{"masterpiece", "best quality", "8k"},
		NegativeTags: "low quality, blurry, pixelated, jpeg artifacts, bad anatomy, deformed, mutated, extra limbs, " +
			"missing limbs, watermark, signature, text, cropped, out of frame, oversaturated, undersaturated, " +
			"overexposed, underexposed",
	}
}
