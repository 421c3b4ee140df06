// Package lexicon holds the static phrase tables the generators sample from.
package lexicon

import "onebuttonprompt/internal/core"

// Category is one named phrase list.
type Category struct {
	Name    string
	Phrases []string
}

// Set maps category names to phrase lists and preserves declaration order.
type Set struct {
	order   []string
	phrases map[string][]string
}

// NewSet builds a Set. Empty categories are dropped so every key stays samplable.
func NewSet(categories ...Category) *Set {
	s := &Set{phrases: make(map[string][]string, len(categories))}
	for _, c := range categories {
		if len(c.Phrases) == 0 {
			continue
		}
		if _, exists := s.phrases[c.Name]; !exists {
			s.order = append(s.order, c.Name)
		}
		s.phrases[c.Name] = append([]string(nil), c.Phrases...)
	}
	return s
}

// Categories returns the category keys in declaration order.
func (s *Set) Categories() []string {
	return append([]string(nil), s.order...)
}

// Has reports whether the category is known.
func (s *Set) Has(category string) bool {
	_, ok := s.phrases[category]
	return ok
}

// Phrases returns a copy of the phrase list for a category.
func (s *Set) Phrases(category string) []string {
	return append([]string(nil), s.phrases[category]...)
}

// Subjects returns the subject lexicon shared by all three model generators.
func Subjects() *Set {
	return NewSet(
		Category{core.CategoryObject, []string{
			"vintage camera", "crystal sphere", "mechanical clock", "ancient book",
			"steampunk goggles", "ornate mirror", "brass telescope",
		}},
		Category{core.CategoryAnimal, []string{
			"majestic eagle", "playful kitten", "mystical dragon", "wise owl",
			"elegant swan", "fierce tiger", "graceful deer",
		}},
		Category{core.CategoryHumanoid, []string{
			"cyberpunk warrior", "fairy princess", "robot samurai", "viking berserker",
			"space explorer", "elven archer", "steampunk inventor",
		}},
		Category{core.CategoryLandscape, []string{
			"misty mountains", "alien planet", "underwater city", "enchanted forest",
			"desert oasis", "floating islands", "crystal cavern",
		}},
		Category{core.CategoryConcept, []string{
			"time travel", "dreams within dreams", "digital consciousness", "parallel universes",
			"quantum entanglement", "collective memory", "astral projection",
		}},
	)
}

// Artists returns the artist list shared by all three model generators.
func Artists() []string {
	return []string{
		"Greg Rutkowski", "Artgerm", "Alphonse Mucha", "Studio Ghibli", "James Gurney", "Frank Frazetta",
		"Beeple", "Peter Mohrbacher", "Ross Tran", "Makoto Shinkai", "Ilya Kuvshinov", "Lois van Baarle",
	}
}

// ImageTypes returns the image type list shared by all three model generators.
func ImageTypes() []string {
	return []string{
		"digital painting", "oil painting", "watercolor", "3D render", "photograph", "concept art",
		"matte painting", "splash art", "cover art", "hyperrealistic", "photorealistic", "surrealism",
	}
}

// PhotographicImageTypes are the image types that get a camera and lens.
func PhotographicImageTypes() []string {
	return []string{"photograph", "portrait photography", "landscape photography"}
}
